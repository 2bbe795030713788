package extractor

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"code.sajari.com/docconv"

	"cvparser/internal/domain"
)

// ODTExtractor reads OpenDocument text files.
type ODTExtractor struct{}

func (e *ODTExtractor) SupportedFormats() []domain.FileType {
	return []domain.FileType{domain.FileTypeODT}
}

// Extract returns the paragraphs of content.xml joined by newlines. docconv
// opens every paragraph with a newline, so the leading ones are dropped.
func (e *ODTExtractor) Extract(_ context.Context, data []byte) (string, error) {
	body, _, err := docconv.ConvertODT(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("converting ODT: %w", err)
	}
	return strings.TrimLeft(body, "\n"), nil
}
