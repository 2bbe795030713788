package extractor

import (
	"context"
	"errors"
	"unicode/utf8"

	"cvparser/internal/domain"
)

// TextExtractor handles plain text (.txt) files.
type TextExtractor struct{}

func (e *TextExtractor) SupportedFormats() []domain.FileType {
	return []domain.FileType{domain.FileTypeTXT}
}

// Extract returns data verbatim. Invalid UTF-8 is rejected rather than
// silently replaced.
func (e *TextExtractor) Extract(_ context.Context, data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errors.New("decoding text file: invalid UTF-8 byte sequence")
	}
	return string(data), nil
}
