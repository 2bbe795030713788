package extractor

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"cvparser/internal/domain"
)

// PDFExtractor reads PDF documents page by page.
type PDFExtractor struct{}

func (e *PDFExtractor) SupportedFormats() []domain.FileType {
	return []domain.FileType{domain.FileTypePDF}
}

// Extract concatenates the plain text of every page in document order. Pages
// without a content stream contribute nothing.
func (e *PDFExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}

	var sb strings.Builder
	totalPages := reader.NumPage()
	for i := 1; i <= totalPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := reader.Page(i)
		if page.V.IsNull() || page.V.Key("Contents").IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("reading PDF page %d: %w", i, err)
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}
