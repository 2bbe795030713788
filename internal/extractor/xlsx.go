package extractor

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"cvparser/internal/domain"
)

// XLSXExtractor reads spreadsheet cells as tab-separated lines.
type XLSXExtractor struct{}

func (e *XLSXExtractor) SupportedFormats() []domain.FileType {
	return []domain.FileType{domain.FileTypeXLSX}
}

// Extract renders each sheet's rows with cells joined by tabs. Sheets are
// separated by a newline; empty sheets are skipped.
func (e *XLSXExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("opening XLSX: %w", err)
	}
	defer func() { _ = f.Close() }()

	var sheets []string
	for _, sheet := range f.GetSheetList() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("reading sheet %q: %w", sheet, err)
		}
		if len(rows) == 0 {
			continue
		}

		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			lines = append(lines, strings.Join(row, "\t"))
		}
		sheets = append(sheets, strings.Join(lines, "\n"))
	}
	return strings.Join(sheets, "\n"), nil
}
