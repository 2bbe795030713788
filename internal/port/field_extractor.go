package port

import (
	"context"

	"cvparser/internal/domain"
)

// FieldExtractionInput carries the text to analyze and the fields to ask for.
type FieldExtractionInput struct {
	Text   string
	Fields []string
}

// FieldExtractor abstracts LLM-based field extraction.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, input FieldExtractionInput) (domain.ExtractedData, error)
	Ping(ctx context.Context) error
}
