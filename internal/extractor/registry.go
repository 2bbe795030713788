// Package extractor reads plain text out of uploaded documents, dispatching
// on file extension to a format-specific reader.
package extractor

import (
	"context"
	"fmt"

	"cvparser/internal/domain"
	"cvparser/internal/port"
)

// FormatExtractor reads text from one or more document formats.
type FormatExtractor interface {
	Extract(ctx context.Context, data []byte) (string, error)
	SupportedFormats() []domain.FileType
}

var _ port.TextExtractor = (*Registry)(nil)

// Registry maps file types to the extractor that handles them.
type Registry struct {
	extractors map[domain.FileType]FormatExtractor
}

// NewRegistry returns a Registry with every built-in extractor registered.
func NewRegistry() *Registry {
	r := &Registry{extractors: make(map[domain.FileType]FormatExtractor)}
	for _, e := range []FormatExtractor{
		&PDFExtractor{},
		&DOCXExtractor{},
		&TextExtractor{},
		&XLSXExtractor{},
		&ODTExtractor{},
	} {
		r.Register(e)
	}
	return r
}

// Register adds e for each format it supports, replacing earlier entries.
func (r *Registry) Register(e FormatExtractor) {
	for _, f := range e.SupportedFormats() {
		r.extractors[f] = e
	}
}

// Get returns the extractor for fileType.
func (r *Registry) Get(fileType domain.FileType) (FormatExtractor, error) {
	e, ok := r.extractors[fileType]
	if !ok {
		return nil, domain.NewClientInputError("Unsupported file type: %s", fileType)
	}
	return e, nil
}

// Extract reads the full text of data. An unknown fileType is a client input
// error; anything going wrong inside a format reader, panics included, is
// returned as a plain error for the caller to classify.
func (r *Registry) Extract(ctx context.Context, fileType domain.FileType, data []byte) (text string, err error) {
	e, err := r.Get(fileType)
	if err != nil {
		return "", err
	}

	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("reading %s: %v", fileType, rec)
		}
	}()
	return e.Extract(ctx, data)
}
