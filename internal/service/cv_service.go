package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"cvparser/internal/domain"
	"cvparser/internal/intake"
	"cvparser/internal/port"
)

// ParseCVInput is the DTO for a single uploaded document.
type ParseCVInput struct {
	Filename string
	Size     int64
	File     io.Reader
	Fields   []string
}

// CVService defines the upload-to-fields pipeline contract.
type CVService interface {
	Parse(ctx context.Context, input ParseCVInput) (*domain.ParseResult, error)
	Ready(ctx context.Context) error
}

type cvService struct {
	validator *intake.Validator
	text      port.TextExtractor
	fields    port.FieldExtractor
}

// NewCVService creates a new CVService implementation.
func NewCVService(
	validator *intake.Validator,
	text port.TextExtractor,
	fields port.FieldExtractor,
) CVService {
	return &cvService{
		validator: validator,
		text:      text,
		fields:    fields,
	}
}

// Parse runs validate, extract text, query inference and assemble in order.
// The first failing stage ends the request.
func (s *cvService) Parse(ctx context.Context, input ParseCVInput) (*domain.ParseResult, error) {
	fileType, err := s.validator.Validate(input.Filename, input.Size)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(input.File)
	if err != nil {
		return nil, domain.NewExtractionError(fmt.Errorf("reading upload: %w", err))
	}

	content, err := s.text.Extract(ctx, fileType, data)
	if err != nil {
		var pe *domain.PipelineError
		if errors.As(err, &pe) {
			return nil, pe
		}
		return nil, domain.NewExtractionError(err)
	}

	slog.Info("cvService.Parse: text extracted",
		"filename", input.Filename,
		"type", fileType,
		"bytes", len(data),
		"chars", len(content),
	)

	extracted, err := s.fields.ExtractFields(ctx, port.FieldExtractionInput{
		Text:   content,
		Fields: input.Fields,
	})
	if err != nil {
		return nil, domain.NewInferenceError(err)
	}

	return domain.NewParseResult(content, extracted), nil
}

// Ready reports whether the inference endpoint is reachable.
func (s *cvService) Ready(ctx context.Context) error {
	return s.fields.Ping(ctx)
}
