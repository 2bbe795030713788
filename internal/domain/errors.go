package domain

import (
	"errors"
	"fmt"
)

var (
	ErrClientInput      = errors.New("invalid client input")
	ErrExtractionFailed = errors.New("text extraction failed")
	ErrInferenceFailed  = errors.New("inference endpoint communication failed")
)

// PipelineError carries the human-readable detail for a failed pipeline
// stage. errors.Is matches its Kind; Unwrap returns the underlying cause.
type PipelineError struct {
	Kind   error
	Detail string
	Err    error
}

func (e *PipelineError) Error() string {
	return e.Detail
}

func (e *PipelineError) Is(target error) bool {
	return target == e.Kind
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// NewClientInputError reports a request the caller must fix (HTTP 400).
func NewClientInputError(format string, args ...interface{}) *PipelineError {
	return &PipelineError{Kind: ErrClientInput, Detail: fmt.Sprintf(format, args...)}
}

// NewExtractionError wraps a failure while reading document text (HTTP 500).
func NewExtractionError(err error) *PipelineError {
	return &PipelineError{
		Kind:   ErrExtractionFailed,
		Detail: fmt.Sprintf("Error processing CV: %v", err),
		Err:    err,
	}
}

// NewInferenceError wraps a failure talking to the inference endpoint (HTTP 500).
func NewInferenceError(err error) *PipelineError {
	return &PipelineError{
		Kind:   ErrInferenceFailed,
		Detail: fmt.Sprintf("Error communicating with Ollama: %v", err),
		Err:    err,
	}
}
