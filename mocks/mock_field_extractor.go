package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cvparser/internal/domain"
	"cvparser/internal/port"
)

// MockFieldExtractor is a mock implementation of port.FieldExtractor.
type MockFieldExtractor struct {
	mock.Mock
}

func (m *MockFieldExtractor) ExtractFields(ctx context.Context, input port.FieldExtractionInput) (domain.ExtractedData, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.ExtractedData), args.Error(1)
}

func (m *MockFieldExtractor) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
