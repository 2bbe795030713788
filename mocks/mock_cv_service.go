package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cvparser/internal/domain"
	"cvparser/internal/service"
)

// MockCVService is a mock implementation of service.CVService.
type MockCVService struct {
	mock.Mock
}

func (m *MockCVService) Parse(ctx context.Context, input service.ParseCVInput) (*domain.ParseResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParseResult), args.Error(1)
}

func (m *MockCVService) Ready(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
