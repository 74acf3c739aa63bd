package llm

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGenerator is a mock implementation of Generator using testify/mock.
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
