package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Completer is a mock implementation of service.Completer.
type Completer struct {
	mock.Mock
}

func (m *Completer) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt)
	return args.String(0), args.Error(1)
}
