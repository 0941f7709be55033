package mocks

import (
	"context"

	"escolaapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockUsuarioService struct {
	mock.Mock
}

func (m *MockUsuarioService) Get(ctx context.Context, id string) (*model.Usuario, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Usuario), args.Error(1)
}

func (m *MockUsuarioService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
