package mocks

import (
	"context"
	"io"

	"escolaapi/internal/model"
	"escolaapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockAlunoService struct {
	mock.Mock
}

func (m *MockAlunoService) List(ctx context.Context) ([]model.Aluno, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Aluno), args.Error(1)
}

func (m *MockAlunoService) Create(ctx context.Context, nome string) (*model.Aluno, error) {
	args := m.Called(ctx, nome)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Aluno), args.Error(1)
}

func (m *MockAlunoService) Import(ctx context.Context, r io.Reader, filename string) (*service.ImportResult, error) {
	args := m.Called(ctx, r, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImportResult), args.Error(1)
}

func (m *MockAlunoService) Export(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	if f, ok := args.Get(0).(func(io.Writer) error); ok {
		return f(w)
	}
	return args.Error(0)
}
