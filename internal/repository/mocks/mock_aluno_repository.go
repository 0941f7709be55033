package mocks

import (
	"context"

	"escolaapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockAlunoRepository struct {
	mock.Mock
}

func (m *MockAlunoRepository) Create(ctx context.Context, nome string) (*model.Aluno, error) {
	args := m.Called(ctx, nome)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Aluno), args.Error(1)
}

func (m *MockAlunoRepository) CreateBatch(ctx context.Context, nomes []string) ([]model.Aluno, error) {
	args := m.Called(ctx, nomes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Aluno), args.Error(1)
}

func (m *MockAlunoRepository) List(ctx context.Context) ([]model.Aluno, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Aluno), args.Error(1)
}
