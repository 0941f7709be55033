package mocks

import (
	"context"

	"escolaapi/internal/model"
	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"
)

type MockAlunoListCache struct {
	mock.Mock
}

func (m *MockAlunoListCache) Version(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAlunoListCache) Get(ctx context.Context, version int64) (mo.Option[[]model.Aluno], error) {
	args := m.Called(ctx, version)
	return args.Get(0).(mo.Option[[]model.Aluno]), args.Error(1)
}

func (m *MockAlunoListCache) Set(ctx context.Context, version int64, alunos []model.Aluno) error {
	args := m.Called(ctx, version, alunos)
	return args.Error(0)
}

func (m *MockAlunoListCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
