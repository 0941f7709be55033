package repository

import (
	"context"

	"escolaapi/internal/model"
)

// AlunoRepository defines data access for students using SQL queries only.
// No business logic here; strictly persistence operations.
type AlunoRepository interface {
	// Create inserts a new student and returns the stored row with its generated ID.
	Create(ctx context.Context, nome string) (*model.Aluno, error)

	// CreateBatch inserts all names in a single transaction. Either every row is stored or none is.
	CreateBatch(ctx context.Context, nomes []string) ([]model.Aluno, error)

	// List returns every student ordered by ID, newest first.
	List(ctx context.Context) ([]model.Aluno, error)
}
