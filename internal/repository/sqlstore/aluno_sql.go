package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"escolaapi/internal/model"
	"escolaapi/internal/repository"
)

// Statements use $n placeholders and RETURNING, which both PostgreSQL and SQLite accept.
const (
	insertAluno = `INSERT INTO alunos (nome) VALUES ($1) RETURNING id, nome`
	listAlunos  = `SELECT id, nome FROM alunos ORDER BY id DESC`
)

// AlunoSQL implements repository.AlunoRepository on database/sql.
type AlunoSQL struct {
	db *sql.DB
}

// NewAlunoSQL creates a new AlunoSQL repository.
func NewAlunoSQL(db *sql.DB) *AlunoSQL {
	return &AlunoSQL{db: db}
}

var _ repository.AlunoRepository = (*AlunoSQL)(nil)

// Create inserts a new student row and returns the stored record.
func (r *AlunoSQL) Create(ctx context.Context, nome string) (*model.Aluno, error) {
	var out model.Aluno
	if err := r.db.QueryRowContext(ctx, insertAluno, nome).Scan(&out.ID, &out.Nome); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBatch inserts every name inside one transaction.
func (r *AlunoSQL) CreateBatch(ctx context.Context, nomes []string) ([]model.Aluno, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertAluno)
	if err != nil {
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	out := make([]model.Aluno, 0, len(nomes))
	for _, nome := range nomes {
		var a model.Aluno
		if err := stmt.QueryRowContext(ctx, nome).Scan(&a.ID, &a.Nome); err != nil {
			return nil, fmt.Errorf("insert %q: %w", nome, err)
		}
		out = append(out, a)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return out, nil
}

// List returns all students, highest ID first.
func (r *AlunoSQL) List(ctx context.Context) ([]model.Aluno, error) {
	rows, err := r.db.QueryContext(ctx, listAlunos)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Aluno, 0)
	for rows.Next() {
		var a model.Aluno
		if err := rows.Scan(&a.ID, &a.Nome); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
