package sqlstore

import (
	"context"
	"database/sql"

	"escolaapi/internal/model"
	"escolaapi/internal/repository"
)

// UsuarioSQL implements repository.UsuarioRepository on database/sql.
type UsuarioSQL struct {
	db *sql.DB
}

// NewUsuarioSQL creates a new UsuarioSQL repository.
func NewUsuarioSQL(db *sql.DB) *UsuarioSQL {
	return &UsuarioSQL{db: db}
}

var _ repository.UsuarioRepository = (*UsuarioSQL)(nil)

// FindByID fetches a single user by its ID with every column the table has.
func (r *UsuarioSQL) FindByID(ctx context.Context, id string) (*model.Usuario, error) {
	const q = `SELECT * FROM usuarios WHERE id = $1`

	rows, err := r.db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, sql.ErrNoRows
	}

	vals := make([]any, len(cols))
	dest := make([]any, len(cols))
	for i := range vals {
		dest[i] = &vals[i]
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}
	for i, v := range vals {
		// some drivers hand TEXT back as []byte
		if b, ok := v.([]byte); ok {
			vals[i] = string(b)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &model.Usuario{ID: id, Columns: cols, Values: vals}, nil
}

// Delete removes a user by ID and reports sql.ErrNoRows when no row matched.
func (r *UsuarioSQL) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM usuarios WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
