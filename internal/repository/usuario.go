package repository

import (
	"context"

	"escolaapi/internal/model"
)

// UsuarioRepository defines data access for the usuarios table.
type UsuarioRepository interface {
	// FindByID returns a user by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Usuario, error)

	// Delete removes a user by ID. It returns sql.ErrNoRows if nothing was deleted.
	Delete(ctx context.Context, id string) error
}
