package service

import (
	"context"
	"database/sql"
	"errors"

	"escolaapi/internal/model"
	"escolaapi/internal/repository"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("usuario not found")
)

// UsuarioService defines the lookup and removal of application users.
type UsuarioService interface {
	// Get returns a user by ID.
	Get(ctx context.Context, id string) (*model.Usuario, error)

	// Delete removes a user by ID.
	Delete(ctx context.Context, id string) error
}

type usuarioService struct {
	repo repository.UsuarioRepository
}

// NewUsuarioService constructs a new UsuarioService.
func NewUsuarioService(repo repository.UsuarioRepository) UsuarioService {
	return &usuarioService{repo: repo}
}

func (s *usuarioService) Get(ctx context.Context, id string) (*model.Usuario, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *usuarioService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
