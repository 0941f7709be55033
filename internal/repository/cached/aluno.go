// Package cached decorates repositories with a read-through list cache.
package cached

import (
	"context"

	"github.com/rs/zerolog"

	"escolaapi/internal/cache"
	"escolaapi/internal/model"
	"escolaapi/internal/repository"
)

// AlunoRepository serves List from the cache and invalidates it on every write.
// Cache failures are logged and never fail the request.
type AlunoRepository struct {
	inner repository.AlunoRepository
	cache cache.AlunoListCache
	log   zerolog.Logger
}

// NewAlunoRepository wraps inner with c.
func NewAlunoRepository(inner repository.AlunoRepository, c cache.AlunoListCache, log zerolog.Logger) *AlunoRepository {
	return &AlunoRepository{
		inner: inner,
		cache: c,
		log:   log.With().Str("component", "aluno_cache").Logger(),
	}
}

var _ repository.AlunoRepository = (*AlunoRepository)(nil)

func (r *AlunoRepository) Create(ctx context.Context, nome string) (*model.Aluno, error) {
	a, err := r.inner.Create(ctx, nome)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return a, nil
}

func (r *AlunoRepository) CreateBatch(ctx context.Context, nomes []string) ([]model.Aluno, error) {
	out, err := r.inner.CreateBatch(ctx, nomes)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return out, nil
}

// List reads the version before the database so a write that lands meanwhile
// leaves this snapshot under a version no reader asks for again.
func (r *AlunoRepository) List(ctx context.Context) ([]model.Aluno, error) {
	ver, err := r.cache.Version(ctx)
	if err != nil {
		r.log.Warn().Err(err).Str("event", "cache_version_failed").Send()
		return r.inner.List(ctx)
	}

	hit, err := r.cache.Get(ctx, ver)
	if err != nil {
		r.log.Warn().Err(err).Str("event", "cache_get_failed").Send()
	} else if alunos, ok := hit.Get(); ok {
		return alunos, nil
	}

	alunos, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, ver, alunos); err != nil {
		r.log.Warn().Err(err).Str("event", "cache_set_failed").Send()
	}
	return alunos, nil
}

func (r *AlunoRepository) invalidate(ctx context.Context) {
	if err := r.cache.Invalidate(ctx); err != nil {
		r.log.Warn().Err(err).Str("event", "cache_invalidate_failed").Send()
	}
}
