package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsuarioSQL_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUsuarioSQL(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		created := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"id", "email", "senha", "nome", "tipo", "data_criacao"}).
			AddRow("u-1", "a@escola.com", "123456", "Ana", "aluno", created)

		mock.ExpectQuery(`SELECT \* FROM usuarios WHERE id = \$1`).
			WithArgs("u-1").
			WillReturnRows(rows)

		u, err := repo.FindByID(ctx, "u-1")

		require.NoError(t, err)
		assert.Equal(t, "u-1", u.ID)
		assert.Equal(t, []string{"id", "email", "senha", "nome", "tipo", "data_criacao"}, u.Columns)
		tipo, _ := u.Field("tipo")
		assert.Equal(t, "aluno", tipo)
		assert.Equal(t, "('u-1', 'a@escola.com', '123456', 'Ana', 'aluno', '2024-03-01 10:30:00')", u.String())
	})

	t.Run("any column layout with nulls", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "email", "senha", "data_criacao"}).
			AddRow("u-2", []byte("b@escola.com"), "s3nha", nil)

		mock.ExpectQuery("SELECT (.+) FROM usuarios").
			WithArgs("u-2").
			WillReturnRows(rows)

		u, err := repo.FindByID(ctx, "u-2")

		require.NoError(t, err)
		assert.Equal(t, []any{"u-2", "b@escola.com", "s3nha", nil}, u.Values)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM usuarios").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))

		u, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, u)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM usuarios").
			WithArgs("u-3").
			WillReturnError(errors.New("no such table: usuarios"))

		_, err := repo.FindByID(ctx, "u-3")

		assert.EqualError(t, err, "no such table: usuarios")
	})
}

func TestUsuarioSQL_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUsuarioSQL(db)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM usuarios WHERE id = ?").
			WithArgs("u-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "u-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM usuarios WHERE id = ?").
			WithArgs("u-2").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, "u-2"), sql.ErrNoRows)
	})

	t.Run("exec error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM usuarios").
			WithArgs("u-3").
			WillReturnError(errors.New("locked"))

		assert.EqualError(t, repo.Delete(ctx, "u-3"), "locked")
	})
}
