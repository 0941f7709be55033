package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"escolaapi/internal/database"
)

type migrationStep struct {
	Name string
	SQL  string
}

var sqliteSteps = []migrationStep{
	{
		Name: "create_table_alunos",
		SQL: `CREATE TABLE IF NOT EXISTS alunos (
  id   INTEGER PRIMARY KEY AUTOINCREMENT,
  nome TEXT    NOT NULL
);`,
	},
	{
		Name: "create_table_usuarios",
		SQL: `CREATE TABLE IF NOT EXISTS usuarios (
  id           TEXT     PRIMARY KEY,
  email        TEXT     UNIQUE NOT NULL,
  senha        TEXT     NOT NULL,
  nome         TEXT     NOT NULL,
  tipo         TEXT     NOT NULL CHECK (tipo IN ('aluno', 'professor')),
  data_criacao DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`,
	},
}

var postgresSteps = []migrationStep{
	{
		Name: "create_table_alunos",
		SQL: `CREATE TABLE IF NOT EXISTS alunos (
  id   BIGSERIAL PRIMARY KEY,
  nome TEXT      NOT NULL
);`,
	},
	{
		Name: "create_table_usuarios",
		SQL: `CREATE TABLE IF NOT EXISTS usuarios (
  id           TEXT        PRIMARY KEY,
  email        TEXT        UNIQUE NOT NULL,
  senha        TEXT        NOT NULL,
  nome         TEXT        NOT NULL,
  tipo         TEXT        NOT NULL CHECK (tipo IN ('aluno', 'professor')),
  data_criacao TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
}

const (
	sqliteSentinel   = `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('alunos', 'usuarios')`
	postgresSentinel = `SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = current_schema() AND table_name IN ('alunos', 'usuarios')`
)

func stepsFor(d database.Dialect) ([]migrationStep, string) {
	if d == database.Postgres {
		return postgresSteps, postgresSentinel
	}
	return sqliteSteps, sqliteSentinel
}

// EnsureMigrated checks whether the 'alunos' and 'usuarios' tables exist and creates whichever is missing.
func EnsureMigrated(ctx context.Context, db *sql.DB, dialect database.Dialect, log zerolog.Logger) error {
	start := time.Now()
	log = log.With().Str("component", "database").Str("dialect", string(dialect)).Logger()
	steps, sentinel := stepsFor(dialect)

	log.Info().Str("event", "db_migration_check").Str("status", "starting").Send()

	var found int
	if err := db.QueryRowContext(ctx, sentinel).Scan(&found); err != nil {
		log.Error().
			Str("event", "db_migration_failed").
			Str("status", "error").
			Err(err).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("failed to check sentinel tables")
		return fmt.Errorf("failed to check sentinel tables: %w", err)
	}

	if found == len(steps) {
		log.Info().
			Str("event", "db_migration_skip").
			Str("status", "success").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	log.Info().Str("event", "db_migration_start").Str("status", "in_progress").Send()

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().
				Str("event", "db_migration_failed").
				Str("status", "error").
				Str("migration_step", step.Name).
				Err(err).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Send()
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info().
			Str("event", "db_migration_step").
			Str("status", "success").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Send()
	}

	log.Info().
		Str("event", "db_migration_success").
		Str("status", "success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Send()

	return nil
}
