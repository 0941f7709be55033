package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"escolaapi/internal/config"
	"escolaapi/internal/database"
	"escolaapi/internal/database/migration"
	"escolaapi/internal/logger"
	"escolaapi/internal/repository/sqlstore"
	"escolaapi/internal/service"
)

// DefaultUserID is the usuarios row removed when --id is not given.
const DefaultUserID = "2a2cfbbb-4886-481a-bf03-26428f26f2af"

const (
	keyUserID    = "DELETE_USER_ID"
	keyAssumeYes = "DELETE_ASSUME_YES"
)

// UserDeleter looks a user up, asks for confirmation on In and deletes it.
type UserDeleter struct {
	Svc       service.UsuarioService
	In        io.Reader
	Out       io.Writer
	AssumeYes bool
}

// Run executes one lookup/confirm/delete cycle for id.
// A missing user or a declined prompt is not an error.
func (d *UserDeleter) Run(ctx context.Context, id string) error {
	u, err := d.Svc.Get(ctx, id)
	if errors.Is(err, service.ErrNotFound) {
		color.New(color.FgYellow).Fprintf(d.Out, "Nenhum usuário encontrado com ID %s.\n", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("lookup usuario %s: %w", id, err)
	}

	fmt.Fprintf(d.Out, "Usuário encontrado: %s\n", u)

	if !d.AssumeYes && !d.confirm() {
		fmt.Fprintln(d.Out, "Operação cancelada.")
		return nil
	}

	if err := d.Svc.Delete(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			color.New(color.FgYellow).Fprintf(d.Out, "Nenhum usuário encontrado com ID %s.\n", id)
			return nil
		}
		return fmt.Errorf("delete usuario %s: %w", id, err)
	}

	color.New(color.FgGreen).Fprintf(d.Out, "Usuário com ID %s foi deletado!\n", id)
	return nil
}

func (d *UserDeleter) confirm() bool {
	fmt.Fprint(d.Out, "Deseja deletar este usuário? (s/n): ")
	if d.In == nil {
		return false
	}
	line, err := bufio.NewReader(d.In).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.ToLower(strings.TrimRight(line, "\r\n")) == "s"
}

// NewDeleteUserCmd builds the delete-user command. Database settings come from the
// same environment keys as the API and can be overridden with flags.
func NewDeleteUserCmd() *cobra.Command {
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:           "deleteuser",
		Short:         "Delete one row from the usuarios table after confirmation",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromViper(v)
			log := logger.New(cmd.ErrOrStderr(), "warn", logger.Location(cfg.Timezone))

			db, dialect, err := database.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := migration.EnsureMigrated(cmd.Context(), db, dialect, log); err != nil {
				return err
			}

			d := &UserDeleter{
				Svc:       service.NewUsuarioService(sqlstore.NewUsuarioSQL(db)),
				In:        cmd.InOrStdin(),
				Out:       cmd.OutOrStdout(),
				AssumeYes: v.GetBool(keyAssumeYes),
			}
			return d.Run(cmd.Context(), v.GetString(keyUserID))
		},
	}

	flags := cmd.Flags()
	flags.String("id", DefaultUserID, "ID of the usuario to delete")
	flags.BoolP("yes", "y", false, "delete without asking for confirmation")
	flags.String("db-driver", "", "database driver (sqlite3 or pgx), overrides DB_DRIVER")
	flags.String("db-path", "", "SQLite database file, overrides DB_PATH")

	_ = v.BindPFlag(keyUserID, flags.Lookup("id"))
	_ = v.BindPFlag(keyAssumeYes, flags.Lookup("yes"))
	_ = v.BindPFlag("DB_DRIVER", flags.Lookup("db-driver"))
	_ = v.BindPFlag("DB_PATH", flags.Lookup("db-path"))

	return cmd
}
