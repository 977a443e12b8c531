package bootstrap

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/godsapp/freizeit-server/internal/common"
	"github.com/godsapp/freizeit-server/internal/server/config"
	"github.com/godsapp/freizeit-server/internal/server/repositories/repomanager"
	"github.com/godsapp/freizeit-server/internal/server/services"
)

type App struct {
	users *services.UserService
	db    *sql.DB
	in    *bufio.Reader
	out   io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &App{
		users: services.NewUserService(db, m),
		db:    db,
		in:    bufio.NewReader(os.Stdin),
		out:   os.Stdout,
	}, nil
}

// Run prompts for credentials and creates the first leader account. It
// fails with a friendly message when a leader already exists.
func (app *App) Run(ctx context.Context) error {
	defer app.db.Close()

	username, err := GetSimpleText(app.in, "Enter username for the first leader account", app.out)
	if err != nil {
		return err
	}
	if username == "" {
		return errors.New("username must not be empty")
	}

	password, err := GetPassword(app.out)
	if err != nil {
		return err
	}
	if len(password) == 0 {
		return errors.New("password must not be empty")
	}

	user, err := app.users.BootstrapLeader(ctx, username, string(password))
	if err != nil {
		if errors.Is(err, common.ErrLeaderExists) {
			return errors.New("a leader account already exists, use the API to create further accounts")
		}
		return err
	}

	fmt.Fprintf(app.out, "Created leader account %q (id %d)\n", user.Username, user.ID)
	return nil
}
