package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/godsapp/freizeit-server/internal/dbx"
	"github.com/godsapp/freizeit-server/internal/server/migrations"
	"github.com/godsapp/freizeit-server/internal/server/repositories/accessrequests"
	"github.com/godsapp/freizeit-server/internal/server/repositories/freizeiten"
	"github.com/godsapp/freizeit-server/internal/server/repositories/guardians"
	"github.com/godsapp/freizeit-server/internal/server/repositories/leaderinfo"
	"github.com/godsapp/freizeit-server/internal/server/repositories/participants"
	"github.com/godsapp/freizeit-server/internal/server/repositories/users"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository
// implementations and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Freizeiten(db dbx.DBTX) freizeiten.Repository {
	return freizeiten.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Participants(db dbx.DBTX) participants.Repository {
	return participants.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Guardians(db dbx.DBTX) guardians.Repository {
	return guardians.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) LeaderInfo(db dbx.DBTX) leaderinfo.Repository {
	return leaderinfo.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) AccessRequests(db dbx.DBTX) accessrequests.Repository {
	return accessrequests.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}
