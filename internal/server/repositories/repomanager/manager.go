// Package repomanager vends repository implementations bound to a database
// handle and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/godsapp/freizeit-server/internal/dbx"
	"github.com/godsapp/freizeit-server/internal/server/repositories/accessrequests"
	"github.com/godsapp/freizeit-server/internal/server/repositories/freizeiten"
	"github.com/godsapp/freizeit-server/internal/server/repositories/guardians"
	"github.com/godsapp/freizeit-server/internal/server/repositories/leaderinfo"
	"github.com/godsapp/freizeit-server/internal/server/repositories/participants"
	"github.com/godsapp/freizeit-server/internal/server/repositories/users"
)

// RepositoryManager returns repositories bound to the provided DBTX, so the
// same code path works on a plain connection and inside a transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Freizeiten(db dbx.DBTX) freizeiten.Repository
	Participants(db dbx.DBTX) participants.Repository
	Guardians(db dbx.DBTX) guardians.Repository
	LeaderInfo(db dbx.DBTX) leaderinfo.Repository
	AccessRequests(db dbx.DBTX) accessrequests.Repository
}
