// Package leaderinfo provides the PostgreSQL-backed repository for leader
// metadata rows.
package leaderinfo

import (
	"context"

	"github.com/godsapp/freizeit-server/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, li *models.LeaderInfo) (*models.LeaderInfo, error)
}
