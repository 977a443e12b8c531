// Package guardians provides the PostgreSQL-backed repository for guardian
// contacts.
package guardians

import (
	"context"

	"github.com/godsapp/freizeit-server/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, g *models.Guardian) (*models.Guardian, error)
}
