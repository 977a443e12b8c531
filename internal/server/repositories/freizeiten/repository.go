// Package freizeiten provides the PostgreSQL-backed repository for trip
// records.
package freizeiten

import (
	"context"

	"github.com/godsapp/freizeit-server/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, f *models.Freizeit) (*models.Freizeit, error)
}
