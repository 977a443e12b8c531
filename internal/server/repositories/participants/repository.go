// Package participants provides the PostgreSQL-backed repository for
// user_freizeiten rows.
package participants

import (
	"context"

	"github.com/godsapp/freizeit-server/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Participant) (*models.Participant, error)
}
