// Package accessrequests provides the PostgreSQL-backed repository for the
// access-request lifecycle.
package accessrequests

import (
	"context"

	"github.com/godsapp/freizeit-server/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, userID, requestedBy int64) (*models.AccessRequest, error)
	ListByStatus(ctx context.Context, status models.AccessRequestStatus) ([]models.AccessRequest, error)
	UpdateStatus(ctx context.Context, id int64, status models.AccessRequestStatus) error
}
