package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/godsapp/freizeit-server/internal/common"
	"github.com/godsapp/freizeit-server/internal/server/models"
	"github.com/godsapp/freizeit-server/internal/server/repositories/repomanager"
)

// AccessRequestService drives the pending/approved state machine of access
// requests. Who may call what is decided by the HTTP layer: creation is open
// to anyone, listing and approval are gated on the leader role.
type AccessRequestService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAccessRequestService(db *sql.DB, m repomanager.RepositoryManager) *AccessRequestService {
	return &AccessRequestService{db: db, repomanager: m}
}

// Create records that requestedBy wants visibility into userID's trip data.
// The new request starts pending; duplicates for the same pair are allowed.
func (s *AccessRequestService) Create(ctx context.Context, userID, requestedBy int64) (*models.AccessRequest, error) {
	repo := s.repomanager.AccessRequests(s.db)

	req, err := repo.Create(ctx, userID, requestedBy)
	if err != nil {
		return nil, fmt.Errorf("error creating access request: %w", err)
	}
	return req, nil
}

// ListPending returns a point-in-time snapshot of all pending requests.
func (s *AccessRequestService) ListPending(ctx context.Context) ([]models.AccessRequest, error) {
	repo := s.repomanager.AccessRequests(s.db)

	requests, err := repo.ListByStatus(ctx, models.AccessRequestPending)
	if err != nil {
		return nil, fmt.Errorf("error listing access requests: %w", err)
	}
	return requests, nil
}

// Approve transitions a request to approved in one atomic update. Approving
// an already-approved request succeeds again with no distinct signal; a
// missing id yields common.ErrNotFound.
func (s *AccessRequestService) Approve(ctx context.Context, id int64) error {
	repo := s.repomanager.AccessRequests(s.db)

	if err := repo.UpdateStatus(ctx, id, models.AccessRequestApproved); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("error approving access request: %w", err)
	}
	return nil
}
