package accessrequests

import (
	"context"
	"fmt"

	"github.com/godsapp/freizeit-server/internal/common"
	"github.com/godsapp/freizeit-server/internal/dbx"
	"github.com/godsapp/freizeit-server/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX (satisfied by
// *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new pending request. Duplicate (user_id, requested_by)
// pairs are allowed.
func (r *PostgresRepository) Create(ctx context.Context, userID, requestedBy int64) (*models.AccessRequest, error) {
	query := `
		INSERT INTO access_requests (user_id, requested_by)
		VALUES ($1, $2)
		RETURNING id, status, created_at
	`
	req := &models.AccessRequest{UserID: userID, RequestedBy: requestedBy}
	err := r.db.QueryRowContext(ctx, query, userID, requestedBy).
		Scan(&req.ID, &req.Status, &req.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return req, nil
}

// ListByStatus returns a point-in-time snapshot of all requests in the given
// status.
func (r *PostgresRepository) ListByStatus(ctx context.Context, status models.AccessRequestStatus) ([]models.AccessRequest, error) {
	query := `
		SELECT id, user_id, requested_by, status, created_at
		FROM access_requests
		WHERE status = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var requests []models.AccessRequest
	for rows.Next() {
		var req models.AccessRequest
		if err := rows.Scan(&req.ID, &req.UserID, &req.RequestedBy, &req.Status, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return requests, nil
}

// UpdateStatus sets the status of a request in a single atomic statement.
// A row that already has the target status still matches, which makes
// repeated approvals idempotent. Returns common.ErrNotFound when no row with
// that id exists.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int64, status models.AccessRequestStatus) error {
	query := `
		UPDATE access_requests
		SET status = $2
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
