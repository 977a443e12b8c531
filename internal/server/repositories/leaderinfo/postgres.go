package leaderinfo

import (
	"context"
	"fmt"

	"github.com/godsapp/freizeit-server/internal/dbx"
	"github.com/godsapp/freizeit-server/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, li *models.LeaderInfo) (*models.LeaderInfo, error) {
	query := `
		INSERT INTO leader_info (user_freizeit_id, church, occupation)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		li.UserFreizeitID, li.Church, li.Occupation).Scan(&li.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return li, nil
}
