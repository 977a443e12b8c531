package users

import (
	"context"
	"database/sql"
	"errors"
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

// Create inserts a new user and returns it with the generated id.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (username, password, email, first_name, last_name, birth_date, is_leader, created_by)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::date, $7, $8)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.Password, user.Email, user.FirstName, user.LastName,
		user.BirthDate, user.IsLeader, user.CreatedBy).Scan(&user.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

// GetByUsername looks a user up by case-insensitive username match.
// Returns common.ErrNotFound when no such user exists.
func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, password, is_leader
		FROM users
		WHERE LOWER(username) = LOWER($1)
	`
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.Password, &user.IsLeader)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

// GetByID returns the current state of a user, including the leader flag.
// Returns common.ErrNotFound when no such user exists.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, username, is_leader
		FROM users
		WHERE id = $1
	`
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Username, &user.IsLeader)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

// CountLeaders returns the number of accounts carrying the leader flag.
func (r *PostgresRepository) CountLeaders(ctx context.Context) (int64, error) {
	query := `
		SELECT COUNT(*) FROM users WHERE is_leader
	`
	var n int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
