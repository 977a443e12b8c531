// Package services contains the server-side business logic: credential
// verification and session tokens, the access-request lifecycle, account
// management, and trip/participant records.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/godsapp/freizeit-server/internal/common"
	"github.com/godsapp/freizeit-server/internal/server/auth"
	"github.com/godsapp/freizeit-server/internal/server/config"
	"github.com/godsapp/freizeit-server/internal/server/models"
	"github.com/godsapp/freizeit-server/internal/server/repositories/repomanager"
)

// LoginResult bundles the minted session token with the public part of the
// authenticated identity.
type LoginResult struct {
	Token string
	User  *models.User
}

// AuthService verifies credentials, mints session tokens, and gates
// leader-only operations.
type AuthService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewAuthService constructs an AuthService using repositories and server
// config. The signing secret lives here, never in package state, so tests
// can run with distinct secrets.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Login verifies username (case-insensitive) and password against the stored
// bcrypt hash and, on success, returns a signed session token together with
// the identity. Unknown users yield common.ErrUserNotFound, a wrong password
// common.ErrInvalidPassword.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, common.ErrInternal
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, common.ErrInvalidPassword
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrInternal
	}

	return &LoginResult{Token: token, User: user}, nil
}

// RequireLeader re-reads the identity's current leader flag from the store
// and returns common.ErrForbidden when the flag is false or the identity no
// longer exists. The flag is deliberately never taken from token claims, so
// demotions take effect without waiting for token expiry.
func (s *AuthService) RequireLeader(ctx context.Context, userID int64) error {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrForbidden
		}
		return common.ErrInternal
	}

	if !user.IsLeader {
		return common.ErrForbidden
	}

	return nil
}
