package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/godsapp/freizeit-server/internal/common"
	"github.com/godsapp/freizeit-server/internal/dbx"
	"github.com/godsapp/freizeit-server/internal/server/auth"
	"github.com/godsapp/freizeit-server/internal/server/models"
	"github.com/godsapp/freizeit-server/internal/server/repositories/repomanager"
)

// CreateUserInput carries the fields a leader supplies when creating an
// account. Password is the plaintext, hashed before storage.
type CreateUserInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	BirthDate string
	IsLeader  bool
	CreatedBy int64
}

// UserService creates accounts. Password hashes never leave this layer.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// Create inserts a new account with a bcrypt-hashed password.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	createdBy := in.CreatedBy
	user := &models.User{
		Username:  in.Username,
		Password:  hash,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		BirthDate: in.BirthDate,
		IsLeader:  in.IsLeader,
		CreatedBy: &createdBy,
	}

	repo := s.repomanager.Users(s.db)
	user, err = repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

// BootstrapLeader creates the very first leader account. The existence check
// and the insert run in one transaction so two concurrent bootstrap attempts
// cannot both succeed. Returns common.ErrLeaderExists when a leader account
// is already present.
func (s *UserService) BootstrapLeader(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	var user *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		n, err := repo.CountLeaders(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return common.ErrLeaderExists
		}

		user, err = repo.Create(ctx, &models.User{
			Username: username,
			Password: hash,
			IsLeader: true,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
