package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/godsapp/freizeit-server/internal/common"
	"github.com/godsapp/freizeit-server/internal/server/auth"
)

func TestUserCreate_HashesPassword(t *testing.T) {
	users := &fakeUsersRepo{}
	s := NewUserService(nil, &fakeRepoManager{users: users})

	got, err := s.Create(context.Background(), CreateUserInput{
		Username:  "bob",
		Password:  "plaintext",
		IsLeader:  false,
		CreatedBy: 7,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.Password == "plaintext" {
		t.Fatal("password stored in plaintext")
	}
	if !auth.CheckPassword(got.Password, "plaintext") {
		t.Fatal("stored hash does not match original password")
	}
	if got.CreatedBy == nil || *got.CreatedBy != 7 {
		t.Fatalf("unexpected CreatedBy: %v", got.CreatedBy)
	}
}

func TestBootstrapLeader_CreatesFirstLeader(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	users := &fakeUsersRepo{leaderCount: 0}
	s := NewUserService(db, &fakeRepoManager{users: users})

	got, err := s.BootstrapLeader(context.Background(), "admin", "secret")
	if err != nil {
		t.Fatalf("BootstrapLeader error: %v", err)
	}
	if !got.IsLeader {
		t.Fatal("bootstrapped account is not a leader")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBootstrapLeader_RefusesWhenLeaderExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	users := &fakeUsersRepo{leaderCount: 1}
	s := NewUserService(db, &fakeRepoManager{users: users})

	_, err = s.BootstrapLeader(context.Background(), "admin", "secret")
	if !errors.Is(err, common.ErrLeaderExists) {
		t.Fatalf("want common.ErrLeaderExists, got %v", err)
	}
	if users.createdIn != nil {
		t.Fatal("no user must be created when a leader exists")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
