package services

import (
	"context"
	"database/sql"

	"github.com/godsapp/freizeit-server/internal/dbx"
	"github.com/godsapp/freizeit-server/internal/server/models"
	accessrepo "github.com/godsapp/freizeit-server/internal/server/repositories/accessrequests"
	freizeitrepo "github.com/godsapp/freizeit-server/internal/server/repositories/freizeiten"
	guardianrepo "github.com/godsapp/freizeit-server/internal/server/repositories/guardians"
	leaderinforepo "github.com/godsapp/freizeit-server/internal/server/repositories/leaderinfo"
	participantrepo "github.com/godsapp/freizeit-server/internal/server/repositories/participants"
	userrepo "github.com/godsapp/freizeit-server/internal/server/repositories/users"
)

type fakeUsersRepo struct {
	createOut *models.User
	createErr error
	createdIn *models.User

	byUsernameOut *models.User
	byUsernameErr error
	byUsernameArg string

	byIDOut *models.User
	byIDErr error

	leaderCount    int64
	leaderCountErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.createdIn = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	f.byUsernameArg = username
	if f.byUsernameErr != nil {
		return nil, f.byUsernameErr
	}
	return f.byUsernameOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeUsersRepo) CountLeaders(ctx context.Context) (int64, error) {
	return f.leaderCount, f.leaderCountErr
}

type fakeAccessRepo struct {
	createOut *models.AccessRequest
	createErr error

	listOut []models.AccessRequest
	listErr error

	updateErr    error
	updateCalls  int
	updateID     int64
	updateStatus models.AccessRequestStatus
}

func (f *fakeAccessRepo) Create(ctx context.Context, userID, requestedBy int64) (*models.AccessRequest, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return &models.AccessRequest{ID: 1, UserID: userID, RequestedBy: requestedBy, Status: models.AccessRequestPending}, nil
}

func (f *fakeAccessRepo) ListByStatus(ctx context.Context, status models.AccessRequestStatus) ([]models.AccessRequest, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeAccessRepo) UpdateStatus(ctx context.Context, id int64, status models.AccessRequestStatus) error {
	f.updateCalls++
	f.updateID = id
	f.updateStatus = status
	return f.updateErr
}

type fakeFreizeitRepo struct {
	createErr error
	createdIn *models.Freizeit
}

func (f *fakeFreizeitRepo) Create(ctx context.Context, fr *models.Freizeit) (*models.Freizeit, error) {
	f.createdIn = fr
	if f.createErr != nil {
		return nil, f.createErr
	}
	fr.ID = 1
	return fr, nil
}

type fakeParticipantRepo struct {
	createErr error
}

func (f *fakeParticipantRepo) Create(ctx context.Context, p *models.Participant) (*models.Participant, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	p.ID = 1
	return p, nil
}

type fakeGuardianRepo struct {
	createErr error
}

func (f *fakeGuardianRepo) Create(ctx context.Context, g *models.Guardian) (*models.Guardian, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	g.ID = 1
	return g, nil
}

type fakeLeaderInfoRepo struct {
	createErr error
}

func (f *fakeLeaderInfoRepo) Create(ctx context.Context, li *models.LeaderInfo) (*models.LeaderInfo, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	li.ID = 1
	return li, nil
}

type fakeRepoManager struct {
	users        *fakeUsersRepo
	access       *fakeAccessRepo
	freizeiten   *fakeFreizeitRepo
	participants *fakeParticipantRepo
	guardians    *fakeGuardianRepo
	leaderInfo   *fakeLeaderInfoRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(db dbx.DBTX) userrepo.Repository { return m.users }

func (m *fakeRepoManager) Freizeiten(db dbx.DBTX) freizeitrepo.Repository { return m.freizeiten }

func (m *fakeRepoManager) Participants(db dbx.DBTX) participantrepo.Repository {
	return m.participants
}

func (m *fakeRepoManager) Guardians(db dbx.DBTX) guardianrepo.Repository { return m.guardians }

func (m *fakeRepoManager) LeaderInfo(db dbx.DBTX) leaderinforepo.Repository { return m.leaderInfo }

func (m *fakeRepoManager) AccessRequests(db dbx.DBTX) accessrepo.Repository { return m.access }
