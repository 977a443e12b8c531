// Package httpapi exposes the REST/JSON surface of the server: login, the
// leader-gated CRUD endpoints, and the access-request lifecycle.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/godsapp/freizeit-server/internal/logging"
	"github.com/godsapp/freizeit-server/internal/server/models"
	"github.com/godsapp/freizeit-server/internal/server/services"
)

// AuthService is the slice of the auth service used by the HTTP layer.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*services.LoginResult, error)
	RequireLeader(ctx context.Context, userID int64) error
}

type UserService interface {
	Create(ctx context.Context, in services.CreateUserInput) (*models.User, error)
}

type FreizeitService interface {
	Create(ctx context.Context, f *models.Freizeit, logo, churchLogo *services.Upload) (*models.Freizeit, error)
}

type ParticipantService interface {
	AddParticipant(ctx context.Context, p *models.Participant) (*models.Participant, error)
	AddGuardian(ctx context.Context, g *models.Guardian) (*models.Guardian, error)
	AddLeaderInfo(ctx context.Context, li *models.LeaderInfo) (*models.LeaderInfo, error)
}

type AccessRequestService interface {
	Create(ctx context.Context, userID, requestedBy int64) (*models.AccessRequest, error)
	ListPending(ctx context.Context) ([]models.AccessRequest, error)
	Approve(ctx context.Context, id int64) error
}

// Server wires the services to chi routes.
type Server struct {
	addr         string
	logger       logging.Logger
	auth         AuthService
	users        UserService
	freizeiten   FreizeitService
	participants ParticipantService
	access       AccessRequestService
	jwtSecret    []byte
}

func NewServer(addr string, l logging.Logger, auth AuthService, users UserService,
	freizeiten FreizeitService, participants ParticipantService,
	access AccessRequestService, secretKey string) *Server {
	return &Server{
		addr:         addr,
		logger:       l.With("module", "httpapi"),
		auth:         auth,
		users:        users,
		freizeiten:   freizeiten,
		participants: participants,
		access:       access,
		jwtSecret:    []byte(secretKey),
	}
}

// Router builds the route table. Anyone may log in or file an access
// request; everything else requires a valid bearer token and the leader
// role.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Post("/login", s.handleLogin)
	r.Post("/access_requests", s.handleCreateAccessRequest)

	r.Group(func(r chi.Router) {
		r.Use(s.authenticate)
		r.Use(s.requireLeader)

		r.Post("/users", s.handleCreateUser)
		r.Post("/freizeiten", s.handleCreateFreizeit)
		r.Post("/user_freizeiten", s.handleAddParticipant)
		r.Post("/guardians", s.handleAddGuardian)
		r.Post("/leader_info", s.handleAddLeaderInfo)
		r.Get("/access_requests", s.handleListAccessRequests)
		r.Put("/access_requests/{id}/approve", s.handleApproveAccessRequest)
	})

	return r
}

// Run serves until ctx is cancelled, then drains connections with a bounded
// shutdown.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
