package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/godsapp/freizeit-server/internal/server/models"
	"github.com/godsapp/freizeit-server/internal/server/repositories/repomanager"
)

// ParticipantService manages participant rows and the records hanging off
// them (guardian contacts, leader metadata).
type ParticipantService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewParticipantService(db *sql.DB, m repomanager.RepositoryManager) *ParticipantService {
	return &ParticipantService{db: db, repomanager: m}
}

// AddParticipant links a user to a trip.
func (s *ParticipantService) AddParticipant(ctx context.Context, p *models.Participant) (*models.Participant, error) {
	repo := s.repomanager.Participants(s.db)

	p, err := repo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("error adding participant: %w", err)
	}
	return p, nil
}

// AddGuardian attaches a guardian contact to a participant row.
func (s *ParticipantService) AddGuardian(ctx context.Context, g *models.Guardian) (*models.Guardian, error) {
	repo := s.repomanager.Guardians(s.db)

	g, err := repo.Create(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("error adding guardian: %w", err)
	}
	return g, nil
}

// AddLeaderInfo attaches church and occupation metadata to a leader
// participant row.
func (s *ParticipantService) AddLeaderInfo(ctx context.Context, li *models.LeaderInfo) (*models.LeaderInfo, error) {
	repo := s.repomanager.LeaderInfo(s.db)

	li, err := repo.Create(ctx, li)
	if err != nil {
		return nil, fmt.Errorf("error adding leader info: %w", err)
	}
	return li, nil
}
