package participants

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

func (r *PostgresRepository) Create(ctx context.Context, p *models.Participant) (*models.Participant, error) {
	query := `
		INSERT INTO user_freizeiten (user_id, freizeit_id, role, address_street, address_number,
			address_zip, address_city, address_country, phone, allergies, food_preferences,
			swimming_permission, medications, special_needs, motto)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		p.UserID, p.FreizeitID, p.Role, p.AddressStreet, p.AddressNumber,
		p.AddressZip, p.AddressCity, p.AddressCountry, p.Phone, p.Allergies,
		p.FoodPreferences, p.SwimmingPermission, p.Medications, p.SpecialNeeds,
		p.Motto).Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}
