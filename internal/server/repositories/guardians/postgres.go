package guardians

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

func (r *PostgresRepository) Create(ctx context.Context, g *models.Guardian) (*models.Guardian, error) {
	query := `
		INSERT INTO guardians (user_freizeit_id, first_name, last_name, address_street,
			address_number, address_zip, address_city, address_country, phone, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		g.UserFreizeitID, g.FirstName, g.LastName, g.AddressStreet, g.AddressNumber,
		g.AddressZip, g.AddressCity, g.AddressCountry, g.Phone, g.Email).Scan(&g.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return g, nil
}
