package freizeiten

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

func (r *PostgresRepository) Create(ctx context.Context, f *models.Freizeit) (*models.Freizeit, error) {
	query := `
		INSERT INTO freizeiten (title, location, address_street, address_number, address_zip,
			address_city, address_country, start_date, end_date, theme, church_name,
			church_street, church_number, church_zip, church_city, church_country,
			logo_key, church_logo_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, '')::date, NULLIF($9, '')::date,
			$10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		f.Title, f.Location, f.AddressStreet, f.AddressNumber, f.AddressZip,
		f.AddressCity, f.AddressCountry, f.StartDate, f.EndDate, f.Theme,
		f.ChurchName, f.ChurchStreet, f.ChurchNumber, f.ChurchZip, f.ChurchCity,
		f.ChurchCountry, f.LogoKey, f.ChurchLogoKey).Scan(&f.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}
