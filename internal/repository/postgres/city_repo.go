package postgres

import (
	"context"
	"database/sql"

	"cinephoria/internal/domain"
)

type CityRepository struct {
	DB *sql.DB
}

func NewCityRepository(db *sql.DB) domain.CityRepository {
	return &CityRepository{
		DB: db,
	}
}

func (r *CityRepository) Create(ctx context.Context, city *domain.City) error {
	query := `
		INSERT INTO cities (id, identifier, name, postal_code, country, region, created_at, updated_at)
		VALUES ($1, 'CITY-' || lpad(nextval('city_codes')::text, 4, '0'), $2, $3, $4, $5, $6, $7)
		RETURNING identifier
	`
	return r.DB.QueryRowContext(ctx, query,
		city.ID, city.Name, city.PostalCode, city.Country, city.Region, city.CreatedAt, city.UpdatedAt,
	).Scan(&city.Identifier)
}

func (r *CityRepository) GetByID(ctx context.Context, id string) (*domain.City, error) {
	query := `
		SELECT id, identifier, name, postal_code, country, region, created_at, updated_at
		FROM cities
		WHERE id = $1
	`
	city := &domain.City{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&city.ID, &city.Identifier, &city.Name, &city.PostalCode, &city.Country, &city.Region, &city.CreatedAt, &city.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return city, nil
}

func (r *CityRepository) List(ctx context.Context) ([]*domain.City, error) {
	query := `
		SELECT id, identifier, name, postal_code, country, region, created_at, updated_at
		FROM cities
		ORDER BY name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var cities []*domain.City
	for rows.Next() {
		city := &domain.City{}
		if err := rows.Scan(&city.ID, &city.Identifier, &city.Name, &city.PostalCode, &city.Country, &city.Region, &city.CreatedAt, &city.UpdatedAt); err != nil {
			return nil, err
		}
		cities = append(cities, city)
	}
	return cities, rows.Err()
}

func (r *CityRepository) Update(ctx context.Context, city *domain.City) error {
	query := `
		UPDATE cities
		SET name = $2, postal_code = $3, country = $4, region = $5, updated_at = $6
		WHERE id = $1
		RETURNING identifier, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		city.ID, city.Name, city.PostalCode, city.Country, city.Region, city.UpdatedAt,
	).Scan(&city.Identifier, &city.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *CityRepository) DeleteMany(ctx context.Context, ids []string) error {
	return deleteManyByID(ctx, r.DB, "cities", ids)
}
