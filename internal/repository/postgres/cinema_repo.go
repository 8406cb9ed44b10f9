package postgres

import (
	"context"
	"database/sql"

	"cinephoria/internal/domain"

	"github.com/lib/pq"
)

type CinemaRepository struct {
	DB *sql.DB
}

func NewCinemaRepository(db *sql.DB) domain.CinemaRepository {
	return &CinemaRepository{
		DB: db,
	}
}

func (r *CinemaRepository) Create(ctx context.Context, cinema *domain.Cinema) error {
	query := `
		INSERT INTO cinemas (id, identifier, name, city_id, created_at, updated_at)
		VALUES ($1, 'CINE-' || lpad(nextval('cinema_codes')::text, 4, '0'), $2, $3, $4, $5)
		RETURNING identifier
	`
	err := r.DB.QueryRowContext(ctx, query,
		cinema.ID, cinema.Name, cinema.CityID, cinema.CreatedAt, cinema.UpdatedAt,
	).Scan(&cinema.Identifier)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqForeignKeyViolation {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *CinemaRepository) GetByID(ctx context.Context, id string) (*domain.Cinema, error) {
	query := `
		SELECT id, identifier, name, city_id, created_at, updated_at
		FROM cinemas
		WHERE id = $1
	`
	cinema := &domain.Cinema{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&cinema.ID, &cinema.Identifier, &cinema.Name, &cinema.CityID, &cinema.CreatedAt, &cinema.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return cinema, nil
}

func (r *CinemaRepository) List(ctx context.Context) ([]*domain.Cinema, error) {
	query := `
		SELECT id, identifier, name, city_id, created_at, updated_at
		FROM cinemas
		ORDER BY name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var cinemas []*domain.Cinema
	for rows.Next() {
		cinema := &domain.Cinema{}
		if err := rows.Scan(&cinema.ID, &cinema.Identifier, &cinema.Name, &cinema.CityID, &cinema.CreatedAt, &cinema.UpdatedAt); err != nil {
			return nil, err
		}
		cinemas = append(cinemas, cinema)
	}
	return cinemas, rows.Err()
}

func (r *CinemaRepository) Update(ctx context.Context, cinema *domain.Cinema) error {
	query := `
		UPDATE cinemas
		SET name = $2, city_id = $3, updated_at = $4
		WHERE id = $1
		RETURNING identifier, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		cinema.ID, cinema.Name, cinema.CityID, cinema.UpdatedAt,
	).Scan(&cinema.Identifier, &cinema.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.ErrNotFound
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqForeignKeyViolation {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *CinemaRepository) DeleteMany(ctx context.Context, ids []string) error {
	return deleteManyByID(ctx, r.DB, "cinemas", ids)
}
