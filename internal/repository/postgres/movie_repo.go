package postgres

import (
	"context"
	"database/sql"

	"cinephoria/internal/domain"
)

type MovieRepository struct {
	DB *sql.DB
}

func NewMovieRepository(db *sql.DB) domain.MovieRepository {
	return &MovieRepository{
		DB: db,
	}
}

func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `
		INSERT INTO movies (id, identifier, title, duration, age_limit, genres, favorite, active, created_at, updated_at)
		VALUES ($1, 'MOVIE-' || lpad(nextval('movie_codes')::text, 4, '0'), $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING identifier
	`
	return r.DB.QueryRowContext(ctx, query,
		movie.ID, movie.Title, movie.Duration, movie.AgeLimit, movie.Genres, movie.Favorite, movie.Active, movie.CreatedAt, movie.UpdatedAt,
	).Scan(&movie.Identifier)
}

func (r *MovieRepository) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	query := `
		SELECT id, identifier, title, duration, age_limit, genres, favorite, active, created_at, updated_at
		FROM movies
		WHERE id = $1
	`
	movie := &domain.Movie{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&movie.ID, &movie.Identifier, &movie.Title, &movie.Duration, &movie.AgeLimit, &movie.Genres, &movie.Favorite, &movie.Active, &movie.CreatedAt, &movie.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return movie, nil
}

func (r *MovieRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Movie, error) {
	query := `
		SELECT id, identifier, title, duration, age_limit, genres, favorite, active, created_at, updated_at
		FROM movies
	`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY title`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var movies []*domain.Movie
	for rows.Next() {
		movie := &domain.Movie{}
		if err := rows.Scan(&movie.ID, &movie.Identifier, &movie.Title, &movie.Duration, &movie.AgeLimit, &movie.Genres, &movie.Favorite, &movie.Active, &movie.CreatedAt, &movie.UpdatedAt); err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}
	return movies, rows.Err()
}

func (r *MovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, duration = $3, age_limit = $4, genres = $5, favorite = $6, active = $7, updated_at = $8
		WHERE id = $1
		RETURNING identifier, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		movie.ID, movie.Title, movie.Duration, movie.AgeLimit, movie.Genres, movie.Favorite, movie.Active, movie.UpdatedAt,
	).Scan(&movie.Identifier, &movie.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *MovieRepository) DeleteMany(ctx context.Context, ids []string) error {
	return deleteManyByID(ctx, r.DB, "movies", ids)
}
