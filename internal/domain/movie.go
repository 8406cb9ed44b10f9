package domain

import (
	"context"
	"time"
)

// Movie is a title available for scheduling. Duration is advisory metadata for
// the scheduler; no session-length rule is derived from it. Genres is a
// comma-joined tag list.
// swagger:model Movie
type Movie struct {
	ID         string    `json:"id"`
	Identifier string    `json:"identifier"`
	Title      string    `json:"title"`
	Duration   int       `json:"duration"`
	AgeLimit   int       `json:"age_limit"`
	Genres     string    `json:"genres"`
	Favorite   bool      `json:"favorite"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewMovie returns a new Movie. ID and Identifier are set by the repository on create.
func NewMovie(title string, duration, ageLimit int, genres string, favorite, active bool, createdAt, updatedAt time.Time) *Movie {
	return &Movie{
		Title:     title,
		Duration:  duration,
		AgeLimit:  ageLimit,
		Genres:    genres,
		Favorite:  favorite,
		Active:    active,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// MovieRepository defines the interface for movie storage.
type MovieRepository interface {
	Create(ctx context.Context, movie *Movie) error
	GetByID(ctx context.Context, id string) (*Movie, error)
	List(ctx context.Context, activeOnly bool) ([]*Movie, error)
	Update(ctx context.Context, movie *Movie) error
	DeleteMany(ctx context.Context, ids []string) error
}
