package domain

import (
	"context"
	"time"
)

// Cinema is a named venue located in a City.
// swagger:model Cinema
type Cinema struct {
	ID         string    `json:"id"`
	Identifier string    `json:"identifier"`
	Name       string    `json:"name"`
	CityID     string    `json:"city_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewCinema returns a new Cinema. ID and Identifier are set by the repository on create.
func NewCinema(name, cityID string, createdAt, updatedAt time.Time) *Cinema {
	return &Cinema{
		Name:      name,
		CityID:    cityID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// CinemaRepository defines the interface for cinema storage.
type CinemaRepository interface {
	Create(ctx context.Context, cinema *Cinema) error
	GetByID(ctx context.Context, id string) (*Cinema, error)
	List(ctx context.Context) ([]*Cinema, error)
	Update(ctx context.Context, cinema *Cinema) error
	DeleteMany(ctx context.Context, ids []string) error
}
