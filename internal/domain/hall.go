package domain

import (
	"context"
	"time"
)

// Hall represents a physical auditorium of a cinema.
// DisabledPlaces counts wheelchair-accessible seats and never exceeds Capacity.
// swagger:model Hall
type Hall struct {
	ID             string    `json:"id"`
	Identifier     string    `json:"identifier"`
	HallNumber     int       `json:"hall_number"`
	Type           string    `json:"type"`
	Capacity       int       `json:"capacity"`
	DisabledPlaces int       `json:"disabled_places"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewHall returns a new Hall. ID and Identifier are set by the repository on create.
func NewHall(hallNumber int, hallType string, capacity, disabledPlaces int, createdAt, updatedAt time.Time) *Hall {
	return &Hall{
		HallNumber:     hallNumber,
		Type:           hallType,
		Capacity:       capacity,
		DisabledPlaces: disabledPlaces,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

// HallRepository defines the interface for hall storage.
type HallRepository interface {
	Create(ctx context.Context, hall *Hall) error
	GetByID(ctx context.Context, id string) (*Hall, error)
	List(ctx context.Context) ([]*Hall, error)
	Update(ctx context.Context, hall *Hall) error
	DeleteMany(ctx context.Context, ids []string) error
}
