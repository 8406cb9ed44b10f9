package domain

import (
	"context"
	"time"
)

// City is the administrative grouping a cinema belongs to.
// swagger:model City
type City struct {
	ID         string    `json:"id"`
	Identifier string    `json:"identifier"`
	Name       string    `json:"name"`
	PostalCode int       `json:"postal_code"`
	Country    string    `json:"country"`
	Region     string    `json:"region"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewCity returns a new City. ID and Identifier are set by the repository on create.
func NewCity(name string, postalCode int, country, region string, createdAt, updatedAt time.Time) *City {
	return &City{
		Name:       name,
		PostalCode: postalCode,
		Country:    country,
		Region:     region,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

// CityRepository defines the interface for city storage.
type CityRepository interface {
	Create(ctx context.Context, city *City) error
	GetByID(ctx context.Context, id string) (*City, error)
	List(ctx context.Context) ([]*City, error)
	Update(ctx context.Context, city *City) error
	DeleteMany(ctx context.Context, ids []string) error
}
