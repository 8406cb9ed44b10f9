package domain

import "context"

// ResourceCatalog is the read side the scheduler and analyzer consume: a
// consistent snapshot of bookable resources plus the existing session list for
// conflict checks. ListSessionsForHall must reflect the latest committed state;
// implementations may cache entity lists but never session reads.
type ResourceCatalog interface {
	ListHalls(ctx context.Context) ([]*Hall, error)
	ListCinemas(ctx context.Context) ([]*Cinema, error)
	ListCities(ctx context.Context) ([]*City, error)
	ListMovies(ctx context.Context, activeOnly bool) ([]*Movie, error)
	ListSessionsForHall(ctx context.Context, hallID string) ([]*Session, error)
	GetHall(ctx context.Context, id string) (*Hall, error)
	GetCinema(ctx context.Context, id string) (*Cinema, error)
	GetMovie(ctx context.Context, id string) (*Movie, error)
	GetCity(ctx context.Context, id string) (*City, error)
}

// CatalogService adds the administrative write side to the catalog: the CRUD
// operations the back office performs on halls, cinemas, cities, and movies.
// The catalog owns entity invariants (capacity bounds, resolvable city
// references) but never validates session bookings.
type CatalogService interface {
	ResourceCatalog

	CreateHall(ctx context.Context, hall *Hall) error
	UpdateHall(ctx context.Context, hall *Hall) (*Hall, error)
	DeleteHalls(ctx context.Context, ids []string) error

	CreateCinema(ctx context.Context, cinema *Cinema) error
	UpdateCinema(ctx context.Context, cinema *Cinema) (*Cinema, error)
	DeleteCinemas(ctx context.Context, ids []string) error

	CreateCity(ctx context.Context, city *City) error
	UpdateCity(ctx context.Context, city *City) (*City, error)
	DeleteCities(ctx context.Context, ids []string) error

	CreateMovie(ctx context.Context, movie *Movie) error
	UpdateMovie(ctx context.Context, movie *Movie) (*Movie, error)
	DeleteMovies(ctx context.Context, ids []string) error
}
