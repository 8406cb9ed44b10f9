package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cinephoria/internal/domain"

	"github.com/google/uuid"
)

// Cache keys for catalog entity lists. Session reads are never cached: the
// scheduler must see the latest committed state for every conflict check.
const (
	cacheKeyHalls   = "catalog:halls"
	cacheKeyCinemas = "catalog:cinemas"
	cacheKeyCities  = "catalog:cities"
	cacheKeyMovies  = "catalog:movies"

	catalogCacheTTL = 60 * time.Second
)

// CatalogCache is the minimal cache contract the catalog needs. Implementations
// must tolerate a missing backend (see adapters/cache.Noop); cache failures are
// logged and never fail a read.
type CatalogCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type catalogService struct {
	hallRepo       domain.HallRepository
	cinemaRepo     domain.CinemaRepository
	cityRepo       domain.CityRepository
	movieRepo      domain.MovieRepository
	sessionRepo    domain.SessionRepository
	cache          CatalogCache
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewCatalogService(
	hallRepo domain.HallRepository,
	cinemaRepo domain.CinemaRepository,
	cityRepo domain.CityRepository,
	movieRepo domain.MovieRepository,
	sessionRepo domain.SessionRepository,
	cache CatalogCache,
	logger *slog.Logger,
	timeout time.Duration,
) domain.CatalogService {
	return &catalogService{
		hallRepo:       hallRepo,
		cinemaRepo:     cinemaRepo,
		cityRepo:       cityRepo,
		movieRepo:      movieRepo,
		sessionRepo:    sessionRepo,
		cache:          cache,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *catalogService) ListHalls(ctx context.Context) ([]*domain.Hall, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var cached []*domain.Hall
	if hit := s.cacheGet(ctx, cacheKeyHalls, &cached); hit {
		return cached, nil
	}
	halls, err := s.hallRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list halls: %w", err)
	}
	if halls == nil {
		halls = []*domain.Hall{}
	}
	s.cacheSet(ctx, cacheKeyHalls, halls)
	return halls, nil
}

func (s *catalogService) ListCinemas(ctx context.Context) ([]*domain.Cinema, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var cached []*domain.Cinema
	if hit := s.cacheGet(ctx, cacheKeyCinemas, &cached); hit {
		return cached, nil
	}
	cinemas, err := s.cinemaRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cinemas: %w", err)
	}
	if cinemas == nil {
		cinemas = []*domain.Cinema{}
	}
	s.cacheSet(ctx, cacheKeyCinemas, cinemas)
	return cinemas, nil
}

func (s *catalogService) ListCities(ctx context.Context) ([]*domain.City, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var cached []*domain.City
	if hit := s.cacheGet(ctx, cacheKeyCities, &cached); hit {
		return cached, nil
	}
	cities, err := s.cityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	if cities == nil {
		cities = []*domain.City{}
	}
	s.cacheSet(ctx, cacheKeyCities, cities)
	return cities, nil
}

// ListMovies returns all movies, or only active ones when activeOnly is set.
// Only the full list is cached; the active filter is applied on top so both
// callers share one cache entry.
func (s *catalogService) ListMovies(ctx context.Context, activeOnly bool) ([]*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var movies []*domain.Movie
	if hit := s.cacheGet(ctx, cacheKeyMovies, &movies); !hit {
		var err error
		movies, err = s.movieRepo.List(ctx, false)
		if err != nil {
			return nil, fmt.Errorf("list movies: %w", err)
		}
		if movies == nil {
			movies = []*domain.Movie{}
		}
		s.cacheSet(ctx, cacheKeyMovies, movies)
	}
	if !activeOnly {
		return movies, nil
	}
	active := make([]*domain.Movie, 0, len(movies))
	for _, m := range movies {
		if m.Active {
			active = append(active, m)
		}
	}
	return active, nil
}

func (s *catalogService) ListSessionsForHall(ctx context.Context, hallID string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	sessions, err := s.sessionRepo.ListByHall(ctx, hallID)
	if err != nil {
		return nil, fmt.Errorf("list sessions for hall: %w", err)
	}
	return sessions, nil
}

func (s *catalogService) GetHall(ctx context.Context, id string) (*domain.Hall, error) {
	return s.hallRepo.GetByID(ctx, id)
}

func (s *catalogService) GetCinema(ctx context.Context, id string) (*domain.Cinema, error) {
	return s.cinemaRepo.GetByID(ctx, id)
}

func (s *catalogService) GetMovie(ctx context.Context, id string) (*domain.Movie, error) {
	return s.movieRepo.GetByID(ctx, id)
}

func (s *catalogService) GetCity(ctx context.Context, id string) (*domain.City, error) {
	return s.cityRepo.GetByID(ctx, id)
}

func validateHall(hall *domain.Hall) error {
	if hall.HallNumber <= 0 {
		return fmt.Errorf("%w: hall number must be positive", domain.ErrInvalidInput)
	}
	if hall.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", domain.ErrInvalidInput)
	}
	if hall.DisabledPlaces < 0 || hall.DisabledPlaces > hall.Capacity {
		return fmt.Errorf("%w: disabled places must be between 0 and capacity", domain.ErrInvalidInput)
	}
	return nil
}

func (s *catalogService) CreateHall(ctx context.Context, hall *domain.Hall) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateHall(hall); err != nil {
		return err
	}
	hall.ID = uuid.NewString()
	now := time.Now()
	hall.CreatedAt = now
	hall.UpdatedAt = now
	if err := s.hallRepo.Create(ctx, hall); err != nil {
		return fmt.Errorf("create hall: %w", err)
	}
	s.cacheInvalidate(ctx, cacheKeyHalls)
	return nil
}

func (s *catalogService) UpdateHall(ctx context.Context, hall *domain.Hall) (*domain.Hall, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateHall(hall); err != nil {
		return nil, err
	}
	hall.UpdatedAt = time.Now()
	if err := s.hallRepo.Update(ctx, hall); err != nil {
		return nil, err
	}
	s.cacheInvalidate(ctx, cacheKeyHalls)
	return hall, nil
}

func (s *catalogService) DeleteHalls(ctx context.Context, ids []string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.hallRepo.DeleteMany(ctx, ids); err != nil {
		return err
	}
	s.cacheInvalidate(ctx, cacheKeyHalls)
	return nil
}

func (s *catalogService) CreateCinema(ctx context.Context, cinema *domain.Cinema) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.cityRepo.GetByID(ctx, cinema.CityID); err != nil {
		if err == domain.ErrNotFound {
			return fmt.Errorf("%w: city %q does not exist", domain.ErrInvalidInput, cinema.CityID)
		}
		return fmt.Errorf("resolve city: %w", err)
	}
	cinema.ID = uuid.NewString()
	now := time.Now()
	cinema.CreatedAt = now
	cinema.UpdatedAt = now
	if err := s.cinemaRepo.Create(ctx, cinema); err != nil {
		return fmt.Errorf("create cinema: %w", err)
	}
	s.cacheInvalidate(ctx, cacheKeyCinemas)
	return nil
}

func (s *catalogService) UpdateCinema(ctx context.Context, cinema *domain.Cinema) (*domain.Cinema, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.cityRepo.GetByID(ctx, cinema.CityID); err != nil {
		if err == domain.ErrNotFound {
			return nil, fmt.Errorf("%w: city %q does not exist", domain.ErrInvalidInput, cinema.CityID)
		}
		return nil, fmt.Errorf("resolve city: %w", err)
	}
	cinema.UpdatedAt = time.Now()
	if err := s.cinemaRepo.Update(ctx, cinema); err != nil {
		return nil, err
	}
	s.cacheInvalidate(ctx, cacheKeyCinemas)
	return cinema, nil
}

func (s *catalogService) DeleteCinemas(ctx context.Context, ids []string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.cinemaRepo.DeleteMany(ctx, ids); err != nil {
		return err
	}
	s.cacheInvalidate(ctx, cacheKeyCinemas)
	return nil
}

func (s *catalogService) CreateCity(ctx context.Context, city *domain.City) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if city.Name == "" {
		return fmt.Errorf("%w: city name is required", domain.ErrInvalidInput)
	}
	city.ID = uuid.NewString()
	now := time.Now()
	city.CreatedAt = now
	city.UpdatedAt = now
	if err := s.cityRepo.Create(ctx, city); err != nil {
		return fmt.Errorf("create city: %w", err)
	}
	s.cacheInvalidate(ctx, cacheKeyCities)
	return nil
}

func (s *catalogService) UpdateCity(ctx context.Context, city *domain.City) (*domain.City, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if city.Name == "" {
		return nil, fmt.Errorf("%w: city name is required", domain.ErrInvalidInput)
	}
	city.UpdatedAt = time.Now()
	if err := s.cityRepo.Update(ctx, city); err != nil {
		return nil, err
	}
	s.cacheInvalidate(ctx, cacheKeyCities)
	return city, nil
}

func (s *catalogService) DeleteCities(ctx context.Context, ids []string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.cityRepo.DeleteMany(ctx, ids); err != nil {
		return err
	}
	s.cacheInvalidate(ctx, cacheKeyCities)
	return nil
}

func validateMovie(movie *domain.Movie) error {
	if movie.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if movie.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", domain.ErrInvalidInput)
	}
	if movie.AgeLimit < 0 {
		return fmt.Errorf("%w: age limit must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

func (s *catalogService) CreateMovie(ctx context.Context, movie *domain.Movie) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateMovie(movie); err != nil {
		return err
	}
	movie.ID = uuid.NewString()
	now := time.Now()
	movie.CreatedAt = now
	movie.UpdatedAt = now
	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return fmt.Errorf("create movie: %w", err)
	}
	s.cacheInvalidate(ctx, cacheKeyMovies)
	return nil
}

func (s *catalogService) UpdateMovie(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateMovie(movie); err != nil {
		return nil, err
	}
	movie.UpdatedAt = time.Now()
	if err := s.movieRepo.Update(ctx, movie); err != nil {
		return nil, err
	}
	s.cacheInvalidate(ctx, cacheKeyMovies)
	return movie, nil
}

func (s *catalogService) DeleteMovies(ctx context.Context, ids []string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.movieRepo.DeleteMany(ctx, ids); err != nil {
		return err
	}
	s.cacheInvalidate(ctx, cacheKeyMovies)
	return nil
}

func (s *catalogService) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.GetJSON(ctx, key, dest)
	if err != nil {
		s.logger.DebugContext(ctx, "catalog cache read failed", "key", key, "err", err)
		return false
	}
	return hit
}

func (s *catalogService) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, value, catalogCacheTTL); err != nil {
		s.logger.DebugContext(ctx, "catalog cache write failed", "key", key, "err", err)
	}
}

func (s *catalogService) cacheInvalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.DebugContext(ctx, "catalog cache invalidation failed", "keys", keys, "err", err)
	}
}
