package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinephoria/internal/delivery/http/helpers"
	"cinephoria/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalogService implements domain.CatalogService for handler tests. Only
// the fields a test sets are consulted.
type fakeCatalogService struct {
	halls   []*domain.Hall
	cinemas []*domain.Cinema
	cities  []*domain.City
	movies  []*domain.Movie

	createErr error
	updateErr error
	deleteErr error

	lastActiveOnly bool
	lastDeletedIDs []string
}

func (f *fakeCatalogService) ListHalls(ctx context.Context) ([]*domain.Hall, error) {
	return f.halls, nil
}

func (f *fakeCatalogService) ListCinemas(ctx context.Context) ([]*domain.Cinema, error) {
	return f.cinemas, nil
}

func (f *fakeCatalogService) ListCities(ctx context.Context) ([]*domain.City, error) {
	return f.cities, nil
}

func (f *fakeCatalogService) ListMovies(ctx context.Context, activeOnly bool) ([]*domain.Movie, error) {
	f.lastActiveOnly = activeOnly
	var out []*domain.Movie
	for _, m := range f.movies {
		if activeOnly && !m.Active {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeCatalogService) ListSessionsForHall(ctx context.Context, hallID string) ([]*domain.Session, error) {
	return nil, nil
}

func (f *fakeCatalogService) GetHall(ctx context.Context, id string) (*domain.Hall, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeCatalogService) GetCinema(ctx context.Context, id string) (*domain.Cinema, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeCatalogService) GetMovie(ctx context.Context, id string) (*domain.Movie, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeCatalogService) GetCity(ctx context.Context, id string) (*domain.City, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeCatalogService) CreateHall(ctx context.Context, hall *domain.Hall) error {
	if f.createErr != nil {
		return f.createErr
	}
	hall.ID = "hall-created"
	hall.Identifier = "HALL-0001"
	return nil
}

func (f *fakeCatalogService) UpdateHall(ctx context.Context, hall *domain.Hall) (*domain.Hall, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return hall, nil
}

func (f *fakeCatalogService) DeleteHalls(ctx context.Context, ids []string) error {
	f.lastDeletedIDs = ids
	return f.deleteErr
}

func (f *fakeCatalogService) CreateCinema(ctx context.Context, cinema *domain.Cinema) error {
	if f.createErr != nil {
		return f.createErr
	}
	cinema.ID = "cin-created"
	return nil
}

func (f *fakeCatalogService) UpdateCinema(ctx context.Context, cinema *domain.Cinema) (*domain.Cinema, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return cinema, nil
}

func (f *fakeCatalogService) DeleteCinemas(ctx context.Context, ids []string) error {
	f.lastDeletedIDs = ids
	return f.deleteErr
}

func (f *fakeCatalogService) CreateCity(ctx context.Context, city *domain.City) error {
	if f.createErr != nil {
		return f.createErr
	}
	city.ID = "city-created"
	return nil
}

func (f *fakeCatalogService) UpdateCity(ctx context.Context, city *domain.City) (*domain.City, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return city, nil
}

func (f *fakeCatalogService) DeleteCities(ctx context.Context, ids []string) error {
	f.lastDeletedIDs = ids
	return f.deleteErr
}

func (f *fakeCatalogService) CreateMovie(ctx context.Context, movie *domain.Movie) error {
	if f.createErr != nil {
		return f.createErr
	}
	movie.ID = "mv-created"
	return nil
}

func (f *fakeCatalogService) UpdateMovie(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return movie, nil
}

func (f *fakeCatalogService) DeleteMovies(ctx context.Context, ids []string) error {
	f.lastDeletedIDs = ids
	return f.deleteErr
}

func TestCatalogController_CreateHall(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		fakeErr     error
		wantStatus  int
		wantErrCode string
	}{
		{
			name:       "success",
			body:       `{"hall_number": 1, "type": "standard", "capacity": 120, "disabled_places": 6}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:        "disabled places above capacity",
			body:        `{"hall_number": 1, "type": "standard", "capacity": 10, "disabled_places": 11}`,
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "service rejects input",
			body:        `{"hall_number": 1, "type": "standard", "capacity": 120, "disabled_places": 6}`,
			fakeErr:     domain.ErrInvalidInput,
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCatalogService{createErr: tt.fakeErr}
			ctrl := NewCatalogController(testLogger, fake)

			req := httptest.NewRequest(http.MethodPost, "/halls", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			ctrl.CreateHall(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeEnvelope(t, rec.Body)
			if tt.wantErrCode != "" {
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantErrCode, resp.Error.Code)
				return
			}
			require.Nil(t, resp.Error)
			raw, err := json.Marshal(resp.Data)
			require.NoError(t, err)
			var got domain.Hall
			require.NoError(t, json.Unmarshal(raw, &got))
			assert.Equal(t, "HALL-0001", got.Identifier)
		})
	}
}

func TestCatalogController_ListMovies(t *testing.T) {
	fake := &fakeCatalogService{movies: []*domain.Movie{
		{ID: "m1", Title: "Alien", Active: true},
		{ID: "m2", Title: "Archived", Active: false},
	}}
	ctrl := NewCatalogController(testLogger, fake)

	req := httptest.NewRequest(http.MethodGet, "/movies?active=true", nil)
	rec := httptest.NewRecorder()
	ctrl.ListMovies(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, fake.lastActiveOnly)
	var resp struct {
		Data []*domain.Movie `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "m1", resp.Data[0].ID)
}

func TestCatalogController_UpdateCity(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		fake := &fakeCatalogService{updateErr: domain.ErrNotFound}
		ctrl := NewCatalogController(testLogger, fake)

		req := httptest.NewRequest(http.MethodPut, "http://test/cities/missing", bytes.NewBufferString(`{"name": "Bordeaux", "postal_code": 33000, "country": "France"}`))
		req.SetPathValue("cityID", "missing")
		rec := httptest.NewRecorder()
		ctrl.UpdateCity(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		fake := &fakeCatalogService{}
		ctrl := NewCatalogController(testLogger, fake)

		req := httptest.NewRequest(http.MethodPut, "http://test/cities/city-1", bytes.NewBufferString(`{"postal_code": 33000}`))
		req.SetPathValue("cityID", "city-1")
		rec := httptest.NewRecorder()
		ctrl.UpdateCity(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCatalogController_DeleteHalls(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fakeErr    error
		wantStatus int
	}{
		{"success", `{"ids": ["h1"]}`, nil, http.StatusOK},
		{"empty batch", `{"ids": []}`, nil, http.StatusBadRequest},
		{"missing id", `{"ids": ["missing"]}`, domain.ErrNotFound, http.StatusNotFound},
		{"hall still referenced", `{"ids": ["h1"]}`, domain.ErrResourceInUse, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCatalogService{deleteErr: tt.fakeErr}
			ctrl := NewCatalogController(testLogger, fake)

			req := httptest.NewRequest(http.MethodDelete, "/halls", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			ctrl.DeleteHalls(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCatalogController_CreateMovieDefaultsActive(t *testing.T) {
	fake := &fakeCatalogService{}
	ctrl := NewCatalogController(testLogger, fake)

	req := httptest.NewRequest(http.MethodPost, "/movies", bytes.NewBufferString(`{"title": "Alien", "duration": 117, "age_limit": 12, "genres": "sci-fi"}`))
	rec := httptest.NewRecorder()
	ctrl.CreateMovie(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeEnvelope(t, rec.Body)
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var got domain.Movie
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.True(t, got.Active)
}
