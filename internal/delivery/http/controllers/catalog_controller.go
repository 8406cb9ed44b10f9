package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"cinephoria/internal/delivery/http/helpers"
	"cinephoria/internal/domain"
)

// HallRequestBody is the request body for POST /halls and PUT /halls/{hallID}.
type HallRequestBody struct {
	HallNumber     int    `json:"hall_number"`
	Type           string `json:"type"`
	Capacity       int    `json:"capacity"`
	DisabledPlaces int    `json:"disabled_places"`
}

// Validate implements Validator.
func (b HallRequestBody) Validate() []string {
	var errs []string
	if b.HallNumber <= 0 {
		errs = append(errs, "hall_number must be positive")
	}
	if b.Type == "" {
		errs = append(errs, "type is required")
	}
	if b.Capacity <= 0 {
		errs = append(errs, "capacity must be positive")
	}
	if b.DisabledPlaces < 0 || b.DisabledPlaces > b.Capacity {
		errs = append(errs, "disabled_places must be between 0 and capacity")
	}
	return errs
}

// CinemaRequestBody is the request body for POST /cinemas and PUT /cinemas/{cinemaID}.
type CinemaRequestBody struct {
	Name   string `json:"name"`
	CityID string `json:"city_id"`
}

// Validate implements Validator.
func (b CinemaRequestBody) Validate() []string {
	var errs []string
	if b.Name == "" {
		errs = append(errs, "name is required")
	}
	if b.CityID == "" {
		errs = append(errs, "city_id is required")
	}
	return errs
}

// CityRequestBody is the request body for POST /cities and PUT /cities/{cityID}.
type CityRequestBody struct {
	Name       string `json:"name"`
	PostalCode int    `json:"postal_code"`
	Country    string `json:"country"`
	Region     string `json:"region"`
}

// Validate implements Validator.
func (b CityRequestBody) Validate() []string {
	var errs []string
	if b.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// MovieRequestBody is the request body for POST /movies and PUT /movies/{movieID}.
type MovieRequestBody struct {
	Title    string `json:"title"`
	Duration int    `json:"duration"`
	AgeLimit int    `json:"age_limit"`
	Genres   string `json:"genres"`
	Favorite bool   `json:"favorite"`
	Active   *bool  `json:"active"`
}

// Validate implements Validator.
func (b MovieRequestBody) Validate() []string {
	var errs []string
	if b.Title == "" {
		errs = append(errs, "title is required")
	}
	if b.Duration <= 0 {
		errs = append(errs, "duration must be positive")
	}
	if b.AgeLimit < 0 {
		errs = append(errs, "age_limit must not be negative")
	}
	return errs
}

func (b MovieRequestBody) active() bool {
	if b.Active == nil {
		return true
	}
	return *b.Active
}

// DeleteManyRequest is the shared request body for batch catalog deletes.
type DeleteManyRequest struct {
	IDs []string `json:"ids"`
}

// Validate implements Validator.
func (d DeleteManyRequest) Validate() []string {
	if len(d.IDs) == 0 {
		return []string{"ids must not be empty"}
	}
	return nil
}

// CatalogController exposes the administrative CRUD surface over the resource
// catalog: halls, cinemas, cities, and movies.
type CatalogController struct {
	Logger  *slog.Logger
	Service domain.CatalogService
}

func NewCatalogController(logger *slog.Logger, svc domain.CatalogService) *CatalogController {
	return &CatalogController{
		Logger:  logger,
		Service: svc,
	}
}

// writeCatalogError maps catalog failures onto the envelope: invariant
// violations are 400s, unknown ids 404s, deletes blocked by referencing
// sessions 409s.
func (c *CatalogController) writeCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "resource not found")
	case errors.Is(err, domain.ErrResourceInUse):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// ListHalls godoc
// @Summary List halls
// @Tags catalog
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains halls"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /halls [get]
func (c *CatalogController) ListHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := c.Service.ListHalls(r.Context())
	if err != nil {
		c.writeCatalogError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, halls)
}

// CreateHall godoc
// @Summary Create a hall
// @Tags catalog
// @Accept json
// @Produce json
// @Param hall body HallRequestBody true "Hall data"
// @Success 201 {object} helpers.APIResponse "data contains the created hall"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /halls [post]
func (c *CatalogController) CreateHall(w http.ResponseWriter, r *http.Request) {
	var req HallRequestBody
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	now := time.Now()
	hall := domain.NewHall(req.HallNumber, req.Type, req.Capacity, req.DisabledPlaces, now, now)
	if err := c.Service.CreateHall(r.Context(), hall); err != nil {
		c.writeCatalogError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, hall)
}

// UpdateHall godoc
// @Summary Update a hall
// @Tags catalog
// @Accept json
// @Produce json
// @Param hallID path string true "Hall ID"
// @Param hall body HallRequestBody true "Hall data"
// @Success 200 {object} helpers.APIResponse "data contains the updated hall"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /halls/{hallID} [put]
func (c *CatalogController) UpdateHall(w http.ResponseWriter, r *http.Request) {
	hallID := r.PathValue("hallID")
	if hallID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing hallID")
		return
	}
	var req HallRequestBody
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	hall := &domain.Hall{
		ID:             hallID,
		HallNumber:     req.HallNumber,
		Type:           req.Type,
		Capacity:       req.Capacity,
		DisabledPlaces: req.DisabledPlaces,
	}
	updated, err := c.Service.UpdateHall(r.Context(), hall)
	if err != nil {
		c.writeCatalogError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeleteHalls godoc
// @Summary Delete halls in batch
// @Tags catalog
// @Accept json
// @Produce json
// @Param ids body DeleteManyRequest true "Hall ids to remove"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (sessions reference a hall)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /halls [delete]
func (c *CatalogController) DeleteHalls(w http.ResponseWriter, r *http.Request) {
	var req DeleteManyRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.DeleteHalls(r.Context(), req.IDs); err != nil {
		c.writeCatalogError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListCinemas godoc
// @Summary List cinemas
// @Tags catalog
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains cinemas"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /cinemas [get]
func (c *CatalogController) ListCinemas(w http.ResponseWriter, r *http.Request) {
	cinemas, err := c.Service.ListCinemas(r.Context())
	if err != nil {
		c.writeCatalogError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, cinemas)
}

// CreateCinema godoc
// @Summary Create a cinema
// @Tags catalog
// @Accept json
// @Produce json
// @Param cinema body CinemaRequestBody true "Cinema data"
// @Success 201 {object} helpers.APIResponse "data contains the created cinema"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (unknown city included)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /cinemas [post]
func (c *CatalogController) CreateCinema(w http.ResponseWriter, r *http.Request) {
	var req CinemaRequestBody
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	now := time.Now()
	cinema := domain.NewCinema(req.Name, req.CityID, now, now)
	if err := c.Service.CreateCinema(r.Context(), cinema); err != nil {
		c.writeCatalogError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, cinema)
}

// UpdateCinema godoc
// @Summary Update a cinema
// @Tags catalog
// @Accept json
// @Produce json
// @Param cinemaID path string true "Cinema ID"
// @Param cinema body CinemaRequestBody true "Cinema data"
// @Success 200 {object} helpers.APIResponse "data contains the updated cinema"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /cinemas/{cinemaID} [put]
func (c *CatalogController) UpdateCinema(w http.ResponseWriter, r *http.Request) {
	cinemaID := r.PathValue("cinemaID")
	if cinemaID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing cinemaID")
		return
	}
	var req CinemaRequestBody
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	cinema := &domain.Cinema{ID: cinemaID, Name: req.Name, CityID: req.CityID}
	updated, err := c.Service.UpdateCinema(r.Context(), cinema)
	if err != nil {
		c.writeCatalogError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeleteCinemas godoc
// @Summary Delete cinemas in batch
// @Tags catalog
// @Accept json
// @Produce json
// @Param ids body DeleteManyRequest true "Cinema ids to remove"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /cinemas [delete]
func (c *CatalogController) DeleteCinemas(w http.ResponseWriter, r *http.Request) {
	var req DeleteManyRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.DeleteCinemas(r.Context(), req.IDs); err != nil {
		c.writeCatalogError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListCities godoc
// @Summary List cities
// @Tags catalog
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains cities"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /cities [get]
func (c *CatalogController) ListCities(w http.ResponseWriter, r *http.Request) {
	cities, err := c.Service.ListCities(r.Context())
	if err != nil {
		c.writeCatalogError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, cities)
}

// CreateCity godoc
// @Summary Create a city
// @Tags catalog
// @Accept json
// @Produce json
// @Param city body CityRequestBody true "City data"
// @Success 201 {object} helpers.APIResponse "data contains the created city"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /cities [post]
func (c *CatalogController) CreateCity(w http.ResponseWriter, r *http.Request) {
	var req CityRequestBody
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	now := time.Now()
	city := domain.NewCity(req.Name, req.PostalCode, req.Country, req.Region, now, now)
	if err := c.Service.CreateCity(r.Context(), city); err != nil {
		c.writeCatalogError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, city)
}

// UpdateCity godoc
// @Summary Update a city
// @Tags catalog
// @Accept json
// @Produce json
// @Param cityID path string true "City ID"
// @Param city body CityRequestBody true "City data"
// @Success 200 {object} helpers.APIResponse "data contains the updated city"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /cities/{cityID} [put]
func (c *CatalogController) UpdateCity(w http.ResponseWriter, r *http.Request) {
	cityID := r.PathValue("cityID")
	if cityID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing cityID")
		return
	}
	var req CityRequestBody
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	city := &domain.City{
		ID:         cityID,
		Name:       req.Name,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Region:     req.Region,
	}
	updated, err := c.Service.UpdateCity(r.Context(), city)
	if err != nil {
		c.writeCatalogError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeleteCities godoc
// @Summary Delete cities in batch
// @Tags catalog
// @Accept json
// @Produce json
// @Param ids body DeleteManyRequest true "City ids to remove"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /cities [delete]
func (c *CatalogController) DeleteCities(w http.ResponseWriter, r *http.Request) {
	var req DeleteManyRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.DeleteCities(r.Context(), req.IDs); err != nil {
		c.writeCatalogError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListMovies godoc
// @Summary List movies
// @Tags catalog
// @Produce json
// @Param active query bool false "Only active movies"
// @Success 200 {object} helpers.APIResponse "data contains movies"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /movies [get]
func (c *CatalogController) ListMovies(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	movies, err := c.Service.ListMovies(r.Context(), activeOnly)
	if err != nil {
		c.writeCatalogError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, movies)
}

// CreateMovie godoc
// @Summary Create a movie
// @Tags catalog
// @Accept json
// @Produce json
// @Param movie body MovieRequestBody true "Movie data"
// @Success 201 {object} helpers.APIResponse "data contains the created movie"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /movies [post]
func (c *CatalogController) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req MovieRequestBody
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	now := time.Now()
	movie := domain.NewMovie(req.Title, req.Duration, req.AgeLimit, req.Genres, req.Favorite, req.active(), now, now)
	if err := c.Service.CreateMovie(r.Context(), movie); err != nil {
		c.writeCatalogError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, movie)
}

// UpdateMovie godoc
// @Summary Update a movie
// @Tags catalog
// @Accept json
// @Produce json
// @Param movieID path string true "Movie ID"
// @Param movie body MovieRequestBody true "Movie data"
// @Success 200 {object} helpers.APIResponse "data contains the updated movie"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /movies/{movieID} [put]
func (c *CatalogController) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID := r.PathValue("movieID")
	if movieID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing movieID")
		return
	}
	var req MovieRequestBody
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	movie := &domain.Movie{
		ID:       movieID,
		Title:    req.Title,
		Duration: req.Duration,
		AgeLimit: req.AgeLimit,
		Genres:   req.Genres,
		Favorite: req.Favorite,
		Active:   req.active(),
	}
	updated, err := c.Service.UpdateMovie(r.Context(), movie)
	if err != nil {
		c.writeCatalogError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeleteMovies godoc
// @Summary Delete movies in batch
// @Tags catalog
// @Accept json
// @Produce json
// @Param ids body DeleteManyRequest true "Movie ids to remove"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /movies [delete]
func (c *CatalogController) DeleteMovies(w http.ResponseWriter, r *http.Request) {
	var req DeleteManyRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.DeleteMovies(r.Context(), req.IDs); err != nil {
		c.writeCatalogError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}
