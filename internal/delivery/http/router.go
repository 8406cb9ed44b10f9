package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"cinephoria/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	catalogController *controllers.CatalogController,
	sessionController *controllers.SessionController,
	occupancyController *controllers.OccupancyController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Catalog
	mux.HandleFunc("GET /halls", catalogController.ListHalls)
	mux.HandleFunc("POST /halls", catalogController.CreateHall)
	mux.HandleFunc("PUT /halls/{hallID}", catalogController.UpdateHall)
	mux.HandleFunc("DELETE /halls", catalogController.DeleteHalls)

	mux.HandleFunc("GET /cinemas", catalogController.ListCinemas)
	mux.HandleFunc("POST /cinemas", catalogController.CreateCinema)
	mux.HandleFunc("PUT /cinemas/{cinemaID}", catalogController.UpdateCinema)
	mux.HandleFunc("DELETE /cinemas", catalogController.DeleteCinemas)

	mux.HandleFunc("GET /cities", catalogController.ListCities)
	mux.HandleFunc("POST /cities", catalogController.CreateCity)
	mux.HandleFunc("PUT /cities/{cityID}", catalogController.UpdateCity)
	mux.HandleFunc("DELETE /cities", catalogController.DeleteCities)

	mux.HandleFunc("GET /movies", catalogController.ListMovies)
	mux.HandleFunc("POST /movies", catalogController.CreateMovie)
	mux.HandleFunc("PUT /movies/{movieID}", catalogController.UpdateMovie)
	mux.HandleFunc("DELETE /movies", catalogController.DeleteMovies)

	// Scheduling
	mux.HandleFunc("GET /sessions", sessionController.ListSessions)
	mux.HandleFunc("POST /sessions", sessionController.CreateSession)
	mux.HandleFunc("GET /sessions/{sessionID}", sessionController.GetSession)
	mux.HandleFunc("PUT /sessions/{sessionID}", sessionController.UpdateSession)
	mux.HandleFunc("DELETE /sessions", sessionController.DeleteSessions)

	// Occupancy
	mux.HandleFunc("GET /occupancy/report", occupancyController.Report)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
