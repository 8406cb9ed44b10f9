package main

import (
	"database/sql"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	"cinephoria/config"
	_ "cinephoria/docs"
	"cinephoria/internal/adapters/cache"
	"cinephoria/internal/adapters/queue"
	delivery "cinephoria/internal/delivery/http"
	"cinephoria/internal/delivery/http/controllers"
	"cinephoria/internal/delivery/http/middleware"
	"cinephoria/internal/domain"
	"cinephoria/internal/repository/postgres"
	"cinephoria/internal/services"
)

// @title Cinephoria Scheduling API
// @version 1.0
// @description Session scheduling, resource catalog, and occupancy reporting for a cinema chain.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		return
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to reach database", "err", err)
		return
	}

	hallRepo := postgres.NewHallRepository(db)
	cinemaRepo := postgres.NewCinemaRepository(db)
	cityRepo := postgres.NewCityRepository(db)
	movieRepo := postgres.NewMovieRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)

	var catalogCache services.CatalogCache = cache.Noop{}
	if cfg.RedisAddr != "" {
		if c := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); c != nil {
			catalogCache = c
		} else {
			logger.Warn("redis unreachable, catalog caching disabled", "addr", cfg.RedisAddr)
		}
	}

	var publisher domain.SessionEventPublisher = queue.Noop{}
	if cfg.RabbitMQURL != "" {
		publisher = queue.NewPublisher(cfg.RabbitMQURL)
	}

	catalogService := services.NewCatalogService(hallRepo, cinemaRepo, cityRepo, movieRepo, sessionRepo, catalogCache, logger, cfg.RequestTimeout)
	scheduleService := services.NewScheduleService(catalogService, sessionRepo, publisher, logger, cfg.RequestTimeout)
	occupancyService := services.NewOccupancyService(catalogService, cfg.RequestTimeout)

	catalogController := controllers.NewCatalogController(logger, catalogService)
	sessionController := controllers.NewSessionController(logger, scheduleService)
	occupancyController := controllers.NewOccupancyController(logger, occupancyService, cfg.OccupancyTargetPercent)

	mux := delivery.NewRouter(catalogController, sessionController, occupancyController)

	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)

	addr := ":" + cfg.Port
	logger.Info("starting server", "addr", addr, "env", cfg.Environment)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "err", err)
	}
}
