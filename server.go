package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	// `chi` is a lightweight, idiomatic and composable router for building HTTP services in Go.
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	// `chi/cors` provides CORS (Cross-Origin Resource Sharing) middleware.
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/cinelog-go/auth"
	"github.com/user/cinelog-go/config"
	_ "github.com/user/cinelog-go/docs" // Registers the Swagger document served under /swagger
	"github.com/user/cinelog-go/logger"
	"github.com/user/cinelog-go/movies"
	"github.com/user/cinelog-go/reviews"
	"github.com/user/cinelog-go/users"
	"github.com/user/cinelog-go/validation"
	"github.com/user/cinelog-go/watchlist"
)

// pinger is the slice of *pgxpool.Pool the health check needs.
type pinger interface {
	Ping(ctx context.Context) error
}

type healthResponse struct {
	Status string `json:"status" example:"ok"`
}

// newRouter builds every service and handler and mounts them under /api.
// This is manual dependency injection; Nest.js would do it with its DI container.
func newRouter(cfg *config.AppConfig, log *slog.Logger, db pinger, dbx *sqlx.DB) http.Handler {
	validator := validation.New()

	userStore := users.NewPostgresStore(dbx)
	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenDuration)
	authService := auth.NewService(userStore, auth.NewHasher(cfg.Auth.BcryptCost), tokens, validator)
	authHandlers := auth.NewHandlers(authService)
	guard := auth.Guard(tokens, userStore)

	tmdb := movies.NewTMDBClient(cfg.TMDB, nil, log)
	movieHandlers := movies.NewHandlers(tmdb)

	watchlistHandler := watchlist.NewHandler(watchlist.NewService(watchlist.NewPostgresStore(dbx), validator))
	reviewHandler := reviews.NewHandler(reviews.NewReviewService(reviews.NewPostgresStore(dbx)))

	r := chi.NewRouter()

	// IMPORTANT: Chi requires all middleware to be registered before any routes.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logger.Middleware(log))
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler(db))

		r.Route("/auth", func(r chi.Router) {
			authHandlers.RegisterRoutes(r, guard)
		})

		r.Route("/movies", movieHandlers.RegisterRoutes)

		// Every watchlist route belongs to the caller, so the guard covers the whole group.
		r.Route("/watchlist", func(r chi.Router) {
			r.Use(guard)
			watchlistHandler.RegisterRoutes(r)
		})

		// Reviews mix a public listing with owner-only routes; the handler applies guard itself.
		r.Route("/reviews", func(r chi.Router) {
			reviewHandler.RegisterRoutes(r, guard)
		})
	})

	return r
}

// healthHandler godoc
// @Summary Health Check
// @Description Pings the database.
// @Tags Health
// @Produce json
// @Success 200 {object} main.healthResponse
// @Failure 503 {object} main.healthResponse
// @Router /api/health [get]
func healthHandler(db pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.FromContext(r.Context()).Warn("health check failed", slog.Any("error", err))
			auth.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
			return
		}
		auth.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	}
}
