package handler

import (
	"log/slog"
	"net/http"

	"cinehub/internal/config"
	"cinehub/internal/http-api/middleware"
	"cinehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// Services bundles everything the router mounts.
type Services struct {
	Auth      service.AuthService
	Movies    service.MovieService
	Series    service.SeriesService
	Episodes  service.EpisodeService
	Posters   service.PosterService
	Reviews   service.ReviewService
	Favorites service.FavoriteService
}

// NewRouter builds the Gin engine with all routes and middleware mounted.
// The caller owns the limiter's lifecycle and stops it on shutdown.
func NewRouter(cfg *config.Config, logger *slog.Logger, svc Services, limiter *middleware.ClientRateLimiter) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.IsDevelopment() {
		r.Use(gin.Logger())
	}
	r.Use(limiter.Middleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRequired := middleware.AuthMiddleware(svc.Auth)
	adminRequired := middleware.RequireAdmin()

	api := r.Group("/api")
	NewAuthHandler(svc.Auth, logger).RegisterRoutes(api)
	NewMovieHandler(svc.Movies, logger).RegisterRoutes(api, authRequired, adminRequired)
	NewSeriesHandler(svc.Series, logger).RegisterRoutes(api, authRequired, adminRequired)
	NewEpisodeHandler(svc.Episodes, logger).RegisterRoutes(api, authRequired, adminRequired)
	NewPosterHandler(svc.Posters, logger).RegisterRoutes(api, authRequired, adminRequired)
	NewReviewHandler(svc.Reviews, logger).RegisterRoutes(api, authRequired)
	NewFavoriteHandler(svc.Favorites, logger).RegisterRoutes(api, authRequired)

	return r
}
