// Package httpapi wires the HTTP transport (Gin) to the review services,
// middleware, and route handlers. It owns the middleware order, the
// RouteNotFound fallback, the operational endpoints, and the declarative
// table of API routes mounted under the configured base path.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/tbourn/go-games-backend/docs"
	"github.com/tbourn/go-games-backend/internal/config"
	"github.com/tbourn/go-games-backend/internal/domain"
	"github.com/tbourn/go-games-backend/internal/http/handlers"
	"github.com/tbourn/go-games-backend/internal/http/middleware"
	"github.com/tbourn/go-games-backend/internal/repo"
	"github.com/tbourn/go-games-backend/internal/services"
)

// categoryRepoShim adapts the repo free functions to services.CategoryRepo.
type categoryRepoShim struct{}

func (categoryRepoShim) ListCategories(ctx context.Context, db *gorm.DB) ([]domain.Category, error) {
	return repo.ListCategories(ctx, db)
}

func (categoryRepoShim) GetCategory(ctx context.Context, db *gorm.DB, slug string) (*domain.Category, error) {
	return repo.GetCategory(ctx, db, slug)
}

// reviewRepoShim adapts the repo free functions to services.ReviewRepo.
type reviewRepoShim struct{}

func (reviewRepoShim) GetReview(ctx context.Context, db *gorm.DB, id int64) (*domain.Review, error) {
	return repo.GetReview(ctx, db, id)
}

func (reviewRepoShim) ReviewExists(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	return repo.ReviewExists(ctx, db, id)
}

func (reviewRepoShim) ListCommentsByReview(ctx context.Context, db *gorm.DB, reviewID int64) ([]domain.Comment, error) {
	return repo.ListCommentsByReview(ctx, db, reviewID)
}

// userRepoShim adapts the repo free functions to services.UserRepo.
type userRepoShim struct{}

func (userRepoShim) ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	return repo.ListUsers(ctx, db)
}

// route is one entry of the API route table.
type route struct {
	method  string
	path    string
	handler gin.HandlerFunc
}

// apiRoutes is the complete set of API endpoints, relative to the base path.
// Anything not listed here, including other methods on these paths, falls
// through to RouteNotFound.
func apiRoutes(h *handlers.Handlers) []route {
	return []route{
		{http.MethodGet, "/categories", h.ListCategories},
		{http.MethodGet, "/categories/:slug", h.GetCategory},
		{http.MethodGet, "/reviews/:review_id", h.GetReview},
		{http.MethodGet, "/reviews/:review_id/comments", h.ListReviewComments},
		{http.MethodGet, "/users", h.ListUsers},
	}
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured logs with redaction
//  4. Recovery: catches panics raised by the middleware below
//  5. Metrics
//  6. CORS and security headers
//  7. gzip
//  8. ErrorHandler: renders every recorded error, so bodies pass through gzip
//  9. Recovery: records handler panics for ErrorHandler
//
// The rate limiter is mounted on the API group only.
func RegisterRoutes(r *gin.Engine, store *repo.Store, cfg config.Config) {
	// Unknown methods and trailing-slash variants are plain RouteNotFound.
	r.HandleMethodNotAllowed = false
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(middleware.RedactOptions{
		MaskHeaders: []string{"X-API-Key"},
	}))
	r.Use(middleware.Recovery())
	r.Use(middleware.Metrics())
	r.Use(corsMiddleware(cfg.CORS))
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		EnablePolicy: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))
	r.Use(handlers.ErrorHandler())
	r.Use(middleware.Recovery())

	r.NoRoute(handlers.RouteNotFound)

	// Operational endpoints
	r.GET("/health", healthHandler(store))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← repo/store
	timeout := cfg.DB.QueryTimeout
	h := handlers.New(
		services.NewCategoryService(store.DB, categoryRepoShim{}, timeout),
		services.NewReviewService(store.DB, reviewRepoShim{}, timeout),
		services.NewUserService(store.DB, userRepoShim{}, timeout),
	)

	api := groupWithPrefix(r, cfg.APIBasePath)
	api.Use(middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByIP()).Handler())
	for _, rt := range apiRoutes(h) {
		api.Handle(rt.method, rt.path, rt.handler)
	}
}

// corsMiddleware allows read-only cross-origin access: any origin when none
// are configured, otherwise only the allowlist.
func corsMiddleware(c config.CORSConfig) gin.HandlerFunc {
	cc := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Accept", "Content-Type", middleware.HeaderRequestID},
		ExposeHeaders:    []string{middleware.HeaderRequestID, "Content-Length", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(c.AllowedOrigins) == 0 {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = c.AllowedOrigins
	}
	return cors.New(cc)
}

// healthHandler reports 200 when the store answers a ping within the store's
// query timeout and 503 otherwise.
func healthHandler(store *repo.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := store.WithTimeout(c.Request.Context())
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			middleware.LoggerFrom(c).Warn().Err(err).Msg("health: store unreachable")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
