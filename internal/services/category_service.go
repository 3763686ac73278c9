// Package services – CategoryService
//
// CategoryService resolves board-game categories: the full list and a single
// category addressed by slug. Slugs are validated and NFC-normalized before
// any query runs.
package services

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-games-backend/internal/domain"
)

// CategoryRepo defines the repository contract required by CategoryService.
type CategoryRepo interface {
	// ListCategories returns every category.
	ListCategories(ctx context.Context, db *gorm.DB) ([]domain.Category, error)

	// GetCategory fetches one category by slug, or gorm.ErrRecordNotFound.
	GetCategory(ctx context.Context, db *gorm.DB, slug string) (*domain.Category, error)
}

// CategoryService provides read access to categories.
type CategoryService struct {
	DB   *gorm.DB
	Repo CategoryRepo

	// Timeout bounds each store call; zero leaves the request context as is.
	Timeout time.Duration
}

// NewCategoryService constructs a CategoryService.
func NewCategoryService(db *gorm.DB, r CategoryRepo, timeout time.Duration) *CategoryService {
	return &CategoryService{DB: db, Repo: r, Timeout: timeout}
}

// List returns all categories. The result is never nil.
func (s *CategoryService) List(ctx context.Context) (out []domain.Category, err error) {
	ctx, span := otel.Tracer("services/CategoryService").Start(ctx, "List")
	defer func() { endSpan(span, err) }()

	ctx, cancel := withDeadline(ctx, s.Timeout)
	defer cancel()

	items, err := s.Repo.ListCategories(ctx, s.DB)
	if err != nil {
		return nil, Storage(err)
	}
	if items == nil {
		items = []domain.Category{}
	}
	span.SetAttributes(attribute.Int("categories.count", len(items)))
	return items, nil
}

// Get resolves the category identified by rawSlug.
func (s *CategoryService) Get(ctx context.Context, rawSlug string) (c *domain.Category, err error) {
	ctx, span := otel.Tracer("services/CategoryService").Start(ctx, "Get",
		trace.WithAttributes(attribute.String("category.slug", rawSlug)),
	)
	defer func() { endSpan(span, err) }()

	slug, err := NormalizeSlug(rawSlug)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withDeadline(ctx, s.Timeout)
	defer cancel()

	c, err = s.Repo.GetCategory(ctx, s.DB, slug)
	if err != nil {
		return nil, classify(err, ParamSlug)
	}
	return c, nil
}
