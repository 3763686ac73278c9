// Board-game reviews HTTP handlers.
//
// This file declares the service contracts the handlers depend on and the
// Handlers type that groups the endpoints:
//   - GET /categories
//   - GET /categories/{slug}
//   - GET /reviews/{review_id}
//   - GET /reviews/{review_id}/comments
//   - GET /users
//
// Handlers are transport-thin: they pass raw path parameters to services,
// project results through the views in views.go, and hand any failure to the
// classifier with c.Error.
package handlers

import (
	"context"

	"github.com/tbourn/go-games-backend/internal/domain"
)

// CategoryService resolves categories.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type CategoryService interface {
	// List returns every category.
	List(ctx context.Context) ([]domain.Category, error)
	// Get validates rawSlug and resolves one category.
	Get(ctx context.Context, rawSlug string) (*domain.Category, error)
}

// ReviewService resolves reviews and their comments.
type ReviewService interface {
	// Get validates rawID and resolves one review.
	Get(ctx context.Context, rawID string) (*domain.Review, error)
	// Comments validates rawID and returns the review's comments.
	Comments(ctx context.Context, rawID string) ([]domain.Comment, error)
}

// UserService lists users.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
}

// Handlers groups the HTTP endpoints of the reviews API.
type Handlers struct {
	categorySvc CategoryService
	reviewSvc   ReviewService
	userSvc     UserService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(categorySvc CategoryService, reviewSvc ReviewService, userSvc UserService) *Handlers {
	return &Handlers{categorySvc: categorySvc, reviewSvc: reviewSvc, userSvc: userSvc}
}
