// Package services – ReviewService
//
// ReviewService resolves a single review by its numeric identifier and the
// comments attached to it. The identifier is parsed strictly first; a value
// that is not a positive integer never reaches the store.
//
// Observability: public methods are OpenTelemetry-instrumented with the raw
// identifier as a span attribute.
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

// ReviewRepo defines the repository contract required by ReviewService.
type ReviewRepo interface {
	// GetReview fetches one review by id, or gorm.ErrRecordNotFound.
	GetReview(ctx context.Context, db *gorm.DB, id int64) (*domain.Review, error)

	// ReviewExists reports whether a review with id is present.
	ReviewExists(ctx context.Context, db *gorm.DB, id int64) (bool, error)

	// ListCommentsByReview returns the comments on a review, newest first.
	ListCommentsByReview(ctx context.Context, db *gorm.DB, reviewID int64) ([]domain.Comment, error)
}

// ReviewService provides read access to reviews and their comments.
type ReviewService struct {
	DB      *gorm.DB
	Repo    ReviewRepo
	Timeout time.Duration
}

// NewReviewService constructs a ReviewService.
func NewReviewService(db *gorm.DB, r ReviewRepo, timeout time.Duration) *ReviewService {
	return &ReviewService{DB: db, Repo: r, Timeout: timeout}
}

// Get resolves the review identified by rawID with exactly one lookup.
func (s *ReviewService) Get(ctx context.Context, rawID string) (r *domain.Review, err error) {
	ctx, span := otel.Tracer("services/ReviewService").Start(ctx, "Get",
		trace.WithAttributes(attribute.String("review.id", rawID)),
	)
	defer func() { endSpan(span, err) }()

	id, err := ParseID(ParamReviewID, rawID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withDeadline(ctx, s.Timeout)
	defer cancel()

	r, err = s.Repo.GetReview(ctx, s.DB, id)
	if err != nil {
		return nil, classify(err, ParamReviewID)
	}
	return r, nil
}

// Comments returns the comments on the review identified by rawID. An
// unknown review is NotFound; a known review without comments yields an
// empty, non-nil slice.
func (s *ReviewService) Comments(ctx context.Context, rawID string) (out []domain.Comment, err error) {
	ctx, span := otel.Tracer("services/ReviewService").Start(ctx, "Comments",
		trace.WithAttributes(attribute.String("review.id", rawID)),
	)
	defer func() { endSpan(span, err) }()

	id, err := ParseID(ParamReviewID, rawID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withDeadline(ctx, s.Timeout)
	defer cancel()

	ok, err := s.Repo.ReviewExists(ctx, s.DB, id)
	if err != nil {
		return nil, Storage(err)
	}
	if !ok {
		return nil, NotFound(ParamReviewID)
	}

	items, err := s.Repo.ListCommentsByReview(ctx, s.DB, id)
	if err != nil {
		return nil, Storage(err)
	}
	if items == nil {
		items = []domain.Comment{}
	}
	span.SetAttributes(attribute.Int("comments.count", len(items)))
	return items, nil
}
