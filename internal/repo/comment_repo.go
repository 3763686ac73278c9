// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Comment model.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-games-backend/internal/domain"
)

// ListCommentsByReview returns the comments on reviewID, newest first with
// comment_id as a deterministic tie-break. It does not check that the review
// exists; an unknown review simply yields an empty slice.
func ListCommentsByReview(ctx context.Context, db *gorm.DB, reviewID int64) ([]domain.Comment, error) {
	out := []domain.Comment{}
	err := db.WithContext(ctx).
		Where("review_id = ?", reviewID).
		Order("created_at DESC, comment_id DESC").
		Find(&out).Error
	return out, err
}
