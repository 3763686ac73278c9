// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Review model.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-games-backend/internal/domain"
)

// GetReview fetches a single review by its numeric identifier. If the record
// does not exist, it returns ErrNotFound. On other DB errors, the raw error
// is returned.
func GetReview(ctx context.Context, db *gorm.DB, id int64) (*domain.Review, error) {
	var r domain.Review
	err := db.WithContext(ctx).
		Where("review_id = ?", id).
		Take(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ReviewExists reports whether a review with id is present.
func ReviewExists(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("review_id = ?", id).
		Limit(1).
		Count(&n).Error
	return n > 0, err
}
