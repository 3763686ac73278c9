// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Category
// model.
//
// Functions follow the thin-repository approach used across this package: they
// compose a single parameterized query and return raw gorm errors. Zero rows on
// a single-row lookup surface as ErrNotFound (gorm.ErrRecordNotFound).
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-games-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ListCategories returns every category ordered by slug. It returns an empty
// slice when the table is empty.
func ListCategories(ctx context.Context, db *gorm.DB) ([]domain.Category, error) {
	out := []domain.Category{}
	err := db.WithContext(ctx).
		Order("slug ASC").
		Find(&out).Error
	return out, err
}

// GetCategory fetches a single category by slug, or ErrNotFound.
func GetCategory(ctx context.Context, db *gorm.DB, slug string) (*domain.Category, error) {
	var c domain.Category
	err := db.WithContext(ctx).
		Where("slug = ?", slug).
		Take(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}
