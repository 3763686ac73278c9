// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User model.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-games-backend/internal/domain"
)

// ListUsers returns every user ordered by username.
func ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	out := []domain.User{}
	err := db.WithContext(ctx).
		Order("username ASC").
		Find(&out).Error
	return out, err
}
