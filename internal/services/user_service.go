package services

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"gorm.io/gorm"

	"github.com/tbourn/go-games-backend/internal/domain"
)

// UserRepo defines the repository contract required by UserService.
type UserRepo interface {
	ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error)
}

// UserService provides read access to users.
type UserService struct {
	DB      *gorm.DB
	Repo    UserRepo
	Timeout time.Duration
}

// NewUserService constructs a UserService.
func NewUserService(db *gorm.DB, r UserRepo, timeout time.Duration) *UserService {
	return &UserService{DB: db, Repo: r, Timeout: timeout}
}

// List returns all users. The result is never nil.
func (s *UserService) List(ctx context.Context) (out []domain.User, err error) {
	ctx, span := otel.Tracer("services/UserService").Start(ctx, "List")
	defer func() { endSpan(span, err) }()

	ctx, cancel := withDeadline(ctx, s.Timeout)
	defer cancel()

	items, err := s.Repo.ListUsers(ctx, s.DB)
	if err != nil {
		return nil, Storage(err)
	}
	if items == nil {
		items = []domain.User{}
	}
	return items, nil
}
