package repositories

import (
	"context"
	"errors"

	"github.com/placeprep/readiness-service/internal/models"
)

var (
	// ErrDuplicateEmail is returned when a registration collides with an
	// existing user's email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// List returns all users in insertion (id) order.
	List(ctx context.Context) ([]*models.User, error)
}
