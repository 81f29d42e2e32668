package service

import (
	"context"
	"errors"

	"github.com/userdesk/backend/internal/model"
)

// ErrInvalidStatus is returned when a status outside {active, inactive} is requested.
var ErrInvalidStatus = errors.New("invalid status")

// UserService defines the user management operations behind the dashboard.
type UserService interface {
	List(ctx context.Context) ([]*model.User, error)

	// Create stores a new user. An empty Role becomes model.DefaultRole;
	// ID, Status and CreatedAt are populated by the store.
	Create(ctx context.Context, user *model.User) error

	// SetStatus changes a user's status. It returns ErrInvalidStatus for
	// values outside the status domain and repository.ErrNotFound for an
	// unknown id.
	SetStatus(ctx context.Context, id int64, status string) error

	Delete(ctx context.Context, id int64) error
}
