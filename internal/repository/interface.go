package repository

import (
	"context"

	"github.com/userdesk/backend/internal/model"
)

// DB checks that the underlying connection is alive.
type DB interface {
	Ping(ctx context.Context) error
}

// UserRepository is the persistence interface for users.
type UserRepository interface {
	// List returns every user ordered by id.
	List(ctx context.Context) ([]*model.User, error)
	// Create inserts user and fills in ID, Status and CreatedAt from the store.
	Create(ctx context.Context, user *model.User) error
	// UpdateStatus returns ErrNotFound when no row has the given id.
	UpdateStatus(ctx context.Context, id int64, status string) error
	// Delete returns ErrNotFound when no row has the given id.
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context, filter model.UserFilter) (int, error)
}

// MessageRepository is the persistence interface for contact messages.
type MessageRepository interface {
	// Save inserts msg and fills in ID and CreatedAt.
	Save(ctx context.Context, msg *model.Message) error
	Count(ctx context.Context) (int, error)
}
