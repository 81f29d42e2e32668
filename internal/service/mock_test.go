package service

import (
	"context"

	"github.com/userdesk/backend/internal/model"
)

// ---------------------------------------------------------------------------
// mockUserRepository: in-memory stub for testing
// ---------------------------------------------------------------------------

type mockUserRepository struct {
	listFunc         func(ctx context.Context) ([]*model.User, error)
	createFunc       func(ctx context.Context, user *model.User) error
	updateStatusFunc func(ctx context.Context, id int64, status string) error
	deleteFunc       func(ctx context.Context, id int64) error
	countFunc        func(ctx context.Context, filter model.UserFilter) (int, error)
}

func (m *mockUserRepository) List(ctx context.Context) ([]*model.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) Count(ctx context.Context, filter model.UserFilter) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx, filter)
	}
	return 0, nil
}

// ---------------------------------------------------------------------------
// mockMessageRepository
// ---------------------------------------------------------------------------

type mockMessageRepository struct {
	saveFunc  func(ctx context.Context, msg *model.Message) error
	countFunc func(ctx context.Context) (int, error)
}

func (m *mockMessageRepository) Save(ctx context.Context, msg *model.Message) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepository) Count(ctx context.Context) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}
