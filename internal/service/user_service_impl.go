package service

import (
	"context"

	"github.com/userdesk/backend/internal/model"
	"github.com/userdesk/backend/internal/repository"
)

// userServiceImpl は UserService の本番実装
type userServiceImpl struct {
	repo repository.UserRepository
}

// NewUserService はリポジトリを使う UserService を生成する
func NewUserService(repo repository.UserRepository) UserService {
	return &userServiceImpl{repo: repo}
}

func (s *userServiceImpl) List(ctx context.Context) ([]*model.User, error) {
	return s.repo.List(ctx)
}

func (s *userServiceImpl) Create(ctx context.Context, user *model.User) error {
	if user.Role == "" {
		user.Role = model.DefaultRole
	}
	return s.repo.Create(ctx, user)
}

func (s *userServiceImpl) SetStatus(ctx context.Context, id int64, status string) error {
	if status != model.StatusActive && status != model.StatusInactive {
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *userServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
