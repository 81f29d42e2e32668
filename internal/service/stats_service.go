package service

import (
	"context"
	"fmt"

	"github.com/userdesk/backend/internal/model"
	"github.com/userdesk/backend/internal/repository"
)

// StatsService はダッシュボードの集計値を返す
type StatsService interface {
	Get(ctx context.Context) (*model.Stats, error)
}

type statsService struct {
	users    repository.UserRepository
	messages repository.MessageRepository
}

// NewStatsService は StatsService を生成する
func NewStatsService(users repository.UserRepository, messages repository.MessageRepository) StatsService {
	return &statsService{users: users, messages: messages}
}

// Get は 4 つの COUNT を順に実行し、最初のエラーで中断する
func (s *statsService) Get(ctx context.Context) (*model.Stats, error) {
	var stats model.Stats
	var err error

	if stats.TotalUsers, err = s.users.Count(ctx, model.UserFilter{}); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if stats.ActiveUsers, err = s.users.Count(ctx, model.UserFilter{Status: model.StatusActive}); err != nil {
		return nil, fmt.Errorf("count active users: %w", err)
	}
	if stats.NewUsersToday, err = s.users.Count(ctx, model.UserFilter{CreatedToday: true}); err != nil {
		return nil, fmt.Errorf("count new users: %w", err)
	}
	if stats.TotalMessages, err = s.messages.Count(ctx); err != nil {
		return nil, fmt.Errorf("count messages: %w", err)
	}
	return &stats, nil
}
