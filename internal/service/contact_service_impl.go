package service

import (
	"context"
	"strings"

	"github.com/userdesk/backend/internal/model"
	"github.com/userdesk/backend/internal/repository"
)

// contactServiceImpl は ContactService の本番実装
type contactServiceImpl struct {
	repo repository.MessageRepository
}

// NewContactService はリポジトリを使う ContactService を生成する
func NewContactService(repo repository.MessageRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit は名前・メール・件名の前後の空白を除去して保存する
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.Message) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	return s.repo.Save(ctx, msg)
}
