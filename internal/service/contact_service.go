package service

import (
	"context"

	"github.com/userdesk/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new contact message. The msg.ID and CreatedAt will be
	// populated by the implementation.
	Submit(ctx context.Context, msg *model.Message) error
}
