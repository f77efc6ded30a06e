package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/techfolio/api/internal/model"
	"github.com/techfolio/api/internal/observability"
	"github.com/techfolio/api/internal/validator"
)

// ContactStore abstracts the repository contact submissions are written to.
type ContactStore interface {
	Insert(ctx context.Context, c *model.ContactRequest) (string, error)
}

// EventRecorder abstracts the outbox used to notify downstream consumers.
type EventRecorder interface {
	Add(ctx context.Context, topic string, payload []byte) error
}

// ContactService validates and persists Get in Touch submissions. It is
// deliberately unauthenticated: guests may submit without prior auth, and
// abuse is bounded by the router's IP rate limit instead.
type ContactService struct {
	Repo   ContactStore
	Outbox EventRecorder
}

// Submit validates the submission and persists it, returning the assigned
// id. Validation short-circuits on the first failure; invalid input never
// reaches the store. Repeated identical submissions create distinct rows.
func (s *ContactService) Submit(ctx context.Context, name, email, phone, message string) (string, error) {
	if name == "" || email == "" {
		return "", model.ErrContactRequired
	}
	if !validator.ValidEmail(email) {
		return "", model.ErrInvalidEmail
	}

	id, err := s.Repo.Insert(ctx, &model.ContactRequest{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Message: message,
	})
	if err != nil {
		return "", fmt.Errorf("failed to save contact request: %w", err)
	}

	payload, err := json.Marshal(map[string]string{
		"id":    id,
		"name":  name,
		"email": email,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal contact event: %w", err)
	}
	if err := s.Outbox.Add(ctx, "contact.submitted", payload); err != nil {
		// The submission is already durable; notification is best-effort.
		observability.GetLogger(ctx).Warn("failed to record contact.submitted event",
			zap.String("id", id), zap.Error(err))
	}
	return id, nil
}
