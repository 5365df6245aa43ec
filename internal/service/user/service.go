// Package user manages the caller's profile, currently the free-form
// personalization text fed into generation prompts.
package user

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/recallapp/recall-backend/internal/domain"
	"github.com/recallapp/recall-backend/pkg/ctxutil"
)

//go:generate moq -out mocks_test.go . userRepo

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdatePersonalization(ctx context.Context, id uuid.UUID, text *string) error
}

// maxPersonalizationLen bounds the profile text so prompts stay within
// model context limits.
const maxPersonalizationLen = 2000

// Service implements profile operations.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service.
func NewService(log *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   log.With("service", "user"),
		users: users,
	}
}

// Personalization returns the caller's profile text, empty when unset.
func (s *Service) Personalization(ctx context.Context) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if u.Personalization == nil {
		return "", nil
	}
	return *u.Personalization, nil
}

// SetPersonalization stores the caller's profile text. An empty string
// clears it.
func (s *Service) SetPersonalization(ctx context.Context, text string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	text = strings.TrimSpace(text)
	if len(text) > maxPersonalizationLen {
		return domain.NewValidationError("personalization", "must be at most 2000 characters")
	}

	var value *string
	if text != "" {
		value = &text
	}

	if err := s.users.UpdatePersonalization(ctx, userID, value); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "personalization updated", slog.Bool("cleared", value == nil))
	return nil
}
