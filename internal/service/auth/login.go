package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gearbin/gearbin-backend/internal/auth"
	"github.com/gearbin/gearbin-backend/internal/domain"
)

// Login authenticates a user with email + password.
// Returns ErrUnauthorized if the email is not found or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = normalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, hash, err := s.users.GetCredentials(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, s.reject(ctx, "unknown_email")
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := s.hasher.Compare(hash, input.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, s.reject(ctx, "bad_password")
		}
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	result, err := s.issue(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))
	return result, nil
}

// ValidateToken returns the user id carried by an access token.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, s.reject(ctx, "missing_token")
	}
	userID, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, s.reject(ctx, "invalid_token")
	}
	return userID, nil
}
