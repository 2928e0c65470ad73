package core

import (
	"context"
	"fmt"
)

// ResolveToken returns the id of the active user holding token. ok is false
// when no active user holds it. Two or more matches are reported as
// ErrIntegrityViolation, never as a missing credential.
func (s *Service) ResolveToken(ctx context.Context, token string) (userID uint, ok bool, err error) {
	if token == "" {
		return 0, false, nil
	}

	// two rows tell a unique match from a broken token index
	users, err := s.store.Reader().ActiveUsersByToken(ctx, token, 2)
	if err != nil {
		return 0, false, fmt.Errorf("resolve token: %w", err)
	}

	switch len(users) {
	case 0:
		return 0, false, nil
	case 1:
		return users[0].ID, true, nil
	default:
		s.logs.Errorw("api token shared by several active users", "matches", len(users))
		return 0, false, fmt.Errorf("resolve token: %w: token matches more than one active user", ErrIntegrityViolation)
	}
}

// TokenExists reports whether token belongs to an active user.
func (s *Service) TokenExists(ctx context.Context, token string) (bool, error) {
	_, ok, err := s.ResolveToken(ctx, token)
	if err != nil {
		return false, err
	}
	return ok, nil
}
