package core

import (
	"context"
	"errors"
	"fmt"
	"sqlapp/internal/repository"
)

// CreateUser registers an active user with a fresh api token. When the new
// user is the lowest id active user it adopts every unowned item.
func (s *Service) CreateUser(ctx context.Context, msg NewUser) (User, error) {
	hashed, err := s.hasher.Hash(msg.Password)
	if err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}

	var created repository.User
	err = s.store.WithTx(ctx, func(q *repository.Queries) error {
		if err := q.LockOwnership(ctx); err != nil {
			return err
		}

		taken, err := q.EmailTaken(ctx, msg.Email)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateEmail
		}

		token, err := s.uniqueToken(ctx, q)
		if err != nil {
			return err
		}

		user := repository.User{
			Email:          msg.Email,
			HashedPassword: hashed,
			APIToken:       token,
			IsActive:       true,
		}
		if err := q.InsertUser(ctx, &user); err != nil {
			if errors.Is(err, repository.ErrDuplicateUser) {
				return ErrDuplicateEmail
			}
			return err
		}

		if _, err := s.adoptUnownedOnCreate(ctx, q, user.ID); err != nil {
			return err
		}

		created, err = q.UserByID(ctx, user.ID)
		return err
	})
	if err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}

	s.logs.Infow("user created", "user_id", created.ID, "adopted_items", len(created.Items))
	return toUser(created), nil
}

// uniqueToken samples tokens until one is held by no user, active or not.
func (s *Service) uniqueToken(ctx context.Context, q *repository.Queries) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		token, err := s.tokens.NewToken()
		if err != nil {
			return "", fmt.Errorf("generate token: %w", err)
		}

		taken, err := q.TokenTaken(ctx, token)
		if err != nil {
			return "", err
		}
		if !taken {
			return token, nil
		}

		s.logs.Warnw("generated api token already in use, sampling again")
	}
}

func (s *Service) GetUser(ctx context.Context, id uint) (User, error) {
	user, err := s.store.Reader().UserByID(ctx, id)
	if err != nil {
		return User{}, userLookupErr(err)
	}
	return toUser(user), nil
}

func (s *Service) GetUserByEmail(ctx context.Context, email string) (User, error) {
	user, err := s.store.Reader().UserByEmail(ctx, email)
	if err != nil {
		return User{}, userLookupErr(err)
	}
	return toUser(user), nil
}

func (s *Service) ListUsers(ctx context.Context, page Page) ([]User, error) {
	users, err := s.store.Reader().ListUsers(ctx, page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return toUsers(users), nil
}

// DeactivateUser marks the user inactive and hands its items to the lowest
// id active user, or leaves them unowned when nobody is active.
func (s *Service) DeactivateUser(ctx context.Context, id uint) (User, error) {
	var (
		updated repository.User
		target  Owner
		moved   int64
	)

	err := s.store.WithTx(ctx, func(q *repository.Queries) error {
		if err := q.LockOwnership(ctx); err != nil {
			return err
		}

		if err := q.SetUserActive(ctx, id, false); err != nil {
			return userLookupErr(err)
		}

		var err error
		target, moved, err = s.reassignOnDeactivate(ctx, q, id)
		if err != nil {
			return err
		}

		updated, err = q.UserByID(ctx, id)
		return err
	})
	if err != nil {
		return User{}, fmt.Errorf("deactivate user %d: %w", id, err)
	}

	s.logs.Infow("user deactivated", "user_id", id, "moved_items", moved, "new_owner", target.String())
	return toUser(updated), nil
}

func userLookupErr(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("get user: %w", err)
}
