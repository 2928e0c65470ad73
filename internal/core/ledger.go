package core

import (
	"context"
	"fmt"
	"sqlapp/internal/repository"
)

// CreateItem stores an item owned by ownerID. Only active users can
// receive new items.
func (s *Service) CreateItem(ctx context.Context, ownerID uint, msg NewItem) (Item, error) {
	var created repository.Item

	err := s.store.WithTx(ctx, func(q *repository.Queries) error {
		// a concurrent deactivation must see this item
		if err := q.LockOwnership(ctx); err != nil {
			return err
		}

		owner, err := q.UserByID(ctx, ownerID)
		if err != nil {
			return userLookupErr(err)
		}
		if !owner.IsActive {
			return ErrUserInactive
		}

		created = repository.Item{
			Title:       msg.Title,
			Description: msg.Description,
			OwnerID:     OwnedBy(owner.ID).column(),
		}
		return q.InsertItem(ctx, &created)
	})
	if err != nil {
		return Item{}, fmt.Errorf("create item: %w", err)
	}

	return toItem(created), nil
}

func (s *Service) ListItems(ctx context.Context, page Page) ([]Item, error) {
	items, err := s.store.Reader().ListItems(ctx, page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return toItems(items), nil
}

func (s *Service) ListOwnerItems(ctx context.Context, ownerID uint, page Page) ([]Item, error) {
	items, err := s.store.Reader().ListItemsByOwner(ctx, ownerID, page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("list items of user %d: %w", ownerID, err)
	}
	return toItems(items), nil
}

// reassignOnDeactivate moves every item of a deactivated user to the lowest
// id active user, or to unowned when no user is active. Re-running it for
// the same user finds no items and changes nothing.
func (s *Service) reassignOnDeactivate(ctx context.Context, q *repository.Queries, userID uint) (Owner, int64, error) {
	itemIDs, err := q.ItemIDsOwnedBy(ctx, userID)
	if err != nil {
		return Owner{}, 0, err
	}

	target, err := lowestActiveOwner(ctx, q)
	if err != nil {
		return Owner{}, 0, err
	}

	moved, err := q.SetItemsOwner(ctx, itemIDs, target.column())
	if err != nil {
		return Owner{}, 0, err
	}

	if moved > 0 {
		s.logs.Infow("items reassigned", "from_user_id", userID, "to", target.String(), "count", moved)
	}
	return target, moved, nil
}

// adoptUnownedOnCreate gives every unowned item to a freshly created user,
// provided that user is now the lowest id active user.
func (s *Service) adoptUnownedOnCreate(ctx context.Context, q *repository.Queries, userID uint) (int64, error) {
	target, err := lowestActiveOwner(ctx, q)
	if err != nil {
		return 0, err
	}

	if id, ok := target.UserID(); !ok || id != userID {
		s.logs.Debugw("new user is not the pool owner, skipping adoption", "user_id", userID, "pool_owner", target.String())
		return 0, nil
	}

	itemIDs, err := q.UnownedItemIDs(ctx)
	if err != nil {
		return 0, err
	}

	adopted, err := q.SetItemsOwner(ctx, itemIDs, target.column())
	if err != nil {
		return 0, err
	}

	if adopted > 0 {
		s.logs.Infow("unowned items adopted", "user_id", userID, "count", adopted)
	}
	return adopted, nil
}

// lowestActiveOwner evaluates MIN(id) over active users. The aggregate must
// yield exactly one row; NULL means nobody is active.
func lowestActiveOwner(ctx context.Context, q *repository.Queries) (Owner, error) {
	rows, err := q.MinActiveUserID(ctx)
	if err != nil {
		return Owner{}, err
	}

	if len(rows) != 1 {
		return Owner{}, fmt.Errorf("%w: minimum active user id produced %d rows", ErrIntegrityViolation, len(rows))
	}

	if !rows[0].Valid {
		return Unowned(), nil
	}
	return OwnedBy(uint(rows[0].Int64)), nil
}
