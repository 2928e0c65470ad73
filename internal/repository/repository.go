package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sqlapp/internal/db"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("user already exists")
)

// Repository owns the connection and hands out query handles bound either
// to the pool or to a transaction.
type Repository struct {
	db *db.GormDB
}

func NewRepository(db *db.GormDB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Migrate() error {
	err := r.db.MigrateModels(&User{}, &Item{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

// Reader returns a handle for single statement reads outside a transaction.
func (r *Repository) Reader() *Queries {
	return NewQueries(r.db)
}

// WithTx runs fn against a handle bound to one transaction.
func (r *Repository) WithTx(ctx context.Context, fn func(q *Queries) error) error {
	return r.db.WithTx(ctx, func(tx *db.GormDB) error {
		return fn(NewQueries(tx))
	})
}

type Queries struct {
	db Database
}

func NewQueries(db Database) *Queries {
	return &Queries{
		db: db,
	}
}

func (q *Queries) LockOwnership(ctx context.Context) error {
	return q.db.LockOwnership(ctx)
}

// ActiveUsersByToken returns at most limit active users holding token.
func (q *Queries) ActiveUsersByToken(ctx context.Context, token string, limit int) ([]User, error) {
	var users []User
	err := q.db.GetAll(ctx, db.Query{
		Where: "api_token = ? AND is_active = ?",
		Args:  []any{token, true},
		Order: "id",
		Page:  &db.Page{Limit: limit},
	}, &users)
	if err != nil {
		return nil, fmt.Errorf("get users by token: %w", err)
	}
	return users, nil
}

func (q *Queries) TokenTaken(ctx context.Context, token string) (bool, error) {
	taken, err := q.db.Exists(ctx, &User{}, db.Query{Where: "api_token = ?", Args: []any{token}})
	if err != nil {
		return false, fmt.Errorf("check token: %w", err)
	}
	return taken, nil
}

func (q *Queries) EmailTaken(ctx context.Context, email string) (bool, error) {
	taken, err := q.db.Exists(ctx, &User{}, db.Query{Where: "email = ?", Args: []any{email}})
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return taken, nil
}

func (q *Queries) UserByID(ctx context.Context, id uint) (User, error) {
	return q.userBy(ctx, "id", id)
}

func (q *Queries) UserByEmail(ctx context.Context, email string) (User, error) {
	return q.userBy(ctx, "email", email)
}

func (q *Queries) userBy(ctx context.Context, column string, value any) (User, error) {
	var user User

	err := q.db.GetOne(ctx, db.Query{
		Where:   fmt.Sprintf("%s = ?", column),
		Args:    []any{value},
		Preload: "Items",
	}, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by %s: %w", column, err)
	}

	return user, nil
}

func (q *Queries) ListUsers(ctx context.Context, offset, limit int) ([]User, error) {
	users := []User{}
	err := q.db.GetAll(ctx, db.Query{
		Order:   "id",
		Page:    &db.Page{Offset: offset, Limit: limit},
		Preload: "Items",
	}, &users)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (q *Queries) InsertUser(ctx context.Context, user *User) error {
	err := q.db.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return fmt.Errorf("insert user: %w", ErrDuplicateUser)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (q *Queries) SetUserActive(ctx context.Context, id uint, active bool) error {
	n, err := q.db.UpdateColumn(ctx, &User{}, "is_active", active, db.Query{Where: "id = ?", Args: []any{id}})
	if err != nil {
		return fmt.Errorf("set user active: %w", err)
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// MinActiveUserID returns the raw rows of MIN(id) over active users. A
// single NULL row means no user is active.
func (q *Queries) MinActiveUserID(ctx context.Context) ([]sql.NullInt64, error) {
	rows, err := q.db.Aggregate(ctx, &User{}, "MIN(id)", db.Query{Where: "is_active = ?", Args: []any{true}})
	if err != nil {
		return nil, fmt.Errorf("min active user id: %w", err)
	}
	return rows, nil
}

func (q *Queries) ItemIDsOwnedBy(ctx context.Context, ownerID uint) ([]uint, error) {
	return q.itemIDs(ctx, db.Query{Where: "owner_id = ?", Args: []any{ownerID}, Order: "id"})
}

func (q *Queries) UnownedItemIDs(ctx context.Context) ([]uint, error) {
	return q.itemIDs(ctx, db.Query{Where: "owner_id IS NULL", Order: "id"})
}

func (q *Queries) itemIDs(ctx context.Context, query db.Query) ([]uint, error) {
	ids := []uint{}
	err := q.db.Pluck(ctx, &Item{}, "id", query, &ids)
	if err != nil {
		return nil, fmt.Errorf("get item ids: %w", err)
	}
	return ids, nil
}

// SetItemsOwner moves the given items to owner; a nil owner leaves them
// unowned.
func (q *Queries) SetItemsOwner(ctx context.Context, itemIDs []uint, owner *uint) (int64, error) {
	if len(itemIDs) == 0 {
		return 0, nil
	}

	var value any
	if owner != nil {
		value = *owner
	}

	n, err := q.db.UpdateColumn(ctx, &Item{}, "owner_id", value, db.Query{Where: "id IN ?", Args: []any{itemIDs}})
	if err != nil {
		return 0, fmt.Errorf("set items owner: %w", err)
	}
	return n, nil
}

func (q *Queries) InsertItem(ctx context.Context, item *Item) error {
	err := q.db.Insert(ctx, item)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (q *Queries) ListItems(ctx context.Context, offset, limit int) ([]Item, error) {
	return q.listItems(ctx, db.Query{Order: "id", Page: &db.Page{Offset: offset, Limit: limit}})
}

func (q *Queries) ListItemsByOwner(ctx context.Context, ownerID uint, offset, limit int) ([]Item, error) {
	return q.listItems(ctx, db.Query{
		Where: "owner_id = ?",
		Args:  []any{ownerID},
		Order: "id",
		Page:  &db.Page{Offset: offset, Limit: limit},
	})
}

func (q *Queries) listItems(ctx context.Context, query db.Query) ([]Item, error) {
	items := []Item{}
	err := q.db.GetAll(ctx, query, &items)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}
