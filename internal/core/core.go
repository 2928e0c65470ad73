package core

import (
	"sqlapp/internal/repository"

	"go.uber.org/zap"
)

// Service implements the token gate, the user directory and the item
// ownership ledger on top of a Store.
type Service struct {
	logs   *zap.SugaredLogger
	store  Store
	tokens TokenSource
	hasher PasswordHasher
}

func NewService(logger *zap.SugaredLogger, store Store, tokens TokenSource, hasher PasswordHasher) *Service {
	return &Service{
		logs:   logger,
		store:  store,
		tokens: tokens,
		hasher: hasher,
	}
}

func toUser(u repository.User) User {
	return User{
		ID:       u.ID,
		Email:    u.Email,
		APIToken: u.APIToken,
		IsActive: u.IsActive,
		Items:    toItems(u.Items),
	}
}

func toUsers(users []repository.User) []User {
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = toUser(u)
	}
	return out
}

func toItem(it repository.Item) Item {
	return Item{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		Owner:       ownerFromColumn(it.OwnerID),
	}
}

func toItems(items []repository.Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = toItem(it)
	}
	return out
}
