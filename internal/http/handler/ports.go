package handler

import (
	"context"
	"net/http"
	"sqlapp/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name UserService . UserService
type UserService interface {
	ResolveToken(ctx context.Context, token string) (uint, bool, error)
	TokenExists(ctx context.Context, token string) (bool, error)
	CreateUser(ctx context.Context, msg core.NewUser) (core.User, error)
	GetUser(ctx context.Context, id uint) (core.User, error)
	ListUsers(ctx context.Context, page core.Page) ([]core.User, error)
	DeactivateUser(ctx context.Context, id uint) (core.User, error)
	CreateItem(ctx context.Context, ownerID uint, msg core.NewItem) (core.Item, error)
	ListItems(ctx context.Context, page core.Page) ([]core.Item, error)
	ListOwnerItems(ctx context.Context, ownerID uint, page core.Page) ([]core.Item, error)
}
