package core

import (
	"context"
	"sqlapp/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

type Store interface {
	Reader() *repository.Queries
	WithTx(ctx context.Context, fn func(q *repository.Queries) error) error
}

//counterfeiter:generate -o fake -fake-name TokenSource . TokenSource
type TokenSource interface {
	NewToken() (string, error)
}

//counterfeiter:generate -o fake -fake-name PasswordHasher . PasswordHasher
type PasswordHasher interface {
	Hash(password string) (string, error)
}
