package repository

import (
	"context"
	"database/sql"
	"sqlapp/internal/db"
)

// Database is the query surface of a connection or a transaction.
type Database interface {
	LockOwnership(ctx context.Context) error
	Insert(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetOne(ctx context.Context, q db.Query, entity any) error
	GetAll(ctx context.Context, q db.Query, entities any) error
	Pluck(ctx context.Context, model any, column string, q db.Query, dest any) error
	Exists(ctx context.Context, model any, q db.Query) (bool, error)
	Aggregate(ctx context.Context, model any, expr string, q db.Query) ([]sql.NullInt64, error)
	UpdateColumn(ctx context.Context, model any, column string, value any, q db.Query) (int64, error)
}
