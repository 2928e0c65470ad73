package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrUnsupported  = errors.New("unsupported database url")
)

// ownershipLockKey identifies the advisory lock guarding item reassignment.
const ownershipLockKey int64 = 0x6f776e657273

const sqlitePrefix = "sqlite://"

// Page restricts a read to a window of the ordered result.
type Page struct {
	Offset int
	Limit  int
}

// Query describes a filtered read or update. A nil Page selects every row.
type Query struct {
	Where   string
	Args    []any
	Order   string
	Page    *Page
	Preload string
}

type GormDB struct {
	DB *gorm.DB
}

func NewGormDB(dsn string, gormLogger logger.Interface) (*GormDB, error) {
	dialector, err := dialectorFor(dsn)
	if err != nil {
		return &GormDB{}, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return &GormDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	if dialector.Name() == "sqlite" {
		// single writer; keeps in-memory databases alive with the pool
		sqlDB, err := db.DB()
		if err != nil {
			return &GormDB{}, fmt.Errorf("get sql db conn: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return &GormDB{
		DB: db,
	}, nil
}

func dialectorFor(dsn string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres"):
		return postgres.Open(dsn), nil
	case strings.HasPrefix(dsn, sqlitePrefix):
		return sqlite.Open(strings.TrimPrefix(dsn, sqlitePrefix)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, dsn)
	}
}

func (f *GormDB) Dialect() string {
	return f.DB.Dialector.Name()
}

func (f *GormDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}

func (f *GormDB) MigrateModels(models ...any) error {
	err := f.DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// WithTx runs fn inside a transaction. The handle passed to fn is bound to
// the transaction; fn returning an error rolls everything back.
func (f *GormDB) WithTx(ctx context.Context, fn func(tx *GormDB) error) error {
	return f.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormDB{DB: tx})
	})
}

// LockOwnership blocks until the caller holds the ownership lock. The lock
// is released when the surrounding transaction ends. On sqlite the single
// connection pool already serializes transactions.
func (f *GormDB) LockOwnership(ctx context.Context) error {
	if f.Dialect() != "postgres" {
		return nil
	}

	err := f.DB.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", ownershipLockKey).Error
	if err != nil {
		return fmt.Errorf("acquire ownership lock: %w", err)
	}
	return nil
}

func (f *GormDB) Insert(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("insert to table: %w: %w", ErrDuplicateKey, err)
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	return f.GetOne(ctx, Query{Where: fmt.Sprintf("%s = ?", column), Args: []any{value}}, entity)
}

func (f *GormDB) GetOne(ctx context.Context, q Query, entity any) error {
	err := f.apply(ctx, q).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record where %q: %w", q.Where, err)
	}
	return nil
}

func (f *GormDB) GetAll(ctx context.Context, q Query, entities any) error {
	err := f.apply(ctx, q).Find(entities).Error
	if err != nil {
		return fmt.Errorf("getting records where %q: %w", q.Where, err)
	}
	return nil
}

func (f *GormDB) Pluck(ctx context.Context, model any, column string, q Query, dest any) error {
	err := f.apply(ctx, q).Model(model).Pluck(column, dest).Error
	if err != nil {
		return fmt.Errorf("pluck %q where %q: %w", column, q.Where, err)
	}
	return nil
}

func (f *GormDB) Exists(ctx context.Context, model any, q Query) (bool, error) {
	var count int64
	err := f.apply(ctx, q).Model(model).Limit(1).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count where %q: %w", q.Where, err)
	}
	return count > 0, nil
}

// Aggregate evaluates a scalar SQL expression and returns every row the
// database produced, so callers can detect a result that is not scalar.
func (f *GormDB) Aggregate(ctx context.Context, model any, expr string, q Query) ([]sql.NullInt64, error) {
	rows, err := f.apply(ctx, q).Model(model).Select(expr).Rows()
	if err != nil {
		return nil, fmt.Errorf("aggregate %q: %w", expr, err)
	}
	defer rows.Close()

	var values []sql.NullInt64
	for rows.Next() {
		var v sql.NullInt64
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan aggregate %q: %w", expr, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("aggregate rows %q: %w", expr, err)
	}

	return values, nil
}

// UpdateColumn sets column to value on every row matched by q. A nil value
// stores SQL NULL.
func (f *GormDB) UpdateColumn(ctx context.Context, model any, column string, value any, q Query) (int64, error) {
	if q.Where == "" {
		return 0, fmt.Errorf("update %q: refusing to update without a condition", column)
	}

	res := f.DB.WithContext(ctx).Model(model).Where(q.Where, q.Args...).Update(column, value)
	if res.Error != nil {
		return 0, fmt.Errorf("update %q where %q: %w", column, q.Where, res.Error)
	}
	return res.RowsAffected, nil
}

func (f *GormDB) apply(ctx context.Context, q Query) *gorm.DB {
	tx := f.DB.WithContext(ctx)
	if q.Where != "" {
		tx = tx.Where(q.Where, q.Args...)
	}
	if q.Order != "" {
		tx = tx.Order(q.Order)
	}
	if q.Page != nil {
		tx = tx.Offset(q.Page.Offset).Limit(q.Page.Limit)
	}
	if q.Preload != "" {
		tx = tx.Preload(q.Preload, func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		})
	}
	return tx
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
