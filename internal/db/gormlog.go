package db

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// GormLogger routes gorm's logging onto the service zap logger.
type GormLogger struct {
	logs  *zap.SugaredLogger
	level logger.LogLevel
}

func NewGormLogger(logs *zap.SugaredLogger, level logger.LogLevel) *GormLogger {
	return &GormLogger{
		logs:  logs.Named("gorm"),
		level: level,
	}
}

func (l *GormLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *GormLogger) Info(_ context.Context, msg string, args ...any) {
	if l.level >= logger.Info {
		l.logs.Infof(msg, args...)
	}
}

func (l *GormLogger) Warn(_ context.Context, msg string, args ...any) {
	if l.level >= logger.Warn {
		l.logs.Warnf(msg, args...)
	}
}

func (l *GormLogger) Error(_ context.Context, msg string, args ...any) {
	if l.level >= logger.Error {
		l.logs.Errorf(msg, args...)
	}
}

func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		query, rows := fc()
		l.logs.Errorw("sql query failed", "error", err, "sql", query, "rows", rows, "elapsed", elapsed)
	case elapsed > slowQueryThreshold && l.level >= logger.Warn:
		query, rows := fc()
		l.logs.Warnw("slow sql query", "sql", query, "rows", rows, "elapsed", elapsed)
	case l.level >= logger.Info:
		query, rows := fc()
		l.logs.Debugw("sql query", "sql", query, "rows", rows, "elapsed", elapsed)
	}
}

// GormLevel picks the gorm log level matching a zap level name.
func GormLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.Info
	case "info", "warn":
		return logger.Warn
	case "silent":
		return logger.Silent
	default:
		return logger.Error
	}
}
