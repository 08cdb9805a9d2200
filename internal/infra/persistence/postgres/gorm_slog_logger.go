package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// slogGormLogger routes gorm output through slog. Queries issued while
// serving a request are logged with that request's logger, so they carry
// its request_id.
type slogGormLogger struct {
	base          *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = gormlogger.Info
	}

	return &slogGormLogger{
		base:          base,
		level:         level,
		slowThreshold: slowQueryThreshold,
	}
}

func (l *slogGormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *slogGormLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args...)
}

func (l *slogGormLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args...)
}

func (l *slogGormLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, args...)
}

func (l *slogGormLogger) printf(ctx context.Context, threshold gormlogger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.base == nil || l.level < threshold {
		return
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed statements, slow statements and, at Info, every statement.
// Not-found lookups are expected and never logged as failures.
func (l *slogGormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)

	var level slog.Level
	var msg string
	extra := slog.Attr{}

	switch {
	case failed && l.level >= gormlogger.Error:
		level, msg, extra = slog.LevelError, "gorm query failed", slog.String("error", err.Error())
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		level, msg, extra = slog.LevelWarn, "gorm slow query", slog.Duration("threshold", l.slowThreshold)
	case l.level >= gormlogger.Info:
		level, msg = slog.LevelDebug, "gorm query"
	default:
		return
	}

	sql, rows := fc()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *slogGormLogger) loggerFor(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.base
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
