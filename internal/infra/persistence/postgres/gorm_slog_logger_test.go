package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn() (string, int64) {
	return `SELECT * FROM "orders"`, 3
}

func TestGormLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "query failed", err: errors.New("boom"), want: "gorm query failed"},
		{name: "record not found is quiet", err: gorm.ErrRecordNotFound, want: ""},
		{name: "slow query", elapsed: time.Second, want: "gorm slow query"},
		{name: "fast query at warn", want: ""},
		{name: "fast query at info", debug: true, want: "gorm query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{Env: config.EnvConfig{Debug: tt.debug}}
			logger := newGormSlogLogger(newBufferLogger(&buf), cfg)

			logger.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "rows=3")
		})
	}
}

func TestGormLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	logger := newGormSlogLogger(newBufferLogger(&base), nil)

	reqLogger := newBufferLogger(&scoped).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	logger.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-42")
}

func TestGormLogger_LogModeSilent(t *testing.T) {
	var buf bytes.Buffer
	logger := newGormSlogLogger(newBufferLogger(&buf), nil).LogMode(gormlogger.Silent)

	logger.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	logger.Error(context.Background(), "oops %d", 1)

	assert.Empty(t, buf.String())
}
