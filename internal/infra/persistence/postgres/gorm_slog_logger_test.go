package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"housecash/config"
	deliverycontext "housecash/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func sqlFn() (string, int64) { return `SELECT * FROM "testimonials"`, 3 }

func TestGormSlogLogger_Trace(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.SlowQuery = 50 * time.Millisecond

	tests := []struct {
		name    string
		begin   time.Time
		err     error
		want    string
		wantNot string
	}{
		{name: "failed query", begin: time.Now(), err: errors.New("relation does not exist"), want: "[Postgres] Query failed"},
		{name: "record not found is quiet", begin: time.Now(), err: gorm.ErrRecordNotFound, wantNot: "[Postgres]"},
		{name: "slow query", begin: time.Now().Add(-time.Second), want: "[Postgres] Slow query"},
		{name: "fast query below info level", begin: time.Now(), wantNot: "[Postgres]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)

			l.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			if tt.want != "" {
				assert.Contains(t, buf.String(), tt.want)
				assert.Contains(t, buf.String(), "rows=3")
			}
			if tt.wantNot != "" {
				assert.NotContains(t, buf.String(), tt.wantNot)
			}
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), nil)
	reqLogger := slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-9"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-9")
	assert.Contains(t, scoped.String(), "error=boom")
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), nil)

	l.LogMode(logger.Silent).Error(context.Background(), "dropped %d", 1)
	assert.Empty(t, buf.String())

	l.Warn(context.Background(), "kept %d", 2)
	assert.Contains(t, buf.String(), "[Postgres] kept 2")
}
