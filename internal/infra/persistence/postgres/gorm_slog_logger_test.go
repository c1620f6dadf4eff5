package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"proptrust/config"
	deliverycontext "proptrust/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "fast query is quiet", elapsed: time.Millisecond},
		{name: "fast query logged in debug", debug: true, elapsed: time.Millisecond, want: "GORM query"},
		{name: "slow query", elapsed: 100 * time.Millisecond, want: "GORM slow query"},
		{name: "failed query", elapsed: time.Millisecond, err: assert.AnError, want: "GORM query failed"},
		{name: "missing row is expected", elapsed: time.Millisecond, err: gorm.ErrRecordNotFound},
		{name: "duplicate key is expected", elapsed: time.Millisecond, err: gorm.ErrDuplicatedKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var base, scoped bytes.Buffer
			opts := &slog.HandlerOptions{Level: slog.LevelDebug}

			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			cfg.Env.Log.SlowQuery = 50 * time.Millisecond
			gl := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, opts)), cfg)

			reqLogger := slog.New(slog.NewTextHandler(&scoped, opts)).With(slog.String("request_id", "req-1"))
			ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

			gl.Trace(ctx, time.Now().Add(-tt.elapsed), sqlFn, tt.err)

			assert.Empty(t, base.String())
			if tt.want == "" {
				assert.Empty(t, scoped.String())

				return
			}
			assert.Contains(t, scoped.String(), tt.want)
			assert.Contains(t, scoped.String(), "request_id=req-1")
		})
	}
}

func TestGormSlogLogger_FallsBackToBaseLogger(t *testing.T) {
	var base bytes.Buffer
	gl := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), nil)

	gl.Warn(context.Background(), "pool exhausted after %d tries", 3)

	assert.Contains(t, base.String(), "pool exhausted after 3 tries")
}
