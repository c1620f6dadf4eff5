package health

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"proptrust/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveHealth(t *testing.T, handler *Handler) (int, Report) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler.Check(e.NewContext(req, rec)))

	var report Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))

	return rec.Code, report
}

func TestHealth_AllChecksPass(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	handler := NewHandler(Params{DB: testutil.NewSQLiteDB(t), Redis: client, Logger: slog.New(slog.DiscardHandler)})

	code, report := serveHealth(t, handler)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, statusOK, report.Status)
	assert.Equal(t, map[string]string{"postgres": statusOK, "redis": statusOK}, report.Checks)
}

func TestHealth_RedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	handler := NewHandler(Params{DB: testutil.NewSQLiteDB(t), Redis: client, Logger: slog.New(slog.DiscardHandler)})

	code, report := serveHealth(t, handler)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, statusDegraded, report.Status)
	assert.Equal(t, statusOK, report.Checks["postgres"])
	assert.NotEqual(t, statusOK, report.Checks["redis"])
}

func TestHealth_WithoutRedis(t *testing.T) {
	handler := NewHandler(Params{DB: testutil.NewSQLiteDB(t), Logger: slog.New(slog.DiscardHandler)})

	code, report := serveHealth(t, handler)
	assert.Equal(t, http.StatusOK, code)
	assert.NotContains(t, report.Checks, "redis")
}
