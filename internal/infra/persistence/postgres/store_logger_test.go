package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"steamcache/config"
	deliverycontext "steamcache/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCapturingLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func statementFn() (string, int64) {
	return `SELECT * FROM "games" WHERE app_id = '730'`, 1
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal(line, &entry))
		entries = append(entries, entry)
	}

	return entries
}

func TestStoreLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	cfg := &config.Config{}
	cfg.Database.SlowQueryThreshold = time.Second

	storeLog := newStoreLogger(newCapturingLogger(&base), cfg)
	requestLogger := newCapturingLogger(&scoped).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)

	storeLog.Trace(ctx, time.Now(), statementFn, errors.New("connection reset"))

	assert.Empty(t, base.String())
	entries := decodeLines(t, &scoped)
	require.Len(t, entries, 1)
	assert.Equal(t, "Store statement failed", entries[0]["msg"])
	assert.Equal(t, "req-42", entries[0]["request_id"])
	assert.Equal(t, "connection reset", entries[0]["error"])
}

func TestStoreLogger_SkipsRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Database.SlowQueryThreshold = time.Second

	storeLog := newStoreLogger(newCapturingLogger(&buf), cfg)
	storeLog.Trace(context.Background(), time.Now(), statementFn, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestStoreLogger_SlowThresholdFromConfig(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Database.SlowQueryThreshold = 50 * time.Millisecond

	storeLog := newStoreLogger(newCapturingLogger(&buf), cfg)
	storeLog.Trace(context.Background(), time.Now().Add(-time.Second), statementFn, nil)
	storeLog.Trace(context.Background(), time.Now(), statementFn, nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "Slow store statement", entries[0]["msg"])
	assert.Equal(t, "WARN", entries[0]["level"])
}

func TestStoreLogger_DebugLogsEveryStatement(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	cfg.Database.SlowQueryThreshold = time.Minute

	storeLog := newStoreLogger(newCapturingLogger(&buf), cfg)
	storeLog.Trace(context.Background(), time.Now(), statementFn, nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "Store statement", entries[0]["msg"])
	assert.InDelta(t, 1, entries[0]["rows"], 0)
}
