package audit_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garderie-etoiles/website/pkg/audit"
)

func TestLoggerLog(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps id and creation time", func(t *testing.T) {
		storage := audit.NewMemoryStorage()
		log := audit.NewLogger(storage)

		before := time.Now()
		err := log.Log(ctx, audit.ActionContactSubmitted,
			audit.WithIP("203.0.113.7"),
			audit.WithUserAgent("Mozilla/5.0"),
			audit.WithDetail("email", "jean@example.com"),
		)
		require.NoError(t, err)

		events := storage.Events()
		require.Len(t, events, 1)

		e := events[0]
		assert.NotEmpty(t, e.ID)
		assert.Equal(t, audit.ActionContactSubmitted, e.Action)
		assert.Equal(t, "203.0.113.7", e.IP)
		assert.Equal(t, "Mozilla/5.0", e.UserAgent)
		assert.Equal(t, "jean@example.com", e.Details["email"])
		assert.False(t, e.CreatedAt.Before(before))
		assert.False(t, e.CreatedAt.After(time.Now()))
	})

	t.Run("rejects empty action", func(t *testing.T) {
		log := audit.NewLogger(audit.NewMemoryStorage())

		err := log.Log(ctx, "")
		assert.ErrorIs(t, err, audit.ErrEventValidation)
	})

	t.Run("surfaces storage error without panicking", func(t *testing.T) {
		storage := audit.NewMemoryStorage()
		storage.FailWith(errors.New("sink unavailable"))
		log := audit.NewLogger(storage)

		err := log.Log(ctx, audit.ActionRateLimitExceeded)
		assert.Error(t, err)
	})

	t.Run("merges detail maps", func(t *testing.T) {
		storage := audit.NewMemoryStorage()
		log := audit.NewLogger(storage)

		err := log.Log(ctx, audit.ActionRateLimitExceeded,
			audit.WithDetails(map[string]any{"endpoint": "inscription", "scope": audit.ScopeIP}),
			audit.WithDetail("key", "inscription:ip:203.0.113.7"),
		)
		require.NoError(t, err)

		e := storage.Events()[0]
		assert.Equal(t, "inscription", e.Details["endpoint"])
		assert.Equal(t, audit.ScopeIP, e.Details["scope"])
		assert.Equal(t, "inscription:ip:203.0.113.7", e.Details["key"])
	})
}

func TestNewLoggerPanicsOnNilStorage(t *testing.T) {
	assert.Panics(t, func() { audit.NewLogger(nil) })
}

func TestSlogStorage(t *testing.T) {
	var buf bytes.Buffer
	storage := audit.NewSlogStorage(slog.New(slog.NewJSONHandler(&buf, nil)))
	log := audit.NewLogger(storage)

	err := log.Log(context.Background(), audit.ActionInscriptionSubmitted,
		audit.WithIP("203.0.113.7"),
		audit.WithDetail("childName", "Léa"),
	)
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	assert.Equal(t, "audit", line["msg"])
	assert.Equal(t, audit.ActionInscriptionSubmitted, line["action"])
	assert.Equal(t, "203.0.113.7", line["ip"])
}

func TestMemoryStorageByAction(t *testing.T) {
	storage := audit.NewMemoryStorage()
	log := audit.NewLogger(storage)
	ctx := context.Background()

	require.NoError(t, log.Log(ctx, audit.ActionContactSubmitted))
	require.NoError(t, log.Log(ctx, audit.ActionRateLimitExceeded))
	require.NoError(t, log.Log(ctx, audit.ActionRateLimitExceeded))

	assert.Len(t, storage.ByAction(audit.ActionRateLimitExceeded), 2)
	assert.Len(t, storage.ByAction(audit.ActionContactSubmitted), 1)
	assert.Empty(t, storage.ByAction("other"))
}
