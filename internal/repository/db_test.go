package repository

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dtr-engine/internal/common"
)

func TestOpenRejectsMalformedDSN(t *testing.T) {
	cfg := common.DatabaseConfig{
		DSN:         "postgres://bad dsn with spaces",
		DialTimeout: time.Second,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	entc, pool, err := Open(t.Context(), cfg, logger)
	require.Error(t, err)
	assert.Nil(t, entc)
	assert.Nil(t, pool)
}
