package store

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithPoolSize(t *testing.T) {
	t.Parallel()

	cfg, err := pgxpool.ParseConfig("host=localhost dbname=vendasml")
	require.NoError(t, err)
	cfg.MaxConns = defaultPoolSize

	WithPoolSize(4)(cfg)
	assert.Equal(t, int32(4), cfg.MaxConns)
}

func TestWithPoolSize_NonPositiveKeepsDefault(t *testing.T) {
	t.Parallel()

	cfg, err := pgxpool.ParseConfig("host=localhost dbname=vendasml")
	require.NoError(t, err)
	cfg.MaxConns = defaultPoolSize

	WithPoolSize(0)(cfg)
	assert.Equal(t, int32(defaultPoolSize), cfg.MaxConns)

	WithPoolSize(-1)(cfg)
	assert.Equal(t, int32(defaultPoolSize), cfg.MaxConns)
}
