// Package testutils provides shared test helpers.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/saltwindgames/saltwind/internal/redis"
)

// CreateTestRedisClient spins up an in-memory Redis and returns a client
// pointed at it, plus a cleanup func.
func CreateTestRedisClient(t *testing.T) (redis.Client, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	return client, func() { mr.Close() }
}
