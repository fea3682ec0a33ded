package mysqlstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Set TASKLIST_TEST_MYSQL_DSN to run against a real server, e.g.
// root:secret@tcp(127.0.0.1:3306)/tasklist
func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv("TASKLIST_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("TASKLIST_TEST_MYSQL_DSN not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_RequiresDSN(t *testing.T) {
	_, err := Open(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dsn is required")
}

func TestStore_SetGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	key := "test-" + time.Now().Format("150405.000000")

	_, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, key, `["a"]`))
	require.NoError(t, s.Set(ctx, key, `["a","b"]`))

	v, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["a","b"]`, v)
}
