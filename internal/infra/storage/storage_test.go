package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"storefront/internal/domain/service"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStorage(t *testing.T, store service.SecureStorage) {
	t.Helper()
	ctx := context.Background()

	_, found, err := store.Get(ctx, "auth-token")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "auth-token", "abc"))
	require.NoError(t, store.Set(ctx, "auth-user", `{"id":"u1"}`))

	value, found, err := store.Get(ctx, "auth-token")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "abc", value)

	require.NoError(t, store.Set(ctx, "auth-token", "def"))
	value, _, err = store.Get(ctx, "auth-token")
	require.NoError(t, err)
	assert.Equal(t, "def", value)

	require.NoError(t, store.Delete(ctx, "auth-token"))
	require.NoError(t, store.Delete(ctx, "auth-token"), "delete of a missing key is a no-op")

	_, found, err = store.Get(ctx, "auth-token")
	require.NoError(t, err)
	assert.False(t, found)

	value, found, err = store.Get(ctx, "auth-user")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"id":"u1"}`, value)
}

func TestMemoryStorage(t *testing.T) {
	exerciseStorage(t, NewMemoryStorage())
}

func TestFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	exerciseStorage(t, NewFileStorage(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(fileMode), info.Mode().Perm())
}

func TestFileStorage_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	require.NoError(t, NewFileStorage(path).Set(ctx, "auth-token", "persisted"))

	value, found, err := NewFileStorage(path).Get(ctx, "auth-token")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "persisted", value)
}

func TestFileStorage_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, _, err := NewFileStorage(path).Get(context.Background(), "auth-token")
	assert.Error(t, err)
}

func TestRedisStorage(t *testing.T) {
	addr := os.Getenv("STOREFRONT_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("STOREFRONT_TEST_REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	prefix := "storefront-test:" + t.Name() + ":"
	t.Cleanup(func() {
		ctx := context.Background()
		client.Del(ctx, prefix+"auth-token", prefix+"auth-user")
	})

	exerciseStorage(t, NewRedisStorage(client, prefix))
}
