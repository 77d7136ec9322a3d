package mirror_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storesage/internal/sync/mirror"
)

func getRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		t.Skipf("Redis no disponible: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

// stores cada implementación debe cumplir el mismo contrato.
func stores(t *testing.T) map[string]func(t *testing.T) mirror.Store {
	return map[string]func(t *testing.T) mirror.Store{
		"memory": func(t *testing.T) mirror.Store { return mirror.NewMemoryStore() },
		"file": func(t *testing.T) mirror.Store {
			return mirror.NewFileStore(filepath.Join(t.TempDir(), "sub", "mirror.json"))
		},
		"redis": func(t *testing.T) mirror.Store {
			client := getRedisClient(t)
			prefix := "storesage-test:" + t.Name() + ":"
			s := mirror.NewRedisStore(client, prefix)
			require.NoError(t, mirror.Clear(context.Background(), s))
			return s
		},
	}
}

func TestStore_Contrato(t *testing.T) {
	for name, newStore := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)

			_, ok, err := s.Get(ctx, mirror.KeyProducts)
			require.NoError(t, err)
			assert.False(t, ok, "clave ausente")

			require.NoError(t, s.Set(ctx, mirror.KeyProducts, []byte(`[{"id":"p1"}]`)))
			got, ok, err := s.Get(ctx, mirror.KeyProducts)
			require.NoError(t, err)
			require.True(t, ok)
			assert.JSONEq(t, `[{"id":"p1"}]`, string(got))

			require.NoError(t, s.Set(ctx, mirror.KeyProducts, []byte(`[]`)))
			got, _, err = s.Get(ctx, mirror.KeyProducts)
			require.NoError(t, err)
			assert.JSONEq(t, `[]`, string(got), "Set sobrescribe")

			require.NoError(t, s.Delete(ctx, mirror.KeyProducts))
			_, ok, err = s.Get(ctx, mirror.KeyProducts)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Delete(ctx, mirror.KeyProducts), "borrar una clave ausente no falla")
		})
	}
}

func TestCollection_LoadSaveClear(t *testing.T) {
	ctx := context.Background()
	s := mirror.NewMemoryStore()

	empty, err := mirror.LoadCollection(ctx, s, mirror.KeyReminders)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	records := []mirror.Record{{"id": "r1", "note": "pedir"}}
	require.NoError(t, mirror.SaveCollection(ctx, s, mirror.KeyReminders, records))
	require.NoError(t, mirror.SaveCollection(ctx, s, mirror.KeyProducts, []mirror.Record{{"id": "p1"}}))

	got, err := mirror.LoadCollection(ctx, s, mirror.KeyReminders)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "pedir", got[0]["note"])

	require.NoError(t, mirror.Clear(ctx, s))
	for _, key := range mirror.Keys {
		_, ok, err := s.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}
}

func TestLoadCollection_Corrupta(t *testing.T) {
	ctx := context.Background()
	s := mirror.NewMemoryStore()
	require.NoError(t, s.Set(ctx, mirror.KeyBorrowed, []byte(`{"no":"es un arreglo"}`)))

	_, err := mirror.LoadCollection(ctx, s, mirror.KeyBorrowed)
	assert.Error(t, err)
}

func TestFileStore_PersisteEntreInstancias(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "mirror.json")
	assert.Equal(t, path, mirror.NewFileStore(path).Path())

	require.NoError(t, mirror.NewFileStore(path).Set(ctx, mirror.KeyProducts, []byte(`[{"id":"p1"}]`)))

	got, ok, err := mirror.NewFileStore(path).Get(ctx, mirror.KeyProducts)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"p1"}]`, string(got))

	assert.Error(t, mirror.NewFileStore(path).Set(ctx, mirror.KeyProducts, []byte(`no-json`)))
}
