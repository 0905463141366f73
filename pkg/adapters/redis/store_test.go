package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/skooma/pkg/adapters/redis"
	"github.com/aretw0/skooma/pkg/ports"
	"github.com/aretw0/skooma/pkg/schemafile"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return redis.NewWithClient(client, opts...), mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newTestStore(t)
	ports.RunSchemaStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	store, mr := newTestStore(t, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	def := &schemafile.Definition{
		Columns: map[string]schemafile.ColumnSpec{"age": {Type: "int"}},
	}

	require.NoError(t, store.Save(ctx, "users", def))

	_, err := store.Load(ctx, "users")
	assert.NoError(t, err)

	// miniredis time is virtual; advance it past the TTL.
	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "users")
	assert.Error(t, err, "schema should expire")
}

func TestRedisStore_Prefix(t *testing.T) {
	store, mr := newTestStore(t, redis.WithPrefix("custom:"))
	ctx := context.Background()

	def := &schemafile.Definition{
		Columns: map[string]schemafile.ColumnSpec{"age": {Type: "int"}},
	}
	require.NoError(t, store.Save(ctx, "users", def))

	assert.True(t, mr.Exists("custom:users"))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"users"}, names)
}

func TestRedisStore_Ping(t *testing.T) {
	store, _ := newTestStore(t)
	assert.NoError(t, store.Ping(context.Background()))
}
