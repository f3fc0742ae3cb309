package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type page struct {
	Items []string `json:"items"`
	Total int64    `json:"total"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestSetGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	stored := page{Items: []string{"aspirin", "ibuprofen"}, Total: 2}
	store.Set(ctx, "products:list:p1", stored, "products")

	var got page
	require.True(t, store.Get(ctx, "products:list:p1", &got))
	assert.Equal(t, stored, got)
}

func TestGetMiss(t *testing.T) {
	store := newTestStore(t)

	var got page
	assert.False(t, store.Get(context.Background(), "missing", &got))
}

func TestInvalidateDropsAllKeysUnderTag(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Set(ctx, "products:list:p1", page{Total: 1}, "products")
	store.Set(ctx, "products:list:p2", page{Total: 1}, "products")
	store.Set(ctx, "suppliers:list:p1", page{Total: 1}, "suppliers")

	store.Invalidate(ctx, "products")

	var got page
	assert.False(t, store.Get(ctx, "products:list:p1", &got))
	assert.False(t, store.Get(ctx, "products:list:p2", &got))
	// Other tags survive.
	assert.True(t, store.Get(ctx, "suppliers:list:p1", &got))
}

func TestNilStoreIsSafe(t *testing.T) {
	var store *Store
	ctx := context.Background()

	store.Set(ctx, "k", page{}, "t")
	store.Invalidate(ctx, "t")

	var got page
	assert.False(t, store.Get(ctx, "k", &got))
}

func TestListKeyIsDeterministic(t *testing.T) {
	a := ListKey("products", 2, 10, "asp", "name", "asc")
	b := ListKey("products", 2, 10, "asp", "name", "asc")
	c := ListKey("products", 3, 10, "asp", "name", "asc")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
