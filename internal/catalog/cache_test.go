package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/panier-labs/backend-panier/internal/catalog"
)

func TestCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := catalog.NewCache(client, time.Minute)

	ctx := context.Background()
	products := seedProducts()
	require.NoError(t, cache.SetJSON(ctx, "catalog:products", products))

	var cached []catalog.Product
	hit, err := cache.GetJSON(ctx, "catalog:products", &cached)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, products, cached)
}

func TestCacheMiss(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := catalog.NewCache(client, time.Minute)

	var cached []catalog.Product
	hit, err := cache.GetJSON(context.Background(), "catalog:products", &cached)
	require.NoError(t, err)
	require.False(t, hit)
}

func TestCacheNilClientIsNoop(t *testing.T) {
	cache := catalog.NewCache(nil, time.Minute)
	require.NoError(t, cache.SetJSON(context.Background(), "catalog:products", seedProducts()))

	var cached []catalog.Product
	hit, err := cache.GetJSON(context.Background(), "catalog:products", &cached)
	require.NoError(t, err)
	require.False(t, hit)
}

func TestListProductsServesFromCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := &fakeStore{products: seedProducts()}
	svc, err := catalog.NewService(catalog.ServiceConfig{
		Store: store,
		Cache: catalog.NewCache(client, time.Minute),
	})
	require.NoError(t, err)

	ctx := context.Background()
	first, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, first, 3)

	// Break the store: a cache hit must keep serving.
	store.err = context.DeadlineExceeded
	second, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
