package repository_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"nevod_store/internal/domain/models"
	"nevod_store/internal/repository"
	redisapp "nevod_store/internal/storage/redis"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupListingCache(t *testing.T) (*repository.RedisListingCache, redismock.ClientMock) {
	t.Helper()

	db, mock := redismock.NewClientMock()
	cache := repository.NewRedisListingCache(&redisapp.Client{Client: db})

	return cache, mock
}

func TestRedisListingCache_GetProductListing(t *testing.T) {
	ctx := context.Background()
	categoryID := uuid.New()

	t.Run("cache miss returns nil without error", func(t *testing.T) {
		cache, mock := setupListingCache(t)

		key := "catalog:products:" + categoryID.String() + ":1:20"
		mock.ExpectGet(key).RedisNil()

		listing, err := cache.GetProductListing(ctx, categoryID, 1, 20)

		require.NoError(t, err)
		assert.Nil(t, listing)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache hit returns decoded listing", func(t *testing.T) {
		cache, mock := setupListingCache(t)

		stored := repository.ProductListing{
			Products: []models.Product{{ID: uuid.New(), Name: "Сеть"}},
			Total:    1,
		}
		data, err := json.Marshal(stored)
		require.NoError(t, err)

		key := "catalog:products:" + categoryID.String() + ":1:20"
		mock.ExpectGet(key).SetVal(string(data))

		listing, err := cache.GetProductListing(ctx, categoryID, 1, 20)

		require.NoError(t, err)
		require.NotNil(t, listing)
		assert.Equal(t, 1, listing.Total)
		assert.Equal(t, "Сеть", listing.Products[0].Name)
	})

	t.Run("corrupted payload is an error", func(t *testing.T) {
		cache, mock := setupListingCache(t)

		key := "catalog:products:" + categoryID.String() + ":1:20"
		mock.ExpectGet(key).SetVal("not-json")

		_, err := cache.GetProductListing(ctx, categoryID, 1, 20)
		assert.Error(t, err)
	})
}

func TestRedisListingCache_SetProductListing(t *testing.T) {
	ctx := context.Background()
	categoryID := uuid.New()

	cache, mock := setupListingCache(t)

	listing := repository.ProductListing{Total: 2}
	data, err := json.Marshal(listing)
	require.NoError(t, err)

	key := "catalog:products:" + categoryID.String() + ":2:10"
	mock.ExpectSet(key, data, 5*time.Minute).SetVal("OK")

	err = cache.SetProductListing(ctx, categoryID, 2, 10, listing, 5*time.Minute)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisListingCache_Invalidate(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes all listing keys", func(t *testing.T) {
		cache, mock := setupListingCache(t)

		keys := []string{
			"catalog:products:a:1:20",
			"catalog:products:b:1:20",
		}
		mock.ExpectKeys("catalog:products:*").SetVal(keys)
		mock.ExpectDel(keys...).SetVal(int64(len(keys)))

		require.NoError(t, cache.InvalidateProductListings(ctx))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing cached is a no-op", func(t *testing.T) {
		cache, mock := setupListingCache(t)

		mock.ExpectKeys("catalog:products:*").SetVal([]string{})

		require.NoError(t, cache.InvalidateProductListings(ctx))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
