package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nevod_store/internal/domain/models"
	redisapp "nevod_store/internal/storage/redis"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ProductListing кэшируемая страница каталога для публичной витрины
type ProductListing struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
}

type RedisListingCache struct {
	Client *redisapp.Client
}

func NewRedisListingCache(client *redisapp.Client) *RedisListingCache {
	return &RedisListingCache{Client: client}
}

// GetProductListing возвращает закэшированную страницу каталога.
// Промах кэша не является ошибкой - возвращается (nil, nil).
func (r *RedisListingCache) GetProductListing(ctx context.Context, categoryID uuid.UUID, page, perPage int) (*ProductListing, error) {
	val, err := r.Client.Get(ctx, productListingKey(categoryID, page, perPage)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product listing: %w", err)
	}

	var listing ProductListing
	if err := json.Unmarshal([]byte(val), &listing); err != nil {
		return nil, fmt.Errorf("failed to decode product listing: %w", err)
	}

	return &listing, nil
}

func (r *RedisListingCache) SetProductListing(ctx context.Context, categoryID uuid.UUID, page, perPage int, listing ProductListing, ttl time.Duration) error {
	data, err := json.Marshal(listing)
	if err != nil {
		return fmt.Errorf("failed to encode product listing: %w", err)
	}

	return r.Client.Set(ctx, productListingKey(categoryID, page, perPage), data, ttl).Err()
}

// InvalidateProductListings сбрасывает все закэшированные страницы каталога.
// Вызывается после любой мутации товаров или категорий.
func (r *RedisListingCache) InvalidateProductListings(ctx context.Context) error {
	keys, err := r.Client.Keys(ctx, "catalog:products:*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.Client.Del(ctx, keys...).Err()
}

func productListingKey(categoryID uuid.UUID, page, perPage int) string {
	return fmt.Sprintf("catalog:products:%s:%d:%d", categoryID, page, perPage)
}
