package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opt.PoolSize = 10
	opt.MinIdleConns = 5
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Role name caching, keyed by role id. Written at login so repeated logins
// skip the role lookup round trip.
func (c *Client) SetRoleName(roleID, roleName string, ttl time.Duration) error {
	ctx := context.Background()
	return c.rdb.Set(ctx, "role:"+roleID, roleName, ttl).Err()
}

func (c *Client) GetRoleName(roleID string) (string, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "role:"+roleID).Result()
	if err != nil {
		if err == redis.Nil {
			return "", fmt.Errorf("role not cached")
		}
		return "", fmt.Errorf("failed to get role name: %w", err)
	}
	return val, nil
}

// Product caching for cart operations.
func (c *Client) SetProduct(productID string, product interface{}, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}
	return c.rdb.Set(ctx, "product:"+productID, jsonData, ttl).Err()
}

func (c *Client) GetProduct(productID string, dest interface{}) error {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "product:"+productID).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("product not cached")
		}
		return fmt.Errorf("failed to get product: %w", err)
	}
	return json.Unmarshal([]byte(val), dest)
}

func (c *Client) DeleteProduct(productID string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "product:"+productID).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
