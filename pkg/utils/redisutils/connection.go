// The redisutils package simplifies and automates recurring operations like
// connecting to, formatting for, and parsing from Redis.
package redisutils

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const (
	ProdAddress = "localhost:6379"
	TestAddress = "localhost:6380"
)

// SetupClient() initializes a new Redis client for the specified address.
// An empty address means ProdAddress.
func SetupClient(address string) *redis.Client {
	if address == "" {
		address = ProdAddress
	}
	return redis.NewClient(&redis.Options{
		Addr: address,
	})
}

// SetupTestClient() initializes a new Redis client for testing.
func SetupTestClient() *redis.Client {
	return SetupClient(TestAddress)
}

// CleanupRedis() cleans up the Redis database between tests to ensure isolation.
func CleanupRedis(client *redis.Client) {
	client.FlushAll(context.Background())
}
