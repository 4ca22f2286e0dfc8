package utils

import (
	"context"
	"fmt"
	"time"

	DB "Backend-VendorRisk/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// ensureClient returns the shared Redis client managed by the database
// package. If the database package didn't initialize Redis, this returns nil
// and callers skip the cache.
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// InitRedis delegates initialization to database.InitRedis so there is a
// single place responsible for creating and pinging the Redis client.
func InitRedis() {
	DB.InitRedis()
}

// CacheLinkToken stores a respondent link token → survey id mapping so link
// lookups skip Mongo. TTL tracks the link expiration. No-op without Redis.
func CacheLinkToken(token, surveyID string, ttl time.Duration) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("link_token:%s", token)
	if err := client.Set(Ctx, key, surveyID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache link token: %v", err)
	}
	return nil
}

// LookupLinkToken resolves a cached link token to a survey id. Empty string
// means cache miss (or no Redis); callers fall back to Mongo.
func LookupLinkToken(token string) (string, error) {
	client := ensureClient()
	if client == nil {
		return "", nil
	}

	key := fmt.Sprintf("link_token:%s", token)
	surveyID, err := client.Get(Ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("failed to look up link token: %v", err)
	}
	return surveyID, nil
}

// DropLinkToken removes a cached link token (used when a survey completes).
func DropLinkToken(token string) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("link_token:%s", token)
	if err := client.Del(Ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to drop link token: %v", err)
	}
	return nil
}
