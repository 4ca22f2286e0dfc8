package utils

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	DB "Backend-VendorRisk/src/database"
	"Backend-VendorRisk/src/models"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const settingCacheTTL = 5 * time.Minute

// GetIntSetting reads a numeric setting through the Redis cache. Cache miss
// falls back to Mongo; missing document falls back to the given default.
// Returns the default if neither store is reachable.
func GetIntSetting(ctx context.Context, key string, defaultValue int) int {
	cacheKey := fmt.Sprintf("setting:%s", key)

	client := ensureClient()
	if client != nil {
		cached, err := client.Get(ctx, cacheKey).Result()
		if err == nil {
			if v, convErr := strconv.Atoi(cached); convErr == nil {
				return v
			}
		} else if err != redis.Nil {
			log.Printf("[settings] redis get %s: %v", key, err)
		}
	}

	var setting models.Setting
	err := DB.SettingCollection.FindOne(ctx, bson.M{"_id": key}).Decode(&setting)
	if err != nil {
		return defaultValue
	}

	if client != nil {
		if err := client.Set(ctx, cacheKey, strconv.Itoa(setting.Value), settingCacheTTL).Err(); err != nil {
			log.Printf("[settings] redis set %s: %v", key, err)
		}
	}
	return setting.Value
}

// PutIntSetting upserts a numeric setting and invalidates its cache entry.
func PutIntSetting(ctx context.Context, key string, value int) error {
	update := bson.M{"$set": bson.M{"value": value, "updatedAt": time.Now()}}
	opts := options.Update().SetUpsert(true)
	if _, err := DB.SettingCollection.UpdateByID(ctx, key, update, opts); err != nil {
		return err
	}

	if client := ensureClient(); client != nil {
		if err := client.Del(ctx, fmt.Sprintf("setting:%s", key)).Err(); err != nil {
			log.Printf("[settings] redis del %s: %v", key, err)
		}
	}
	return nil
}
