package utils

import (
	"context"
	"log"
	"time"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient holds visitors' day/slot selections between requests.
var SessionCacheClient *redis.Client

// InitSessionCache connects the selection session cache (REDIS_SESSION_DB).
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Session Cache): %v", err)
	}
}

// GetSessionCacheClient returns the selection session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}
