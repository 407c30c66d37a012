package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis connects the shared Redis client. The BFF stays up without
// Redis: rate limiting and the category cache degrade to pass-through, so a
// connection failure is logged, not fatal.
func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
		log.Println("⚠️  REDIS_URL not set, using local Redis:", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("❌ invalid REDIS_URL, continuing without Redis: %v", err)
		return
	}

	client := redis.NewClient(opt)

	res, err := client.Ping(Ctx).Result()
	if err != nil {
		log.Printf("❌ failed to connect to Redis, continuing without it: %v", err)
		return
	}

	RedisClient = client
	log.Println("✅ Connected to Redis:", res)
}
