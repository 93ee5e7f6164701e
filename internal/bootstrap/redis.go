package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/laxmibeekeeping/multiservice-backend/config"
)

// OpenRedis connects using individual credentials when present (Redis
// Cloud), falling back to REDIS_URL. Returns (nil, nil) when neither is
// configured; Redis is optional for this gateway.
func OpenRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	var client *redis.Client

	switch {
	case cfg.Host != "" && cfg.Password != "":
		client = redis.NewClient(&redis.Options{
			Addr:        cfg.Host + ":" + cfg.Port,
			Username:    cfg.Username,
			Password:    cfg.Password,
			DialTimeout: 5 * time.Second,
		})
	case cfg.URL != "":
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		opts.DialTimeout = 5 * time.Second
		client = redis.NewClient(opts)
	default:
		return nil, nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
