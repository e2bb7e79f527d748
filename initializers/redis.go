package initializers

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectToRedis returns a client for the cart mirror. The gateway still
// serves requests when Redis is down; carts just stop surviving restarts,
// so a failed ping is logged rather than fatal.
func ConnectToRedis(cfg Config, log *zap.Logger) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, carts will not persist", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	} else {
		log.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
	}
	return rdb
}
