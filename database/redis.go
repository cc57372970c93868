package database

import (
	"context"

	"github.com/falconakhil/CompeteHub/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// NewRedisClient connects to redis, which backs the contest leaderboards.
// A failed ping is logged but not fatal: leaderboard reads fall back to the
// database when redis is down.
func NewRedisClient(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unreachable, leaderboards will use database fallback")
	} else {
		log.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connected")
	}
	return client
}
