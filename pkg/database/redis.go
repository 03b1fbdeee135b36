package database

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/yourusername/trivia-bank/internal/config"
)

// Режимы подключения к Redis
const (
	RedisModeSingle   = "single"
	RedisModeSentinel = "sentinel"
	RedisModeCluster  = "cluster"
)

const redisPingTimeout = 5 * time.Second

// redisOptions переводит конфигурацию в опции универсального клиента.
// Тип клиента go-redis выбирает сам: MasterName -> sentinel, несколько адресов -> cluster.
func redisOptions(cfg config.RedisConfig) (*redis.UniversalOptions, error) {
	addrs := cfg.Addrs
	if len(addrs) == 0 && cfg.Addr != "" {
		addrs = []string{cfg.Addr}
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("redis: no address configured (redis.addrs or redis.addr)")
	}

	opts := &redis.UniversalOptions{
		Password:        cfg.Password,
		DB:              cfg.DB,
		MaxRetries:      cfg.MaxRetries,
		MinRetryBackoff: time.Duration(cfg.MinRetryBackoff) * time.Millisecond,
		MaxRetryBackoff: time.Duration(cfg.MaxRetryBackoff) * time.Millisecond,
	}

	switch cfg.Mode {
	case "", RedisModeSingle:
		opts.Addrs = addrs[:1]
	case RedisModeSentinel:
		if cfg.MasterName == "" {
			return nil, fmt.Errorf("redis: sentinel mode requires redis.master_name")
		}
		opts.Addrs = addrs
		opts.MasterName = cfg.MasterName
	case RedisModeCluster:
		opts.Addrs = addrs
	default:
		return nil, fmt.Errorf("redis: unsupported mode %q", cfg.Mode)
	}
	return opts, nil
}

// NewUniversalRedisClient подключается к Redis для ограничителя частоты запросов
// и проверяет соединение.
func NewUniversalRedisClient(ctx context.Context, cfg config.RedisConfig) (redis.UniversalClient, error) {
	opts, err := redisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewUniversalClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %v: %w", opts.Addrs, err)
	}
	return client, nil
}
