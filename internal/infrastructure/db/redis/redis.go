package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultPingTimeout  = 5 * time.Second
	defaultReadTimeout  = 500 * time.Millisecond
	defaultWriteTimeout = 500 * time.Millisecond
)

// Config captures the settings for the product cache connection. The cache is
// an optional dependency, so the timeouts default tight: a slow Redis should
// degrade to cache misses, not slow the catalog down.
type Config struct {
	Addr         string
	Password     string
	DB           int
	PingTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// options expands the config into client options, applying defaults.
func (c Config) options() *redis.Options {
	readTimeout := c.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = defaultReadTimeout
	}
	writeTimeout := c.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}
	return &redis.Options{
		Addr:         c.Addr,
		Password:     c.Password,
		DB:           c.DB,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
}

// Connect initialises the client backing the product cache and validates
// connectivity with a ping so a bad address is caught at startup rather than
// surfacing as a permanent stream of cache misses.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(cfg.options())

	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
