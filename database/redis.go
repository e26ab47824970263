package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrLockNotAcquired is returned when every lock attempt found the key held.
var ErrLockNotAcquired = errors.New("failed to acquire lock after retries")

type RedisConfig struct {
	URL          string
	PoolSize     int
	DialTimeout  time.Duration
	MinIdleConns int
	ReadTimeout  time.Duration
	MaxRetries   int
}

// LoadRedisConfig reads pool tuning from the environment with default fallbacks.
func LoadRedisConfig(url string, log logrus.FieldLogger) RedisConfig {
	return RedisConfig{
		URL:          url,
		PoolSize:     getEnvAsInt(log, "REDIS_POOL_SIZE", 10),
		DialTimeout:  getEnvAsDuration(log, "REDIS_DIAL_TIMEOUT", 30*time.Second),
		MinIdleConns: getEnvAsInt(log, "REDIS_MIN_IDLE_CONNS", 5),
		ReadTimeout:  getEnvAsDuration(log, "REDIS_READ_TIMEOUT", 10*time.Second),
		MaxRetries:   getEnvAsInt(log, "REDIS_MAX_RETRIES", 3),
	}
}

func getEnvAsInt(log logrus.FieldLogger, name string, defaultValue int) int {
	if value, exists := os.LookupEnv(name); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		log.Warnf("Invalid integer value for %s, using default: %d", name, defaultValue)
	}
	return defaultValue
}

func getEnvAsDuration(log logrus.FieldLogger, name string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(name); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
		log.Warnf("Invalid duration value for %s, using default: %s", name, defaultValue)
	}
	return defaultValue
}

// NewRedisClient creates a Redis client with the provided configuration and pings it.
func NewRedisClient(ctx context.Context, config RedisConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.PoolSize = config.PoolSize
	opt.MinIdleConns = config.MinIdleConns
	opt.DialTimeout = config.DialTimeout
	opt.ReadTimeout = config.ReadTimeout
	opt.MaxRetries = config.MaxRetries

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Redis server: %w", err)
	}
	return client, nil
}

// Locker hands out short-lived distributed locks backed by Redis SETNX.
type Locker struct {
	client     *redis.Client
	ttl        time.Duration
	maxRetries int
	retryDelay time.Duration
}

// NewLocker creates a Locker with 10s lock expiry and three attempts 2s apart.
func NewLocker(client *redis.Client) *Locker {
	return &Locker{
		client:     client,
		ttl:        10 * time.Second,
		maxRetries: 3,
		retryDelay: 2 * time.Second,
	}
}

const releaseLockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`

var releaseScript = redis.NewScript(releaseLockScript)

// Acquire takes the lock on key, retrying while it is held elsewhere. The
// returned func releases it; it only deletes the key if this caller still owns it.
func (l *Locker) Acquire(ctx context.Context, key string) (func(context.Context) error, error) {
	if l.client == nil {
		return nil, errors.New("redis client is not initialized")
	}
	value := uuid.New().String()

	var lastErr error
	for i := 0; i < l.maxRetries; i++ {
		locked, err := l.client.SetNX(ctx, key, value, l.ttl).Result()
		if err == nil && locked {
			return func(ctx context.Context) error { return l.release(ctx, key, value) }, nil
		}
		lastErr = err
		if i < l.maxRetries-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(l.retryDelay):
			}
		}
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrLockNotAcquired, lastErr)
	}
	return nil, ErrLockNotAcquired
}

func (l *Locker) release(ctx context.Context, key, value string) error {
	result, err := releaseScript.Run(ctx, l.client, []string{key}, value).Int64()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if result == 0 {
		return errors.New("lock release failed: not the lock owner")
	}
	return nil
}

// LogPoolStats logs the connection pool statistics for monitoring.
func LogPoolStats(client *redis.Client, log logrus.FieldLogger) {
	stats := client.PoolStats()
	log.WithFields(logrus.Fields{
		"total": stats.TotalConns,
		"idle":  stats.IdleConns,
		"stale": stats.StaleConns,
	}).Info("Redis pool stats")
}
