package repositories

import (
	"ClinicDesk/cache"
	"ClinicDesk/logger"
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// CacheExpiry bounds how long any cached read is served.
	CacheExpiry = 7 * 24 * time.Hour

	readTimeout = 5 * time.Second

	// CacheKeyPattern matches every key the repositories cache reads under.
	CacheKeyPattern = "*_cache*"
)

// ResetCaches drops every cached read. It runs at startup, after migrations,
// so entries written by an earlier schema are never served.
func ResetCaches(ctx context.Context, c *cache.Cache) error {
	return c.DeleteAll(ctx, CacheKeyPattern)
}

// readThrough serves dest from the cache at key, falling back to load and
// caching its result. Cache failures are logged and never fail the read.
func readThrough(ctx context.Context, c *cache.Cache, log *logrus.Entry, key string, dest interface{}, load func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	err := c.GetJSON(ctx, key, dest)
	if err == nil {
		return nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		logger.ForRequest(log, ctx).WithError(err).WithField("key", key).Warn("Failed to read from cache")
	}

	if err := load(ctx); err != nil {
		return err
	}

	if err := c.SetJSON(ctx, key, dest, CacheExpiry); err != nil {
		logger.ForRequest(log, ctx).WithError(err).WithField("key", key).Warn("Failed to write to cache")
	}
	return nil
}

// invalidate drops keys after a committed write. Failures are logged: the
// write already happened and the entries expire on their own.
func invalidate(ctx context.Context, c *cache.Cache, log *logrus.Entry, keys ...string) {
	if err := c.Delete(context.WithoutCancel(ctx), keys...); err != nil {
		logger.ForRequest(log, ctx).WithError(err).WithField("keys", keys).Warn("Failed to invalidate cache")
	}
}

// releaseLock runs release even when the request context is already done.
func releaseLock(ctx context.Context, log *logrus.Entry, key string, release func(context.Context) error) {
	if err := release(context.WithoutCancel(ctx)); err != nil {
		logger.ForRequest(log, ctx).WithError(err).WithField("lock", key).Warn("Failed to release lock")
	}
}
