package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/lumenlaw/intake-backend/internal/intake/orchestrator"
	"github.com/lumenlaw/intake-backend/internal/logger"
)

// StatusCache keeps the last computed orchestrator result per intake for
// fast sidebar rendering. It is display-only: a miss or a stale hit is
// harmless because callers always recompute from the payload before trusting
// anything.

type StatusCache interface {
	Put(ctx context.Context, intakeID uuid.UUID, res *orchestrator.Result) error
	Get(ctx context.Context, intakeID uuid.UUID) (*orchestrator.Result, bool, error)
	Invalidate(ctx context.Context, intakeID uuid.UUID) error
	Close() error
}

type statusCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewStatusCache(log *logger.Logger) (StatusCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &statusCache{
		log: log.With("service", "RedisStatusCache"),
		rdb: rdb,
		ttl: 15 * time.Minute,
	}, nil
}

func cacheKey(intakeID uuid.UUID) string {
	return "intake:status:" + intakeID.String()
}

func (c *statusCache) Put(ctx context.Context, intakeID uuid.UUID, res *orchestrator.Result) error {
	if c == nil || c.rdb == nil {
		return fmt.Errorf("status cache not initialized")
	}
	raw, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, cacheKey(intakeID), raw, c.ttl).Err()
}

func (c *statusCache) Get(ctx context.Context, intakeID uuid.UUID) (*orchestrator.Result, bool, error) {
	if c == nil || c.rdb == nil {
		return nil, false, fmt.Errorf("status cache not initialized")
	}
	raw, err := c.rdb.Get(ctx, cacheKey(intakeID)).Bytes()
	if err == goredis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var res orchestrator.Result
	if err := json.Unmarshal(raw, &res); err != nil {
		c.log.Warn("bad cached status payload, dropping", "error", err)
		_ = c.rdb.Del(ctx, cacheKey(intakeID)).Err()
		return nil, false, nil
	}
	return &res, true, nil
}

func (c *statusCache) Invalidate(ctx context.Context, intakeID uuid.UUID) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, cacheKey(intakeID)).Err()
}

func (c *statusCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
