package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/coursematch/coursematch-backend/internal/logger"
	"github.com/coursematch/coursematch-backend/internal/types"
	"github.com/coursematch/coursematch-backend/internal/utils"
)

const catalogKey = "coursematch:catalog"

// CatalogCache holds a JSON snapshot of the full catalog. The catalog is
// read on every chat turn and changes only on scrape or syllabus upload,
// so a coarse whole-set snapshot is enough.
type CatalogCache interface {
	Get(ctx context.Context) ([]*types.Course, bool)
	Set(ctx context.Context, courses []*types.Course)
	Invalidate(ctx context.Context)
	Close() error
}

type catalogCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

// NewCatalogCache connects to REDIS_ADDR. Callers treat a nil cache as
// "no caching"; a missing address is an error the caller downgrades.
func NewCatalogCache(log *logger.Logger) (CatalogCache, error) {
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

	ttlSeconds := utils.GetEnvAsInt("CATALOG_CACHE_TTL_SECONDS", 300, log)
	if ttlSeconds <= 0 {
		ttlSeconds = 300
	}

	return &catalogCache{
		log: log.With("service", "RedisCatalogCache"),
		rdb: rdb,
		ttl: time.Duration(ttlSeconds) * time.Second,
	}, nil
}

func (c *catalogCache) Get(ctx context.Context) ([]*types.Course, bool) {
	raw, err := c.rdb.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.log.Warn("catalog cache read failed", "error", err)
		}
		return nil, false
	}
	var courses []*types.Course
	if err := json.Unmarshal(raw, &courses); err != nil {
		c.log.Warn("catalog cache decode failed, invalidating", "error", err)
		c.Invalidate(ctx)
		return nil, false
	}
	return courses, true
}

func (c *catalogCache) Set(ctx context.Context, courses []*types.Course) {
	raw, err := json.Marshal(courses)
	if err != nil {
		c.log.Warn("catalog cache encode failed", "error", err)
		return
	}
	if err := c.rdb.Set(ctx, catalogKey, raw, c.ttl).Err(); err != nil {
		c.log.Warn("catalog cache write failed", "error", err)
	}
}

func (c *catalogCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, catalogKey).Err(); err != nil {
		c.log.Warn("catalog cache invalidate failed", "error", err)
	}
}

func (c *catalogCache) Close() error {
	return c.rdb.Close()
}
