package pricing

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"nerdspace/internal/domain"

	"github.com/redis/go-redis/v9"
)

// ConfigCache is a read-through cache in front of the pricing repository.
// Rate cards change rarely and every quote reads one, so a short TTL keeps
// the form responsive without going stale for long. With a Redis client the
// cache is shared across instances; without one it degrades to a process-
// local map. Cache errors fall back to the source, never to the caller.
type ConfigCache struct {
	source ConfigSource
	rdb    *redis.Client
	ttl    time.Duration

	mu    sync.RWMutex
	local map[domain.ServiceType]localEntry
}

type localEntry struct {
	cfg     *domain.ServicePricing
	expires time.Time
}

func NewConfigCache(source ConfigSource, rdb *redis.Client, ttl time.Duration) *ConfigCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ConfigCache{
		source: source,
		rdb:    rdb,
		ttl:    ttl,
		local:  make(map[domain.ServiceType]localEntry),
	}
}

func (c *ConfigCache) GetByServiceType(ctx context.Context, t domain.ServiceType) (*domain.ServicePricing, error) {
	if c.rdb != nil {
		return c.getRedis(ctx, t)
	}
	return c.getLocal(ctx, t)
}

func (c *ConfigCache) getRedis(ctx context.Context, t domain.ServiceType) (*domain.ServicePricing, error) {
	key := "pricing:" + string(t)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var cfg domain.ServicePricing
		if err := json.Unmarshal(raw, &cfg); err == nil {
			return &cfg, nil
		}
	} else if err != redis.Nil {
		log.Printf("pricing_cache redis_get_failed key=%s err=%v", key, err)
	}

	cfg, err := c.source.GetByServiceType(ctx, t)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(cfg); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			log.Printf("pricing_cache redis_set_failed key=%s err=%v", key, err)
		}
	}
	return cfg, nil
}

func (c *ConfigCache) getLocal(ctx context.Context, t domain.ServiceType) (*domain.ServicePricing, error) {
	c.mu.RLock()
	entry, ok := c.local[t]
	c.mu.RUnlock()
	if ok && time.Now().Before(entry.expires) {
		return entry.cfg, nil
	}

	cfg, err := c.source.GetByServiceType(ctx, t)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.local[t] = localEntry{cfg: cfg, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()
	return cfg, nil
}

// Invalidate drops cached entries so the next read hits the source. Called
// by the admin pricing endpoints after an update.
func (c *ConfigCache) Invalidate(ctx context.Context, t domain.ServiceType) {
	if c.rdb != nil {
		if err := c.rdb.Del(ctx, "pricing:"+string(t)).Err(); err != nil {
			log.Printf("pricing_cache redis_del_failed type=%s err=%v", t, err)
		}
		return
	}
	c.mu.Lock()
	delete(c.local, t)
	c.mu.Unlock()
}
