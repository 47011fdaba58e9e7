package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/rafaelsantos7520/dermalise-admin/internal/dto"
)

const statsKey = "dashboard:stats"

// StatsCache guarda os contadores do dashboard no Redis por alguns segundos.
// Com rdb nil o cache vira um miss permanente e o dashboard consulta o banco.
type StatsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStatsCache(redisURL string) *StatsCache {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil
	}

	return &StatsCache{
		rdb: redis.NewClient(opts),
		ttl: 30 * time.Second,
	}
}

func (c *StatsCache) Get(ctx context.Context) (*dto.DashboardStatsDTO, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, statsKey).Bytes()
	if err != nil {
		return nil, false
	}

	var stats dto.DashboardStatsDTO
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false
	}

	return &stats, true
}

func (c *StatsCache) Set(ctx context.Context, stats *dto.DashboardStatsDTO) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}

	// melhor servir stats defasados do que falhar o dashboard
	_ = c.rdb.Set(ctx, statsKey, raw, c.ttl).Err()
}
