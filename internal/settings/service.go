package settings

import (
	"context"
	"encoding/json"
	"time"

	"barbershop/internal/logger"
	"barbershop/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKey = "settings:all"
	cacheTTL = 5 * time.Minute
)

// Service reads settings through a Redis cache. The settings page is on
// every public request path, the table almost never changes.
type Service struct {
	repo  Repository
	redis *redis.Client
}

func NewService(repo Repository, rdb *redis.Client) *Service {
	return &Service{repo: repo, redis: rdb}
}

func (s *Service) Get(ctx context.Context) (map[string]string, error) {
	cached, err := s.redis.Get(ctx, cacheKey).Result()
	if err == nil {
		var values map[string]string
		if err := json.Unmarshal([]byte(cached), &values); err == nil {
			metrics.RecordSettingsCache("hit")
			return values, nil
		}
	}

	metrics.RecordSettingsCache("miss")

	values, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(values); err == nil {
		if err := s.redis.Set(ctx, cacheKey, data, cacheTTL).Err(); err != nil {
			logger.Error("failed to cache settings", "error", err)
		}
	}

	return values, nil
}

func (s *Service) Update(ctx context.Context, values map[string]string) error {
	if err := s.repo.Upsert(ctx, values); err != nil {
		return err
	}

	if err := s.redis.Del(ctx, cacheKey).Err(); err != nil {
		logger.Error("failed to invalidate settings cache", "error", err)
	}

	return nil
}
