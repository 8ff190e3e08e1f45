package contributors

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/meshjs/dashboard/pkg/logger"
)

// Cache is the subset of redis.Cmdable the cached store needs.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

const cacheKey = "dashboard:contributors:v1"

// CachedStore serves List from Redis and refills it from the wrapped store
// on a miss. Redis failures are logged and never fail the request.
type CachedStore struct {
	next  Store
	cache Cache
	ttl   time.Duration
	log   *slog.Logger
}

func NewCachedStore(next Store, cache Cache, ttl time.Duration, log *slog.Logger) (*CachedStore, error) {
	if next == nil {
		return nil, ErrNoStore
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	if log == nil {
		log = slog.Default()
	}
	return &CachedStore{next: next, cache: cache, ttl: ttl, log: log.With(logger.Component("contributors_cache"))}, nil
}

func (s *CachedStore) List(ctx context.Context) ([]Contributor, error) {
	raw, err := s.cache.Get(ctx, cacheKey).Bytes()
	switch {
	case err == nil:
		var list []Contributor
		jsonErr := json.Unmarshal(raw, &list)
		if jsonErr == nil {
			return list, nil
		}
		s.log.WarnContext(ctx, "discarding corrupt cache entry", logger.Error(jsonErr))
	case errors.Is(err, redis.Nil):
	default:
		s.log.WarnContext(ctx, "cache read failed", logger.Error(err))
	}

	list, err := s.next.List(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(list)
	if err != nil {
		s.log.WarnContext(ctx, "cache encode failed", logger.Error(err))
		return list, nil
	}
	if err := s.cache.Set(ctx, cacheKey, payload, s.ttl).Err(); err != nil {
		s.log.WarnContext(ctx, "cache write failed", logger.Error(err))
	}
	return list, nil
}
