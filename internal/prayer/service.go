package prayer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
)

const cacheTTL = 24 * time.Hour

// Fetcher is the upstream lookup the service depends on
type Fetcher interface {
	TimingsByCity(ctx context.Context, city, country, date string) (*Timings, error)
}

// Service looks up prayer timings, caching each (city, country, date) in
// redis for a day. Timings for a fixed date never change, so a long TTL is
// safe; a missing or unreachable cache just means a straight fetch.
type Service struct {
	client Fetcher
	cache  *redis.Client
}

// NewService creates a prayer service. cache may be nil when redis is not
// configured.
func NewService(client Fetcher, cache *redis.Client) *Service {
	return &Service{client: client, cache: cache}
}

func cacheKey(city, country, date string) string {
	return fmt.Sprintf("prayer:%s:%s:%s", city, country, date)
}

// TimingsByCity returns the timings for a city on a given date (DD-MM-YYYY)
func (s *Service) TimingsByCity(ctx context.Context, city, country, date string) (*TimingsResponse, error) {
	key := cacheKey(city, country, date)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key).Result()
		if err == nil {
			timings := &Timings{}
			if err := json.Unmarshal([]byte(cached), timings); err == nil {
				return &TimingsResponse{City: city, Country: country, Date: date, Timings: *timings}, nil
			}
		} else if err != redis.Nil {
			slog.Warn("prayer cache read failed", "key", key, "error", err)
		}
	}

	timings, err := s.client.TimingsByCity(ctx, city, country, date)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(timings); err == nil {
			if err := s.cache.Set(ctx, key, encoded, cacheTTL).Err(); err != nil {
				slog.Warn("prayer cache write failed", "key", key, "error", err)
			}
		}
	}

	return &TimingsResponse{City: city, Country: country, Date: date, Timings: *timings}, nil
}
