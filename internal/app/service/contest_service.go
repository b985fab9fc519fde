package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sort"
	"time"

	"canonforces/internal/common"
	"canonforces/internal/domain/model"
)

const contestCacheKey = "contests:upcoming"

// Cache is the minimal key/value surface the services need. Misses are
// reported as common.ErrNotFound.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// ContestSource is one upstream platform feed.
type ContestSource interface {
	Name() string
	Upcoming(ctx context.Context) ([]model.Contest, error)
}

// ContestService aggregates upcoming contests across platforms and caches the
// merged list. Sources are queried sequentially; a failing source is skipped
// so one platform outage does not empty the sidebar.
type ContestService struct {
	sources []ContestSource
	cache   Cache
	ttl     time.Duration
}

func NewContestService(sources []ContestSource, cache Cache, ttl time.Duration) *ContestService {
	return &ContestService{
		sources: sources,
		cache:   cache,
		ttl:     ttl,
	}
}

// Upcoming returns the merged contest list, serving from cache when warm.
func (s *ContestService) Upcoming(ctx context.Context) ([]model.Contest, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, contestCacheKey)
		if err == nil {
			var contests []model.Contest
			if err := json.Unmarshal([]byte(cached), &contests); err == nil {
				return contests, nil
			}
			log.Printf("WARN: discarding unreadable contest cache entry")
		} else if !errors.Is(err, common.ErrNotFound) {
			log.Printf("WARN: contest cache read failed: %v", err)
		}
	}
	return s.Refresh(ctx)
}

// Refresh bypasses the cache, queries every source, and re-primes the cache.
// It fails only when every source fails.
func (s *ContestService) Refresh(ctx context.Context) ([]model.Contest, error) {
	var merged []model.Contest
	var lastErr error
	failures := 0

	for _, source := range s.sources {
		contests, err := source.Upcoming(ctx)
		if err != nil {
			log.Printf("WARN: contest source %s failed: %v", source.Name(), err)
			lastErr = err
			failures++
			continue
		}
		merged = append(merged, contests...)
	}

	if failures == len(s.sources) && lastErr != nil {
		return nil, common.Errorf("all contest sources failed: %w", lastErr)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].StartTime.Before(merged[j].StartTime)
	})

	if s.cache != nil {
		encoded, err := json.Marshal(merged)
		if err == nil {
			if err := s.cache.Set(ctx, contestCacheKey, string(encoded), s.ttl); err != nil {
				log.Printf("WARN: contest cache write failed: %v", err)
			}
		}
	}
	return merged, nil
}
