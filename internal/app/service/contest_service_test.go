package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"canonforces/internal/common"
	"canonforces/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	data    map[string]string
	getErr  error
	setErr  error
	gets    int
	sets    int
	lastKey string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]string{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	f.gets++
	f.lastKey = key
	if f.getErr != nil {
		return "", f.getErr
	}
	value, ok := f.data[key]
	if !ok {
		return "", common.ErrNotFound
	}
	return value, nil
}

func (f *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

type fakeSource struct {
	name     string
	contests []model.Contest
	err      error
	calls    int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Upcoming(ctx context.Context) ([]model.Contest, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.contests, nil
}

func contestAt(platform, name string, start time.Time) model.Contest {
	return model.Contest{
		Platform:        platform,
		ContestName:     name,
		ContestLink:     "https://example.com/" + name,
		StartTime:       start,
		ContestDuration: "2h",
	}
}

func TestContestServiceMergesAndSortsSources(t *testing.T) {
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	cf := &fakeSource{name: "Codeforces", contests: []model.Contest{
		contestAt("Codeforces", "cf-late", base.Add(48*time.Hour)),
		contestAt("Codeforces", "cf-early", base),
	}}
	lc := &fakeSource{name: "LeetCode", contests: []model.Contest{
		contestAt("LeetCode", "lc-mid", base.Add(24*time.Hour)),
	}}
	cache := newFakeCache()
	s := NewContestService([]ContestSource{cf, lc}, cache, time.Minute)

	contests, err := s.Upcoming(context.Background())
	require.NoError(t, err)
	require.Len(t, contests, 3)
	assert.Equal(t, "cf-early", contests[0].ContestName)
	assert.Equal(t, "lc-mid", contests[1].ContestName)
	assert.Equal(t, "cf-late", contests[2].ContestName)
	assert.Equal(t, 1, cache.sets, "refresh must re-prime the cache")
}

func TestContestServiceServesFromCache(t *testing.T) {
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	cached := []model.Contest{contestAt("Codeforces", "cached", base)}
	encoded, err := json.Marshal(cached)
	require.NoError(t, err)

	cache := newFakeCache()
	cache.data[contestCacheKey] = string(encoded)
	source := &fakeSource{name: "Codeforces"}
	s := NewContestService([]ContestSource{source}, cache, time.Minute)

	contests, err := s.Upcoming(context.Background())
	require.NoError(t, err)
	require.Len(t, contests, 1)
	assert.Equal(t, "cached", contests[0].ContestName)
	assert.Zero(t, source.calls, "warm cache must not hit upstream")
}

func TestContestServiceSkipsFailingSource(t *testing.T) {
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	broken := &fakeSource{name: "Codeforces", err: errors.New("upstream down")}
	healthy := &fakeSource{name: "LeetCode", contests: []model.Contest{
		contestAt("LeetCode", "lc-1", base),
	}}
	s := NewContestService([]ContestSource{broken, healthy}, newFakeCache(), time.Minute)

	contests, err := s.Upcoming(context.Background())
	require.NoError(t, err)
	require.Len(t, contests, 1)
	assert.Equal(t, "lc-1", contests[0].ContestName)
}

func TestContestServiceFailsWhenAllSourcesFail(t *testing.T) {
	s := NewContestService([]ContestSource{
		&fakeSource{name: "Codeforces", err: errors.New("down")},
		&fakeSource{name: "LeetCode", err: errors.New("also down")},
	}, newFakeCache(), time.Minute)

	_, err := s.Upcoming(context.Background())
	require.Error(t, err)
}

func TestContestServiceIgnoresCorruptCacheEntry(t *testing.T) {
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	cache := newFakeCache()
	cache.data[contestCacheKey] = "not json"
	source := &fakeSource{name: "Codeforces", contests: []model.Contest{
		contestAt("Codeforces", "fresh", base),
	}}
	s := NewContestService([]ContestSource{source}, cache, time.Minute)

	contests, err := s.Upcoming(context.Background())
	require.NoError(t, err)
	require.Len(t, contests, 1)
	assert.Equal(t, "fresh", contests[0].ContestName)
	assert.Equal(t, 1, source.calls)
}

func TestContestServiceWorksWithoutCache(t *testing.T) {
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	source := &fakeSource{name: "Codeforces", contests: []model.Contest{
		contestAt("Codeforces", "nc-1", base),
	}}
	s := NewContestService([]ContestSource{source}, nil, time.Minute)

	contests, err := s.Upcoming(context.Background())
	require.NoError(t, err)
	assert.Len(t, contests, 1)
}
