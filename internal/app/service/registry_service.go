package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"canonforces/internal/common"
	"canonforces/internal/domain/repository"
)

// PlatformLookup is the read-only handle check against the competitive
// programming platform.
type PlatformLookup interface {
	UsernameExists(ctx context.Context, handle string) (bool, error)
}

// RegistryService answers the two uniqueness questions the signup workflow
// asks: does the handle exist on the platform at all, and is it already bound
// to a local account. Positive platform lookups are cached; negative ones are
// not, so a freshly registered handle is usable immediately.
type RegistryService struct {
	platform PlatformLookup
	users    repository.UserRecordRepository
	cache    Cache
	cacheTTL time.Duration
}

func NewRegistryService(platform PlatformLookup, users repository.UserRecordRepository, cache Cache, cacheTTL time.Duration) *RegistryService {
	return &RegistryService{
		platform: platform,
		users:    users,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

func (s *RegistryService) UsernameExists(ctx context.Context, username string) (bool, error) {
	key := "registry:exists:" + username

	if s.cache != nil {
		if _, err := s.cache.Get(ctx, key); err == nil {
			return true, nil
		} else if !errors.Is(err, common.ErrNotFound) {
			log.Printf("WARN: registry cache read failed: %v", err)
		}
	}

	exists, err := s.platform.UsernameExists(ctx, username)
	if err != nil {
		return false, err
	}

	if exists && s.cache != nil {
		if err := s.cache.Set(ctx, key, "1", s.cacheTTL); err != nil {
			log.Printf("WARN: registry cache write failed: %v", err)
		}
	}
	return exists, nil
}

func (s *RegistryService) UsernameAlreadyLinked(ctx context.Context, username string) (bool, error) {
	// Stored usernames are lowercased and trimmed, so the lookup must be too.
	_, err := s.users.FindByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
