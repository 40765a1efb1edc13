package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mylance/content-engine/internal/application/service"
)

// Undo snapshots and batch progress both live in redis: they are
// session-scoped working state, not part of the profile record.
const (
	snapshotKeyFormat = "undo:%s:%s"
	progressKeyFormat = "genprogress:%s"

	snapshotTTL = 24 * time.Hour
	progressTTL = time.Hour
)

type redisSnapshotStore struct {
	rdb *redis.Client
}

func NewRedisSnapshotStore(rdb *redis.Client) service.SnapshotStore {
	return &redisSnapshotStore{rdb: rdb}
}

func (s *redisSnapshotStore) Put(ctx context.Context, profileID, artifact, value string) error {
	key := fmt.Sprintf(snapshotKeyFormat, profileID, artifact)
	if err := s.rdb.Set(ctx, key, value, snapshotTTL).Err(); err != nil {
		return fmt.Errorf("failed to store undo snapshot: %w", err)
	}
	return nil
}

func (s *redisSnapshotStore) Get(ctx context.Context, profileID, artifact string) (string, bool, error) {
	key := fmt.Sprintf(snapshotKeyFormat, profileID, artifact)
	value, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to load undo snapshot: %w", err)
	}
	return value, true, nil
}

type redisProgressStore struct {
	rdb *redis.Client
}

func NewRedisProgressStore(rdb *redis.Client) service.ProgressStore {
	return &redisProgressStore{rdb: rdb}
}

func (s *redisProgressStore) SetProgress(ctx context.Context, profileID string, p service.BatchProgress) error {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal batch progress: %w", err)
	}
	key := fmt.Sprintf(progressKeyFormat, profileID)
	if err := s.rdb.Set(ctx, key, b, progressTTL).Err(); err != nil {
		return fmt.Errorf("failed to store batch progress: %w", err)
	}
	return nil
}

func (s *redisProgressStore) GetProgress(ctx context.Context, profileID string) (service.BatchProgress, bool, error) {
	key := fmt.Sprintf(progressKeyFormat, profileID)
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return service.BatchProgress{}, false, nil
		}
		return service.BatchProgress{}, false, fmt.Errorf("failed to load batch progress: %w", err)
	}
	var p service.BatchProgress
	if err := json.Unmarshal(b, &p); err != nil {
		return service.BatchProgress{}, false, fmt.Errorf("failed to unmarshal batch progress: %w", err)
	}
	return p, true, nil
}
