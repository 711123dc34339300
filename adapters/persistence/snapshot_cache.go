package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/muftipurwa/portfolio-api/internal/domain/portfolio"
	"github.com/muftipurwa/portfolio-api/pkg/apperror"
	"github.com/muftipurwa/portfolio-api/pkg/logger"
)

const snapshotKey = "portfolio:snapshot"

type redisSnapshotCache struct {
	rdb    *redis.Client
	logger logger.Logger
}

func NewRedisSnapshotCache(rdb *redis.Client, logger logger.Logger) portfolio.Cache {
	return &redisSnapshotCache{rdb: rdb, logger: logger}
}

func (c *redisSnapshotCache) Get(ctx context.Context) (*portfolio.Snapshot, error) {
	data, err := c.rdb.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to read portfolio snapshot", err)
	}

	var s portfolio.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		// A corrupt cache entry counts as a miss; the caller rebuilds it.
		c.logger.Warn("Failed to unmarshal portfolio snapshot, treating as miss", zap.Error(err))
		return nil, nil
	}
	return &s, nil
}

func (c *redisSnapshotCache) Set(ctx context.Context, s *portfolio.Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return apperror.NewInternal("failed to marshal portfolio snapshot", err)
	}
	if err := c.rdb.Set(ctx, snapshotKey, data, 0).Err(); err != nil {
		return apperror.NewInternal("failed to write portfolio snapshot", err)
	}
	return nil
}
