package querycache

import (
	"context"
	"medicore-admin-service/internal/app/contracts"
	"medicore-admin-service/internal/pkg/constvars"
	"medicore-admin-service/internal/pkg/metrics"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	queryCacheServiceInstance contracts.QueryCache
	onceQueryCacheService     sync.Once
)

type queryCacheService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

func NewQueryCacheService(redisRepo contracts.RedisRepository, logger *zap.Logger) contracts.QueryCache {
	onceQueryCacheService.Do(func() {
		instance := &queryCacheService{
			redisRepo: redisRepo,
			Log:       logger,
		}
		queryCacheServiceInstance = instance
	})
	return queryCacheServiceInstance
}

// Fetch is cache-aside: redis GET, on miss call fill, SET with TTL and
// register the key under the group set. Any redis failure degrades to a
// pass-through fill; the platform stays the sole authority.
func (s *queryCacheService) Fetch(ctx context.Context, group, key string, ttl time.Duration, fill func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	requestID := requestIDFrom(ctx)
	fullKey := constvars.CacheKeyPrefix + group + ":" + key

	cached, err := s.redisRepo.Get(ctx, fullKey)
	if err != nil {
		s.Log.Warn("queryCacheService.Fetch redis get failed, passing through",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, fullKey),
			zap.Error(err),
		)
		return fill(ctx)
	}

	if cached != "" {
		metrics.CacheHitsTotal.WithLabelValues(group).Inc()
		s.Log.Debug("queryCacheService.Fetch hit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, fullKey),
		)
		return []byte(cached), nil
	}

	metrics.CacheMissesTotal.WithLabelValues(group).Inc()
	payload, err := fill(ctx)
	if err != nil {
		return nil, err
	}

	err = s.redisRepo.Set(ctx, fullKey, RawPayload(payload), ttl)
	if err != nil {
		s.Log.Warn("queryCacheService.Fetch redis set failed, serving uncached",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, fullKey),
			zap.Error(err),
		)
		return payload, nil
	}

	// A key outside its group set would survive Invalidate until TTL, so
	// drop it again if registration fails.
	err = s.redisRepo.AddToSet(ctx, constvars.CacheGroupKeyPrefix+group, fullKey)
	if err != nil {
		s.Log.Warn("queryCacheService.Fetch group registration failed, dropping key",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheGroupKey, group),
			zap.Error(err),
		)
		if delErr := s.redisRepo.Delete(ctx, fullKey); delErr != nil {
			s.Log.Warn("queryCacheService.Fetch failed dropping unregistered key",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, fullKey),
				zap.Error(delErr),
			)
		}
	}

	return payload, nil
}

// Invalidate drops every key registered under the group and the group set
// itself. Called after every successful mutation on the group's resource.
func (s *queryCacheService) Invalidate(ctx context.Context, group string) error {
	requestID := requestIDFrom(ctx)
	groupKey := constvars.CacheGroupKeyPrefix + group

	members, err := s.redisRepo.GetSetMembers(ctx, groupKey)
	if err != nil {
		s.Log.Warn("queryCacheService.Invalidate failed reading group members",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheGroupKey, group),
			zap.Error(err),
		)
		return err
	}

	err = s.redisRepo.DeleteMany(ctx, append(members, groupKey)...)
	if err != nil {
		s.Log.Warn("queryCacheService.Invalidate failed deleting keys",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheGroupKey, group),
			zap.Error(err),
		)
		return err
	}

	s.Log.Info("queryCacheService.Invalidate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCacheGroupKey, group),
		zap.Int(constvars.LoggingCountKey, len(members)),
	)
	return nil
}

func requestIDFrom(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

// RawPayload marshals to its bytes unchanged so cached values stay the
// exact JSON the platform returned.
type RawPayload []byte

func (p RawPayload) MarshalJSON() ([]byte, error) {
	return p, nil
}
