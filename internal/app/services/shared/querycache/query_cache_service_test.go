package querycache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	values       map[string]string
	sets         map[string][]string
	failGet      bool
	failSet      bool
	failAddToSet bool
	getCalls     int
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{
		values: map[string]string{},
		sets:   map[string][]string{},
	}
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	if f.failSet {
		return errors.New("redis down")
	}
	payload, ok := value.(RawPayload)
	if ok {
		f.values[key] = string(payload)
		return nil
	}
	f.values[key] = "?"
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	f.getCalls++
	if f.failGet {
		return "", errors.New("redis down")
	}
	return f.values[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	delete(f.sets, key)
	return nil
}

func (f *fakeRedisRepository) DeleteMany(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
		delete(f.sets, key)
	}
	return nil
}

func (f *fakeRedisRepository) AddToSet(ctx context.Context, key string, values ...interface{}) error {
	if f.failAddToSet {
		return errors.New("redis down")
	}
	for _, v := range values {
		f.sets[key] = append(f.sets[key], v.(string))
	}
	return nil
}

func (f *fakeRedisRepository) GetSetMembers(ctx context.Context, key string) ([]string, error) {
	return f.sets[key], nil
}

func (f *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	if _, exists := f.values[key]; exists {
		return false, nil
	}
	f.values[key] = "locked"
	return true, nil
}

func (f *fakeRedisRepository) Eval(ctx context.Context, script string, keys []string, args ...interface{}) (interface{}, error) {
	return int64(0), nil
}

func TestQueryCacheService(t *testing.T) {
	repo := newFakeRedisRepository()
	cache := &queryCacheService{redisRepo: repo, Log: zap.NewNop()}
	ctx := context.Background()

	t.Run("miss fills and caches", func(t *testing.T) {
		fillCalls := 0
		fill := func(ctx context.Context) ([]byte, error) {
			fillCalls++
			return []byte(`[{"id":"m-1"}]`), nil
		}

		payload, err := cache.Fetch(ctx, "medicines", "all", time.Minute, fill)
		assert.NoError(t, err)
		assert.Equal(t, `[{"id":"m-1"}]`, string(payload))
		assert.Equal(t, 1, fillCalls)

		// Second fetch is a hit; fill stays at one call.
		payload, err = cache.Fetch(ctx, "medicines", "all", time.Minute, fill)
		assert.NoError(t, err)
		assert.Equal(t, `[{"id":"m-1"}]`, string(payload))
		assert.Equal(t, 1, fillCalls)
	})

	t.Run("invalidate drops the group", func(t *testing.T) {
		err := cache.Invalidate(ctx, "medicines")
		assert.NoError(t, err)

		fillCalls := 0
		_, err = cache.Fetch(ctx, "medicines", "all", time.Minute, func(ctx context.Context) ([]byte, error) {
			fillCalls++
			return []byte(`[]`), nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, fillCalls, "invalidation must force a refill")
	})

	t.Run("fill error is returned and nothing is cached", func(t *testing.T) {
		boom := errors.New("platform 500")
		_, err := cache.Fetch(ctx, "lab_orders", "all", time.Minute, func(ctx context.Context) ([]byte, error) {
			return nil, boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, repo.values["cache:lab_orders:all"])
	})

	t.Run("redis get outage degrades to pass-through", func(t *testing.T) {
		repo.failGet = true
		defer func() { repo.failGet = false }()

		payload, err := cache.Fetch(ctx, "patients", "all", time.Minute, func(ctx context.Context) ([]byte, error) {
			return []byte(`[{"id":"p-1"}]`), nil
		})
		assert.NoError(t, err)
		assert.Equal(t, `[{"id":"p-1"}]`, string(payload))
	})

	t.Run("group registration failure drops the cached key", func(t *testing.T) {
		repo.failAddToSet = true
		defer func() { repo.failAddToSet = false }()

		fillCalls := 0
		fill := func(ctx context.Context) ([]byte, error) {
			fillCalls++
			return []byte(`[{"id":"o-1"}]`), nil
		}

		payload, err := cache.Fetch(ctx, "organizations", "list", time.Minute, fill)
		assert.NoError(t, err)
		assert.Equal(t, `[{"id":"o-1"}]`, string(payload))
		assert.Empty(t, repo.values["cache:organizations:list"], "unregistered key must not linger")

		// A key invisible to Invalidate must not serve hits; the next
		// fetch goes back to the platform.
		repo.failAddToSet = false
		_, err = cache.Fetch(ctx, "organizations", "list", time.Minute, fill)
		assert.NoError(t, err)
		assert.Equal(t, 2, fillCalls)
	})

	t.Run("redis set outage still serves the payload", func(t *testing.T) {
		repo.failSet = true
		defer func() { repo.failSet = false }()

		payload, err := cache.Fetch(ctx, "users", "all", time.Minute, func(ctx context.Context) ([]byte, error) {
			return []byte(`[{"id":"u-1"}]`), nil
		})
		assert.NoError(t, err)
		assert.Equal(t, `[{"id":"u-1"}]`, string(payload))
	})
}
