package locker

import (
	"context"
	"errors"
	"fmt"
	"medicore-admin-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	values  map[string]string
	evalErr error
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: map[string]string{}}
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	f.values[key] = fmt.Sprintf("%q", value)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeRedisRepository) DeleteMany(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

func (f *fakeRedisRepository) AddToSet(ctx context.Context, key string, values ...interface{}) error {
	return nil
}

func (f *fakeRedisRepository) GetSetMembers(ctx context.Context, key string) ([]string, error) {
	return nil, nil
}

func (f *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	if _, exists := f.values[key]; exists {
		return false, nil
	}
	f.values[key] = fmt.Sprintf("%q", value)
	return true, nil
}

// Eval mirrors the compare-and-delete script: the key goes away only
// while it still holds the caller's value.
func (f *fakeRedisRepository) Eval(ctx context.Context, script string, keys []string, args ...interface{}) (interface{}, error) {
	if f.evalErr != nil {
		return nil, f.evalErr
	}
	expected, _ := args[0].(string)
	if f.values[keys[0]] == expected {
		delete(f.values, keys[0])
		return int64(1), nil
	}
	return int64(0), nil
}

func newTestLockService(repo *fakeRedisRepository) *lockService {
	return &lockService{redisRepo: repo, Log: zap.NewNop()}
}

func TestLockService(t *testing.T) {
	ctx := context.Background()

	t.Run("lock is exclusive until released", func(t *testing.T) {
		repo := newFakeRedisRepository()
		svc := newTestLockService(repo)

		acquired, lockValue, err := svc.TryLock(ctx, "lock:task:t-1", time.Minute)
		assert.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, lockValue)

		acquired, _, err = svc.TryLock(ctx, "lock:task:t-1", time.Minute)
		assert.NoError(t, err)
		assert.False(t, acquired)

		assert.NoError(t, svc.Unlock(ctx, "lock:task:t-1", lockValue))

		acquired, _, err = svc.TryLock(ctx, "lock:task:t-1", time.Minute)
		assert.NoError(t, err)
		assert.True(t, acquired)
	})

	t.Run("unlock after expiry is a no-op", func(t *testing.T) {
		repo := newFakeRedisRepository()
		svc := newTestLockService(repo)

		err := svc.Unlock(ctx, "lock:task:t-2", "long-gone-value")
		assert.NoError(t, err)
	})

	t.Run("stale holder cannot release a reacquired lock", func(t *testing.T) {
		repo := newFakeRedisRepository()
		svc := newTestLockService(repo)

		_, staleValue, err := svc.TryLock(ctx, "lock:task:t-3", time.Minute)
		assert.NoError(t, err)

		// The lock expires and another client takes it over.
		delete(repo.values, "lock:task:t-3")
		acquired, freshValue, err := svc.TryLock(ctx, "lock:task:t-3", time.Minute)
		assert.NoError(t, err)
		assert.True(t, acquired)

		err = svc.Unlock(ctx, "lock:task:t-3", staleValue)
		var customError *exceptions.CustomError
		assert.ErrorAs(t, err, &customError)
		assert.Contains(t, repo.values, "lock:task:t-3", "the new holder's lock must survive")

		assert.NoError(t, svc.Unlock(ctx, "lock:task:t-3", freshValue))
	})

	t.Run("script error surfaces", func(t *testing.T) {
		repo := newFakeRedisRepository()
		repo.evalErr = errors.New("redis down")
		svc := newTestLockService(repo)

		err := svc.Unlock(ctx, "lock:task:t-4", "some-value")
		assert.Error(t, err)
	})
}
