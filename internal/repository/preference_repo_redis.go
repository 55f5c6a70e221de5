package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"mood-filter/internal/domain"
)

type redisHashClient interface {
	HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

// RedisPreferenceRepository guarda cada usuario en un hash cuyos campos son
// las claves de almacenamiento de la extension.
type RedisPreferenceRepository struct {
	client  redisHashClient
	prefix  string
	timeout time.Duration
}

func NewRedisPreferenceRepository(client *redis.Client) *RedisPreferenceRepository {
	if client == nil {
		return nil
	}
	return &RedisPreferenceRepository{
		client:  client,
		prefix:  "prefs:user:",
		timeout: 500 * time.Millisecond,
	}
}

func (r *RedisPreferenceRepository) Get(ctx context.Context, userID string) (domain.PreferenceSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	fields, err := r.client.HGetAll(ctx, r.prefix+userID).Result()
	if err != nil {
		return domain.PreferenceSnapshot{}, err
	}
	if len(fields) == 0 {
		return domain.PreferenceSnapshot{}, ErrNotFound
	}
	rec := make(preferenceRecord, len(fields))
	for k, v := range fields {
		rec[k] = []byte(v)
	}
	return decodeSnapshot(rec)
}

func (r *RedisPreferenceRepository) Save(ctx context.Context, userID string, snapshot domain.PreferenceSnapshot) error {
	rec, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	return r.client.HSet(ctx, r.prefix+userID,
		KeyCategoryMap, string(rec[KeyCategoryMap]),
		KeyPrimaryList, string(rec[KeyPrimaryList]),
		KeySecondaryList, string(rec[KeySecondaryList]),
		KeyAvoidList, string(rec[KeyAvoidList]),
	).Err()
}
