package mirror

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore espejo en Redis: una clave string por colección, con prefijo configurable para
// que varios clientes compartan instancia sin pisarse.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore construye el espejo. El cliente lo gestiona (y cierra) quien lo crea.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}
