package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache é o contrato mínimo usado pela consulta de disponibilidade.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	// Purge remove as chaves que casam com o padrão (glob do Redis).
	Purge(ctx context.Context, pattern string)
}

type Redis struct {
	client *redis.Client
}

func NewRedis(addr string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Redis{client: client}, nil
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *Redis) Set(ctx context.Context, key, value string, ttl time.Duration) {
	// cache é melhor esforço: falha de escrita não derruba a requisição
	_ = r.client.Set(ctx, key, value, ttl).Err()
}

func (r *Redis) Purge(ctx context.Context, pattern string) {
	// melhor esforço; no pior caso a chave expira pelo TTL
	iter := r.client.Scan(ctx, 0, pattern, 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if iter.Err() != nil || len(keys) == 0 {
		return
	}

	_ = r.client.Del(ctx, keys...).Err()
}
