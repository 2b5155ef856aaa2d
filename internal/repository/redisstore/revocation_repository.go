package redisstore

import (
	"context"
	"errors"
	"time"

	"notekeeper-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "revoked:"

type RevocationRepository struct {
	client *redis.Client
}

// NewRevocationRepository backs the revocation list with Redis so
// logouts survive restarts and are shared across instances.
func NewRevocationRepository(client *redis.Client) contract.RevocationRepository {
	return &RevocationRepository{
		client: client,
	}
}

func (r *RevocationRepository) Revoke(ctx context.Context, tokenHash string, ttl time.Duration) error {
	return r.client.Set(ctx, keyPrefix+tokenHash, "1", ttl).Err()
}

func (r *RevocationRepository) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	err := r.client.Get(ctx, keyPrefix+tokenHash).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
