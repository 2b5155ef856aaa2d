package memory

import (
	"context"
	"time"

	"notekeeper-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

type RevocationRepository struct {
	cache *cache.Cache
}

// NewRevocationRepository keeps revoked token hashes in process memory.
// Entries expire on their own, so a restart losing them is acceptable:
// the tokens they guarded expire on the same schedule.
func NewRevocationRepository() contract.RevocationRepository {
	c := cache.New(24*time.Hour, 10*time.Minute)
	return &RevocationRepository{
		cache: c,
	}
}

func (r *RevocationRepository) Revoke(ctx context.Context, tokenHash string, ttl time.Duration) error {
	r.cache.Set(tokenHash, struct{}{}, ttl)
	return nil
}

func (r *RevocationRepository) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	_, found := r.cache.Get(tokenHash)
	return found, nil
}
