package contract

import (
	"context"
	"time"
)

// RevocationRepository records logged-out access tokens (by hash) until
// they would have expired anyway. The authorization gate consults it on
// every resolve; a revoked token is rejected even if otherwise valid.
type RevocationRepository interface {
	Revoke(ctx context.Context, tokenHash string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenHash string) (bool, error)
}
