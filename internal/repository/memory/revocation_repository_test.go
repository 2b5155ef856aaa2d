package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevocationRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRevocationRepository()

	t.Run("unknown hash is not revoked", func(t *testing.T) {
		revoked, err := repo.IsRevoked(ctx, "deadbeef")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("revoked hash is found until it expires", func(t *testing.T) {
		assert.NoError(t, repo.Revoke(ctx, "cafebabe", 50*time.Millisecond))

		revoked, err := repo.IsRevoked(ctx, "cafebabe")
		assert.NoError(t, err)
		assert.True(t, revoked)

		time.Sleep(80 * time.Millisecond)

		revoked, err = repo.IsRevoked(ctx, "cafebabe")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})
}
