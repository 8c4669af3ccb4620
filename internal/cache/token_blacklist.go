package cache

import (
	"context"
	"time"
)

const revokedNamespace = "jwt:revoked"

// KeyValue is the subset of Cache the blacklist needs.
type KeyValue interface {
	Set(ctx context.Context, namespace, key string, value interface{}, ttl time.Duration) error
	Exists(ctx context.Context, namespace, key string) (bool, error)
}

// TokenBlacklist remembers logged-out token ids until they would have
// expired anyway.
type TokenBlacklist struct {
	store KeyValue
	now   func() time.Time
}

func NewTokenBlacklist(store KeyValue) *TokenBlacklist {
	return &TokenBlacklist{store: store, now: time.Now}
}

// Revoke blacklists tokenID until expiresAt. Tokens already past expiry are
// ignored.
func (b *TokenBlacklist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(b.now())
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	return b.store.Set(ctx, revokedNamespace, tokenID, "1", ttl)
}

func (b *TokenBlacklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	return b.store.Exists(ctx, revokedNamespace, tokenID)
}
