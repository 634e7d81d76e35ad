package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"devconnect/internal/cache"
)

const revokedUserKeyPrefix = "revoked_user:"

// RevocationStore marks users whose outstanding tokens must stop verifying,
// which happens when an account is deleted while its 10-day tokens are still
// in the wild.
type RevocationStore interface {
	RevokeUser(ctx context.Context, userID uuid.UUID, ttl time.Duration) error
	IsUserRevoked(ctx context.Context, userID uuid.UUID) (bool, error)
}

// TokenStore is the Redis-backed RevocationStore.
type TokenStore struct {
	cache *cache.Client
}

var _ RevocationStore = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// RevokeUser stores a revocation marker until the user's last possible token expires.
func (s *TokenStore) RevokeUser(ctx context.Context, userID uuid.UUID, ttl time.Duration) error {
	key := revokedUserKeyPrefix + userID.String()
	return s.cache.Set(ctx, key, []byte("1"), ttl)
}

// IsUserRevoked reports whether a revocation marker exists for the user.
// With Redis unavailable this reads as not revoked (fail safe).
func (s *TokenStore) IsUserRevoked(ctx context.Context, userID uuid.UUID) (bool, error) {
	key := revokedUserKeyPrefix + userID.String()
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return false, nil
	}
	return data != nil, nil
}
