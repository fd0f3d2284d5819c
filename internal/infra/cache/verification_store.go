package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"pethub/internal/domain/service"
	"pethub/internal/errors"
)

const verificationKeyPrefix = "verification:email:"

// consumeScript compares the stored code and deletes it on a match in one
// round trip, so a code can never be redeemed twice.
var consumeScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	redis.call("DEL", KEYS[1])
	return 1
end
return 0
`)

// verificationStore keeps email verification codes in Redis so they survive
// process restarts and are shared across instances.
type verificationStore struct {
	client *redis.Client
}

// NewVerificationStore creates a Redis-backed verification code store.
func NewVerificationStore(client *redis.Client) service.VerificationStore {
	return &verificationStore{client: client}
}

// SaveCode stores the verification code for an email address with the given
// TTL, replacing any previous code for that address.
func (s *verificationStore) SaveCode(ctx context.Context, email, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, verificationKeyPrefix+email, code, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store verification code")
	}

	return nil
}

// ConsumeCode atomically checks the stored code and removes it on a match.
func (s *verificationStore) ConsumeCode(ctx context.Context, email, code string) (bool, error) {
	result, err := consumeScript.Run(ctx, s.client, []string{verificationKeyPrefix + email}, code).Int()
	if err != nil {
		return false, errors.Wrap(err, "failed to consume verification code")
	}

	return result == 1, nil
}
