package middleware

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/io-da/dispatch"
)

const defaultIdempotencyKeyPrefix = "dispatch:idempotency:"

// ErrDuplicateCommand is returned when a keyed command was already dispatched within the TTL.
var ErrDuplicateCommand = errors.New("dispatch: duplicate command")

// Keyed is implemented by commands that must be dispatched at most once per key.
type Keyed interface {
	IdempotencyKey() string
}

type idempotency struct {
	client redis.Cmdable
	ttl    time.Duration
	prefix string
}

// IdempotencyOption configures the Idempotency step.
type IdempotencyOption func(*idempotency)

// WithKeyPrefix overrides the prefix of the redis keys.
// Defaults to "dispatch:idempotency:".
func WithKeyPrefix(prefix string) IdempotencyOption {
	return func(i *idempotency) {
		i.prefix = prefix
	}
}

// Idempotency claims the key of Keyed commands in redis before running the rest of the chain.
// A command whose key is already claimed short-circuits with ErrDuplicateCommand.
// The claim is released when the rest of the chain fails or panics, so the command may be sent again.
// Commands without a key pass through.
func Idempotency(client redis.Cmdable, ttl time.Duration, opts ...IdempotencyOption) dispatch.Step {
	i := &idempotency{
		client: client,
		ttl:    ttl,
		prefix: defaultIdempotencyKeyPrefix,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func (i *idempotency) Invoke(ctx context.Context, cmd dispatch.Command, next dispatch.Next) (any, error) {
	keyed, ok := cmd.(Keyed)
	if !ok || keyed.IdempotencyKey() == "" {
		return next(ctx)
	}
	key := i.key(cmd.Identifier(), keyed.IdempotencyKey())

	claimed, err := i.client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339Nano), i.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to claim idempotency key: %w", err)
	}
	if !claimed {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCommand, key)
	}

	keep := false
	defer func() {
		if !keep {
			_ = i.client.Del(context.WithoutCancel(ctx), key).Err()
		}
	}()
	data, err := next(ctx)
	keep = err == nil
	return data, err
}

func (i *idempotency) key(id dispatch.Identifier, key string) string {
	return i.prefix + string(id) + ":" + key
}
