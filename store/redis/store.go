// Package redis stores pending edits in Redis, so they expire on their own and survive bot restarts.
package redis

import (
	"context"
	"time"

	"emperror.dev/errors"
	"github.com/mediocregopher/radix/v4"
	"github.com/starshine-sys/rsvp/store"
)

var _ store.PendingEditStore = (*Store)(nil)

type Store struct {
	client radix.Client
	ttl    time.Duration
}

// New connects to Redis. Pending edits expire after ttl; a zero ttl means they never expire.
func New(url string, ttl time.Duration) (*Store, error) {
	client, err := (&radix.PoolConfig{}).New(context.Background(), "tcp", url)
	if err != nil {
		return nil, errors.Wrap(err, "creating radix client")
	}

	return &Store{client: client, ttl: ttl}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
