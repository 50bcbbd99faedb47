package checker

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RemoteWordStore durably records the set of custom words added through a
// Checker so they survive process restarts and can be shared by every
// Checker pointed at the same store. It is optional: a Checker with a nil
// store behaves exactly like one with no persistence path.
type RemoteWordStore struct {
	client *redis.Client
	key    string
}

// NewRemoteWordStore wraps client, storing custom words under a single
// Redis set keyed by key.
func NewRemoteWordStore(client *redis.Client, key string) *RemoteWordStore {
	if key == "" {
		key = "spellcheck:custom_words"
	}
	return &RemoteWordStore{client: client, key: key}
}

// Add records word in the remote store.
func (s *RemoteWordStore) Add(ctx context.Context, word string) error {
	return s.client.SAdd(ctx, s.key, word).Err()
}

// Remove deletes word from the remote store.
func (s *RemoteWordStore) Remove(ctx context.Context, word string) error {
	return s.client.SRem(ctx, s.key, word).Err()
}

// All returns every word currently recorded in the remote store.
func (s *RemoteWordStore) All(ctx context.Context) ([]string, error) {
	return s.client.SMembers(ctx, s.key).Result()
}
