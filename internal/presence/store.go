package presence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 24 * time.Hour

// Status is the externally visible online state of a user, mirrored to
// Redis so it survives across instances (unlike the relay's in-process
// connection registry, which is deliberately single-process).
type Status struct {
	Status   string `json:"status"`
	LastSeen int64  `json:"last_seen"`
}

type Store struct {
	client *redis.Client
	prefix string
}

func NewStore(client *redis.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

func (s *Store) key(userID string) string {
	return fmt.Sprintf("%s:presence:%s", s.prefix, userID)
}

func (s *Store) SetOnline(ctx context.Context, userID string) error {
	return s.set(ctx, userID, "online", defaultTTL)
}

func (s *Store) SetOffline(ctx context.Context, userID string) error {
	return s.set(ctx, userID, "offline", defaultTTL)
}

func (s *Store) set(ctx context.Context, userID, status string, ttl time.Duration) error {
	b, _ := json.Marshal(Status{Status: status, LastSeen: time.Now().Unix()})
	return s.client.Set(ctx, s.key(userID), b, ttl).Err()
}

// Get returns the stored status; a user with no entry reports offline.
func (s *Store) Get(ctx context.Context, userID string) (Status, error) {
	b, err := s.client.Get(ctx, s.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Status{Status: "offline"}, nil
		}
		return Status{}, err
	}
	var st Status
	if err := json.Unmarshal(b, &st); err != nil {
		return Status{}, err
	}
	return st, nil
}
