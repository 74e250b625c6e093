package repository

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Anonymous favorite sets expire after 30 days of inactivity, matching the
// lifetime of the visitor's browser-side session.
const sessionFavoriteTTL = 30 * 24 * time.Hour

const sessionFavoritePrefix = "session:favorites:"

// SessionFavoriteStore holds anonymous visitors' favorite sets. It is the
// server-side stand-in for the client's local storage.
type SessionFavoriteStore interface {
	Members(ctx context.Context, sessionID string) ([]string, error)
	Replace(ctx context.Context, sessionID string, propertyIDs []string) error
	Clear(ctx context.Context, sessionID string) error
}

type sessionFavoriteStore struct {
	client *redis.Client
}

// NewSessionFavoriteStore creates a Redis-backed SessionFavoriteStore
func NewSessionFavoriteStore(client *redis.Client) SessionFavoriteStore {
	return &sessionFavoriteStore{client: client}
}

func sessionKey(sessionID string) string {
	return sessionFavoritePrefix + sessionID
}

// Members returns the session's favorite set and refreshes its TTL
func (s *sessionFavoriteStore) Members(ctx context.Context, sessionID string) ([]string, error) {
	key := sessionKey(sessionID)
	members, err := s.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if len(members) > 0 {
		s.client.Expire(ctx, key, sessionFavoriteTTL)
	}
	return members, nil
}

// Replace swaps the session's whole favorite set atomically
func (s *sessionFavoriteStore) Replace(ctx context.Context, sessionID string, propertyIDs []string) error {
	key := sessionKey(sessionID)
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(propertyIDs) > 0 {
		members := make([]interface{}, len(propertyIDs))
		for i, id := range propertyIDs {
			members[i] = id
		}
		pipe.SAdd(ctx, key, members...)
		pipe.Expire(ctx, key, sessionFavoriteTTL)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Clear deletes the session's favorite set
func (s *sessionFavoriteStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}

type memorySessionFavoriteStore struct {
	mu   sync.RWMutex
	sets map[string][]string
}

// NewMemorySessionFavoriteStore creates an in-process SessionFavoriteStore.
// Used when Redis is unavailable; sets do not survive a restart.
func NewMemorySessionFavoriteStore() SessionFavoriteStore {
	return &memorySessionFavoriteStore{sets: make(map[string][]string)}
}

func (s *memorySessionFavoriteStore) Members(_ context.Context, sessionID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	members := make([]string, len(s.sets[sessionID]))
	copy(members, s.sets[sessionID])
	return members, nil
}

func (s *memorySessionFavoriteStore) Replace(_ context.Context, sessionID string, propertyIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(propertyIDs) == 0 {
		delete(s.sets, sessionID)
		return nil
	}
	members := make([]string, len(propertyIDs))
	copy(members, propertyIDs)
	s.sets[sessionID] = members
	return nil
}

func (s *memorySessionFavoriteStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sets, sessionID)
	return nil
}
