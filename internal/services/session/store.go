// Package session persists authenticated identities across requests and
// process restarts. The store holds one serialized Identity per session ID;
// a miss is a normal condition (the JWT alone can rebuild the identity).
package session

import (
	"context"
	"sync"
	"time"

	"riskdesk/internal/models"
	"riskdesk/internal/repositories/cache"
)

// DefaultTTL matches the session token lifetime.
const DefaultTTL = 12 * time.Hour

// Store persists identities keyed by session ID.
type Store interface {
	Put(ctx context.Context, sessionID string, identity *models.Identity) error
	Get(ctx context.Context, sessionID string) (*models.Identity, bool, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisStore keeps sessions in Redis so they survive restarts.
type RedisStore struct {
	cache *cache.CacheService
	ttl   time.Duration
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(cacheService *cache.CacheService) *RedisStore {
	return &RedisStore{cache: cacheService, ttl: DefaultTTL}
}

func (s *RedisStore) Put(ctx context.Context, sessionID string, identity *models.Identity) error {
	return s.cache.PutSession(ctx, sessionID, identity, s.ttl)
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*models.Identity, bool, error) {
	return s.cache.GetSession(ctx, sessionID)
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.cache.DeleteSession(ctx, sessionID)
}

// MemoryStore keeps sessions in process memory. Used when Redis is not
// configured; sessions then live only as long as the process.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Identity
}

// NewMemoryStore creates an in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*models.Identity)}
}

func (s *MemoryStore) Put(_ context.Context, sessionID string, identity *models.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = identity
	return nil
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (*models.Identity, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	identity, ok := s.sessions[sessionID]
	return identity, ok, nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
