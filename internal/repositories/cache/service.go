package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"riskdesk/internal/models"

	"github.com/redis/go-redis/v9"
)

// CacheService wraps Redis with JSON (de)serialization and the key layout
// used across the dashboard: whole-collection caches for the read-only data
// sets and a per-session identity record.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCacheService creates a cache service with a default TTL.
func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// GenerateKey builds a namespaced cache key.
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// User collection caching
func (s *CacheService) CacheUsers(ctx context.Context, users []models.User) error {
	return s.Set(ctx, s.GenerateKey("users", "list", "all"), users)
}

func (s *CacheService) GetUsers(ctx context.Context) ([]models.User, bool, error) {
	var users []models.User
	found, err := s.Get(ctx, s.GenerateKey("users", "list", "all"), &users)
	if err != nil || !found {
		return nil, false, err
	}
	return users, true, nil
}

// Transaction collection caching
func (s *CacheService) CacheTransactions(ctx context.Context, txs []models.Transaction) error {
	return s.Set(ctx, s.GenerateKey("transactions", "list", "all"), txs)
}

func (s *CacheService) GetTransactions(ctx context.Context) ([]models.Transaction, bool, error) {
	var txs []models.Transaction
	found, err := s.Get(ctx, s.GenerateKey("transactions", "list", "all"), &txs)
	if err != nil || !found {
		return nil, false, err
	}
	return txs, true, nil
}

// Ticket group name caching (group id -> name lookups are a secondary remote
// call per ticket list, so the resolved map is worth keeping warm).
func (s *CacheService) CacheTicketGroups(ctx context.Context, groups map[int64]string) error {
	return s.SetWithTTL(ctx, s.GenerateKey("tickets", "groups", "all"), groups, 10*time.Minute)
}

func (s *CacheService) GetTicketGroups(ctx context.Context) (map[int64]string, bool, error) {
	groups := make(map[int64]string)
	found, err := s.Get(ctx, s.GenerateKey("tickets", "groups", "all"), &groups)
	if err != nil || !found {
		return nil, false, err
	}
	return groups, true, nil
}

// Session persistence: one serialized identity per session ID.
func (s *CacheService) PutSession(ctx context.Context, sessionID string, identity *models.Identity, ttl time.Duration) error {
	return s.SetWithTTL(ctx, s.GenerateKey("session", "id", sessionID), identity, ttl)
}

func (s *CacheService) GetSession(ctx context.Context, sessionID string) (*models.Identity, bool, error) {
	var identity models.Identity
	found, err := s.Get(ctx, s.GenerateKey("session", "id", sessionID), &identity)
	if err != nil || !found {
		return nil, false, err
	}
	return &identity, true, nil
}

func (s *CacheService) DeleteSession(ctx context.Context, sessionID string) error {
	return s.Delete(ctx, s.GenerateKey("session", "id", sessionID))
}

// FlushAll clears the whole cache database.
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushDB(ctx).Err()
}

// Close releases the underlying Redis connection.
func (s *CacheService) Close() error {
	return s.client.Close()
}
