package repositories

import (
	"context"
	"errors"
	"log"

	"riskdesk/internal/models"
	"riskdesk/internal/repositories/cache"

	"gorm.io/gorm"
)

// GormUserRepository serves user records from Postgres with a cache-aside
// copy of the full collection in Redis. The collection is small and
// read-only, so whole-list caching is cheaper than per-row keys.
type GormUserRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewGormUserRepository creates a Postgres-backed user repository.
// cacheService may be nil when Redis is not configured.
func NewGormUserRepository(db *gorm.DB, cacheService *cache.CacheService) *GormUserRepository {
	return &GormUserRepository{db: db, cache: cacheService}
}

func (r *GormUserRepository) List(ctx context.Context) ([]models.User, error) {
	if r.cache != nil {
		if users, found, err := r.cache.GetUsers(ctx); err == nil && found {
			return users, nil
		}
	}

	var users []models.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.CacheUsers(ctx, users); err != nil {
			log.Printf("failed to cache user list: %v", err)
		}
	}
	return users, nil
}

func (r *GormUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GormTransactionRepository serves transaction records from Postgres.
type GormTransactionRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewGormTransactionRepository creates a Postgres-backed transaction
// repository. cacheService may be nil when Redis is not configured.
func NewGormTransactionRepository(db *gorm.DB, cacheService *cache.CacheService) *GormTransactionRepository {
	return &GormTransactionRepository{db: db, cache: cacheService}
}

func (r *GormTransactionRepository) List(ctx context.Context) ([]models.Transaction, error) {
	if r.cache != nil {
		if txs, found, err := r.cache.GetTransactions(ctx); err == nil && found {
			return txs, nil
		}
	}

	var txs []models.Transaction
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&txs).Error; err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.CacheTransactions(ctx, txs); err != nil {
			log.Printf("failed to cache transaction list: %v", err)
		}
	}
	return txs, nil
}

func (r *GormTransactionRepository) ListByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}
