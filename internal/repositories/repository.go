// Package repositories provides the data access layer. The dashboard core
// only depends on the fetch contracts below; whether they are served by the
// seeded in-memory source or by Postgres is a wiring decision in main.
package repositories

import (
	"context"

	"riskdesk/internal/models"
)

// UserRepository fetches risk/KYC subject records. Records are read-only.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// TransactionRepository fetches transaction records. Records are read-only;
// all filtering happens in memory after the fetch.
type TransactionRepository interface {
	List(ctx context.Context) ([]models.Transaction, error)
	ListByUser(ctx context.Context, userID string) ([]models.Transaction, error)
}
