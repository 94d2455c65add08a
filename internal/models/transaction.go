package models

import "time"

// Transaction statuses
const (
	TransactionStatusCompleted = "completed"
	TransactionStatusPending   = "pending"
	TransactionStatusFailed    = "failed"
)

// Transaction types
const (
	TransactionTypeDeposit    = "deposit"
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypeTransfer   = "transfer"
)

// Service categories — the three monetization channels.
const (
	ServiceCategoryPayin  = "payin"
	ServiceCategoryPayout = "payout"
	ServiceCategoryAPI    = "api"
)

// ServiceCategories lists the channels in display order.
var ServiceCategories = []string{ServiceCategoryPayin, ServiceCategoryPayout, ServiceCategoryAPI}

// Transaction is a single money (or API) movement attributed to a user.
// Fetched wholesale and filtered in memory; there is no write path.
type Transaction struct {
	ID              string  `gorm:"primarykey" json:"id"`
	UserID          string  `gorm:"index" json:"user_id"`
	Amount          float64 `json:"amount"`
	Currency        string  `gorm:"default:'USD'" json:"currency"`
	Status          string  `gorm:"not null" json:"status"`
	Type            string  `gorm:"not null" json:"type"`
	ServiceCategory string  `gorm:"not null;index" json:"service_category"`
	Description     string  `json:"description"`

	// Category-specific fields; only the one matching ServiceCategory is set.
	Processor   string `json:"processor,omitempty"`    // payin
	Recipient   string `json:"recipient,omitempty"`    // payout
	APIEndpoint string `json:"api_endpoint,omitempty"` // api

	CreatedAt time.Time `json:"created_at"`
}
