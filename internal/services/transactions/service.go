// Package transactions implements the compound filter over the transaction
// collection and the per-category aggregates behind the tab badges. The
// aggregates are always computed over the unfiltered collection so badge
// counts stay stable while the table contents change.
package transactions

import (
	"context"
	"strings"

	"riskdesk/internal/models"
	"riskdesk/internal/repositories"
)

// FilterAll is the sentinel criterion value that matches everything.
const FilterAll = "all"

// Filter holds the five independent criteria. A criterion set to FilterAll
// (or left empty) always matches; the rest must all pass (logical AND).
type Filter struct {
	Search          string `json:"search"`
	Status          string `json:"status"`
	Type            string `json:"type"`
	ServiceCategory string `json:"service_category"`
	Tab             string `json:"tab"`
}

// Matches reports whether a single transaction passes every criterion.
// The tab acts as a second service-category gate layered on top of the
// explicit category filter; both must independently pass.
func (f Filter) Matches(tx models.Transaction) bool {
	if !matchesValue(f.Status, tx.Status) {
		return false
	}
	if !matchesValue(f.Type, tx.Type) {
		return false
	}
	if !matchesValue(f.ServiceCategory, tx.ServiceCategory) {
		return false
	}
	if !matchesValue(f.Tab, tx.ServiceCategory) {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(tx.ID), needle) &&
			!strings.Contains(strings.ToLower(tx.Description), needle) {
			return false
		}
	}
	return true
}

func matchesValue(criterion, value string) bool {
	return criterion == "" || criterion == FilterAll || criterion == value
}

// Apply returns the subset of txs passing the filter, preserving order.
func Apply(txs []models.Transaction, f Filter) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if f.Matches(tx) {
			out = append(out, tx)
		}
	}
	return out
}

// CountByCategory counts transactions per service category over the full
// collection, independent of any filter state.
func CountByCategory(txs []models.Transaction) map[string]int {
	counts := make(map[string]int, len(models.ServiceCategories))
	for _, tx := range txs {
		counts[tx.ServiceCategory]++
	}
	return counts
}

// VolumeByCategory sums amounts per service category over the full
// collection, independent of any filter state.
func VolumeByCategory(txs []models.Transaction) map[string]float64 {
	volumes := make(map[string]float64, len(models.ServiceCategories))
	for _, tx := range txs {
		volumes[tx.ServiceCategory] += tx.Amount
	}
	return volumes
}

// Service fetches the collection and serves filtered views plus the stable
// per-category summary.
type Service interface {
	List(ctx context.Context, f Filter) (*ListResult, error)
	Summary(ctx context.Context) (*SummaryResult, error)
}

type service struct {
	txRepo repositories.TransactionRepository
}

// NewService creates a transaction filter service.
func NewService(txRepo repositories.TransactionRepository) Service {
	return &service{txRepo: txRepo}
}

// ListResult is a filtered view plus the unfiltered per-category aggregates.
type ListResult struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int                  `json:"total"`
	Summary      SummaryResult        `json:"summary"`
}

// SummaryResult carries the per-category aggregates for the tab badges.
type SummaryResult struct {
	CountByCategory  map[string]int     `json:"count_by_category"`
	VolumeByCategory map[string]float64 `json:"volume_by_category"`
}

func (s *service) List(ctx context.Context, f Filter) (*ListResult, error) {
	all, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := Apply(all, f)
	return &ListResult{
		Transactions: filtered,
		Total:        len(filtered),
		Summary: SummaryResult{
			CountByCategory:  CountByCategory(all),
			VolumeByCategory: VolumeByCategory(all),
		},
	}, nil
}

func (s *service) Summary(ctx context.Context) (*SummaryResult, error) {
	all, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &SummaryResult{
		CountByCategory:  CountByCategory(all),
		VolumeByCategory: VolumeByCategory(all),
	}, nil
}
