// Package risk computes derived statistics over the user collection: the
// headline high-risk count, per-service metrics, the score distribution, and
// the service usage breakdown. All computations are pure functions over the
// fetched slice; nothing is mutated or cached between calls.
package risk

import (
	"context"

	"riskdesk/internal/models"
	"riskdesk/internal/repositories"
)

// highRiskThreshold is the score above which a user (or a service sub-score)
// counts as high risk.
const highRiskThreshold = 50

// Service exposes the aggregations over the configured data source.
type Service interface {
	Overview(ctx context.Context) (*Overview, error)
}

type service struct {
	userRepo repositories.UserRepository
}

// NewService creates a risk metrics service.
func NewService(userRepo repositories.UserRepository) Service {
	return &service{userRepo: userRepo}
}

// Overview is the full metrics payload for the risk dashboard.
type Overview struct {
	TotalUsers        int              `json:"total_users"`
	HighRiskUsers     int              `json:"high_risk_users"`
	Services          []ServiceMetrics `json:"services"`
	Distribution      Distribution     `json:"distribution"`
	UsageDistribution []UsageBucket    `json:"usage_distribution"`
}

// ServiceMetrics aggregates one monetization channel.
type ServiceMetrics struct {
	Service       string  `json:"service"`
	UserCount     int     `json:"user_count"`
	HighRiskCount int     `json:"high_risk_count"`
	Volume        float64 `json:"volume"`    // payin/payout: summed volume
	APICalls      int64   `json:"api_calls"` // api: summed call count
}

// Distribution buckets users by composite risk score. Buckets use inclusive
// upper bounds: Low [0,25], Medium (25,50], High (50,75], Critical (75,100].
// Users without a score are excluded from every bucket.
type Distribution struct {
	Low      int `json:"low"`
	Medium   int `json:"medium"`
	High     int `json:"high"`
	Critical int `json:"critical"`
}

// UsageBucket is one of the eight mutually exclusive service combinations.
type UsageBucket struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

func (s *service) Overview(ctx context.Context) (*Overview, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &Overview{
		TotalUsers:    len(users),
		HighRiskUsers: HighRiskCount(users),
		Services: []ServiceMetrics{
			MetricsForService(users, models.ServiceCategoryPayin),
			MetricsForService(users, models.ServiceCategoryPayout),
			MetricsForService(users, models.ServiceCategoryAPI),
		},
		Distribution:      RiskDistribution(users),
		UsageDistribution: ServiceUsageDistribution(users),
	}, nil
}

// HighRiskCount counts users whose composite score is defined and above the
// high-risk threshold.
func HighRiskCount(users []models.User) int {
	count := 0
	for _, u := range users {
		if u.RiskScore != nil && *u.RiskScore > highRiskThreshold {
			count++
		}
	}
	return count
}

// MetricsForService aggregates user count, high-risk count, and volume for
// one service channel. High risk here is judged on the per-service sub-score,
// not the composite score.
func MetricsForService(users []models.User, category string) ServiceMetrics {
	m := ServiceMetrics{Service: category}
	for _, u := range users {
		switch category {
		case models.ServiceCategoryPayin:
			if !u.ServiceUsage.Payin {
				continue
			}
			m.UserCount++
			m.Volume += u.ServiceStats.PayinVolume
			if u.ServiceRiskScores.Payin > highRiskThreshold {
				m.HighRiskCount++
			}
		case models.ServiceCategoryPayout:
			if !u.ServiceUsage.Payout {
				continue
			}
			m.UserCount++
			m.Volume += u.ServiceStats.PayoutVolume
			if u.ServiceRiskScores.Payout > highRiskThreshold {
				m.HighRiskCount++
			}
		case models.ServiceCategoryAPI:
			if !u.ServiceUsage.API {
				continue
			}
			m.UserCount++
			m.APICalls += u.ServiceStats.APICalls
			if u.ServiceRiskScores.API > highRiskThreshold {
				m.HighRiskCount++
			}
		}
	}
	return m
}

// RiskDistribution partitions scored users into the four fixed buckets.
func RiskDistribution(users []models.User) Distribution {
	var d Distribution
	for _, u := range users {
		if u.RiskScore == nil {
			continue
		}
		switch score := *u.RiskScore; {
		case score <= 25:
			d.Low++
		case score <= 50:
			d.Medium++
		case score <= 75:
			d.High++
		default:
			d.Critical++
		}
	}
	return d
}

// Usage category names, in display order.
const (
	UsageAllServices = "All Services"
	UsagePayinPayout = "Payin & Payout"
	UsagePayinAPI    = "Payin & API"
	UsagePayoutAPI   = "Payout & API"
	UsagePayinOnly   = "Payin Only"
	UsagePayoutOnly  = "Payout Only"
	UsageAPIOnly     = "API Only"
	UsageNoServices  = "No Services"
)

var usageOrder = []string{
	UsageAllServices, UsagePayinPayout, UsagePayinAPI, UsagePayoutAPI,
	UsagePayinOnly, UsagePayoutOnly, UsageAPIOnly, UsageNoServices,
}

// ServiceUsageDistribution classifies every user into exactly one of the
// eight (payin, payout, api) combinations. Empty categories are omitted.
func ServiceUsageDistribution(users []models.User) []UsageBucket {
	counts := make(map[string]int, len(usageOrder))
	for _, u := range users {
		counts[usageCategory(u.ServiceUsage)]++
	}

	buckets := make([]UsageBucket, 0, len(counts))
	for _, name := range usageOrder {
		if n := counts[name]; n > 0 {
			buckets = append(buckets, UsageBucket{Category: name, Count: n})
		}
	}
	return buckets
}

func usageCategory(u models.ServiceUsage) string {
	switch {
	case u.Payin && u.Payout && u.API:
		return UsageAllServices
	case u.Payin && u.Payout:
		return UsagePayinPayout
	case u.Payin && u.API:
		return UsagePayinAPI
	case u.Payout && u.API:
		return UsagePayoutAPI
	case u.Payin:
		return UsagePayinOnly
	case u.Payout:
		return UsagePayoutOnly
	case u.API:
		return UsageAPIOnly
	default:
		return UsageNoServices
	}
}
