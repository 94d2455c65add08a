package risk

import (
	"context"
	"testing"

	"riskdesk/internal/models"
	"riskdesk/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func score(n int) *int { return &n }

func TestRiskDistribution(t *testing.T) {
	t.Run("unscored users are excluded", func(t *testing.T) {
		users := []models.User{
			{RiskScore: score(20)},
			{RiskScore: score(60)},
			{RiskScore: score(90)},
			{RiskScore: nil},
		}

		d := RiskDistribution(users)
		assert.Equal(t, Distribution{Low: 1, Medium: 0, High: 1, Critical: 1}, d)
	})

	t.Run("boundaries are inclusive upper bounds", func(t *testing.T) {
		users := []models.User{
			{RiskScore: score(0)},
			{RiskScore: score(25)},
			{RiskScore: score(26)},
			{RiskScore: score(50)},
			{RiskScore: score(51)},
			{RiskScore: score(75)},
			{RiskScore: score(76)},
			{RiskScore: score(100)},
		}

		d := RiskDistribution(users)
		assert.Equal(t, Distribution{Low: 2, Medium: 2, High: 2, Critical: 2}, d)
	})

	t.Run("buckets sum to scored user count", func(t *testing.T) {
		store := repositories.NewMockStore(7, 200, 0, 0)
		users, err := store.List(context.Background())
		require.NoError(t, err)

		scored := 0
		for _, u := range users {
			if u.RiskScore != nil {
				scored++
			}
		}

		d := RiskDistribution(users)
		assert.Equal(t, scored, d.Low+d.Medium+d.High+d.Critical)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, Distribution{}, RiskDistribution(nil))
		assert.Equal(t, Distribution{}, RiskDistribution([]models.User{}))
	})
}

func TestHighRiskCount(t *testing.T) {
	users := []models.User{
		{RiskScore: score(50)}, // threshold itself is not high risk
		{RiskScore: score(51)},
		{RiskScore: score(100)},
		{RiskScore: nil},
	}
	assert.Equal(t, 2, HighRiskCount(users))
	assert.Equal(t, 0, HighRiskCount(nil))
}

func TestMetricsForService(t *testing.T) {
	users := []models.User{
		{
			ServiceUsage:      models.ServiceUsage{Payin: true, API: true},
			ServiceRiskScores: models.ServiceRiskScores{Payin: 80, API: 10},
			ServiceStats:      models.ServiceStats{PayinVolume: 1000, APICalls: 500},
		},
		{
			ServiceUsage:      models.ServiceUsage{Payin: true},
			ServiceRiskScores: models.ServiceRiskScores{Payin: 30},
			ServiceStats:      models.ServiceStats{PayinVolume: 250},
		},
		{
			// Payout-only user: high payin sub-score must not count because
			// the payin flag is off.
			ServiceUsage:      models.ServiceUsage{Payout: true},
			ServiceRiskScores: models.ServiceRiskScores{Payin: 99, Payout: 60},
			ServiceStats:      models.ServiceStats{PayoutVolume: 4000},
		},
	}

	payin := MetricsForService(users, models.ServiceCategoryPayin)
	assert.Equal(t, 2, payin.UserCount)
	assert.Equal(t, 1, payin.HighRiskCount)
	assert.Equal(t, 1250.0, payin.Volume)

	payout := MetricsForService(users, models.ServiceCategoryPayout)
	assert.Equal(t, 1, payout.UserCount)
	assert.Equal(t, 1, payout.HighRiskCount)
	assert.Equal(t, 4000.0, payout.Volume)

	api := MetricsForService(users, models.ServiceCategoryAPI)
	assert.Equal(t, 1, api.UserCount)
	assert.Equal(t, 0, api.HighRiskCount)
	assert.Equal(t, int64(500), api.APICalls)
}

func TestServiceUsageDistribution(t *testing.T) {
	t.Run("mutually exclusive categories", func(t *testing.T) {
		users := []models.User{
			{ServiceUsage: models.ServiceUsage{Payin: true, Payout: true, API: true}},
			{ServiceUsage: models.ServiceUsage{Payin: true, Payout: true}},
			{ServiceUsage: models.ServiceUsage{Payin: true}},
			{ServiceUsage: models.ServiceUsage{}},
			{ServiceUsage: models.ServiceUsage{}},
		}

		buckets := ServiceUsageDistribution(users)

		got := make(map[string]int)
		for _, b := range buckets {
			got[b.Category] = b.Count
		}
		assert.Equal(t, map[string]int{
			UsageAllServices: 1,
			UsagePayinPayout: 1,
			UsagePayinOnly:   1,
			UsageNoServices:  2,
		}, got)
	})

	t.Run("zero-count categories are omitted", func(t *testing.T) {
		buckets := ServiceUsageDistribution([]models.User{
			{ServiceUsage: models.ServiceUsage{API: true}},
		})
		require.Len(t, buckets, 1)
		assert.Equal(t, UsageBucket{Category: UsageAPIOnly, Count: 1}, buckets[0])
	})

	t.Run("counts sum to total users", func(t *testing.T) {
		store := repositories.NewMockStore(11, 300, 0, 0)
		users, err := store.List(context.Background())
		require.NoError(t, err)

		total := 0
		for _, b := range ServiceUsageDistribution(users) {
			total += b.Count
		}
		assert.Equal(t, len(users), total)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, ServiceUsageDistribution(nil))
	})
}

func TestService_Overview(t *testing.T) {
	store := repositories.NewMockStore(3, 50, 0, 0)
	svc := NewService(store)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 50, overview.TotalUsers)
	require.Len(t, overview.Services, 3)
	assert.Equal(t, models.ServiceCategoryPayin, overview.Services[0].Service)
	assert.Equal(t, models.ServiceCategoryPayout, overview.Services[1].Service)
	assert.Equal(t, models.ServiceCategoryAPI, overview.Services[2].Service)
}
