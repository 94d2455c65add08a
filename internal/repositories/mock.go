package repositories

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"riskdesk/internal/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a record does not exist in the store.
var ErrNotFound = errors.New("record not found")

// MockStore serves generated demo data from memory, simulating remote API
// latency on every call. The collections are built once at construction and
// never mutated afterwards, so concurrent reads need no locking.
type MockStore struct {
	users        []models.User
	transactions []models.Transaction
	latency      time.Duration
}

var (
	firstNames = []string{"Aarav", "Priya", "Rohan", "Meera", "Vikram", "Ananya", "Karan", "Divya", "Arjun", "Sneha", "Rahul", "Isha"}
	lastNames  = []string{"Sharma", "Patel", "Reddy", "Iyer", "Gupta", "Nair", "Singh", "Mehta", "Joshi", "Kulkarni", "Bose", "Rao"}
	pgPartners = []string{"Razorpay", "Cashfree", "PayU", "CCAvenue"}
	midStates  = []string{"active", "under_review", "suspended"}
	processors = []string{"visa", "mastercard", "upi", "netbanking"}
	endpoints  = []string{"/v1/payments", "/v1/payouts", "/v1/balance", "/v1/verify", "/v1/webhooks"}
	docTypes   = []string{"pan", "gst", "bank_statement", "incorporation_certificate"}
)

// NewMockStore builds a seeded store of userCount users and txCount
// transactions. The same seed yields the same data set.
func NewMockStore(seed int64, userCount, txCount int, latency time.Duration) *MockStore {
	rng := rand.New(rand.NewSource(seed))

	s := &MockStore{latency: latency}
	s.users = generateUsers(rng, userCount)
	s.transactions = generateTransactions(rng, s.users, txCount)
	return s
}

func generateUsers(rng *rand.Rand, n int) []models.User {
	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		u := models.User{
			ID:          uuid.NewString(),
			FirstName:   firstNames[rng.Intn(len(firstNames))],
			LastName:    lastNames[rng.Intn(len(lastNames))],
			Chargebacks: rng.Intn(12),
			Complaints:  rng.Intn(8),
			KYCStatus:   pick(rng, models.KYCStatusVerified, models.KYCStatusPending, models.KYCStatusRejected),
			CreatedAt:   time.Now().AddDate(0, 0, -rng.Intn(365)),
		}
		u.Email = fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(u.FirstName), strings.ToLower(u.LastName), i)

		// Roughly one in seven users has not been scored yet.
		if rng.Intn(7) != 0 {
			score := rng.Intn(101)
			u.RiskScore = &score
		}

		u.ServiceUsage = models.ServiceUsage{
			Payin:  rng.Intn(3) != 0,
			Payout: rng.Intn(2) == 0,
			API:    rng.Intn(3) == 0,
		}
		u.ServiceRiskScores = models.ServiceRiskScores{
			Payin:  rng.Intn(101),
			Payout: rng.Intn(101),
			API:    rng.Intn(101),
		}
		u.ServiceStats = models.ServiceStats{
			PayinVolume:  round2(rng.Float64() * 500000),
			PayoutVolume: round2(rng.Float64() * 300000),
			APICalls:     int64(rng.Intn(100000)),
		}
		u.KYCDetails = models.KYCDetails{
			Documents: generateDocuments(rng),
			PGPartner: pgPartners[rng.Intn(len(pgPartners))],
			MIDStatus: midStates[rng.Intn(len(midStates))],
		}
		u.RiskFactors = models.RiskFactors{
			Velocity:       rng.Intn(101),
			ChargebackRate: rng.Intn(101),
			ComplaintRate:  rng.Intn(101),
			KYCAge:         rng.Intn(101),
			GeoRisk:        rng.Intn(101),
			VolumeSpike:    rng.Intn(101),
		}

		users = append(users, u)
	}
	return users
}

func generateDocuments(rng *rand.Rand) models.JSON {
	docs := make(models.JSON, 0, 2)
	for _, t := range docTypes {
		if rng.Intn(2) == 0 {
			continue
		}
		docs = append(docs, map[string]interface{}{
			"type":   t,
			"status": pick(rng, "approved", "pending", "rejected"),
		})
	}
	return docs
}

func generateTransactions(rng *rand.Rand, users []models.User, n int) []models.Transaction {
	txs := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		category := models.ServiceCategories[rng.Intn(len(models.ServiceCategories))]
		tx := models.Transaction{
			ID:              fmt.Sprintf("TXN-%06d", i+1),
			Amount:          round2(10 + rng.Float64()*25000),
			Currency:        "INR",
			Status:          pick(rng, models.TransactionStatusCompleted, models.TransactionStatusCompleted, models.TransactionStatusPending, models.TransactionStatusFailed),
			Type:            pick(rng, models.TransactionTypeDeposit, models.TransactionTypeWithdrawal, models.TransactionTypeTransfer),
			ServiceCategory: category,
			CreatedAt:       time.Now().Add(-time.Duration(rng.Intn(90*24)) * time.Hour),
		}
		var owner *models.User
		if len(users) > 0 {
			owner = &users[rng.Intn(len(users))]
			tx.UserID = owner.ID
		}

		switch category {
		case models.ServiceCategoryPayin:
			tx.Processor = processors[rng.Intn(len(processors))]
			tx.Description = "Collection via " + tx.Processor
		case models.ServiceCategoryPayout:
			// Disbursements go to the account holder's registered name.
			if owner != nil {
				tx.Recipient = owner.FullName()
			} else {
				tx.Recipient = fmt.Sprintf("%s %s", firstNames[rng.Intn(len(firstNames))], lastNames[rng.Intn(len(lastNames))])
			}
			tx.Description = "Disbursement to " + tx.Recipient
		case models.ServiceCategoryAPI:
			tx.APIEndpoint = endpoints[rng.Intn(len(endpoints))]
			tx.Description = "API usage on " + tx.APIEndpoint
		}

		txs = append(txs, tx)
	}
	return txs
}

// List returns every user record after the simulated latency elapses.
func (s *MockStore) List(ctx context.Context) ([]models.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// GetByID returns a single user record.
func (s *MockStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// Transactions exposes the store as a TransactionRepository.
func (s *MockStore) Transactions() *MockTransactionRepository {
	return &MockTransactionRepository{store: s}
}

// MockTransactionRepository serves the store's transaction collection.
type MockTransactionRepository struct {
	store *MockStore
}

// List returns every transaction after the simulated latency elapses.
func (r *MockTransactionRepository) List(ctx context.Context) ([]models.Transaction, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]models.Transaction, len(r.store.transactions))
	copy(out, r.store.transactions)
	return out, nil
}

// ListByUser returns the transactions attributed to one user.
func (r *MockTransactionRepository) ListByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, tx := range all {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

// wait simulates remote API latency, honoring context cancellation.
func (s *MockStore) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func pick(rng *rand.Rand, options ...string) string {
	return options[rng.Intn(len(options))]
}

func round2(f float64) float64 {
	return float64(int64(f*100)) / 100
}
