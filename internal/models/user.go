package models

import "time"

// KYC statuses
const (
	KYCStatusVerified = "verified"
	KYCStatusPending  = "pending"
	KYCStatusRejected = "rejected"
)

// User is a risk/KYC subject tracked by the desk. Records are read-only:
// they are fetched wholesale from the data source and never written back.
type User struct {
	ID          string `gorm:"primarykey" json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `gorm:"uniqueIndex" json:"email"`
	RiskScore   *int   `json:"risk_score,omitempty"` // nil means not yet scored
	Chargebacks int    `json:"chargebacks"`
	Complaints  int    `json:"complaints"`
	KYCStatus   string `gorm:"default:'pending'" json:"kyc_status"`

	ServiceUsage      ServiceUsage      `gorm:"embedded;embeddedPrefix:usage_" json:"service_usage"`
	ServiceRiskScores ServiceRiskScores `gorm:"embedded;embeddedPrefix:svc_risk_" json:"service_risk_scores"`
	ServiceStats      ServiceStats      `gorm:"embedded;embeddedPrefix:stats_" json:"service_stats"`
	KYCDetails        KYCDetails        `gorm:"embedded;embeddedPrefix:kyc_" json:"kyc_details"`
	RiskFactors       RiskFactors       `gorm:"embedded;embeddedPrefix:factor_" json:"risk_factors"`

	CreatedAt time.Time `json:"created_at"`
}

// ServiceUsage flags which monetization channels the user is live on.
type ServiceUsage struct {
	Payin  bool `json:"payin"`
	Payout bool `json:"payout"`
	API    bool `json:"api"`
}

// ServiceRiskScores carries a 0..100 sub-score per service channel.
type ServiceRiskScores struct {
	Payin  int `json:"payin"`
	Payout int `json:"payout"`
	API    int `json:"api"`
}

// ServiceStats carries processed volume per money channel and the call count
// for the API channel.
type ServiceStats struct {
	PayinVolume  float64 `json:"payin_volume"`
	PayoutVolume float64 `json:"payout_volume"`
	APICalls     int64   `json:"api_calls"`
}

// KYCDetails holds the verification paper trail.
type KYCDetails struct {
	Documents JSON   `gorm:"type:jsonb" json:"documents"`
	PGPartner string `json:"pg_partner"`
	MIDStatus string `json:"mid_status"`
}

// RiskFactors are the six weighted sub-scores that feed the composite
// risk score. Each is 0..100.
type RiskFactors struct {
	Velocity       int `json:"velocity"`
	ChargebackRate int `json:"chargeback_rate"`
	ComplaintRate  int `json:"complaint_rate"`
	KYCAge         int `json:"kyc_age"`
	GeoRisk        int `json:"geo_risk"`
	VolumeSpike    int `json:"volume_spike"`
}

// FullName joins the name fields for display.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
