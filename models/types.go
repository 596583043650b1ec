// ABOUTME: Data models for broking-operations entities
// ABOUTME: Defines Client, Policy, Claim, Quote, and supporting record structs
package models

import "time"

// DateLayout is the wire format for all date fields.
const DateLayout = "2006-01-02"

type Client struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Company     string   `json:"company,omitempty"`
	PolicyCount int      `json:"policy_count"`
	Status      string   `json:"status"`
	Tags        []string `json:"tags"`
}

type Policy struct {
	ID            string  `json:"id"`
	PolicyNumber  string  `json:"policy_number"`
	ClientID      string  `json:"client_id"`
	Carrier       string  `json:"carrier,omitempty"`
	Product       string  `json:"product"`
	Premium       int64   `json:"premium"` // annual premium in whole currency units
	EffectiveDate string  `json:"effective_date,omitempty"`
	RenewalDate   string  `json:"renewal_date,omitempty"`
	Status        string  `json:"status"`
}

type Claim struct {
	ID          string `json:"id"`
	PolicyID    string `json:"policy_id"`
	ClientID    string `json:"client_id"`
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
	Stage       string `json:"stage"`
	Handler     string `json:"handler,omitempty"`
	LastUpdated string `json:"last_updated,omitempty"`
}

type Quote struct {
	ID              string  `json:"id"`
	ClientID        string  `json:"client_id"`
	Product         string  `json:"product"`
	Coverage        int64   `json:"coverage"`
	PremiumEstimate int64   `json:"premium_estimate"`
	Probability     float64 `json:"probability"`
	Notes           string  `json:"notes,omitempty"`
}

// WeightedPremium is the premium estimate discounted by bind probability.
func (q *Quote) WeightedPremium() float64 {
	return float64(q.PremiumEstimate) * q.Probability
}

type CommissionRecord struct {
	ID       string `json:"id"`
	PolicyID string `json:"policy_id"`
	Month    string `json:"month"` // YYYY-MM
	Amount   int64  `json:"amount"`
	Status   string `json:"status"`
}

type ComplianceTask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Owner     string `json:"owner,omitempty"`
	DueDate   string `json:"due_date,omitempty"`
	Status    string `json:"status"`
	RiskLevel string `json:"risk_level"`
}

// DueWithin reports whether the task's due date falls inside the window.
// Tasks with no parseable due date are never due.
func (t *ComplianceTask) DueWithin(now time.Time, days int) bool {
	if t.DueDate == "" {
		return false
	}
	due, err := time.Parse(DateLayout, t.DueDate)
	if err != nil {
		return false
	}
	return !due.Before(now.Truncate(24*time.Hour)) && due.Before(now.AddDate(0, 0, days))
}

type DocumentRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category,omitempty"`
	UploadedBy string `json:"uploaded_by,omitempty"`
	UploadedAt string `json:"uploaded_at"`
	OcrExtract string `json:"ocr_extract,omitempty"`
}

type Partner struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization,omitempty"`
	CoverageAreas  []string `json:"coverage_areas,omitempty"`
	Rating         float64  `json:"rating"`
	ActiveDeals    int      `json:"active_deals"`
}

type CommunicationThread struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Participants []string `json:"participants,omitempty"`
	LastMessage  string   `json:"last_message,omitempty"`
	Channel      string   `json:"channel"`
	Sentiment    string   `json:"sentiment"`
}

type WorkflowStep struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner,omitempty"`
	SLA   string `json:"sla,omitempty"`
}

type Workflow struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Trigger string         `json:"trigger,omitempty"`
	Active  bool           `json:"active"`
	Steps   []WorkflowStep `json:"steps"`
}

// ModuleConfig describes one dashboard module in the shell's catalog.
type ModuleConfig struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// PlatformConfig is the singleton branding and layout configuration.
type PlatformConfig struct {
	BrandName   string          `json:"brand_name"`
	Theme       string          `json:"theme"`
	AccentMode  string          `json:"accent_mode"`
	ModuleOrder []string        `json:"module_order"`
	Toggles     map[string]bool `json:"toggles"`
}

// Client status constants.
const (
	ClientActive   = "Active"
	ClientProspect = "Prospect"
	ClientDormant  = "Dormant"
)

// Policy status constants.
const (
	PolicyActive  = "Active"
	PolicyPending = "Pending"
	PolicyLapsed  = "Lapsed"
)

// Claim stage constants.
const (
	ClaimFiled         = "Filed"
	ClaimInvestigating = "Investigating"
	ClaimApproved      = "Approved"
	ClaimSettled       = "Settled"
	ClaimDenied        = "Denied"
)

// Commission status constants.
const (
	CommissionProjected = "Projected"
	CommissionInvoiced  = "Invoiced"
	CommissionReceived  = "Received"
)

// Compliance status constants.
const (
	ComplianceOpen     = "Open"
	ComplianceInReview = "In Review"
	ComplianceClosed   = "Closed"
)

// Risk level constants.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// Communication channel constants.
const (
	ChannelEmail  = "Email"
	ChannelPortal = "Portal"
	ChannelPhone  = "Phone"
	ChannelChat   = "Chat"
)

// Sentiment constants.
const (
	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"
)

// UpsertStatus values reported by client upserts.
const (
	UpsertCreated   = "created"
	UpsertUpdated   = "updated"
	UpsertDuplicate = "duplicate"
)
