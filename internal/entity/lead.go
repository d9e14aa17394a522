package entity

import (
	"context"
	"errors"
	"time"
)

var (
	ErrLeadNotFound  = errors.New("lead not found")
	ErrInvalidStatus = errors.New("invalid lead status")
)

// Review pipeline statuses. Any status may move to any other status,
// this is not a forward-only pipeline.
const (
	StatusNew       = "New"
	StatusContacted = "Contacted"
	StatusQualified = "Qualified"
)

func IsValidStatus(s string) bool {
	return s == StatusNew || s == StatusContacted || s == StatusQualified
}

// Options offered by the intake form. Stored values outside these lists are
// still accepted on read, the lists only drive rendering and validation hints.
var (
	Industries = []string{
		"Technology", "Healthcare", "Finance", "Retail", "Manufacturing",
		"Education", "Real Estate", "Hospitality", "Consulting", "Other",
	}

	CompanySizes = []string{"1-10", "11-50", "51-200", "201-500", "500+"}

	RevenueRanges = []string{
		"Under ₹1 Lakh", "₹1 Lakh - ₹5 Lakh", "₹5 Lakh - ₹10 Lakh",
		"₹10 Lakh - ₹50 Lakh", "₹50 Lakh - ₹1 Crore", "₹1 Crore+", "Prefer not to say",
	}

	BusinessProblems = []string{
		"Cost cutting", "SOP gaps", "KPI issues", "Process inefficiencies",
		"Internal tools", "Competitor pressure", "Slow growth",
	}
)

// Lead is one submitted business-analysis request. ID, Status and CreatedAt
// are assigned by the store on insert; after creation only Status is mutable.
// The json tags are also the column names, they are the storage contract.
type Lead struct {
	ID               string    `json:"id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	CompanyName      string    `json:"company_name"`
	Website          string    `json:"website,omitempty"`
	Industry         string    `json:"industry,omitempty"`
	CompanySize      string    `json:"company_size,omitempty"`
	MonthlyRevenue   string    `json:"monthly_revenue,omitempty"`
	YearsInOperation string    `json:"years_in_operation,omitempty"`
	BusinessProblems []string  `json:"business_problems"`
	BiggestChallenge string    `json:"biggest_challenge,omitempty"`
	ToolsSoftware    string    `json:"tools_software,omitempty"`
	KPITracking      string    `json:"kpi_tracking,omitempty"`
	InterestInPaid   string    `json:"interest_in_paid,omitempty"`
	PreferredTime    string    `json:"preferred_time,omitempty"`
	Consent          bool      `json:"consent"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

type LeadRepositoryInterface interface {
	// Insert stores a validated lead and fills in ID, Status and CreatedAt.
	Insert(ctx context.Context, lead *Lead) error

	// ListAll returns every lead ordered by creation timestamp, newest first.
	ListAll(ctx context.Context) ([]Lead, error)

	// UpdateStatus changes the status of a single lead by id.
	UpdateStatus(ctx context.Context, id, status string) error
}
