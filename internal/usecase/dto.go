package usecase

import (
	"strings"
	"time"

	"github.com/aishnar/aishnar-leads/internal/entity"
)

type SubmitLeadInput struct {
	FullName         string   `json:"full_name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	CompanyName      string   `json:"company_name"`
	Website          string   `json:"website"`
	Industry         string   `json:"industry"`
	CompanySize      string   `json:"company_size"`
	MonthlyRevenue   string   `json:"monthly_revenue"`
	YearsInOperation string   `json:"years_in_operation"`
	BusinessProblems []string `json:"business_problems"`
	BiggestChallenge string   `json:"biggest_challenge"`
	ToolsSoftware    string   `json:"tools_software"`
	KPITracking      string   `json:"kpi_tracking"`
	InterestInPaid   string   `json:"interest_in_paid"`
	PreferredTime    string   `json:"preferred_time"`
	Consent          bool     `json:"consent"`
}

type SubmitLeadOutput struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// toLead builds the normalized lead the store receives. Only the three
// required text fields are trimmed, mirroring what the form does.
func (in SubmitLeadInput) toLead() entity.Lead {
	return entity.Lead{
		FullName:         strings.TrimSpace(in.FullName),
		Email:            strings.TrimSpace(in.Email),
		Phone:            in.Phone,
		CompanyName:      strings.TrimSpace(in.CompanyName),
		Website:          in.Website,
		Industry:         in.Industry,
		CompanySize:      in.CompanySize,
		MonthlyRevenue:   in.MonthlyRevenue,
		YearsInOperation: in.YearsInOperation,
		BusinessProblems: in.BusinessProblems,
		BiggestChallenge: in.BiggestChallenge,
		ToolsSoftware:    in.ToolsSoftware,
		KPITracking:      in.KPITracking,
		InterestInPaid:   in.InterestInPaid,
		PreferredTime:    in.PreferredTime,
		Consent:          in.Consent,
	}
}
