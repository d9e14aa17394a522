package database

import (
	"context"
	"database/sql"
	"log"

	"github.com/lib/pq"

	"github.com/aishnar/aishnar-leads/internal/entity"
)

// Column names here are the storage contract; renaming one means migrating
// the business_analysis_leads table.
type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Insert stores one validated lead. The table assigns id, status and
// created_at, which are scanned back into the lead.
func (r *LeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO business_analysis_leads (
			full_name, email, phone, company_name, website, industry,
			company_size, monthly_revenue, years_in_operation, business_problems,
			biggest_challenge, tools_software, kpi_tracking, interest_in_paid,
			preferred_time, consent
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, status, created_at
	`

	err := r.DB.QueryRowContext(
		ctx,
		query,
		lead.FullName,
		lead.Email,
		nullString(lead.Phone),
		lead.CompanyName,
		nullString(lead.Website),
		nullString(lead.Industry),
		nullString(lead.CompanySize),
		nullString(lead.MonthlyRevenue),
		nullString(lead.YearsInOperation),
		pq.Array(lead.BusinessProblems),
		nullString(lead.BiggestChallenge),
		nullString(lead.ToolsSoftware),
		nullString(lead.KPITracking),
		nullString(lead.InterestInPaid),
		nullString(lead.PreferredTime),
		lead.Consent,
	).Scan(
		&lead.ID,
		&lead.Status,
		&lead.CreatedAt,
	)

	if err != nil {
		log.Printf("lead insert failed: %v", err)
		return err
	}

	return nil
}

// ListAll returns every lead newest-first. Filtering happens in memory on the
// caller's side, not in SQL.
func (r *LeadRepository) ListAll(ctx context.Context) ([]entity.Lead, error) {
	query := `
		SELECT
			id, full_name, email, phone, company_name, website, industry,
			company_size, monthly_revenue, years_in_operation, business_problems,
			biggest_challenge, tools_software, kpi_tracking, interest_in_paid,
			preferred_time, consent, status, created_at
		FROM business_analysis_leads
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		var (
			l        entity.Lead
			phone    sql.NullString
			website  sql.NullString
			industry sql.NullString
			size     sql.NullString
			revenue  sql.NullString
			years    sql.NullString
			problems pq.StringArray
			bigChal  sql.NullString
			tools    sql.NullString
			kpi      sql.NullString
			interest sql.NullString
			prefTime sql.NullString
		)

		err := rows.Scan(
			&l.ID, &l.FullName, &l.Email, &phone, &l.CompanyName, &website,
			&industry, &size, &revenue, &years, &problems, &bigChal, &tools,
			&kpi, &interest, &prefTime, &l.Consent, &l.Status, &l.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		l.Phone = phone.String
		l.Website = website.String
		l.Industry = industry.String
		l.CompanySize = size.String
		l.MonthlyRevenue = revenue.String
		l.YearsInOperation = years.String
		l.BusinessProblems = problems
		l.BiggestChallenge = bigChal.String
		l.ToolsSoftware = tools.String
		l.KPITracking = kpi.String
		l.InterestInPaid = interest.String
		l.PreferredTime = prefTime.String

		leads = append(leads, l)
	}

	return leads, rows.Err()
}

// UpdateStatus is the only mutation allowed after creation.
func (r *LeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE business_analysis_leads SET status = $1 WHERE id = $2`

	res, err := r.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
