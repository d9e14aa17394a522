package usecase

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aishnar/aishnar-leads/internal/entity"
)

// Fixed export column order. Renaming or reordering breaks downstream sheets.
var csvHeader = []string{
	"Full Name", "Email", "Phone", "Company", "Industry", "Size", "Revenue",
	"Years", "Problems", "Challenge", "Tools", "KPI", "Interest", "Status", "Date",
}

// WriteLeadsCSV renders the given (already filtered) view as CSV. Every cell
// is quoted unconditionally with embedded quotes doubled; encoding/csv quotes
// only when it has to, which would change the produced files. Dates are the
// creation timestamp as a calendar date in loc, without a time component.
func WriteLeadsCSV(w io.Writer, leads []entity.Lead, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}

	rows := make([]string, 0, len(leads)+1)
	rows = append(rows, csvRow(csvHeader))
	for _, l := range leads {
		rows = append(rows, csvRow([]string{
			l.FullName,
			l.Email,
			l.Phone,
			l.CompanyName,
			l.Industry,
			l.CompanySize,
			l.MonthlyRevenue,
			l.YearsInOperation,
			strings.Join(l.BusinessProblems, "; "),
			l.BiggestChallenge,
			l.ToolsSoftware,
			l.KPITracking,
			l.InterestInPaid,
			l.Status,
			l.CreatedAt.In(loc).Format("02/01/2006"),
		}))
	}

	_, err := io.WriteString(w, strings.Join(rows, "\n"))
	return err
}

func csvRow(cells []string) string {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

// ExportFilename embeds the export's own date, not any lead's date.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("leads-%s.csv", now.Format("2006-01-02"))
}
