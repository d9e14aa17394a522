package usecase

import (
	"strings"

	"github.com/aishnar/aishnar-leads/internal/entity"
)

// FilterAll is the selector value that disables a filter dimension.
const FilterAll = "all"

type LeadFilter struct {
	Search   string
	Industry string
	Interest string
	Status   string
}

// FilterLeads evaluates the filter over the full in-memory collection. A lead
// passes only when every active condition holds. Search is a case-insensitive
// substring match over "full_name email company_name".
func FilterLeads(leads []entity.Lead, f LeadFilter) []entity.Lead {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]entity.Lead, 0, len(leads))
	for _, l := range leads {
		if search != "" {
			haystack := strings.ToLower(l.FullName + " " + l.Email + " " + l.CompanyName)
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		if !selectorMatches(f.Industry, l.Industry) {
			continue
		}
		if !selectorMatches(f.Interest, l.InterestInPaid) {
			continue
		}
		if !selectorMatches(f.Status, l.Status) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func selectorMatches(selector, value string) bool {
	return selector == "" || selector == FilterAll || selector == value
}

// Industries derives the filter menu options from the collection itself:
// non-empty values, de-duplicated, in first-seen order.
func Industries(leads []entity.Lead) []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range leads {
		if l.Industry == "" || seen[l.Industry] {
			continue
		}
		seen[l.Industry] = true
		out = append(out, l.Industry)
	}
	return out
}

type StatusCounts struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Contacted int `json:"contacted"`
	Qualified int `json:"qualified"`
}

// CountByStatus tallies the dashboard's stat cards.
func CountByStatus(leads []entity.Lead) StatusCounts {
	counts := StatusCounts{Total: len(leads)}
	for _, l := range leads {
		switch l.Status {
		case entity.StatusNew:
			counts.New++
		case entity.StatusContacted:
			counts.Contacted++
		case entity.StatusQualified:
			counts.Qualified++
		}
	}
	return counts
}
