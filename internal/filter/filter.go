// Package filter derives the visible subset of the held collections. All
// functions are pure; the full set is recomputed on every call, which is fine
// at single-department volumes.
package filter

import (
	"strings"

	"github.com/mavrin/citizen-report-portal/internal/models"
)

// All is the sentinel meaning "no constraint" for a filter field.
const All = "all"

// CrimeQuery restricts the crime collection. Zero-value string fields and
// All both mean unconstrained. OwnerID, when set, keeps only reports filed
// by that citizen.
type CrimeQuery struct {
	Search   string
	Status   string
	Category string
	OwnerID  string
}

// IncidentQuery restricts the incident collection.
type IncidentQuery struct {
	Search  string
	Status  string
	Type    string
	OwnerID string
}

func unconstrained(filter string) bool {
	return filter == "" || filter == All
}

// matchesSearch reports whether the term occurs case-insensitively in any of
// the fields.
func matchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Crimes returns the reports matching every constraint of the query.
func Crimes(reports []models.CrimeReport, q CrimeQuery) []models.CrimeReport {
	out := make([]models.CrimeReport, 0, len(reports))
	for _, r := range reports {
		if !matchesSearch(q.Search, r.Title, r.Description, r.Location) {
			continue
		}
		if !unconstrained(q.Status) && string(r.Status) != q.Status {
			continue
		}
		if !unconstrained(q.Category) && string(r.Category) != q.Category {
			continue
		}
		if q.OwnerID != "" && r.ReportedBy != q.OwnerID {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Incidents returns the incidents matching every constraint of the query.
func Incidents(reports []models.IncidentReport, q IncidentQuery) []models.IncidentReport {
	out := make([]models.IncidentReport, 0, len(reports))
	for _, r := range reports {
		if !matchesSearch(q.Search, r.Title, r.Description, r.Location) {
			continue
		}
		if !unconstrained(q.Status) && string(r.Status) != q.Status {
			continue
		}
		if !unconstrained(q.Type) && string(r.IncidentType) != q.Type {
			continue
		}
		if q.OwnerID != "" && r.ReportedBy != q.OwnerID {
			continue
		}
		out = append(out, r)
	}
	return out
}
