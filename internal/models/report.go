package models

import (
	"time"
)

// ReportKind selects which report variant (and wizard steps) apply.
type ReportKind string

const (
	KindCrime    ReportKind = "crime"
	KindIncident ReportKind = "incident"
)

// Category classifies a crime report.
type Category string

const (
	CategoryTheft      Category = "theft"
	CategoryAssault    Category = "assault"
	CategoryBurglary   Category = "burglary"
	CategoryVandalism  Category = "vandalism"
	CategoryFraud      Category = "fraud"
	CategoryDrugs      Category = "drugs"
	CategoryCybercrime Category = "cybercrime"
	CategoryOther      Category = "other"
)

// Priority of a crime report.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Severity of an incident report.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// IncidentType classifies an incident report.
type IncidentType string

const (
	IncidentAccident       IncidentType = "accident"
	IncidentDisturbance    IncidentType = "disturbance"
	IncidentHazard         IncidentType = "hazard"
	IncidentPublicNuisance IncidentType = "public_nuisance"
	IncidentTraffic        IncidentType = "traffic"
	IncidentOther          IncidentType = "other"
)

// Status tracks a report through its lifecycle. The legal transitions are
// owned by the records system; the portal treats whatever arrives as
// authoritative and never re-validates them.
type Status string

const (
	StatusReported           Status = "reported"
	StatusUnderInvestigation Status = "under_investigation"
	StatusInvestigating      Status = "investigating"
	StatusAssigned           Status = "assigned"
	StatusResolved           Status = "resolved"
	StatusClosed             Status = "closed"
	StatusRejected           Status = "rejected"
	StatusEscalated          Status = "escalated"
)

// Witness statement attached to a crime report before submission.
// LocalID is assigned portal-side; the records system replaces witness
// identity on create and does not echo them back.
type Witness struct {
	LocalID   string `json:"local_id"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Statement string `json:"statement"`
}

// Evidence is a server-assigned attachment descriptor. Before upload only
// the filename is known.
type Evidence struct {
	ID          string    `json:"id,omitempty"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type,omitempty"`
	Size        int64     `json:"size,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at,omitempty"`
}

// CrimeReport is the crime variant of a citizen report.
type CrimeReport struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Category     Category   `json:"category"`
	Priority     Priority   `json:"priority"`
	Location     string     `json:"location"`
	DateIncident time.Time  `json:"date_incident"`
	Status       Status     `json:"status"`
	Evidence     []Evidence `json:"evidence"`
	Witnesses    []Witness  `json:"witnesses"`
	ReportedBy   string     `json:"reported_by"`
	DateReported time.Time  `json:"date_reported"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IncidentReport is the incident variant of a citizen report.
type IncidentReport struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	IncidentType IncidentType `json:"incident_type"`
	Severity     Severity     `json:"severity"`
	Location     string       `json:"location"`
	DateOccurred time.Time    `json:"date_occurred"`
	Status       Status       `json:"status"`
	ReportedBy   string       `json:"reported_by"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
