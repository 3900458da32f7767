package models

import "time"

// Step is one stage of the report wizard.
type Step string

const (
	StepIncident Step = "incident"
	StepEvidence Step = "evidence"
	StepReview   Step = "review"
)

// CrimeDraft is the unsubmitted state of a crime report. Evidence files
// themselves never survive serialization; only their filenames are kept as
// placeholders, so the citizen has to re-attach files after a reload.
type CrimeDraft struct {
	Title         string     `json:"title,omitempty"`
	Description   string     `json:"description,omitempty"`
	Category      Category   `json:"category,omitempty"`
	Priority      Priority   `json:"priority,omitempty"`
	Location      string     `json:"location,omitempty"`
	DateIncident  *time.Time `json:"date_incident,omitempty"`
	EvidenceNames []string   `json:"evidence_names,omitempty"`
	Witnesses     []Witness  `json:"witnesses,omitempty"`
}

// IncidentDraft is the unsubmitted state of an incident report.
type IncidentDraft struct {
	Title        string       `json:"title,omitempty"`
	Description  string       `json:"description,omitempty"`
	IncidentType IncidentType `json:"incident_type,omitempty"`
	Severity     Severity     `json:"severity,omitempty"`
	Location     string       `json:"location,omitempty"`
	DateOccurred *time.Time   `json:"date_occurred,omitempty"`
}

// Draft is a tagged variant selected by Kind: exactly one of Crime or
// Incident is set. This rules out the state where crime-only fields exist on
// an incident draft.
type Draft struct {
	Kind     ReportKind     `json:"kind"`
	Step     Step           `json:"step"`
	Crime    *CrimeDraft    `json:"crime,omitempty"`
	Incident *IncidentDraft `json:"incident,omitempty"`
}

// NewDraft returns an empty draft of the given kind positioned at the first
// wizard step.
func NewDraft(kind ReportKind) *Draft {
	d := &Draft{Kind: kind, Step: StepIncident}
	switch kind {
	case KindIncident:
		d.Incident = &IncidentDraft{}
	default:
		d.Kind = KindCrime
		d.Crime = &CrimeDraft{}
	}
	return d
}
