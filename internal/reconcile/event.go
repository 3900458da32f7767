package reconcile

import (
	"encoding/json"
	"time"

	"github.com/mavrin/citizen-report-portal/internal/models"
)

// Event is the envelope pushed by the records system over its realtime
// streams.
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Event types emitted by the records system.
const (
	EventReportUpdate  = "report_update"
	EventReportDeleted = "report_deleted"
	EventMessageAdded  = "message_added"
	EventStatusUpdate  = "status_update"
)

// reportRef is the minimal payload slice needed to locate a held entry.
type reportRef struct {
	ID string `json:"id"`
}

// StatusDelta is the payload of a status_update event.
type StatusDelta struct {
	ReportID            string        `json:"report_id"`
	Status              models.Status `json:"status"`
	Timestamp           time.Time     `json:"timestamp"`
	UpdatedBy           string        `json:"updated_by,omitempty"`
	Notes               string        `json:"notes,omitempty"`
	VisibleToCitizen    bool          `json:"visible_to_citizen"`
	AssignedOfficer     string        `json:"assigned_officer,omitempty"`
	EstimatedResolution *time.Time    `json:"estimated_resolution,omitempty"`
}
