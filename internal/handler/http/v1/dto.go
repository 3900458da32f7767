package v1

import (
	"time"
)

// WitnessPayload is one witness attached to a crime draft.
// @Description Witness attached to a crime draft
type WitnessPayload struct {
	LocalID   string `json:"local_id,omitempty"`
	Name      string `json:"name" validate:"required,min=2,max=255"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Statement string `json:"statement,omitempty"`
}

// CrimeDraftPayload carries the crime-specific draft fields.
// @Description Crime-specific draft fields
type CrimeDraftPayload struct {
	Title         string           `json:"title,omitempty" validate:"omitempty,max=255"`
	Description   string           `json:"description,omitempty"`
	Category      string           `json:"category,omitempty" validate:"omitempty,oneof=theft assault burglary vandalism fraud drugs cybercrime other"`
	Priority      string           `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	Location      string           `json:"location,omitempty" validate:"omitempty,max=255"`
	DateIncident  *time.Time       `json:"date_incident,omitempty"`
	EvidenceNames []string         `json:"evidence_names,omitempty"`
	Witnesses     []WitnessPayload `json:"witnesses,omitempty" validate:"dive"`
}

// IncidentDraftPayload carries the incident-specific draft fields.
// @Description Incident-specific draft fields
type IncidentDraftPayload struct {
	Title        string     `json:"title,omitempty" validate:"omitempty,max=255"`
	Description  string     `json:"description,omitempty"`
	IncidentType string     `json:"incident_type,omitempty" validate:"omitempty,oneof=accident disturbance hazard public_nuisance traffic other"`
	Severity     string     `json:"severity,omitempty" validate:"omitempty,oneof=low medium high critical"`
	Location     string     `json:"location,omitempty" validate:"omitempty,max=255"`
	DateOccurred *time.Time `json:"date_occurred,omitempty"`
}

// SaveDraftRequest DTO for storing the wizard draft. Exactly the variant
// matching kind is read; the other one is ignored.
// @Description DTO for storing the wizard draft
type SaveDraftRequest struct {
	Kind     string                `json:"kind" validate:"required,oneof=crime incident"`
	Step     string                `json:"step,omitempty"`
	Crime    *CrimeDraftPayload    `json:"crime,omitempty"`
	Incident *IncidentDraftPayload `json:"incident,omitempty"`
}

// DraftResponse DTO for the stored draft plus wizard position.
// @Description DTO for the stored draft plus wizard position
type DraftResponse struct {
	Kind     string                `json:"kind"`
	Step     string                `json:"step"`
	Steps    []string              `json:"steps"`
	Progress int                   `json:"progress"`
	AtReview bool                  `json:"at_review"`
	Crime    *CrimeDraftPayload    `json:"crime,omitempty"`
	Incident *IncidentDraftPayload `json:"incident,omitempty"`
}

// SubmitResponse DTO for the outcome of a submission.
// @Description DTO for the outcome of a submission
type SubmitResponse struct {
	Kind      string                  `json:"kind"`
	Crime     *CrimeReportResponse    `json:"crime,omitempty"`
	Incident  *IncidentReportResponse `json:"incident,omitempty"`
	Warning   string                  `json:"warning,omitempty"`
	AutoClose bool                    `json:"auto_close"`
}

// EvidenceResponse DTO for a stored evidence descriptor.
// @Description DTO for a stored evidence descriptor
type EvidenceResponse struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type,omitempty"`
	Size        int64     `json:"size,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// CrimeReportResponse DTO for a filed crime report.
// @Description DTO for a filed crime report
type CrimeReportResponse struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Category     string             `json:"category"`
	Priority     string             `json:"priority"`
	Location     string             `json:"location"`
	Status       string             `json:"status"`
	ReportedBy   string             `json:"reported_by"`
	Evidence     []EvidenceResponse `json:"evidence"`
	DateIncident time.Time          `json:"date_incident"`
	DateReported time.Time          `json:"date_reported"`
}

// IncidentReportResponse DTO for a filed incident report.
// @Description DTO for a filed incident report
type IncidentReportResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	IncidentType string    `json:"incident_type"`
	Severity     string    `json:"severity"`
	Location     string    `json:"location"`
	Status       string    `json:"status"`
	ReportedBy   string    `json:"reported_by"`
	DateOccurred time.Time `json:"date_occurred"`
	CreatedAt    time.Time `json:"created_at"`
}

// StatusUpdateResponse DTO for one entry of a report's status history.
// @Description DTO for one entry of a report's status history
type StatusUpdateResponse struct {
	Status           string    `json:"status"`
	Timestamp        time.Time `json:"timestamp"`
	UpdatedBy        string    `json:"updated_by,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	VisibleToCitizen bool      `json:"visible_to_citizen"`
}

// StatusRecordResponse DTO for a report's tracked status.
// @Description DTO for a report's tracked status
type StatusRecordResponse struct {
	ReportID            string                 `json:"report_id"`
	CurrentStatus       string                 `json:"current_status"`
	LastUpdate          time.Time              `json:"last_update"`
	AssignedOfficer     string                 `json:"assigned_officer,omitempty"`
	EstimatedResolution *time.Time             `json:"estimated_resolution,omitempty"`
	History             []StatusUpdateResponse `json:"history"`
}

// SendMessageRequest DTO for posting a message on a report thread.
// @Description DTO for posting a message on a report thread
type SendMessageRequest struct {
	Text string `json:"text" validate:"required,min=1,max=4000"`
}

// MessageResponse DTO for one message of a report thread.
// @Description DTO for one message of a report thread
type MessageResponse struct {
	ID         string    `json:"id"`
	ReportID   string    `json:"report_id"`
	SenderID   string    `json:"sender_id"`
	SenderRole string    `json:"sender_role"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// FeedbackRequest DTO for submitting portal feedback.
// @Description DTO for submitting portal feedback
type FeedbackRequest struct {
	Subject string `json:"subject" validate:"required,min=2,max=255"`
	Text    string `json:"text" validate:"required,min=1,max=4000"`
}

// FeedbackRespondRequest DTO for answering a feedback entry.
// @Description DTO for answering a feedback entry
type FeedbackRespondRequest struct {
	Text string `json:"text" validate:"required,min=1,max=4000"`
}

// FeedbackResponse DTO for a stored feedback entry.
// @Description DTO for a stored feedback entry
type FeedbackResponse struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Response  string    `json:"response,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
