package v1

import (
	"github.com/mavrin/citizen-report-portal/internal/models"
	"github.com/mavrin/citizen-report-portal/internal/service"
	"github.com/mavrin/citizen-report-portal/internal/upstream"
	"github.com/mavrin/citizen-report-portal/internal/wizard"
)

// DTOToDraftModel converts a save request into the domain draft. Only the
// variant matching Kind is carried over.
func DTOToDraftModel(dto SaveDraftRequest) *models.Draft {
	d := &models.Draft{
		Kind: models.ReportKind(dto.Kind),
		Step: models.Step(dto.Step),
	}
	switch d.Kind {
	case models.KindIncident:
		if dto.Incident != nil {
			d.Incident = &models.IncidentDraft{
				Title:        dto.Incident.Title,
				Description:  dto.Incident.Description,
				IncidentType: models.IncidentType(dto.Incident.IncidentType),
				Severity:     models.Severity(dto.Incident.Severity),
				Location:     dto.Incident.Location,
				DateOccurred: dto.Incident.DateOccurred,
			}
		}
	default:
		if dto.Crime != nil {
			witnesses := make([]models.Witness, len(dto.Crime.Witnesses))
			for i, w := range dto.Crime.Witnesses {
				witnesses[i] = models.Witness{
					LocalID:   w.LocalID,
					Name:      w.Name,
					Phone:     w.Phone,
					Email:     w.Email,
					Statement: w.Statement,
				}
			}
			d.Crime = &models.CrimeDraft{
				Title:         dto.Crime.Title,
				Description:   dto.Crime.Description,
				Category:      models.Category(dto.Crime.Category),
				Priority:      models.Priority(dto.Crime.Priority),
				Location:      dto.Crime.Location,
				DateIncident:  dto.Crime.DateIncident,
				EvidenceNames: dto.Crime.EvidenceNames,
				Witnesses:     witnesses,
			}
		}
	}
	return d
}

// ModelToDraftResponse converts the domain draft into a response DTO,
// attaching the wizard position derived from the stored step.
func ModelToDraftResponse(d *models.Draft) *DraftResponse {
	w := wizard.New(d.Kind, d.Step)
	steps := wizard.StepsFor(d.Kind)
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = string(s)
	}
	resp := &DraftResponse{
		Kind:     string(d.Kind),
		Step:     string(w.Step()),
		Steps:    names,
		Progress: w.Progress(),
		AtReview: w.AtReview(),
	}
	if d.Crime != nil {
		witnesses := make([]WitnessPayload, len(d.Crime.Witnesses))
		for i, wit := range d.Crime.Witnesses {
			witnesses[i] = WitnessPayload{
				LocalID:   wit.LocalID,
				Name:      wit.Name,
				Phone:     wit.Phone,
				Email:     wit.Email,
				Statement: wit.Statement,
			}
		}
		resp.Crime = &CrimeDraftPayload{
			Title:         d.Crime.Title,
			Description:   d.Crime.Description,
			Category:      string(d.Crime.Category),
			Priority:      string(d.Crime.Priority),
			Location:      d.Crime.Location,
			DateIncident:  d.Crime.DateIncident,
			EvidenceNames: d.Crime.EvidenceNames,
			Witnesses:     witnesses,
		}
	}
	if d.Incident != nil {
		resp.Incident = &IncidentDraftPayload{
			Title:        d.Incident.Title,
			Description:  d.Incident.Description,
			IncidentType: string(d.Incident.IncidentType),
			Severity:     string(d.Incident.Severity),
			Location:     d.Incident.Location,
			DateOccurred: d.Incident.DateOccurred,
		}
	}
	return resp
}

// ModelToCrimeResponse converts a filed crime report into a response DTO.
func ModelToCrimeResponse(m *models.CrimeReport) *CrimeReportResponse {
	evidence := make([]EvidenceResponse, len(m.Evidence))
	for i, e := range m.Evidence {
		evidence[i] = EvidenceResponse{
			ID:          e.ID,
			Filename:    e.Filename,
			ContentType: e.ContentType,
			Size:        e.Size,
			UploadedAt:  e.UploadedAt,
		}
	}
	return &CrimeReportResponse{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Category:     string(m.Category),
		Priority:     string(m.Priority),
		Location:     m.Location,
		Status:       string(m.Status),
		ReportedBy:   m.ReportedBy,
		Evidence:     evidence,
		DateIncident: m.DateIncident,
		DateReported: m.DateReported,
	}
}

// ModelsToCrimeResponses converts a slice of crime reports.
func ModelsToCrimeResponses(reports []models.CrimeReport) []*CrimeReportResponse {
	responses := make([]*CrimeReportResponse, len(reports))
	for i := range reports {
		responses[i] = ModelToCrimeResponse(&reports[i])
	}
	return responses
}

// ModelToIncidentResponse converts a filed incident report into a response DTO.
func ModelToIncidentResponse(m *models.IncidentReport) *IncidentReportResponse {
	return &IncidentReportResponse{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		IncidentType: string(m.IncidentType),
		Severity:     string(m.Severity),
		Location:     m.Location,
		Status:       string(m.Status),
		ReportedBy:   m.ReportedBy,
		DateOccurred: m.DateOccurred,
		CreatedAt:    m.CreatedAt,
	}
}

// ModelsToIncidentResponses converts a slice of incident reports.
func ModelsToIncidentResponses(reports []models.IncidentReport) []*IncidentReportResponse {
	responses := make([]*IncidentReportResponse, len(reports))
	for i := range reports {
		responses[i] = ModelToIncidentResponse(&reports[i])
	}
	return responses
}

// SubmitResultToResponse converts a submission outcome into a response DTO.
func SubmitResultToResponse(r *service.SubmitResult) *SubmitResponse {
	resp := &SubmitResponse{
		Kind:      string(r.Kind),
		Warning:   r.Warning,
		AutoClose: r.AutoClose,
	}
	if r.Crime != nil {
		resp.Crime = ModelToCrimeResponse(r.Crime)
	}
	if r.Incident != nil {
		resp.Incident = ModelToIncidentResponse(r.Incident)
	}
	return resp
}

// ModelToStatusResponse converts a status record into a response DTO.
func ModelToStatusResponse(rec *models.StatusRecord) *StatusRecordResponse {
	history := make([]StatusUpdateResponse, len(rec.History))
	for i, u := range rec.History {
		history[i] = StatusUpdateResponse{
			Status:           string(u.Status),
			Timestamp:        u.Timestamp,
			UpdatedBy:        u.UpdatedBy,
			Notes:            u.Notes,
			VisibleToCitizen: u.VisibleToCitizen,
		}
	}
	return &StatusRecordResponse{
		ReportID:            rec.ReportID,
		CurrentStatus:       string(rec.CurrentStatus),
		LastUpdate:          rec.LastUpdate,
		AssignedOfficer:     rec.AssignedOfficer,
		EstimatedResolution: rec.EstimatedResolution,
		History:             history,
	}
}

// ModelToMessageResponse converts one thread message into a response DTO.
func ModelToMessageResponse(m *models.Message) *MessageResponse {
	return &MessageResponse{
		ID:         m.ID,
		ReportID:   m.ReportID,
		SenderID:   m.SenderID,
		SenderRole: m.SenderRole,
		Text:       m.Text,
		CreatedAt:  m.CreatedAt,
	}
}

// ModelsToMessageResponses converts a report's message thread.
func ModelsToMessageResponses(msgs []models.Message) []*MessageResponse {
	responses := make([]*MessageResponse, len(msgs))
	for i := range msgs {
		responses[i] = ModelToMessageResponse(&msgs[i])
	}
	return responses
}

// FeedbackToResponse converts a stored feedback entry into a response DTO.
func FeedbackToResponse(f *upstream.Feedback) *FeedbackResponse {
	return &FeedbackResponse{
		ID:        f.ID,
		Subject:   f.Subject,
		Text:      f.Text,
		Author:    f.Author,
		Response:  f.Response,
		CreatedAt: f.CreatedAt,
	}
}
