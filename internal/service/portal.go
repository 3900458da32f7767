package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mavrin/citizen-report-portal/internal/filter"
	"github.com/mavrin/citizen-report-portal/internal/models"
	"github.com/mavrin/citizen-report-portal/internal/reconcile"
	"github.com/mavrin/citizen-report-portal/internal/upstream"
	"github.com/mavrin/citizen-report-portal/internal/wizard"
	"github.com/sirupsen/logrus"
)

// RecordsAPI is the contract for the external police records API.
type RecordsAPI interface {
	CreateCrime(ctx context.Context, req upstream.CreateCrimeRequest) (*models.CrimeReport, error)
	CreateIncident(ctx context.Context, req upstream.CreateIncidentRequest) (*models.IncidentReport, error)
	UploadEvidence(ctx context.Context, crimeID string, files []upstream.EvidenceFile) ([]models.Evidence, error)
	ListCrimes(ctx context.Context) ([]models.CrimeReport, error)
	ListIncidents(ctx context.Context) ([]models.IncidentReport, error)
	GetStatus(ctx context.Context, crimeID string) (*models.StatusRecord, error)
	GetMessages(ctx context.Context, crimeID string) ([]models.Message, error)
	PostMessage(ctx context.Context, crimeID string, msg models.Message) (*models.Message, error)
	PostFeedback(ctx context.Context, req upstream.FeedbackRequest) (*upstream.Feedback, error)
	RespondFeedback(ctx context.Context, feedbackID, text string) (*upstream.Feedback, error)
}

// DraftStore is the contract for draft persistence.
type DraftStore interface {
	Save(ctx context.Context, userID string, d *models.Draft)
	Load(ctx context.Context, userID string) *models.Draft
	Clear(ctx context.Context, userID string)
}

// PortalService is the business surface the HTTP handlers call.
type PortalService interface {
	Draft(ctx context.Context, userID string) *models.Draft
	SaveDraft(ctx context.Context, userID string, d *models.Draft) (*models.Draft, error)
	DiscardDraft(ctx context.Context, userID string)
	AdvanceDraft(ctx context.Context, userID string) (*models.Draft, error)
	RewindDraft(ctx context.Context, userID string) (*models.Draft, error)
	ReviewDraft(ctx context.Context, userID string) (*models.Draft, error)
	Submit(ctx context.Context, userID string, files []upstream.EvidenceFile) (*SubmitResult, error)
	Reports(q filter.CrimeQuery) []models.CrimeReport
	Incidents(q filter.IncidentQuery) []models.IncidentReport
	ReportStatus(ctx context.Context, reportID string) (*models.StatusRecord, error)
	Messages(ctx context.Context, reportID string) ([]models.Message, error)
	SendMessage(ctx context.Context, userID, reportID, text string) (*models.Message, error)
	SubmitFeedback(ctx context.Context, userID string, req upstream.FeedbackRequest) (*upstream.Feedback, error)
	RespondFeedback(ctx context.Context, feedbackID, text string) (*upstream.Feedback, error)
}

// EvidencePolicy decides what a failed evidence upload does to an otherwise
// successful submission.
type EvidencePolicy string

const (
	// EvidenceSilent swallows the failure; the report simply ends up with no
	// evidence attached.
	EvidenceSilent EvidencePolicy = "silent"
	// EvidenceWarn succeeds but carries a warning back to the citizen.
	EvidenceWarn EvidencePolicy = "warn"
	// EvidenceFail fails the submission. The report already exists upstream
	// at that point; the draft is kept so the citizen can retry.
	EvidenceFail EvidencePolicy = "fail"
)

// ParseEvidencePolicy maps a config string onto a policy, defaulting to
// silent.
func ParseEvidencePolicy(s string) EvidencePolicy {
	switch EvidencePolicy(s) {
	case EvidenceWarn:
		return EvidenceWarn
	case EvidenceFail:
		return EvidenceFail
	default:
		return EvidenceSilent
	}
}

var (
	// ErrNoDraft means there is nothing to submit or navigate.
	ErrNoDraft = errors.New("no draft in progress")
	// ErrNotAtReview means a submit arrived before the review step; the
	// draft has been advanced to review instead of submitting.
	ErrNotAtReview = errors.New("draft is not at the review step")
	// ErrValidation means a required field is missing from the draft.
	ErrValidation = errors.New("draft is missing required fields")
	// ErrCreateFailed means the records API rejected or never received the
	// create request. The draft is left intact for a retry.
	ErrCreateFailed = errors.New("report creation failed")
	// ErrEvidenceUpload wraps an evidence upload failure under the fail
	// policy.
	ErrEvidenceUpload = errors.New("evidence upload failed")
)

// SubmitResult is the outcome of a successful submission. Exactly one of
// Crime or Incident is set, matching Kind.
type SubmitResult struct {
	Kind     models.ReportKind      `json:"kind"`
	Crime    *models.CrimeReport    `json:"crime,omitempty"`
	Incident *models.IncidentReport `json:"incident,omitempty"`
	// Warning is set under the warn evidence policy when the upload failed.
	Warning string `json:"warning,omitempty"`
	// AutoClose tells the UI to close the dialog after its short delay; set
	// for incident submissions only.
	AutoClose bool `json:"auto_close"`
}

type portalService struct {
	api         RecordsAPI
	drafts      DraftStore
	collections *reconcile.Collections
	policy      EvidencePolicy
	logger      *logrus.Logger
	now         func() time.Time
}

func NewPortalService(api RecordsAPI, drafts DraftStore, collections *reconcile.Collections, policy EvidencePolicy, logger *logrus.Logger) PortalService {
	return &portalService{
		api:         api,
		drafts:      drafts,
		collections: collections,
		policy:      policy,
		logger:      logger,
		now:         time.Now,
	}
}

// Draft returns the citizen's stored draft, or nil when there is none.
func (s *portalService) Draft(ctx context.Context, userID string) *models.Draft {
	return s.drafts.Load(ctx, userID)
}

// SaveDraft normalizes and persists a draft. Witnesses without a local id
// get one assigned; the step is clamped into the kind's sequence.
func (s *portalService) SaveDraft(ctx context.Context, userID string, d *models.Draft) (*models.Draft, error) {
	if d == nil {
		return nil, fmt.Errorf("service: %w", ErrNoDraft)
	}
	switch d.Kind {
	case models.KindCrime:
		if d.Crime == nil {
			d.Crime = &models.CrimeDraft{}
		}
		d.Incident = nil
		for i := range d.Crime.Witnesses {
			if d.Crime.Witnesses[i].LocalID == "" {
				d.Crime.Witnesses[i].LocalID = uuid.NewString()
			}
		}
	case models.KindIncident:
		if d.Incident == nil {
			d.Incident = &models.IncidentDraft{}
		}
		d.Crime = nil
	default:
		return nil, fmt.Errorf("service: unknown report kind %q", d.Kind)
	}

	// Re-anchoring through the wizard clamps a step that no longer exists
	// for the draft's kind.
	d.Step = wizard.New(d.Kind, d.Step).SetKind(d.Kind).Step()

	s.drafts.Save(ctx, userID, d)
	return d, nil
}

// DiscardDraft drops the stored draft.
func (s *portalService) DiscardDraft(ctx context.Context, userID string) {
	s.drafts.Clear(ctx, userID)
}

func (s *portalService) navigate(ctx context.Context, userID string, move func(wizard.Wizard) wizard.Wizard) (*models.Draft, error) {
	d := s.drafts.Load(ctx, userID)
	if d == nil {
		return nil, fmt.Errorf("service: %w", ErrNoDraft)
	}
	d.Step = move(wizard.New(d.Kind, d.Step)).Step()
	s.drafts.Save(ctx, userID, d)
	return d, nil
}

// AdvanceDraft moves the wizard one step forward, clamped at review.
func (s *portalService) AdvanceDraft(ctx context.Context, userID string) (*models.Draft, error) {
	return s.navigate(ctx, userID, wizard.Wizard.Next)
}

// RewindDraft moves the wizard one step back, clamped at the first step.
func (s *portalService) RewindDraft(ctx context.Context, userID string) (*models.Draft, error) {
	return s.navigate(ctx, userID, wizard.Wizard.Previous)
}

// ReviewDraft jumps the wizard straight to the review step.
func (s *portalService) ReviewDraft(ctx context.Context, userID string) (*models.Draft, error) {
	return s.navigate(ctx, userID, wizard.Wizard.JumpToReview)
}

// Submit validates the stored draft and files it with the records system.
// On success the created report is prepended to the held collection and the
// draft is cleared; on create failure the draft is left untouched.
func (s *portalService) Submit(ctx context.Context, userID string, files []upstream.EvidenceFile) (*SubmitResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "portal",
		"method":  "Submit",
		"user_id": userID,
	})

	d := s.drafts.Load(ctx, userID)
	if d == nil {
		return nil, fmt.Errorf("service: %w", ErrNoDraft)
	}

	w := wizard.New(d.Kind, d.Step)
	if !w.AtReview() {
		// A submit before review advances the wizard instead of filing; the
		// citizen sees the review step next.
		d.Step = w.JumpToReview().Step()
		s.drafts.Save(ctx, userID, d)
		return nil, fmt.Errorf("service: %w", ErrNotAtReview)
	}

	if d.Kind == models.KindIncident {
		return s.submitIncident(ctx, userID, d, log)
	}
	return s.submitCrime(ctx, userID, d, files, log)
}

func (s *portalService) submitCrime(ctx context.Context, userID string, d *models.Draft, files []upstream.EvidenceFile, log *logrus.Entry) (*SubmitResult, error) {
	cd := d.Crime
	if cd == nil || cd.Title == "" || cd.Description == "" || cd.Location == "" {
		return nil, fmt.Errorf("service: %w", ErrValidation)
	}

	req := upstream.CreateCrimeRequest{
		Title:       cd.Title,
		Description: cd.Description,
		Category:    cd.Category,
		Priority:    cd.Priority,
		Location:    cd.Location,
		ReportedBy:  userID,
		Witnesses:   cd.Witnesses,
	}
	if req.Category == "" {
		req.Category = models.CategoryOther
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if cd.DateIncident != nil {
		req.DateIncident = *cd.DateIncident
	} else {
		req.DateIncident = s.now()
	}

	log.Info("Filing crime report with the records system")
	report, err := s.api.CreateCrime(ctx, req)
	if err != nil {
		log.WithError(err).Error("Records system rejected the crime report")
		return nil, fmt.Errorf("service: %w: %v", ErrCreateFailed, err)
	}

	result := &SubmitResult{Kind: models.KindCrime}
	report.Evidence = []models.Evidence{}
	if len(files) > 0 {
		uploaded, err := s.api.UploadEvidence(ctx, report.ID, files)
		switch {
		case err == nil:
			report.Evidence = uploaded
		case s.policy == EvidenceFail:
			log.WithError(err).Error("Evidence upload failed, failing submission per policy")
			return nil, fmt.Errorf("service: %w: %v", ErrEvidenceUpload, err)
		case s.policy == EvidenceWarn:
			log.WithError(err).Warn("Evidence upload failed, surfacing warning")
			result.Warning = "report filed, but evidence could not be uploaded"
		default:
			log.WithError(err).Warn("Evidence upload failed, swallowed per policy")
		}
	}

	// The records system does not echo witnesses back; the held entry keeps
	// an empty list.
	report.Witnesses = []models.Witness{}

	s.collections.PrependCrime(*report)
	s.drafts.Clear(ctx, userID)
	log.WithField("report_id", report.ID).Info("Crime report filed")

	result.Crime = report
	return result, nil
}

func (s *portalService) submitIncident(ctx context.Context, userID string, d *models.Draft, log *logrus.Entry) (*SubmitResult, error) {
	id := d.Incident
	if id == nil || id.Title == "" || id.Description == "" || id.Location == "" {
		return nil, fmt.Errorf("service: %w", ErrValidation)
	}

	req := upstream.CreateIncidentRequest{
		Title:        id.Title,
		Description:  id.Description,
		IncidentType: id.IncidentType,
		Severity:     id.Severity,
		Location:     id.Location,
		ReportedBy:   userID,
	}
	if req.IncidentType == "" {
		req.IncidentType = models.IncidentOther
	}
	if req.Severity == "" {
		req.Severity = models.SeverityLow
	}
	if id.DateOccurred != nil {
		req.DateOccurred = *id.DateOccurred
	} else {
		req.DateOccurred = s.now()
	}

	log.Info("Filing incident report with the records system")
	report, err := s.api.CreateIncident(ctx, req)
	if err != nil {
		log.WithError(err).Error("Records system rejected the incident report")
		return nil, fmt.Errorf("service: %w: %v", ErrCreateFailed, err)
	}

	s.collections.PrependIncident(*report)
	s.drafts.Clear(ctx, userID)
	log.WithField("report_id", report.ID).Info("Incident report filed")

	return &SubmitResult{Kind: models.KindIncident, Incident: report, AutoClose: true}, nil
}

// Reports returns the filtered crime collection. An OwnerID in the query
// restricts to the citizen's own reports.
func (s *portalService) Reports(q filter.CrimeQuery) []models.CrimeReport {
	return filter.Crimes(s.collections.Crimes(), q)
}

// Incidents returns the filtered incident collection.
func (s *portalService) Incidents(q filter.IncidentQuery) []models.IncidentReport {
	return filter.Incidents(s.collections.Incidents(), q)
}

// ReportStatus returns the report's status record, fetching and seeding it
// on first access. Once seeded, pushed status deltas keep it current.
func (s *portalService) ReportStatus(ctx context.Context, reportID string) (*models.StatusRecord, error) {
	if rec := s.collections.StatusFor(reportID); rec != nil {
		return rec, nil
	}
	rec, err := s.api.GetStatus(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("service: could not fetch report status: %w", err)
	}
	s.collections.SeedStatus(rec)
	return s.collections.StatusFor(reportID), nil
}

// Messages fetches the report's thread and seeds the held copy; pushed
// messages layer on top afterwards.
func (s *portalService) Messages(ctx context.Context, reportID string) ([]models.Message, error) {
	msgs, err := s.api.GetMessages(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("service: could not fetch report messages: %w", err)
	}
	s.collections.SeedMessages(reportID, msgs)
	return s.collections.MessagesFor(reportID), nil
}

// SendMessage posts a citizen message to the report's thread and merges the
// stored copy into the held thread.
func (s *portalService) SendMessage(ctx context.Context, userID, reportID, text string) (*models.Message, error) {
	created, err := s.api.PostMessage(ctx, reportID, models.Message{
		ReportID:   reportID,
		SenderID:   userID,
		SenderRole: "citizen",
		Text:       text,
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not send message: %w", err)
	}
	s.collections.SeedMessages(reportID, append([]models.Message{*created}, s.collections.MessagesFor(reportID)...))
	return created, nil
}

// SubmitFeedback forwards citizen feedback to the records system.
func (s *portalService) SubmitFeedback(ctx context.Context, userID string, req upstream.FeedbackRequest) (*upstream.Feedback, error) {
	req.Author = userID
	fb, err := s.api.PostFeedback(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("service: could not submit feedback: %w", err)
	}
	return fb, nil
}

// RespondFeedback forwards a response to an existing feedback entry.
func (s *portalService) RespondFeedback(ctx context.Context, feedbackID, text string) (*upstream.Feedback, error) {
	fb, err := s.api.RespondFeedback(ctx, feedbackID, text)
	if err != nil {
		return nil, fmt.Errorf("service: could not respond to feedback: %w", err)
	}
	return fb, nil
}
