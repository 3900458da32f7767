package v1

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/mavrin/citizen-report-portal/internal/config"
	"github.com/mavrin/citizen-report-portal/internal/filter"
	"github.com/mavrin/citizen-report-portal/internal/models"
	"github.com/mavrin/citizen-report-portal/internal/service"
	"github.com/mavrin/citizen-report-portal/internal/upstream"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	portalService service.PortalService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(portalService service.PortalService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		portalService: portalService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// @Summary Get the wizard draft
// @Description Get the citizen's stored report draft with wizard position. Requires a citizen token.
// @Tags Draft
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DraftResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No draft in progress"
// @Router /portal/draft [get]
func (h *Handler) getDraft(c *gin.Context) {
	d := h.portalService.Draft(c.Request.Context(), citizenID(c))
	if d == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no draft in progress"})
		return
	}
	c.JSON(http.StatusOK, ModelToDraftResponse(d))
}

// @Summary Save the wizard draft
// @Description Store the citizen's report draft. The step is clamped into the kind's wizard sequence. Requires a citizen token.
// @Tags Draft
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draft body SaveDraftRequest true "Draft save request"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /portal/draft [put]
func (h *Handler) saveDraft(c *gin.Context) {
	var input SaveDraftRequest
	log := h.logger.WithField("method", "saveDraft")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.portalService.SaveDraft(c.Request.Context(), citizenID(c), DTOToDraftModel(input))
	if err != nil {
		log.WithError(err).Error("Failed to save draft in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToDraftResponse(saved))
}

// @Summary Discard the wizard draft
// @Description Drop the citizen's stored report draft. Requires a citizen token.
// @Tags Draft
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /portal/draft [delete]
func (h *Handler) discardDraft(c *gin.Context) {
	h.portalService.DiscardDraft(c.Request.Context(), citizenID(c))
	c.Status(http.StatusNoContent)
}

// @Summary Advance the wizard
// @Description Move the stored draft to the next wizard step. Requires a citizen token.
// @Tags Draft
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DraftResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No draft in progress"
// @Router /portal/draft/next [post]
func (h *Handler) advanceDraft(c *gin.Context) {
	h.navigate(c, h.portalService.AdvanceDraft)
}

// @Summary Rewind the wizard
// @Description Move the stored draft to the previous wizard step. Requires a citizen token.
// @Tags Draft
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DraftResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No draft in progress"
// @Router /portal/draft/previous [post]
func (h *Handler) rewindDraft(c *gin.Context) {
	h.navigate(c, h.portalService.RewindDraft)
}

// @Summary Jump to the review step
// @Description Move the stored draft straight to the review step. Requires a citizen token.
// @Tags Draft
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DraftResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No draft in progress"
// @Router /portal/draft/review [post]
func (h *Handler) reviewDraft(c *gin.Context) {
	h.navigate(c, h.portalService.ReviewDraft)
}

// navigate runs one wizard move and renders the resulting draft.
func (h *Handler) navigate(c *gin.Context, move func(ctx context.Context, userID string) (*models.Draft, error)) {
	log := h.logger.WithField("method", "navigate")

	d, err := move(c.Request.Context(), citizenID(c))
	if err != nil {
		if errors.Is(err, service.ErrNoDraft) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no draft in progress"})
			return
		}
		log.WithError(err).Error("Failed to move wizard in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToDraftResponse(d))
}

// @Summary Submit the stored draft
// @Description File the stored draft with the records system. Crime submissions accept multipart evidence files. Requires a citizen token.
// @Tags Submit
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param evidence formData file false "Evidence files (crime reports only)"
// @Success 201 {object} SubmitResponse
// @Failure 400 {object} map[string]string "Draft is missing required fields"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No draft in progress"
// @Failure 409 {object} map[string]string "Draft is not at the review step"
// @Failure 502 {object} map[string]string "Records system rejected the submission"
// @Router /portal/submit [post]
func (h *Handler) submit(c *gin.Context) {
	log := h.logger.WithField("method", "submit")

	files, closers, err := h.evidenceFiles(c)
	if err != nil {
		log.WithError(err).Warn("Failed to read evidence files")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid evidence upload"})
		return
	}
	defer func() {
		for _, closeFile := range closers {
			closeFile()
		}
	}()

	result, err := h.portalService.Submit(c.Request.Context(), citizenID(c), files)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoDraft):
			c.JSON(http.StatusNotFound, gin.H{"error": "no draft in progress"})
		case errors.Is(err, service.ErrNotAtReview):
			c.JSON(http.StatusConflict, gin.H{"error": "draft is not at the review step"})
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "draft is missing required fields"})
		case errors.Is(err, service.ErrEvidenceUpload):
			log.WithError(err).Error("Evidence upload failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "evidence upload failed"})
		case errors.Is(err, service.ErrCreateFailed):
			log.WithError(err).Error("Records system rejected the submission")
			c.JSON(http.StatusBadGateway, gin.H{"error": "report creation failed"})
		default:
			log.WithError(err).Error("Failed to submit draft in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, SubmitResultToResponse(result))
}

// evidenceFiles pulls the uploaded evidence out of the multipart form. A
// plain request without a form is a submission with no evidence.
func (h *Handler) evidenceFiles(c *gin.Context) ([]upstream.EvidenceFile, []func() error, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, nil
	}
	return openEvidence(form)
}

// openEvidence opens every uploaded evidence file. On error nothing is
// returned: files opened before the failure are closed again.
func openEvidence(form *multipart.Form) ([]upstream.EvidenceFile, []func() error, error) {
	var files []upstream.EvidenceFile
	var closers []func() error
	for _, header := range form.File["evidence"] {
		f, err := header.Open()
		if err != nil {
			for _, closeFile := range closers {
				closeFile()
			}
			return nil, nil, err
		}
		closers = append(closers, f.Close)
		files = append(files, upstream.EvidenceFile{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Content:     f,
		})
	}
	return files, closers, nil
}

// @Summary List crime reports
// @Description Get the reconciled crime report collection, filtered. Requires a citizen token.
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive substring over title, description and location"
// @Param status query string false "Status filter" default(all)
// @Param category query string false "Category filter" default(all)
// @Param mine query bool false "Only the citizen's own reports" default(false)
// @Success 200 {array} CrimeReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /portal/reports [get]
func (h *Handler) listReports(c *gin.Context) {
	q := filter.CrimeQuery{
		Search:   c.Query("search"),
		Status:   c.DefaultQuery("status", filter.All),
		Category: c.DefaultQuery("category", filter.All),
	}
	if c.Query("mine") == "true" {
		q.OwnerID = citizenID(c)
	}
	c.JSON(http.StatusOK, ModelsToCrimeResponses(h.portalService.Reports(q)))
}

// @Summary List incident reports
// @Description Get the reconciled incident report collection, filtered. Requires a citizen token.
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive substring over title, description and location"
// @Param status query string false "Status filter" default(all)
// @Param type query string false "Incident type filter" default(all)
// @Param mine query bool false "Only the citizen's own reports" default(false)
// @Success 200 {array} IncidentReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /portal/incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	q := filter.IncidentQuery{
		Search: c.Query("search"),
		Status: c.DefaultQuery("status", filter.All),
		Type:   c.DefaultQuery("type", filter.All),
	}
	if c.Query("mine") == "true" {
		q.OwnerID = citizenID(c)
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(h.portalService.Incidents(q)))
}

// @Summary Get a report's status record
// @Description Get the tracked status and history of a report, fetching it from the records system on first access. Requires a citizen token.
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} StatusRecordResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report status not found"
// @Router /portal/reports/{id}/status [get]
func (h *Handler) getReportStatus(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getReportStatus").WithField("report_id", id)

	rec, err := h.portalService.ReportStatus(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get report status from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "report status not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToStatusResponse(rec))
}

// @Summary Get a report's message thread
// @Description Get the conversation thread of a report, most recent first. Requires a citizen token.
// @Tags Messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {array} MessageResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Records system unavailable"
// @Router /portal/reports/{id}/messages [get]
func (h *Handler) getMessages(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getMessages").WithField("report_id", id)

	msgs, err := h.portalService.Messages(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to get messages from service")
		c.JSON(http.StatusBadGateway, gin.H{"error": "records system unavailable"})
		return
	}
	c.JSON(http.StatusOK, ModelsToMessageResponses(msgs))
}

// @Summary Post a message on a report thread
// @Description Send a citizen message on a report's conversation thread. Requires a citizen token.
// @Tags Messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param message body SendMessageRequest true "Message to post"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Records system unavailable"
// @Router /portal/reports/{id}/messages [post]
func (h *Handler) postMessage(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "postMessage").WithField("report_id", id)

	var input SendMessageRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.portalService.SendMessage(c.Request.Context(), citizenID(c), id, input.Text)
	if err != nil {
		log.WithError(err).Error("Failed to send message in service")
		c.JSON(http.StatusBadGateway, gin.H{"error": "records system unavailable"})
		return
	}
	c.JSON(http.StatusCreated, ModelToMessageResponse(msg))
}

// @Summary Submit portal feedback
// @Description File a feedback entry with the records system. Requires a citizen token.
// @Tags Feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param feedback body FeedbackRequest true "Feedback to submit"
// @Success 201 {object} FeedbackResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Records system unavailable"
// @Router /portal/feedback [post]
func (h *Handler) submitFeedback(c *gin.Context) {
	log := h.logger.WithField("method", "submitFeedback")

	var input FeedbackRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fb, err := h.portalService.SubmitFeedback(c.Request.Context(), citizenID(c), upstream.FeedbackRequest{
		Subject: input.Subject,
		Text:    input.Text,
	})
	if err != nil {
		log.WithError(err).Error("Failed to submit feedback in service")
		c.JSON(http.StatusBadGateway, gin.H{"error": "records system unavailable"})
		return
	}
	c.JSON(http.StatusCreated, FeedbackToResponse(fb))
}

// @Summary Respond to a feedback entry
// @Description Attach a response to an existing feedback entry. Requires a citizen token.
// @Tags Feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Feedback ID"
// @Param response body FeedbackRespondRequest true "Response text"
// @Success 200 {object} FeedbackResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Records system unavailable"
// @Router /portal/feedback/{id}/respond [post]
func (h *Handler) respondFeedback(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "respondFeedback").WithField("feedback_id", id)

	var input FeedbackRespondRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fb, err := h.portalService.RespondFeedback(c.Request.Context(), id, input.Text)
	if err != nil {
		log.WithError(err).Error("Failed to respond to feedback in service")
		c.JSON(http.StatusBadGateway, gin.H{"error": "records system unavailable"})
		return
	}
	c.JSON(http.StatusOK, FeedbackToResponse(fb))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
