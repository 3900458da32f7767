package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/mavrin/citizen-report-portal/internal/config"
	"github.com/mavrin/citizen-report-portal/internal/filter"
	"github.com/mavrin/citizen-report-portal/internal/models"
	"github.com/mavrin/citizen-report-portal/internal/service"
	"github.com/mavrin/citizen-report-portal/internal/service/mocks"
	"github.com/mavrin/citizen-report-portal/internal/upstream"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCitizenID = "citizen-1"

// newTestHandler creates a Handler with a mocked service. The auth
// middleware is replaced with a stub that injects a fixed citizen id.
func newTestHandler(t *testing.T) (*Handler, *mocks.MockPortalService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockPortalService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		JWTSecret: "test-secret",
	}

	handler := NewHandler(mockService, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(func(c *gin.Context) {
		c.Set(citizenIDKey, testCitizenID)
		c.Next()
	})
	handler.RegisterRoutes(api)
	handler.RegisterSystemRoutes(router.Group("/api/v1"))

	return handler, mockService, router
}

// makeRequest is a helper for running HTTP requests against the router.
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetDraft_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	draft := &models.Draft{
		Kind: models.KindCrime,
		Step: models.StepEvidence,
		Crime: &models.CrimeDraft{
			Title:         "Stolen bicycle",
			EvidenceNames: []string{"rack.jpg"},
		},
	}

	mockService.EXPECT().Draft(gomock.Any(), testCitizenID).Return(draft).Times(1)

	w := makeRequest(router, "GET", "/api/v1/portal/draft", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp DraftResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "crime", resp.Kind)
	assert.Equal(t, "evidence", resp.Step)
	assert.Equal(t, []string{"incident", "evidence", "review"}, resp.Steps)
	assert.Equal(t, 67, resp.Progress)
	require.NotNil(t, resp.Crime)
	assert.Equal(t, []string{"rack.jpg"}, resp.Crime.EvidenceNames)
}

func TestGetDraft_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Draft(gomock.Any(), testCitizenID).Return(nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/portal/draft", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no draft in progress")
}

func TestSaveDraft_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := SaveDraftRequest{
		Kind: "crime",
		Step: "incident",
		Crime: &CrimeDraftPayload{
			Title:    "Stolen bicycle",
			Category: "theft",
		},
	}

	mockService.EXPECT().
		SaveDraft(gomock.Any(), testCitizenID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, d *models.Draft) (*models.Draft, error) {
			assert.Equal(t, models.KindCrime, d.Kind)
			require.NotNil(t, d.Crime)
			assert.Equal(t, models.CategoryTheft, d.Crime.Category)
			return d, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/portal/draft", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp DraftResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Stolen bicycle", resp.Crime.Title)
}

func TestSaveDraft_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SaveDraft(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PUT", "/api/v1/portal/draft", bytes.NewBufferString(`{"kind": "crime"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestSaveDraft_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := SaveDraftRequest{
		Kind: "petition", // not a report kind
	}

	mockService.EXPECT().SaveDraft(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/portal/draft", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Kind' failed on the 'oneof' tag")
}

func TestDiscardDraft_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().DiscardDraft(gomock.Any(), testCitizenID).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/portal/draft", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAdvanceDraft_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	moved := &models.Draft{Kind: models.KindCrime, Step: models.StepEvidence, Crime: &models.CrimeDraft{}}

	mockService.EXPECT().AdvanceDraft(gomock.Any(), testCitizenID).Return(moved, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/portal/draft/next", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp DraftResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "evidence", resp.Step)
}

func TestAdvanceDraft_NoDraft(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AdvanceDraft(gomock.Any(), testCitizenID).Return(nil, service.ErrNoDraft).Times(1)

	w := makeRequest(router, "POST", "/api/v1/portal/draft/next", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no draft in progress")
}

func TestReviewDraft_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	moved := &models.Draft{Kind: models.KindIncident, Step: models.StepReview, Incident: &models.IncidentDraft{}}

	mockService.EXPECT().ReviewDraft(gomock.Any(), testCitizenID).Return(moved, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/portal/draft/review", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp DraftResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.AtReview)
	assert.Equal(t, 100, resp.Progress)
}

func TestSubmit_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	result := &service.SubmitResult{
		Kind: models.KindCrime,
		Crime: &models.CrimeReport{
			ID:           "R1",
			Title:        "Stolen bicycle",
			Status:       models.StatusReported,
			Evidence:     []models.Evidence{},
			DateReported: time.Now(),
		},
	}

	mockService.EXPECT().Submit(gomock.Any(), testCitizenID, gomock.Nil()).Return(result, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/portal/submit", nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp SubmitResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "R1", resp.Crime.ID)
	assert.False(t, resp.AutoClose)
}

func TestSubmit_WithEvidenceFiles(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("evidence", "rack.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	mockService.EXPECT().
		Submit(gomock.Any(), testCitizenID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, files []upstream.EvidenceFile) (*service.SubmitResult, error) {
			require.Len(t, files, 1)
			assert.Equal(t, "rack.jpg", files[0].Filename)
			return &service.SubmitResult{
				Kind:  models.KindCrime,
				Crime: &models.CrimeReport{ID: "R1", Evidence: []models.Evidence{{ID: "e1", Filename: "rack.jpg"}}},
			}, nil
		}).Times(1)

	req := httptest.NewRequest("POST", "/api/v1/portal/submit", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp SubmitResponse
	err = json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp.Crime.Evidence, 1)
	assert.Equal(t, "e1", resp.Crime.Evidence[0].ID)
}

func TestOpenEvidence_CleansUpOnOpenFailure(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("evidence", "ok.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/v1/portal/submit", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	form := req.MultipartForm
	// A header with no backing content cannot be opened.
	form.File["evidence"] = append(form.File["evidence"], &multipart.FileHeader{Filename: "broken.jpg"})

	files, closers, err := openEvidence(form)

	require.Error(t, err)
	assert.Nil(t, files)
	assert.Nil(t, closers)
}

func TestSubmit_NotAtReview(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Submit(gomock.Any(), testCitizenID, gomock.Nil()).Return(nil, service.ErrNotAtReview).Times(1)

	w := makeRequest(router, "POST", "/api/v1/portal/submit", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "draft is not at the review step")
}

func TestSubmit_NoDraft(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Submit(gomock.Any(), testCitizenID, gomock.Nil()).Return(nil, service.ErrNoDraft).Times(1)

	w := makeRequest(router, "POST", "/api/v1/portal/submit", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no draft in progress")
}

func TestSubmit_CreateFailed(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		Submit(gomock.Any(), testCitizenID, gomock.Nil()).
		Return(nil, fmt.Errorf("service: %w", service.ErrCreateFailed)).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/portal/submit", nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "report creation failed")
}

func TestListReports_AppliesQuery(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	incidentDate := time.Date(2025, 10, 12, 8, 30, 0, 0, time.UTC)
	reports := []models.CrimeReport{
		{
			ID:           "R1",
			Title:        "Theft at the docks",
			Status:       models.StatusReported,
			Evidence:     []models.Evidence{},
			DateIncident: incidentDate,
		},
	}

	mockService.EXPECT().
		Reports(filter.CrimeQuery{
			Search:   "theft",
			Status:   "reported",
			Category: filter.All,
			OwnerID:  testCitizenID,
		}).
		Return(reports).Times(1)

	w := makeRequest(router, "GET", "/api/v1/portal/reports?search=theft&status=reported&mine=true", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []CrimeReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "R1", resp[0].ID)
	assert.True(t, resp[0].DateIncident.Equal(incidentDate))
}

func TestListIncidents_Defaults(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	occurred := time.Date(2025, 9, 1, 18, 0, 0, 0, time.UTC)

	mockService.EXPECT().
		Incidents(filter.IncidentQuery{
			Status: filter.All,
			Type:   filter.All,
		}).
		Return([]models.IncidentReport{
			{ID: "I1", Title: "Fallen tree", Status: models.StatusReported, DateOccurred: occurred},
		}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/portal/incidents", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "I1", resp[0].ID)
	assert.True(t, resp[0].DateOccurred.Equal(occurred))
}

func TestGetReportStatus_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	rec := &models.StatusRecord{
		ReportID:      "R1",
		CurrentStatus: models.StatusInvestigating,
		History: []models.StatusUpdate{
			{Status: models.StatusInvestigating, VisibleToCitizen: true},
			{Status: models.StatusReported, VisibleToCitizen: true},
		},
	}

	mockService.EXPECT().ReportStatus(gomock.Any(), "R1").Return(rec, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/portal/reports/R1/status", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatusRecordResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "investigating", resp.CurrentStatus)
	assert.Len(t, resp.History, 2)
}

func TestGetReportStatus_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ReportStatus(gomock.Any(), "R9").Return(nil, errors.New("status 404")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/portal/reports/R9/status", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "report status not found")
}

func TestPostMessage_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := SendMessageRequest{Text: "Any news on my report?"}
	sent := &models.Message{
		ID:         "m1",
		ReportID:   "R1",
		SenderID:   testCitizenID,
		SenderRole: "citizen",
		Text:       reqBody.Text,
		CreatedAt:  time.Now(),
	}

	mockService.EXPECT().SendMessage(gomock.Any(), testCitizenID, "R1", reqBody.Text).Return(sent, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/portal/reports/R1/messages", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp MessageResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "m1", resp.ID)
	assert.Equal(t, "citizen", resp.SenderRole)
}

func TestPostMessage_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(SendMessageRequest{})
	w := makeRequest(router, "POST", "/api/v1/portal/reports/R1/messages", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Text' failed on the 'required' tag")
}

func TestSubmitFeedback_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := FeedbackRequest{Subject: "Portal", Text: "The wizard is easy to use"}

	mockService.EXPECT().
		SubmitFeedback(gomock.Any(), testCitizenID, upstream.FeedbackRequest{Subject: reqBody.Subject, Text: reqBody.Text}).
		Return(&upstream.Feedback{ID: "f1", Subject: reqBody.Subject, Text: reqBody.Text, Author: testCitizenID}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/portal/feedback", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp FeedbackResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "f1", resp.ID)
}

func TestRespondFeedback_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := FeedbackRespondRequest{Text: "Thanks, forwarded to the team"}

	mockService.EXPECT().
		RespondFeedback(gomock.Any(), "f1", reqBody.Text).
		Return(&upstream.Feedback{ID: "f1", Response: reqBody.Text}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/portal/feedback/f1/respond", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp FeedbackResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, reqBody.Text, resp.Response)
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func signTestToken(t *testing.T, secret, subject string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestCitizenAuthMiddleware_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{JWTSecret: "test-secret"}

	router.Use(CitizenAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"citizen_id": citizenID(c)})
	})

	token := signTestToken(t, "test-secret", "citizen-42")
	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer " + token})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "citizen-42")
}

func TestCitizenAuthMiddleware_MissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{JWTSecret: "test-secret"}

	router.Use(CitizenAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authorization token required")
}

func TestCitizenAuthMiddleware_WrongSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{JWTSecret: "test-secret"}

	router.Use(CitizenAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	token := signTestToken(t, "other-secret", "citizen-42")
	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer " + token})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}
