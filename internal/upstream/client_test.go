package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mavrin/citizen-report-portal/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewClient(srv.URL, "test-api-key", 2*time.Second, logger)
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, data any) {
	t.Helper()
	require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data}))
}

func TestCreateCrime_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/crimes", r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("X-API-Key"))

		var req CreateCrimeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Stolen bicycle", req.Title)
		require.Len(t, req.Witnesses, 1)

		writeEnvelope(t, w, models.CrimeReport{
			ID:           "R1",
			Title:        req.Title,
			Status:       models.StatusReported,
			DateReported: time.Now().UTC(),
		})
	})

	report, err := client.CreateCrime(context.Background(), CreateCrimeRequest{
		Title:     "Stolen bicycle",
		Category:  models.CategoryTheft,
		Witnesses: []models.Witness{{LocalID: "w-1", Name: "A. Neighbor"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "R1", report.ID)
	assert.False(t, report.DateReported.IsZero())
}

func TestCreateCrime_SuccessFalseIsFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "category missing"})
	})

	report, err := client.CreateCrime(context.Background(), CreateCrimeRequest{})

	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorContains(t, err, "category missing")
}

func TestCreateCrime_Non2xxIsFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := client.CreateCrime(context.Background(), CreateCrimeRequest{})

	require.Error(t, err)
	assert.ErrorContains(t, err, "status 502")
}

func TestUploadEvidence_Multipart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/crimes/R1/evidence", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		files := r.MultipartForm.File["evidence"]
		require.Len(t, files, 2)
		assert.Equal(t, "rack.jpg", files[0].Filename)
		assert.Equal(t, "receipt.pdf", files[1].Filename)

		writeEnvelope(t, w, []models.Evidence{
			{ID: "e1", Filename: "rack.jpg"},
			{ID: "e2", Filename: "receipt.pdf"},
		})
	})

	uploaded, err := client.UploadEvidence(context.Background(), "R1", []EvidenceFile{
		{Filename: "rack.jpg", Content: strings.NewReader("jpegbytes")},
		{Filename: "receipt.pdf", Content: strings.NewReader("pdfbytes")},
	})

	require.NoError(t, err)
	require.Len(t, uploaded, 2)
	assert.Equal(t, "e1", uploaded[0].ID)
}

func TestGetStatus_FillsReportID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/crimes/R1/status", r.URL.Path)
		writeEnvelope(t, w, map[string]any{"current_status": "investigating"})
	})

	rec, err := client.GetStatus(context.Background(), "R1")

	require.NoError(t, err)
	assert.Equal(t, "R1", rec.ReportID)
	assert.Equal(t, models.StatusInvestigating, rec.CurrentStatus)
}

func TestListIncidents_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/incidents", r.URL.Path)
		writeEnvelope(t, w, []models.IncidentReport{{ID: "I1"}, {ID: "I2"}})
	})

	incidents, err := client.ListIncidents(context.Background())

	require.NoError(t, err)
	assert.Len(t, incidents, 2)
}

func TestPostFeedback_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feedback", r.URL.Path)
		writeEnvelope(t, w, Feedback{ID: "F1", Subject: "Thanks"})
	})

	fb, err := client.PostFeedback(context.Background(), FeedbackRequest{Subject: "Thanks", Text: "Quick response"})

	require.NoError(t, err)
	assert.Equal(t, "F1", fb.ID)
}
