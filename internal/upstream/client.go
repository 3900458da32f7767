// Package upstream is the typed client for the external police records API.
// Every endpoint answers a {success, data} envelope; a non-2xx status and a
// success=false body are treated uniformly as failure.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/mavrin/citizen-report-portal/internal/models"
	"github.com/sirupsen/logrus"
)

// Client talks to the records API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient returns a Client for the given versioned API base URL.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error,omitempty"`
}

// CreateCrimeRequest is the create payload for a crime report. Witnesses are
// sent verbatim; the records system does not echo them back.
type CreateCrimeRequest struct {
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Category     models.Category  `json:"category"`
	Priority     models.Priority  `json:"priority"`
	Location     string           `json:"location"`
	DateIncident time.Time        `json:"date_incident"`
	ReportedBy   string           `json:"reported_by"`
	Witnesses    []models.Witness `json:"witnesses"`
}

// CreateIncidentRequest is the create payload for an incident report.
type CreateIncidentRequest struct {
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	IncidentType models.IncidentType `json:"incident_type"`
	Severity     models.Severity     `json:"severity"`
	Location     string              `json:"location"`
	DateOccurred time.Time           `json:"date_occurred"`
	ReportedBy   string              `json:"reported_by"`
}

// EvidenceFile is one attachment to upload after a crime report is created.
type EvidenceFile struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// FeedbackRequest is a citizen feedback submission.
type FeedbackRequest struct {
	Subject string `json:"subject"`
	Text    string `json:"text"`
	Author  string `json:"author"`
}

// Feedback is a stored feedback entry.
type Feedback struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Response  string    `json:"response,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// do performs one JSON request against the API and decodes the envelope's
// data into out (when out is non-nil).
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to records API failed: %w", err)
	}
	defer resp.Body.Close()

	return decodeEnvelope(resp, out)
}

func decodeEnvelope(resp *http.Response, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("records API returned status %d", resp.StatusCode)
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response envelope: %w", err)
	}
	if !env.Success {
		if env.Error != "" {
			return fmt.Errorf("records API rejected the request: %s", env.Error)
		}
		return fmt.Errorf("records API rejected the request")
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

// CreateCrime files a new crime report and returns the created record with
// its server-assigned id and timestamps.
func (c *Client) CreateCrime(ctx context.Context, req CreateCrimeRequest) (*models.CrimeReport, error) {
	report := &models.CrimeReport{}
	if err := c.do(ctx, http.MethodPost, "/crimes", req, report); err != nil {
		return nil, fmt.Errorf("create crime report: %w", err)
	}
	return report, nil
}

// ListCrimes fetches the crime reports visible to the portal's account.
func (c *Client) ListCrimes(ctx context.Context) ([]models.CrimeReport, error) {
	var reports []models.CrimeReport
	if err := c.do(ctx, http.MethodGet, "/crimes", nil, &reports); err != nil {
		return nil, fmt.Errorf("list crime reports: %w", err)
	}
	return reports, nil
}

// CreateIncident files a new incident report.
func (c *Client) CreateIncident(ctx context.Context, req CreateIncidentRequest) (*models.IncidentReport, error) {
	report := &models.IncidentReport{}
	if err := c.do(ctx, http.MethodPost, "/incidents", req, report); err != nil {
		return nil, fmt.Errorf("create incident report: %w", err)
	}
	return report, nil
}

// ListIncidents fetches the incident reports visible to the portal's account.
func (c *Client) ListIncidents(ctx context.Context) ([]models.IncidentReport, error) {
	var reports []models.IncidentReport
	if err := c.do(ctx, http.MethodGet, "/incidents", nil, &reports); err != nil {
		return nil, fmt.Errorf("list incident reports: %w", err)
	}
	return reports, nil
}

// UploadEvidence posts the files as a multipart request scoped to the crime
// report and returns the server-assigned evidence descriptors.
func (c *Client) UploadEvidence(ctx context.Context, crimeID string, files []EvidenceFile) ([]models.Evidence, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := mw.CreateFormFile("evidence", f.Filename)
		if err != nil {
			return nil, fmt.Errorf("failed to build multipart body: %w", err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, fmt.Errorf("failed to read evidence file %q: %w", f.Filename, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	url := fmt.Sprintf("%s/crimes/%s/evidence", c.baseURL, crimeID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create evidence upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("evidence upload failed: %w", err)
	}
	defer resp.Body.Close()

	var uploaded []models.Evidence
	if err := decodeEnvelope(resp, &uploaded); err != nil {
		return nil, fmt.Errorf("evidence upload: %w", err)
	}
	return uploaded, nil
}

// GetStatus fetches the status record for a crime report.
func (c *Client) GetStatus(ctx context.Context, crimeID string) (*models.StatusRecord, error) {
	rec := &models.StatusRecord{}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/crimes/%s/status", crimeID), nil, rec); err != nil {
		return nil, fmt.Errorf("get report status: %w", err)
	}
	if rec.ReportID == "" {
		rec.ReportID = crimeID
	}
	return rec, nil
}

// GetMessages fetches the conversation thread of a crime report.
func (c *Client) GetMessages(ctx context.Context, crimeID string) ([]models.Message, error) {
	var msgs []models.Message
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/crimes/%s/messages", crimeID), nil, &msgs); err != nil {
		return nil, fmt.Errorf("get report messages: %w", err)
	}
	return msgs, nil
}

// PostMessage appends a citizen message to a crime report's thread.
func (c *Client) PostMessage(ctx context.Context, crimeID string, msg models.Message) (*models.Message, error) {
	created := &models.Message{}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/crimes/%s/messages", crimeID), msg, created); err != nil {
		return nil, fmt.Errorf("post report message: %w", err)
	}
	return created, nil
}

// PostFeedback submits citizen feedback.
func (c *Client) PostFeedback(ctx context.Context, req FeedbackRequest) (*Feedback, error) {
	fb := &Feedback{}
	if err := c.do(ctx, http.MethodPost, "/feedback", req, fb); err != nil {
		return nil, fmt.Errorf("post feedback: %w", err)
	}
	return fb, nil
}

// RespondFeedback posts a response to an existing feedback entry.
func (c *Client) RespondFeedback(ctx context.Context, feedbackID, text string) (*Feedback, error) {
	fb := &Feedback{}
	payload := map[string]string{"text": text}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/feedback/%s/respond", feedbackID), payload, fb); err != nil {
		return nil, fmt.Errorf("respond to feedback: %w", err)
	}
	return fb, nil
}
