package reconcile

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/mavrin/citizen-report-portal/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCollections() *Collections {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewCollections(logger)
}

func event(t *testing.T, evType string, payload any) Event {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return Event{Type: evType, Data: data}
}

func TestReportUpdate_UnknownIDPrepends(t *testing.T) {
	c := newTestCollections()

	c.Apply(models.KindCrime, event(t, EventReportUpdate, map[string]any{
		"id": "R9", "title": "Theft at the market", "status": "reported",
	}))

	crimes := c.Crimes()
	require.Len(t, crimes, 1)
	assert.Equal(t, "R9", crimes[0].ID)
	assert.Equal(t, models.StatusReported, crimes[0].Status)
}

func TestReportUpdate_IsIdempotent(t *testing.T) {
	c := newTestCollections()
	c.PrependCrime(models.CrimeReport{ID: "R1", Title: "Theft", Status: models.StatusReported})

	ev := event(t, EventReportUpdate, map[string]any{"id": "R1", "status": "investigating"})
	c.Apply(models.KindCrime, ev)
	once := c.Crimes()
	c.Apply(models.KindCrime, ev)
	twice := c.Crimes()

	require.Len(t, twice, 1)
	assert.Equal(t, once, twice)
	assert.Equal(t, models.StatusInvestigating, twice[0].Status)
}

func TestReportUpdate_PartialPayloadPreservesLocalFields(t *testing.T) {
	c := newTestCollections()
	c.PrependCrime(models.CrimeReport{
		ID:          "R1",
		Title:       "Theft",
		Description: "Wallet lifted on the bus",
		Location:    "Line 4",
		Status:      models.StatusReported,
	})

	// The push only carries the status; everything else is locally known and
	// must survive the merge.
	c.Apply(models.KindCrime, event(t, EventReportUpdate, map[string]any{"id": "R1", "status": "assigned"}))

	crimes := c.Crimes()
	require.Len(t, crimes, 1)
	assert.Equal(t, models.StatusAssigned, crimes[0].Status)
	assert.Equal(t, "Wallet lifted on the bus", crimes[0].Description)
	assert.Equal(t, "Line 4", crimes[0].Location)
}

func TestReportUpdate_IncidentStreamTargetsIncidents(t *testing.T) {
	c := newTestCollections()

	c.Apply(models.KindIncident, event(t, EventReportUpdate, map[string]any{
		"id": "I1", "title": "Fallen tree", "incident_type": "hazard",
	}))

	assert.Empty(t, c.Crimes())
	incidents := c.Incidents()
	require.Len(t, incidents, 1)
	assert.Equal(t, models.IncidentHazard, incidents[0].IncidentType)
}

func TestReportDeleted_RemovesEntry(t *testing.T) {
	c := newTestCollections()
	c.PrependCrime(models.CrimeReport{ID: "R1"})
	c.PrependCrime(models.CrimeReport{ID: "R2"})

	c.Apply(models.KindCrime, event(t, EventReportDeleted, map[string]any{"id": "R1"}))

	crimes := c.Crimes()
	require.Len(t, crimes, 1)
	assert.Equal(t, "R2", crimes[0].ID)
}

func TestReportDeleted_UnknownIDIsNoOp(t *testing.T) {
	c := newTestCollections()
	c.PrependCrime(models.CrimeReport{ID: "R1"})

	c.Apply(models.KindCrime, event(t, EventReportDeleted, map[string]any{"id": "R404"}))

	assert.Len(t, c.Crimes(), 1)
}

func TestMessageAdded_PrependsToThread(t *testing.T) {
	c := newTestCollections()
	c.SeedMessages("R1", []models.Message{{ID: "m1", ReportID: "R1", Text: "first"}})

	c.Apply(models.KindCrime, event(t, EventMessageAdded, models.Message{
		ID: "m2", ReportID: "R1", SenderRole: "officer", Text: "We are on it",
	}))

	msgs := c.MessagesFor("R1")
	require.Len(t, msgs, 2)
	assert.Equal(t, "m2", msgs[0].ID)
	assert.Equal(t, "m1", msgs[1].ID)
}

func TestStatusUpdate_WithoutRecordIsDropped(t *testing.T) {
	c := newTestCollections()

	c.Apply(models.KindCrime, event(t, EventStatusUpdate, StatusDelta{
		ReportID: "R1", Status: models.StatusAssigned, Timestamp: time.Now(),
	}))

	assert.Equal(t, 0, c.StatusCount())
	assert.Nil(t, c.StatusFor("R1"))
}

func TestStatusUpdate_PrependsHistoryAndUpdatesCurrent(t *testing.T) {
	c := newTestCollections()
	seeded := time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)
	c.SeedStatus(&models.StatusRecord{
		ReportID:      "R1",
		CurrentStatus: models.StatusReported,
		History:       []models.StatusUpdate{{Status: models.StatusReported, Timestamp: seeded}},
		LastUpdate:    seeded,
	})

	pushed := seeded.Add(2 * time.Hour)
	c.Apply(models.KindCrime, event(t, EventStatusUpdate, StatusDelta{
		ReportID:         "R1",
		Status:           models.StatusUnderInvestigation,
		Timestamp:        pushed,
		UpdatedBy:        "officer-7",
		Notes:            "Assigned to patrol",
		VisibleToCitizen: true,
		AssignedOfficer:  "officer-7",
	}))

	rec := c.StatusFor("R1")
	require.NotNil(t, rec)
	assert.Equal(t, models.StatusUnderInvestigation, rec.CurrentStatus)
	assert.Equal(t, pushed, rec.LastUpdate)
	assert.Equal(t, "officer-7", rec.AssignedOfficer)
	require.Len(t, rec.History, 2)
	assert.Equal(t, models.StatusUnderInvestigation, rec.History[0].Status)
	assert.Equal(t, models.StatusReported, rec.History[1].Status)
}

func TestPrependCrime_ReplacesExistingID(t *testing.T) {
	c := newTestCollections()
	c.PrependCrime(models.CrimeReport{ID: "R1", Title: "old"})
	c.PrependCrime(models.CrimeReport{ID: "R2"})

	c.PrependCrime(models.CrimeReport{ID: "R1", Title: "new"})

	crimes := c.Crimes()
	require.Len(t, crimes, 2)
	assert.Equal(t, "R1", crimes[0].ID)
	assert.Equal(t, "new", crimes[0].Title)
}

func TestApply_UnknownEventTypeIsIgnored(t *testing.T) {
	c := newTestCollections()

	c.Apply(models.KindCrime, Event{Type: "report_archived", Data: []byte(`{"id":"R1"}`)})

	assert.Empty(t, c.Crimes())
}
