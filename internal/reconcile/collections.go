// Package reconcile holds the portal's view of the citizen's reports and
// merges server-pushed mutations into it. Every mutation is an id-keyed
// merge, so replaying an event is harmless and local knowledge survives
// partial payloads.
package reconcile

import (
	"encoding/json"
	"sync"

	"github.com/mavrin/citizen-report-portal/internal/models"
	"github.com/sirupsen/logrus"
)

// Collections is the shared in-memory state fed by both the submission path
// and the realtime streams. A single mutex serializes all mutations; each
// event is applied to completion before the next.
type Collections struct {
	mu        sync.RWMutex
	logger    *logrus.Logger
	crimes    []models.CrimeReport
	incidents []models.IncidentReport
	statuses  map[string]*models.StatusRecord
	messages  map[string][]models.Message
}

func NewCollections(logger *logrus.Logger) *Collections {
	return &Collections{
		logger:    logger,
		crimes:    make([]models.CrimeReport, 0),
		incidents: make([]models.IncidentReport, 0),
		statuses:  make(map[string]*models.StatusRecord),
		messages:  make(map[string][]models.Message),
	}
}

// Apply merges one pushed event into the collections. kind selects which
// report collection report_update/report_deleted address; message and status
// events are keyed by report id and independent of kind.
func (c *Collections) Apply(kind models.ReportKind, ev Event) {
	log := c.logger.WithFields(logrus.Fields{"event_type": ev.Type, "resource": kind})

	c.mu.Lock()
	defer c.mu.Unlock()

	switch ev.Type {
	case EventReportUpdate:
		if kind == models.KindIncident {
			c.upsertIncident(ev.Data, log)
		} else {
			c.upsertCrime(ev.Data, log)
		}
	case EventReportDeleted:
		if kind == models.KindIncident {
			c.deleteIncident(ev.Data, log)
		} else {
			c.deleteCrime(ev.Data, log)
		}
	case EventMessageAdded:
		c.addMessage(ev.Data, log)
	case EventStatusUpdate:
		c.applyStatusDelta(ev.Data, log)
	default:
		log.Debug("Ignoring unknown event type")
	}
}

// upsertCrime merges the payload into the held entry with the same id, or
// prepends a new entry. Merging decodes into a copy of the held entry, so
// fields absent from the payload keep their local values and applying the
// same event twice is a no-op.
func (c *Collections) upsertCrime(data json.RawMessage, log *logrus.Entry) {
	var ref reportRef
	if err := json.Unmarshal(data, &ref); err != nil || ref.ID == "" {
		log.WithError(err).Warn("Dropping report_update with unusable payload")
		return
	}
	for i := range c.crimes {
		if c.crimes[i].ID == ref.ID {
			merged := c.crimes[i]
			if err := json.Unmarshal(data, &merged); err != nil {
				log.WithError(err).Warn("Failed to merge report_update payload")
				return
			}
			c.crimes[i] = merged
			return
		}
	}
	var report models.CrimeReport
	if err := json.Unmarshal(data, &report); err != nil {
		log.WithError(err).Warn("Failed to decode report_update payload")
		return
	}
	c.crimes = append([]models.CrimeReport{report}, c.crimes...)
}

func (c *Collections) upsertIncident(data json.RawMessage, log *logrus.Entry) {
	var ref reportRef
	if err := json.Unmarshal(data, &ref); err != nil || ref.ID == "" {
		log.WithError(err).Warn("Dropping report_update with unusable payload")
		return
	}
	for i := range c.incidents {
		if c.incidents[i].ID == ref.ID {
			merged := c.incidents[i]
			if err := json.Unmarshal(data, &merged); err != nil {
				log.WithError(err).Warn("Failed to merge report_update payload")
				return
			}
			c.incidents[i] = merged
			return
		}
	}
	var report models.IncidentReport
	if err := json.Unmarshal(data, &report); err != nil {
		log.WithError(err).Warn("Failed to decode report_update payload")
		return
	}
	c.incidents = append([]models.IncidentReport{report}, c.incidents...)
}

// deleteCrime removes the entry with the matching id. An unknown id is a
// no-op.
func (c *Collections) deleteCrime(data json.RawMessage, log *logrus.Entry) {
	var ref reportRef
	if err := json.Unmarshal(data, &ref); err != nil {
		log.WithError(err).Warn("Dropping report_deleted with unusable payload")
		return
	}
	for i := range c.crimes {
		if c.crimes[i].ID == ref.ID {
			c.crimes = append(c.crimes[:i], c.crimes[i+1:]...)
			return
		}
	}
}

func (c *Collections) deleteIncident(data json.RawMessage, log *logrus.Entry) {
	var ref reportRef
	if err := json.Unmarshal(data, &ref); err != nil {
		log.WithError(err).Warn("Dropping report_deleted with unusable payload")
		return
	}
	for i := range c.incidents {
		if c.incidents[i].ID == ref.ID {
			c.incidents = append(c.incidents[:i], c.incidents[i+1:]...)
			return
		}
	}
}

// addMessage prepends the message to its report's thread. Duplicate message
// ids are not de-duplicated here; the thread mirrors arrival order.
func (c *Collections) addMessage(data json.RawMessage, log *logrus.Entry) {
	var msg models.Message
	if err := json.Unmarshal(data, &msg); err != nil || msg.ReportID == "" {
		log.WithError(err).Warn("Dropping message_added with unusable payload")
		return
	}
	c.messages[msg.ReportID] = append([]models.Message{msg}, c.messages[msg.ReportID]...)
}

// applyStatusDelta prepends a history entry to the report's StatusRecord.
// A delta for a report with no record yet is dropped: records are created by
// the initial status fetch, never synthesized from a push.
func (c *Collections) applyStatusDelta(data json.RawMessage, log *logrus.Entry) {
	var delta StatusDelta
	if err := json.Unmarshal(data, &delta); err != nil || delta.ReportID == "" {
		log.WithError(err).Warn("Dropping status_update with unusable payload")
		return
	}
	rec, ok := c.statuses[delta.ReportID]
	if !ok {
		log.WithField("report_id", delta.ReportID).Debug("No status record for pushed status_update, dropping")
		return
	}
	rec.History = append([]models.StatusUpdate{{
		Status:           delta.Status,
		Timestamp:        delta.Timestamp,
		UpdatedBy:        delta.UpdatedBy,
		Notes:            delta.Notes,
		VisibleToCitizen: delta.VisibleToCitizen,
	}}, rec.History...)
	rec.CurrentStatus = delta.Status
	rec.LastUpdate = delta.Timestamp
	if delta.AssignedOfficer != "" {
		rec.AssignedOfficer = delta.AssignedOfficer
	}
	if delta.EstimatedResolution != nil {
		rec.EstimatedResolution = delta.EstimatedResolution
	}
}

// PrependCrime inserts a freshly submitted report at the head of the
// collection, replacing any held entry with the same id.
func (c *Collections) PrependCrime(report models.CrimeReport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.crimes {
		if c.crimes[i].ID == report.ID {
			c.crimes = append(c.crimes[:i], c.crimes[i+1:]...)
			break
		}
	}
	c.crimes = append([]models.CrimeReport{report}, c.crimes...)
}

// PrependIncident inserts a freshly submitted incident at the head of the
// collection, replacing any held entry with the same id.
func (c *Collections) PrependIncident(report models.IncidentReport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.incidents {
		if c.incidents[i].ID == report.ID {
			c.incidents = append(c.incidents[:i], c.incidents[i+1:]...)
			break
		}
	}
	c.incidents = append([]models.IncidentReport{report}, c.incidents...)
}

// SeedCrimes replaces the crime collection with a fetched list.
func (c *Collections) SeedCrimes(reports []models.CrimeReport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.crimes = reports
}

// SeedIncidents replaces the incident collection with a fetched list.
func (c *Collections) SeedIncidents(reports []models.IncidentReport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.incidents = reports
}

// SeedStatus installs a status record fetched from the records system.
// Pushed deltas only apply to reports seeded here.
func (c *Collections) SeedStatus(rec *models.StatusRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statuses[rec.ReportID] = rec
}

// SeedMessages replaces a report's thread with a fetched one.
func (c *Collections) SeedMessages(reportID string, msgs []models.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages[reportID] = msgs
}

// Crimes returns a snapshot copy of the crime collection.
func (c *Collections) Crimes() []models.CrimeReport {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.CrimeReport, len(c.crimes))
	copy(out, c.crimes)
	return out
}

// Incidents returns a snapshot copy of the incident collection.
func (c *Collections) Incidents() []models.IncidentReport {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.IncidentReport, len(c.incidents))
	copy(out, c.incidents)
	return out
}

// StatusFor returns a copy of the report's status record, or nil when none
// has been seeded.
func (c *Collections) StatusFor(reportID string) *models.StatusRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.statuses[reportID]
	if !ok {
		return nil
	}
	out := *rec
	out.History = make([]models.StatusUpdate, len(rec.History))
	copy(out.History, rec.History)
	return &out
}

// MessagesFor returns a snapshot copy of the report's message thread.
func (c *Collections) MessagesFor(reportID string) []models.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Message, len(c.messages[reportID]))
	copy(out, c.messages[reportID])
	return out
}

// StatusCount returns how many status records are held.
func (c *Collections) StatusCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.statuses)
}
