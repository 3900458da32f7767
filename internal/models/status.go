package models

import "time"

// StatusUpdate is one entry in a report's status history.
type StatusUpdate struct {
	Status           Status    `json:"status"`
	Timestamp        time.Time `json:"timestamp"`
	UpdatedBy        string    `json:"updated_by,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	VisibleToCitizen bool      `json:"visible_to_citizen"`
}

// StatusRecord holds the current status and full history for one report.
// History is prepend-only, most recent first.
type StatusRecord struct {
	ReportID            string         `json:"report_id"`
	CurrentStatus       Status         `json:"current_status"`
	History             []StatusUpdate `json:"history"`
	AssignedOfficer     string         `json:"assigned_officer,omitempty"`
	EstimatedResolution *time.Time     `json:"estimated_resolution,omitempty"`
	LastUpdate          time.Time      `json:"last_update"`
}

// Message is one entry in a report's conversation thread.
type Message struct {
	ID         string    `json:"id"`
	ReportID   string    `json:"report_id"`
	SenderID   string    `json:"sender_id"`
	SenderRole string    `json:"sender_role"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}
