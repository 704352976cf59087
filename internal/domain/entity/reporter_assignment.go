package entity

import (
	"time"
)

const (
	AssignmentStatusNotified = "notified"
	AssignmentStatusAccepted = "accepted"
	AssignmentStatusIgnored  = "ignored"
)

// ReporterAssignment ties a reporter to a nearby report. It starts as
// notified and moves to accepted or ignored; only notified assignments
// appear in the active worklist.
type ReporterAssignment struct {
	ID         string    `json:"id" firestore:"id"`
	ReporterID string    `json:"reporter_id" firestore:"reporterId"`
	ReportID   string    `json:"report_id" firestore:"reportId"`
	Status     string    `json:"status" firestore:"status"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}

func IsTerminalAssignmentStatus(s string) bool {
	return s == AssignmentStatusAccepted || s == AssignmentStatusIgnored
}
