package entity

import (
	"time"
)

const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// CampaignRequest is a citizen proposal for a new campaign. Its description
// must be at least 250 words at submission time; approval turns it into a
// Campaign and re-links the reports filed under it.
type CampaignRequest struct {
	ID            string    `json:"id" firestore:"id"`
	UserID        string    `json:"user_id" firestore:"userId"`
	Title         string    `json:"title" firestore:"title"`
	Description   string    `json:"description" firestore:"description"`
	Location      string    `json:"location" firestore:"location"`
	ImpactSummary string    `json:"impact_summary" firestore:"impactSummary"`
	Status        string    `json:"status" firestore:"status"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
}
