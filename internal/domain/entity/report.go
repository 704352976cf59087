package entity

import (
	"time"
)

// CorruptionTypes is the fixed set of categories a report can be filed under.
var CorruptionTypes = []string{
	"Bribery",
	"Fraud",
	"Abuse of Power",
	"Embezzlement",
	"Blackmail",
	"Nepotism",
	"Other",
}

func IsValidCorruptionType(t string) bool {
	for _, v := range CorruptionTypes {
		if v == t {
			return true
		}
	}
	return false
}

const (
	VerificationStatusSubmitted = "submitted"
)

// Report is one piece of citizen-submitted evidence. Exactly one of
// CampaignID or CampaignRequestID (with CampaignPending=true) links it to
// a campaign; coordinates are mandatory at creation.
type Report struct {
	ID             string `json:"id" firestore:"id"`
	UserID         string `json:"user_id" firestore:"userId"`
	FilePath       string `json:"file_path" firestore:"filePath"`
	Description    string `json:"description" firestore:"description"`
	Location       string `json:"location" firestore:"location"`
	CorruptionType string `json:"corruption_type" firestore:"corruptionType"`

	CampaignID        string `json:"campaign_id,omitempty" firestore:"campaignId"`
	CampaignType      string `json:"campaign_type,omitempty" firestore:"campaignType"`
	CampaignRequestID string `json:"campaign_request_id,omitempty" firestore:"campaignRequestId"`
	CampaignPending   bool   `json:"campaign_pending" firestore:"campaignPending"`

	Latitude  float64 `json:"latitude" firestore:"latitude"`
	Longitude float64 `json:"longitude" firestore:"longitude"`

	ShareX         bool `json:"share_x" firestore:"shareX"`
	ShareInstagram bool `json:"share_instagram" firestore:"shareInstagram"`
	ShareFacebook  bool `json:"share_facebook" firestore:"shareFacebook"`

	IsAnonymous     bool   `json:"is_anonymous" firestore:"isAnonymous"`
	ReporterName    string `json:"reporter_name,omitempty" firestore:"reporterName,omitempty"`
	ReporterContact string `json:"reporter_contact,omitempty" firestore:"reporterContact,omitempty"`

	VerificationMediaURL    string     `json:"verification_media_url,omitempty" firestore:"verificationMediaUrl,omitempty"`
	VerificationDescription string     `json:"verification_description,omitempty" firestore:"verificationDescription,omitempty"`
	VerificationStatus      string     `json:"verification_status,omitempty" firestore:"verificationStatus,omitempty"`
	VerifiedBy              string     `json:"verified_by,omitempty" firestore:"verifiedBy,omitempty"`
	VerifiedAt              *time.Time `json:"verified_at,omitempty" firestore:"verifiedAt,omitempty"`

	AssignedReporterID string     `json:"assigned_reporter_id,omitempty" firestore:"assignedReporterId,omitempty"`
	AcceptedAt         *time.Time `json:"accepted_at,omitempty" firestore:"acceptedAt,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// HasCoordinates reports whether the row carries a real location. Rows
// written before the location gate hold the zero pair and must be left
// out of map aggregation rather than pinned at 0,0.
func (r *Report) HasCoordinates() bool {
	return r.Latitude != 0 || r.Longitude != 0
}
