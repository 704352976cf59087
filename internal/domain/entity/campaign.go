package entity

import (
	"time"
)

const (
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

var CampaignTypes = []string{
	"Awareness",
	"Promotion",
	"Fundraising",
	"Recruitment",
	"Product Launch",
}

func IsValidCampaignType(t string) bool {
	for _, v := range CampaignTypes {
		if v == t {
			return true
		}
	}
	return false
}

func IsValidCampaignStatus(s string) bool {
	return s == CampaignStatusActive || s == CampaignStatusPaused || s == CampaignStatusCompleted
}

type Campaign struct {
	ID          string     `json:"id" firestore:"id"`
	Title       string     `json:"title" firestore:"title"`
	Description string     `json:"description" firestore:"description"`
	Type        string     `json:"type" firestore:"type"`
	Status      string     `json:"status" firestore:"status"`
	Location    string     `json:"location,omitempty" firestore:"location,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty" firestore:"startDate,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty" firestore:"endDate,omitempty"`
	CreatedBy   string     `json:"created_by,omitempty" firestore:"createdBy,omitempty"`
	CreatedAt   time.Time  `json:"created_at" firestore:"createdAt"`
}
