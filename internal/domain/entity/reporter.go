package entity

import (
	"time"
)

const DefaultReporterRadiusKm = 5

// Reporter is a volunteer who verifies reports near a registered location.
// One Reporter per user.
type Reporter struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	Name      string    `json:"name" firestore:"name"`
	Age       int       `json:"age" firestore:"age"`
	Gender    string    `json:"gender" firestore:"gender"`
	Latitude  float64   `json:"latitude" firestore:"latitude"`
	Longitude float64   `json:"longitude" firestore:"longitude"`
	RadiusKm  float64   `json:"radius_km" firestore:"radiusKm"`
	IsActive  bool      `json:"is_active" firestore:"isActive"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
