package models

import "time"

// UserProfile holds body metrics for BMI. At most one row per user,
// enforced by lookup-before-write in the service (not a DB constraint).
// LastWeightUpdate is nil until a weight has ever been saved.
type UserProfile struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           uint       `gorm:"index;not null" json:"user_id"`
	Gender           string     `gorm:"size:10" json:"gender"` // "male" | "female"
	Height           float64    `json:"height"`                // cm
	Weight           float64    `json:"weight"`                // kg
	ProfilePicture   string     `json:"profile_picture,omitempty"`
	LastWeightUpdate *time.Time `json:"last_weight_update,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
