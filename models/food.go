package models

import "time"

// Food is a user-owned catalog entry. Macro values are per serving;
// ServingSize is grams (or ml) per one serving. Rows are immutable once
// created, so there is no UpdatedAt.
type Food struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Calories    float64   `json:"calories"`
	ServingSize float64   `json:"serving_size"` // grams/ml per serving, defaults to 100
	CreatedAt   time.Time `json:"created_at"`
}
