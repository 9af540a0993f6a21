package models

import "time"

// DailyLog is one consumption entry. FoodName and the macro fields are
// snapshots scaled at logging time; they do not follow later edits or
// deletes of the source Food. Date is a local-calendar YYYY-MM-DD key.
type DailyLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Date      string    `gorm:"size:10;index;not null" json:"date"`
	FoodID    uint      `json:"food_id"`
	FoodName  string    `json:"food_name"`
	Servings  float64   `json:"servings"`
	Grams     float64   `json:"grams"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Calories  float64   `json:"calories"`
	CreatedAt time.Time `json:"created_at"`
}
