package services

import (
	"errors"
	"time"

	"github.com/ggowtam/nutrition-tracker/models"

	"gorm.io/gorm"
)

// DefaultServingSize stands in when a food was saved without a serving
// size (or with zero), matching what the catalog assumes on create.
const DefaultServingSize = 100.0

var ErrQuantityRequired = errors.New("servings or grams required")

type LogService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewLogService(db *gorm.DB) *LogService {
	return &LogService{db: db, now: time.Now}
}

// ResolveServings collapses a consumption entered as either a serving
// count or a grams/ml amount into one canonical serving count. Grams win
// when both are present. Pure; no I/O.
func ResolveServings(servings, grams *float64, servingSize float64) (float64, error) {
	if servingSize <= 0 {
		servingSize = DefaultServingSize
	}
	switch {
	case grams != nil:
		return *grams / servingSize, nil
	case servings != nil:
		return *servings, nil
	default:
		return 0, ErrQuantityRequired
	}
}

// ScaleMacros multiplies a food's per-serving macros by the resolved
// serving count. No rounding here; display rounding is a handler concern.
func ScaleMacros(food models.Food, finalServings float64) (protein, carbs, calories, grams float64) {
	size := food.ServingSize
	if size <= 0 {
		size = DefaultServingSize
	}
	protein = food.Protein * finalServings
	carbs = food.Carbs * finalServings
	calories = food.Calories * finalServings
	grams = finalServings * size
	return
}

// Totals is a day's aggregate across log entries.
type Totals struct {
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Calories float64 `json:"calories"`
}

// Aggregate sums the given entries. It does no date filtering; callers
// query by date first. Empty input yields zero totals.
func Aggregate(logs []models.DailyLog) Totals {
	var t Totals
	for _, l := range logs {
		t.Protein += l.Protein
		t.Carbs += l.Carbs
		t.Calories += l.Calories
	}
	return t
}

// todayKey formats the local calendar date as YYYY-MM-DD. Deliberately
// not UTC-normalized: two processes near midnight in different timezones
// may disagree, same as the original client.
func (s *LogService) todayKey() string {
	return s.now().Format("2006-01-02")
}

// LogConsumption snapshots the food's name and scaled macros into an
// immutable entry dated today. Later edits or deletes of the food leave
// the entry untouched.
func (s *LogService) LogConsumption(userID, foodID uint, servings, grams *float64) (*models.DailyLog, error) {
	var food models.Food
	if err := s.db.Where("id = ? AND user_id = ?", foodID, userID).First(&food).Error; err != nil {
		return nil, err
	}

	finalServings, err := ResolveServings(servings, grams, food.ServingSize)
	if err != nil {
		return nil, err
	}
	protein, carbs, calories, totalGrams := ScaleMacros(food, finalServings)

	entry := &models.DailyLog{
		UserID:   userID,
		Date:     s.todayKey(),
		FoodID:   food.ID,
		FoodName: food.Name,
		Servings: finalServings,
		Grams:    totalGrams,
		Protein:  protein,
		Carbs:    carbs,
		Calories: calories,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *LogService) ListToday(userID uint) ([]models.DailyLog, error) {
	return s.ListByDate(userID, s.todayKey())
}

func (s *LogService) ListByDate(userID uint, date string) ([]models.DailyLog, error) {
	var logs []models.DailyLog
	err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&logs).Error
	return logs, err
}

func (s *LogService) Delete(userID, logID uint) error {
	return s.db.
		Where("id = ? AND user_id = ?", logID, userID).
		Delete(&models.DailyLog{}).Error
}
