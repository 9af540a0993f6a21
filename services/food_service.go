package services

import (
	"github.com/ggowtam/nutrition-tracker/models"

	"gorm.io/gorm"
)

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// Create adds a catalog entry. Foods are immutable afterwards; there is
// no update path. A missing or zero serving size becomes the default 100.
func (s *FoodService) Create(userID uint, name string, protein, carbs, calories, servingSize float64) (*models.Food, error) {
	if servingSize <= 0 {
		servingSize = DefaultServingSize
	}
	food := &models.Food{
		UserID:      userID,
		Name:        name,
		Protein:     protein,
		Carbs:       carbs,
		Calories:    calories,
		ServingSize: servingSize,
	}
	if err := s.db.Create(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

func (s *FoodService) List(userID uint) ([]models.Food, error) {
	var foods []models.Food
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&foods).Error
	return foods, err
}

// Delete removes a food from the catalog. Existing log entries keep their
// snapshots and are not touched.
func (s *FoodService) Delete(userID, foodID uint) error {
	return s.db.
		Where("id = ? AND user_id = ?", foodID, userID).
		Delete(&models.Food{}).Error
}
