package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ggowtam/nutrition-tracker/models"
	"github.com/ggowtam/nutrition-tracker/utils"

	"gorm.io/gorm"
)

type ProfileService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db, now: time.Now}
}

type ProfileInput struct {
	Gender         string  `json:"gender" binding:"required,oneof=male female"`
	Height         float64 `json:"height" binding:"required,gt=0"` // cm
	Weight         float64 `json:"weight" binding:"required,gt=0"` // kg
	ProfilePicture string  `json:"profile_picture"`                // optional base64 data URL
}

// Save upserts the single profile row for a user. The existence check and
// the write are two round trips; two concurrent saves can race. That
// matches the original behavior and is accepted.
//
// LastWeightUpdate only moves when the weight actually changed (plain
// float comparison), so re-saving the same weight keeps the reminder
// clock running.
func (s *ProfileService) Save(userID uint, input ProfileInput) (*models.UserProfile, error) {
	now := s.now()

	var profile models.UserProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.UserProfile{
			UserID:           userID,
			Gender:           input.Gender,
			Height:           input.Height,
			Weight:           input.Weight,
			LastWeightUpdate: &now,
		}
		if input.ProfilePicture != "" {
			url, upErr := utils.UploadBase64ImageToS3(input.ProfilePicture, fmt.Sprintf("profiles/%d", userID))
			if upErr != nil {
				return nil, fmt.Errorf("failed to upload profile picture: %w", upErr)
			}
			profile.ProfilePicture = url
		}
		if err := s.db.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}

	weightChanged := profile.Weight != input.Weight

	profile.Gender = input.Gender
	profile.Height = input.Height
	profile.Weight = input.Weight
	if weightChanged || profile.LastWeightUpdate == nil {
		profile.LastWeightUpdate = &now
	}
	if input.ProfilePicture != "" {
		url, upErr := utils.UploadBase64ImageToS3(input.ProfilePicture, fmt.Sprintf("profiles/%d", userID))
		if upErr != nil {
			return nil, fmt.Errorf("failed to upload profile picture: %w", upErr)
		}
		profile.ProfilePicture = url
	}

	// CreatedAt stays as loaded; gorm refreshes UpdatedAt on save.
	if err := s.db.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Get returns the user's profile, or nil when none was saved yet.
func (s *ProfileService) Get(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Overview is what the profile screen renders: the stored fields plus the
// derived BMI values. BMI keys are omitted entirely when height or weight
// is missing or non-positive; that is not an error.
func (s *ProfileService) Overview(userID uint) (map[string]interface{}, error) {
	profile, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return map[string]interface{}{"profile": nil}, nil
	}

	out := map[string]interface{}{
		"profile":           profile,
		"weight_update_due": utils.IsWeightUpdateDue(profile.LastWeightUpdate, s.now()),
	}
	if bmi, bmiErr := utils.CalculateBMI(profile.Height, profile.Weight); bmiErr == nil {
		out["bmi"] = bmi
		out["bmi_category"] = utils.BMICategory(bmi)
	}
	return out, nil
}

// WeightReminderStatus reports whether the reminder should fire and how
// many whole days have passed since the last weight change.
func (s *ProfileService) WeightReminderStatus(userID uint) (due bool, daysSince int, err error) {
	profile, err := s.Get(userID)
	if err != nil {
		return false, 0, err
	}
	if profile == nil || profile.LastWeightUpdate == nil {
		return false, 0, nil
	}
	now := s.now()
	daysSince = int(now.Sub(*profile.LastWeightUpdate).Hours() / 24)
	return utils.IsWeightUpdateDue(profile.LastWeightUpdate, now), daysSince, nil
}
