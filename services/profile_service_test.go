package services

import (
	"testing"
	"time"

	"github.com/ggowtam/nutrition-tracker/models"
)

func TestSaveProfileCreates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	p, err := svc.Save(1, ProfileInput{Gender: "female", Height: 165, Weight: 60})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("expected persisted profile")
	}
	if p.LastWeightUpdate == nil || !p.LastWeightUpdate.Equal(now) {
		t.Fatalf("lastWeightUpdate on create: %v", p.LastWeightUpdate)
	}

	var count int64
	db.Model(&models.UserProfile{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 profile row, got %d", count)
	}
}

func TestSaveProfileWeightUnchangedKeepsReminderClock(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db)

	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return t0 }
	first, err := svc.Save(1, ProfileInput{Gender: "male", Height: 180, Weight: 70})
	if err != nil {
		t.Fatalf("initial save: %v", err)
	}

	// same weight a week later: lastWeightUpdate must not move
	t1 := t0.AddDate(0, 0, 7)
	svc.now = func() time.Time { return t1 }
	second, err := svc.Save(1, ProfileInput{Gender: "male", Height: 180, Weight: 70})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if second.ID != first.ID {
		t.Fatal("save must update in place, not insert")
	}
	if !second.LastWeightUpdate.Equal(t0) {
		t.Fatalf("lastWeightUpdate moved on unchanged weight: %v", second.LastWeightUpdate)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("createdAt must be preserved: %v vs %v", second.CreatedAt, first.CreatedAt)
	}
	if !second.UpdatedAt.After(first.UpdatedAt) {
		t.Fatal("updatedAt must refresh on every save")
	}

	// changed weight: lastWeightUpdate moves to the save time
	t2 := t1.AddDate(0, 0, 7)
	svc.now = func() time.Time { return t2 }
	third, err := svc.Save(1, ProfileInput{Gender: "male", Height: 180, Weight: 71})
	if err != nil {
		t.Fatalf("third save: %v", err)
	}
	if !third.LastWeightUpdate.Equal(t2) {
		t.Fatalf("lastWeightUpdate must refresh on weight change: %v", third.LastWeightUpdate)
	}
}

func TestOverview(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	// no profile yet
	out, err := svc.Overview(1)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if out["profile"] != nil {
		t.Fatalf("expected nil profile, got %v", out["profile"])
	}

	if _, err := svc.Save(1, ProfileInput{Gender: "male", Height: 180, Weight: 81}); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err = svc.Overview(1)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	bmi, ok := out["bmi"].(float64)
	if !ok {
		t.Fatal("bmi missing from overview")
	}
	if out["bmi_category"] != "Overweight" {
		t.Fatalf("category for bmi %v: %v", bmi, out["bmi_category"])
	}
	if out["weight_update_due"] != false {
		t.Fatal("fresh weight must not be due")
	}

	// 15 days later the reminder fires
	svc.now = func() time.Time { return now.AddDate(0, 0, 15) }
	out, err = svc.Overview(1)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if out["weight_update_due"] != true {
		t.Fatal("15-day-old weight must be due")
	}
}

func TestWeightReminderStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	// no profile: never due
	due, _, err := svc.WeightReminderStatus(1)
	if err != nil || due {
		t.Fatalf("no profile: due=%v err=%v", due, err)
	}

	if _, err := svc.Save(1, ProfileInput{Gender: "female", Height: 165, Weight: 58}); err != nil {
		t.Fatalf("save: %v", err)
	}

	svc.now = func() time.Time { return now.AddDate(0, 0, 20) }
	due, days, err := svc.WeightReminderStatus(1)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !due || days != 20 {
		t.Fatalf("expected due after 20 days, got due=%v days=%d", due, days)
	}
}
