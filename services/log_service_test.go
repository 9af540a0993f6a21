package services

import (
	"math"
	"testing"
	"time"

	"github.com/ggowtam/nutrition-tracker/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.DailyLog{},
		&models.UserProfile{},
		&models.Alert{},
		&models.UserDevice{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func f(v float64) *float64 { return &v }

func TestResolveServings(t *testing.T) {
	got, err := ResolveServings(nil, f(150), 150)
	if err != nil {
		t.Fatalf("grams path: %v", err)
	}
	if got != 1.0 {
		t.Fatalf("150g of a 150g serving = %v servings, want 1", got)
	}

	got, err = ResolveServings(f(2.5), nil, 150)
	if err != nil {
		t.Fatalf("servings path: %v", err)
	}
	if got != 2.5 {
		t.Fatalf("servings passthrough = %v, want 2.5", got)
	}

	// missing serving size falls back to 100
	got, err = ResolveServings(nil, f(50), 0)
	if err != nil {
		t.Fatalf("default size path: %v", err)
	}
	if got != 0.5 {
		t.Fatalf("50g at default size = %v servings, want 0.5", got)
	}

	// grams win when both are present
	got, err = ResolveServings(f(3), f(100), 100)
	if err != nil {
		t.Fatalf("both path: %v", err)
	}
	if got != 1.0 {
		t.Fatalf("grams should take precedence, got %v", got)
	}

	if _, err := ResolveServings(nil, nil, 100); err == nil {
		t.Fatal("expected error when neither servings nor grams supplied")
	}
}

func TestResolveServingsRoundTrip(t *testing.T) {
	for _, size := range []float64{1, 30, 100, 150, 250.5} {
		for _, grams := range []float64{0, 1, 75, 150, 333.3} {
			servings, err := ResolveServings(nil, &grams, size)
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if math.Abs(servings*size-grams) > 1e-9 {
				t.Fatalf("round trip broke: %v servings * %v != %v", servings, size, grams)
			}
		}
	}
}

func TestScaleMacros(t *testing.T) {
	food := models.Food{Protein: 30, Carbs: 12, Calories: 165, ServingSize: 150}

	p, cb, cal, g := ScaleMacros(food, 2)
	if p != 60 || cb != 24 || cal != 330 || g != 300 {
		t.Fatalf("scale by 2: got %v/%v/%v/%v", p, cb, cal, g)
	}

	p, cb, cal, g = ScaleMacros(food, 0)
	if p != 0 || cb != 0 || cal != 0 || g != 0 {
		t.Fatalf("scale by 0 must zero everything, got %v/%v/%v/%v", p, cb, cal, g)
	}
}

func TestAggregate(t *testing.T) {
	if got := Aggregate(nil); got != (Totals{}) {
		t.Fatalf("empty input must aggregate to zeros, got %+v", got)
	}

	logs := []models.DailyLog{
		{Protein: 10, Carbs: 5, Calories: 100},
		{Protein: 20, Carbs: 2.5, Calories: 40},
	}
	got := Aggregate(logs)
	if got.Protein != 30 || got.Carbs != 7.5 || got.Calories != 140 {
		t.Fatalf("unexpected totals: %+v", got)
	}

	// order independence
	reversed := []models.DailyLog{logs[1], logs[0]}
	if Aggregate(reversed) != got {
		t.Fatal("aggregate must be order-independent")
	}
}

func TestLogConsumptionSnapshot(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLogService(db)
	svc.now = func() time.Time {
		return time.Date(2024, 3, 7, 21, 30, 0, 0, time.Local)
	}

	food := models.Food{UserID: 1, Name: "Chicken Breast", Protein: 30, Carbs: 0, Calories: 165, ServingSize: 150}
	if err := db.Create(&food).Error; err != nil {
		t.Fatalf("seed food: %v", err)
	}

	entry, err := svc.LogConsumption(1, food.ID, nil, f(150))
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if entry.Servings != 1.0 || entry.Grams != 150 {
		t.Fatalf("quantity: got %v servings / %vg", entry.Servings, entry.Grams)
	}
	if entry.Protein != 30 || entry.Carbs != 0 || entry.Calories != 165 {
		t.Fatalf("macros: got %v/%v/%v", entry.Protein, entry.Carbs, entry.Calories)
	}
	if entry.Date != "2024-03-07" {
		t.Fatalf("date key: got %q", entry.Date)
	}
	if entry.FoodName != "Chicken Breast" {
		t.Fatalf("food name snapshot: got %q", entry.FoodName)
	}

	// deleting the source food must not touch the snapshot
	if err := db.Delete(&models.Food{}, food.ID).Error; err != nil {
		t.Fatalf("delete food: %v", err)
	}
	var reloaded models.DailyLog
	if err := db.First(&reloaded, entry.ID).Error; err != nil {
		t.Fatalf("reload log: %v", err)
	}
	if reloaded.FoodName != "Chicken Breast" || reloaded.Protein != 30 {
		t.Fatalf("snapshot changed after food delete: %+v", reloaded)
	}
}

func TestLogConsumptionValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLogService(db)

	food := models.Food{UserID: 1, Name: "Oats", Protein: 13, Carbs: 68, Calories: 389, ServingSize: 100}
	if err := db.Create(&food).Error; err != nil {
		t.Fatalf("seed food: %v", err)
	}

	if _, err := svc.LogConsumption(1, food.ID, nil, nil); err == nil {
		t.Fatal("expected error with neither servings nor grams")
	}
	var count int64
	db.Model(&models.DailyLog{}).Count(&count)
	if count != 0 {
		t.Fatalf("validation failure must not write, found %d rows", count)
	}

	// another user's food is invisible
	if _, err := svc.LogConsumption(2, food.ID, f(1), nil); err == nil {
		t.Fatal("expected not-found for foreign food")
	}
}

func TestListByDateScoping(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLogService(db)
	day := time.Date(2024, 3, 7, 8, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return day }

	food := models.Food{UserID: 1, Name: "Rice", Protein: 3, Carbs: 28, Calories: 130, ServingSize: 100}
	if err := db.Create(&food).Error; err != nil {
		t.Fatalf("seed food: %v", err)
	}

	if _, err := svc.LogConsumption(1, food.ID, f(1), nil); err != nil {
		t.Fatalf("log day one: %v", err)
	}

	// next day, second entry
	svc.now = func() time.Time { return day.AddDate(0, 0, 1) }
	if _, err := svc.LogConsumption(1, food.ID, f(2), nil); err != nil {
		t.Fatalf("log day two: %v", err)
	}

	today, err := svc.ListToday(1)
	if err != nil {
		t.Fatalf("list today: %v", err)
	}
	if len(today) != 1 || today[0].Servings != 2 {
		t.Fatalf("today must only see day-two entry, got %+v", today)
	}

	yesterday, err := svc.ListByDate(1, "2024-03-07")
	if err != nil {
		t.Fatalf("list by date: %v", err)
	}
	if len(yesterday) != 1 || yesterday[0].Servings != 1 {
		t.Fatalf("date query must see day-one entry, got %+v", yesterday)
	}

	// other users see nothing
	other, err := svc.ListToday(2)
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("user 2 must see no logs, got %d", len(other))
	}
}

func TestDeleteLog(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLogService(db)

	food := models.Food{UserID: 1, Name: "Egg", Protein: 6, Carbs: 0.6, Calories: 78, ServingSize: 50}
	if err := db.Create(&food).Error; err != nil {
		t.Fatalf("seed food: %v", err)
	}
	entry, err := svc.LogConsumption(1, food.ID, f(1), nil)
	if err != nil {
		t.Fatalf("log: %v", err)
	}

	// a different user's delete is a no-op
	if err := svc.Delete(2, entry.ID); err != nil {
		t.Fatalf("foreign delete: %v", err)
	}
	var count int64
	db.Model(&models.DailyLog{}).Count(&count)
	if count != 1 {
		t.Fatal("foreign delete must not remove the row")
	}

	if err := svc.Delete(1, entry.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	db.Model(&models.DailyLog{}).Count(&count)
	if count != 0 {
		t.Fatal("owner delete must remove the row")
	}
}
