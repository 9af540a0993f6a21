package utils

import (
	"math"
	"testing"
	"time"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(180, 81)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(bmi-25.0) > 1e-9 {
		t.Fatalf("expected 25.0 got %v", bmi)
	}

	for _, tc := range []struct{ h, w float64 }{
		{0, 70}, {170, 0}, {-170, 70}, {170, -70},
	} {
		if _, err := CalculateBMI(tc.h, tc.w); err == nil {
			t.Fatalf("expected error for height=%v weight=%v", tc.h, tc.w)
		}
	}
}

func TestBMICategoryBoundaries(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{18.49, "Underweight"},
		{18.5, "Normal"},
		{24.99, "Normal"},
		{25, "Overweight"},
		{29.99, "Overweight"},
		{30, "Obese"},
		{42, "Obese"},
	}
	for _, tc := range cases {
		if got := BMICategory(tc.bmi); got != tc.want {
			t.Errorf("BMICategory(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}

func TestIsWeightUpdateDue(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	if IsWeightUpdateDue(nil, now) {
		t.Fatal("nil last update must never be due")
	}

	exactly := now.Add(-WeightUpdateInterval)
	if IsWeightUpdateDue(&exactly, now) {
		t.Fatal("exactly 14 days is not yet due")
	}

	over := now.Add(-WeightUpdateInterval - time.Millisecond)
	if !IsWeightUpdateDue(&over, now) {
		t.Fatal("14 days + 1ms must be due")
	}

	recent := now.Add(-time.Hour)
	if IsWeightUpdateDue(&recent, now) {
		t.Fatal("one hour ago must not be due")
	}
}
