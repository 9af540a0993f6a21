package utils

import (
	"errors"
	"time"
)

// WeightUpdateInterval is how long a stored weight stays fresh before the
// client should nudge the user to re-enter it.
const WeightUpdateInterval = 14 * 24 * time.Hour

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}

	h := heightCm / 100.0 // to meters
	return weightKg / (h * h), nil
}

// BMICategory buckets a BMI value. Boundary values fall into the higher
// category (strict less-than at 18.5, 25 and 30).
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}

// IsWeightUpdateDue reports whether more than WeightUpdateInterval has
// passed since the last weight change. Exactly 14 days is not yet due.
// A nil last update means a weight was never recorded: never due.
func IsWeightUpdateDue(lastWeightUpdate *time.Time, now time.Time) bool {
	if lastWeightUpdate == nil {
		return false
	}
	return now.Sub(*lastWeightUpdate) > WeightUpdateInterval
}
