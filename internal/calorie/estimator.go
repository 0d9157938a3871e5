// Package calorie derives daily calorie targets from physical attributes.
package calorie

import (
	"fmt"
	"math"
)

// Sex selects the constant offset in the basal metabolic rate formula.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Valid reports whether s is one of the supported sexes.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// Mifflin-St Jeor coefficients. These are fixed constants of the estimator,
// not configuration: the same inputs must yield the same target on every
// deployment.
const (
	weightCoefficient = 10.0
	heightCoefficient = 6.25
	ageCoefficient    = 5.0
	maleOffset        = 5.0
	femaleOffset      = -161.0

	// Sedentary activity multiplier applied to the BMR.
	activityMultiplier = 1.2
)

// InvalidAttributeError reports an input that violates the estimator's
// contract, naming the offending field.
type InvalidAttributeError struct {
	Field  string
	Reason string
}

func (e *InvalidAttributeError) Error() string {
	return fmt.Sprintf("invalid attribute %q: %s", e.Field, e.Reason)
}

// Estimate computes the daily calorie target for the given attributes.
// It is pure: identical inputs always produce the identical integer. The
// result is rounded to the nearest whole calorie.
func Estimate(sex Sex, ageYears int, heightCm, weightKg float64) (int, error) {
	if !sex.Valid() {
		return 0, &InvalidAttributeError{Field: "sex", Reason: fmt.Sprintf("must be %q or %q", SexMale, SexFemale)}
	}
	if ageYears <= 0 {
		return 0, &InvalidAttributeError{Field: "age_years", Reason: "must be positive"}
	}
	if heightCm <= 0 {
		return 0, &InvalidAttributeError{Field: "height_cm", Reason: "must be positive"}
	}
	if weightKg <= 0 {
		return 0, &InvalidAttributeError{Field: "weight_kg", Reason: "must be positive"}
	}

	offset := maleOffset
	if sex == SexFemale {
		offset = femaleOffset
	}

	bmr := weightCoefficient*weightKg + heightCoefficient*heightCm - ageCoefficient*float64(ageYears) + offset
	return int(math.Round(bmr * activityMultiplier)), nil
}
