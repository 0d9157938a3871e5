package calorie

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateBaseline(t *testing.T) {
	// Regression baseline: BMR = 10*75 + 6.25*180 - 5*30 + 5 = 1730,
	// target = 1730 * 1.2 = 2076.
	got, err := Estimate(SexMale, 30, 180.0, 75.0)
	require.NoError(t, err)
	assert.Equal(t, 2076, got)

	// Female with the same attributes: BMR 1564, 1876.8 rounds up.
	got, err = Estimate(SexFemale, 30, 180.0, 75.0)
	require.NoError(t, err)
	assert.Equal(t, 1877, got)
}

func TestEstimateDeterministic(t *testing.T) {
	first, err := Estimate(SexFemale, 42, 164.5, 58.3)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		got, err := Estimate(SexFemale, 42, 164.5, 58.3)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}

func TestEstimateInvalidAttributes(t *testing.T) {
	tests := []struct {
		name      string
		sex       Sex
		ageYears  int
		heightCm  float64
		weightKg  float64
		wantField string
	}{
		{"unknown sex", Sex("other"), 30, 180, 75, "sex"},
		{"empty sex", Sex(""), 30, 180, 75, "sex"},
		{"zero age", SexMale, 0, 180, 75, "age_years"},
		{"negative age", SexMale, -4, 180, 75, "age_years"},
		{"zero height", SexMale, 30, 0, 75, "height_cm"},
		{"negative weight", SexFemale, 30, 180, -1, "weight_kg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Estimate(tt.sex, tt.ageYears, tt.heightCm, tt.weightKg)
			require.Error(t, err)
			var attrErr *InvalidAttributeError
			require.True(t, errors.As(err, &attrErr))
			assert.Equal(t, tt.wantField, attrErr.Field)
		})
	}
}
