package anthropometry_test

import (
	"testing"

	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/anthropometry"
	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/domain"

	"github.com/stretchr/testify/assert"
)

// skinfolds100 sums to exactly 100mm across the 7 protocol sites.
func skinfolds100() domain.Skinfolds {
	return domain.Skinfolds{
		domain.SkinfoldChest:       10,
		domain.SkinfoldMidaxillary: 12,
		domain.SkinfoldTriceps:     14,
		domain.SkinfoldSubscapular: 16,
		domain.SkinfoldAbdominal:   20,
		domain.SkinfoldSuprailiac:  13,
		domain.SkinfoldThigh:       15,
	}
}

func TestSumSkinfolds(t *testing.T) {
	assert.Equal(t, 100.0, anthropometry.SumSkinfolds(skinfolds100()))

	// missing sites count as zero
	partial := domain.Skinfolds{
		domain.SkinfoldChest: 8.5,
		domain.SkinfoldThigh: 11.5,
	}
	assert.Equal(t, 20.0, anthropometry.SumSkinfolds(partial))

	assert.Equal(t, 0.0, anthropometry.SumSkinfolds(domain.Skinfolds{}))
	assert.Equal(t, 0.0, anthropometry.SumSkinfolds(nil))
}

func TestBodyDensityPollock7(t *testing.T) {
	// male: 1.112 - 0.00043499*100 + 0.00000055*100² - 0.00028826*30
	assert.Equal(t, 1.06535, anthropometry.BodyDensityPollock7(100, 30, domain.GenderMale))
	// female: 1.097 - 0.00046971*100 + 0.00000056*100² - 0.00012828*30
	assert.Equal(t, 1.05178, anthropometry.BodyDensityPollock7(100, 30, domain.GenderFemale))

	assert.Equal(t, 0.0, anthropometry.BodyDensityPollock7(0, 30, domain.GenderMale))
	assert.Equal(t, 0.0, anthropometry.BodyDensityPollock7(100, 0, domain.GenderMale))
	assert.Equal(t, 0.0, anthropometry.BodyDensityPollock7(100, 30, domain.Gender("other")))
}

func TestPercentFatSiri(t *testing.T) {
	assert.Equal(t, 14.6, anthropometry.PercentFatSiri(1.06535))

	// clamping: density near zero explodes the raw formula
	assert.Equal(t, 60.0, anthropometry.PercentFatSiri(0.5))
	// huge density drives the raw value negative
	assert.Equal(t, 0.0, anthropometry.PercentFatSiri(10))

	assert.Equal(t, 0.0, anthropometry.PercentFatSiri(0))
	assert.Equal(t, 0.0, anthropometry.PercentFatSiri(-1))
}

func TestClassifyPercentFat(t *testing.T) {
	tests := []struct {
		percent  float64
		gender   domain.Gender
		expected string
	}{
		{0, domain.GenderMale, "Not calculated"},
		{5.9, domain.GenderMale, "Essential"},
		{13.9, domain.GenderMale, "Athletic"},
		{17.9, domain.GenderMale, "Fitness"},
		{24.9, domain.GenderMale, "Acceptable"},
		{25.0, domain.GenderMale, "Obesity"},
		{13.9, domain.GenderFemale, "Essential"},
		{20.9, domain.GenderFemale, "Athletic"},
		{24.9, domain.GenderFemale, "Fitness"},
		{31.9, domain.GenderFemale, "Acceptable"},
		{32.0, domain.GenderFemale, "Obesity"},
		{20.0, domain.Gender("other"), "Not calculated"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected,
			anthropometry.ClassifyPercentFat(tc.percent, tc.gender),
			"percent=%v gender=%s", tc.percent, tc.gender)
	}
}

func TestPollock7(t *testing.T) {
	result := anthropometry.Pollock7(skinfolds100(), 30, domain.GenderMale)

	assert.Equal(t, anthropometry.Pollock7Result{
		SumSkinfoldsMm: 100,
		BodyDensity:    1.06535,
		PercentFat:     14.6,
		Classification: "Fitness",
	}, result)

	// clamping property holds through the composition
	assert.GreaterOrEqual(t, result.PercentFat, 0.0)
	assert.LessOrEqual(t, result.PercentFat, 60.0)
}

func TestPollock7_NoMeasurements(t *testing.T) {
	// an empty set propagates zeros deterministically through the pipeline
	result := anthropometry.Pollock7(domain.Skinfolds{}, 30, domain.GenderMale)

	assert.Equal(t, anthropometry.Pollock7Result{
		SumSkinfoldsMm: 0,
		BodyDensity:    0,
		PercentFat:     0,
		Classification: "Not calculated",
	}, result)
}

func TestBodyMasses(t *testing.T) {
	assert.Equal(t, anthropometry.MassSplit{FatMassKg: 20.0, LeanMassKg: 60.0},
		anthropometry.BodyMasses(80, 25))

	assert.Equal(t, anthropometry.MassSplit{FatMassKg: 12.0, LeanMassKg: 70.3},
		anthropometry.BodyMasses(82.3, 14.6))

	assert.Equal(t, anthropometry.MassSplit{}, anthropometry.BodyMasses(0, 25))
	assert.Equal(t, anthropometry.MassSplit{}, anthropometry.BodyMasses(80, -1))
}
