// Package anthropometry implements the body-composition formula layer:
// BMI, Mifflin-St Jeor basal metabolic rate, daily energy expenditure and
// the Jackson-Pollock 7-site body-fat pipeline.
//
// Every function is a total, pure transform: domain-invalid input (a
// non-positive weight, height, age or density where a meaningful magnitude
// is required) yields a deterministic zero/sentinel result instead of an
// error, so composed calls never need defensive branching for missing data.
package anthropometry

import (
	"math"
	"time"

	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/domain"
)

// round keeps the given number of decimal places, rounding half away from zero.
func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// Age returns full elapsed years between birthDate and today, decremented
// by one when today's (month, day) precedes the birth (month, day).
// Returns 0 for a zero birth date.
func Age(birthDate, today time.Time) int {
	if birthDate.IsZero() {
		return 0
	}

	age := today.Year() - birthDate.Year()
	if today.Month() < birthDate.Month() ||
		(today.Month() == birthDate.Month() && today.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// BMI computes the Body Mass Index: weight (kg) / height² (m).
// Returns 0.0 when either input is non-positive.
func BMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0.0
	}

	heightM := heightCm / 100
	return round(weightKg/(heightM*heightM), 2)
}

// ClassifyBMI returns the WHO classification for a BMI value.
func ClassifyBMI(bmi float64) string {
	if bmi <= 0 {
		return NotCalculated
	}

	for _, t := range bmiThresholds {
		if bmi <= t.Limit {
			return t.Label
		}
	}
	return bmiTopLabel
}

// BMIColor returns an indicative hex color for a BMI value, used by
// chart/KPI consumers.
func BMIColor(bmi float64) string {
	switch {
	case bmi <= 0:
		return "#808080" // gray - not calculated
	case bmi <= 18.5:
		return "#3498db" // blue - underweight
	case bmi <= 24.9:
		return "#2ecc71" // green - normal
	case bmi <= 29.9:
		return "#f39c12" // orange - overweight
	default:
		return "#e74c3c" // red - obese
	}
}

// BMR computes the Basal Metabolic Rate (kcal/day) using the
// Mifflin-St Jeor equation:
//
//	male:   10*weight + 6.25*height - 5*age + 5
//	female: 10*weight + 6.25*height - 5*age - 161
//
// Returns 0.0 when weight, height or age is non-positive, or when the
// gender token is not one of the two recognized values.
func BMR(weightKg, heightCm float64, age int, gender domain.Gender) float64 {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return 0.0
	}

	base := 10*weightKg + 6.25*heightCm - 5*float64(age)

	switch gender {
	case domain.GenderMale:
		return round(base+5, 1)
	case domain.GenderFemale:
		return round(base-161, 1)
	default:
		return 0.0
	}
}

// TDEE computes the Total Daily Energy Expenditure: BMR scaled by the
// activity factor. Unrecognized activity levels use the Sedentary factor
// so the result stays computable. Returns 0.0 when bmr is non-positive.
func TDEE(bmr float64, level domain.ActivityLevel) float64 {
	if bmr <= 0 {
		return 0.0
	}

	factor, ok := activityFactors[level]
	if !ok {
		factor = activityFactors[domain.ActivitySedentary]
	}
	return round(bmr*factor, 1)
}

// CalorieTargets are daily intake goals derived from the TDEE.
type CalorieTargets struct {
	LightDeficit    float64 `json:"lightDeficit"`
	ModerateDeficit float64 `json:"moderateDeficit"`
	Maintenance     float64 `json:"maintenance"`
	LightSurplus    float64 `json:"lightSurplus"`
	ModerateSurplus float64 `json:"moderateSurplus"`
}

// CalorieTargetsFor derives deficit/maintenance/surplus goals (±250 and
// ±500 kcal around the TDEE). All targets are zero when tdee is non-positive.
func CalorieTargetsFor(tdee float64) CalorieTargets {
	if tdee <= 0 {
		return CalorieTargets{}
	}

	return CalorieTargets{
		LightDeficit:    round(tdee-250, 0),
		ModerateDeficit: round(tdee-500, 0),
		Maintenance:     round(tdee, 0),
		LightSurplus:    round(tdee+250, 0),
		ModerateSurplus: round(tdee+500, 0),
	}
}

// TrainingExpenditure returns the estimated kcal burned in a one-hour
// training session of the given intensity. Unknown intensities fall back
// to the Adaptation estimate.
func TrainingExpenditure(intensity domain.TrainingIntensity) float64 {
	if kcal, ok := trainingExpenditure[intensity]; ok {
		return kcal
	}
	return trainingExpenditure[domain.IntensityAdaptation]
}

// IdealWeightRange returns the weight bounds (kg) corresponding to BMI
// 18.5 and 24.9 at the given height. Returns (0, 0) for a non-positive height.
func IdealWeightRange(heightCm float64) (minKg, maxKg float64) {
	if heightCm <= 0 {
		return 0, 0
	}

	heightM := heightCm / 100
	return round(18.5*heightM*heightM, 1), round(24.9*heightM*heightM, 1)
}
