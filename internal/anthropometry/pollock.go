package anthropometry

import (
	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/domain"
)

// Jackson-Pollock 7-site protocol: sum of skinfolds -> body density ->
// percent fat (Siri) -> classification -> fat/lean mass split.

// Pollock7Result is the composed output of the 7-site pipeline.
type Pollock7Result struct {
	SumSkinfoldsMm float64 `json:"sumSkinfoldsMm"`
	BodyDensity    float64 `json:"bodyDensity"`
	PercentFat     float64 `json:"percentFat"`
	Classification string  `json:"classification"`
}

// MassSplit divides total body weight into fat and lean components.
type MassSplit struct {
	FatMassKg  float64 `json:"fatMassKg"`
	LeanMassKg float64 `json:"leanMassKg"`
}

// SumSkinfolds returns the arithmetic sum (mm) over the 7 protocol sites.
// Missing sites count as 0.
func SumSkinfolds(skinfolds domain.Skinfolds) float64 {
	var sum float64
	for _, site := range domain.SkinfoldSites {
		sum += skinfolds[site]
	}
	return sum
}

// BodyDensityPollock7 applies the Jackson-Pollock (1978) generalized
// 7-site equation:
//
//	male:   1.112 - 0.00043499*S + 0.00000055*S² - 0.00028826*A
//	female: 1.097 - 0.00046971*S + 0.00000056*S² - 0.00012828*A
//
// where S is the skinfold sum (mm) and A the age in years. Returns 0.0
// when S, A or the gender token is degenerate.
func BodyDensityPollock7(sumMm float64, age int, gender domain.Gender) float64 {
	if sumMm <= 0 || age <= 0 {
		return 0.0
	}

	a := float64(age)
	var density float64
	switch gender {
	case domain.GenderMale:
		density = 1.112 - 0.00043499*sumMm + 0.00000055*sumMm*sumMm - 0.00028826*a
	case domain.GenderFemale:
		density = 1.097 - 0.00046971*sumMm + 0.00000056*sumMm*sumMm - 0.00012828*a
	default:
		return 0.0
	}
	return round(density, 5)
}

// PercentFatSiri converts body density to percent body fat with the Siri
// equation (4.95/density - 4.5) * 100, clamped to [0, 60]. Returns 0.0 for
// a non-positive density.
func PercentFatSiri(density float64) float64 {
	if density <= 0 {
		return 0.0
	}

	pct := (4.95/density - 4.5) * 100
	if pct < 0 {
		pct = 0
	} else if pct > 60 {
		pct = 60
	}
	return round(pct, 1)
}

// ClassifyPercentFat returns the gender-specific body-fat bucket.
func ClassifyPercentFat(percent float64, gender domain.Gender) string {
	if percent <= 0 {
		return NotCalculated
	}

	thresholds, ok := percentFatThresholds[gender]
	if !ok {
		return NotCalculated
	}
	for _, t := range thresholds {
		if percent <= t.Limit {
			return t.Label
		}
	}
	return percentFatTopLabel
}

// Pollock7 runs the full pipeline over a set of skinfold measurements.
// A degenerate upstream value propagates as zeros and "Not calculated"
// without any special-casing here.
func Pollock7(skinfolds domain.Skinfolds, age int, gender domain.Gender) Pollock7Result {
	sum := SumSkinfolds(skinfolds)
	density := BodyDensityPollock7(sum, age, gender)
	percentFat := PercentFatSiri(density)

	return Pollock7Result{
		SumSkinfoldsMm: sum,
		BodyDensity:    density,
		PercentFat:     percentFat,
		Classification: ClassifyPercentFat(percentFat, gender),
	}
}

// BodyMasses splits total weight into fat mass and lean mass given a
// percent body fat. Returns zeros when weight is non-positive or the
// percentage is negative.
func BodyMasses(weightKg, percentFat float64) MassSplit {
	if weightKg <= 0 || percentFat < 0 {
		return MassSplit{}
	}

	fat := weightKg * percentFat / 100
	return MassSplit{
		FatMassKg:  round(fat, 1),
		LeanMassKg: round(weightKg-fat, 1),
	}
}
