package anthropometry

import "github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/domain"

// Process-wide read-only lookup tables. Nothing in this package mutates
// them after initialization.

// NotCalculated is returned by the classifiers when the underlying value
// could not be computed (degenerate input sentinel).
const NotCalculated = "Not calculated"

// activityFactors maps an activity level to its TDEE multiplier.
var activityFactors = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLight:      1.375,
	domain.ActivityModerate:   1.55,
	domain.ActivityVeryActive: 1.725,
	domain.ActivityExtreme:    1.9,
}

// activityLevels keeps the catalog order stable for form consumers.
var activityLevels = []domain.ActivityLevel{
	domain.ActivitySedentary,
	domain.ActivityLight,
	domain.ActivityModerate,
	domain.ActivityVeryActive,
	domain.ActivityExtreme,
}

// threshold is one row of an ordered classification table.
// A value classifies as Label when value <= Limit (inclusive upper bound).
type threshold struct {
	Limit float64
	Label string
}

// bmiThresholds follows the WHO classification.
var bmiThresholds = []threshold{
	{18.5, "Underweight"},
	{24.9, "Normal"},
	{29.9, "Overweight"},
	{34.9, "Obese I"},
	{39.9, "Obese II"},
}

const bmiTopLabel = "Obese III"

// percentFatThresholds are gender-specific (ACE-style buckets).
var percentFatThresholds = map[domain.Gender][]threshold{
	domain.GenderMale: {
		{5.9, "Essential"},
		{13.9, "Athletic"},
		{17.9, "Fitness"},
		{24.9, "Acceptable"},
	},
	domain.GenderFemale: {
		{13.9, "Essential"},
		{20.9, "Athletic"},
		{24.9, "Fitness"},
		{31.9, "Acceptable"},
	},
}

const percentFatTopLabel = "Obesity"

// trainingExpenditure is the estimated kcal burned in a one-hour session.
var trainingExpenditure = map[domain.TrainingIntensity]float64{
	domain.IntensityAdaptation:   100,
	domain.IntensityBeginner:     150,
	domain.IntensityIntermediate: 187.5,
	domain.IntensityAdvanced:     350,
}

var trainingIntensities = []domain.TrainingIntensity{
	domain.IntensityAdaptation,
	domain.IntensityBeginner,
	domain.IntensityIntermediate,
	domain.IntensityAdvanced,
}

// ActivityLevels returns the recognized activity levels in catalog order.
func ActivityLevels() []domain.ActivityLevel {
	out := make([]domain.ActivityLevel, len(activityLevels))
	copy(out, activityLevels)
	return out
}

// TrainingIntensities returns the recognized training intensities in catalog order.
func TrainingIntensities() []domain.TrainingIntensity {
	out := make([]domain.TrainingIntensity, len(trainingIntensities))
	copy(out, trainingIntensities)
	return out
}
