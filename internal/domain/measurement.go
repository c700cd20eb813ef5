package domain

// This file enumerates the measurement vocabularies shared between the
// storage layer, the calculators and the API. Throughout the codebase a
// value of 0 (or an absent key) means "not measured"; the calculators
// exclude such values from ratios and comparisons.

// CircumferenceSite is one of the 19 tracked body-circumference sites.
type CircumferenceSite string

const (
	SiteShoulder           CircumferenceSite = "shoulder"
	SiteChest              CircumferenceSite = "chest"
	SiteWaist              CircumferenceSite = "waist"
	SiteAbdomen            CircumferenceSite = "abdomen"
	SiteHip                CircumferenceSite = "hip"
	SiteRightArmRelaxed    CircumferenceSite = "right_arm_relaxed"
	SiteLeftArmRelaxed     CircumferenceSite = "left_arm_relaxed"
	SiteRightArmContracted CircumferenceSite = "right_arm_contracted"
	SiteLeftArmContracted  CircumferenceSite = "left_arm_contracted"
	SiteRightForearm       CircumferenceSite = "right_forearm"
	SiteLeftForearm        CircumferenceSite = "left_forearm"
	SiteRightUpperThigh    CircumferenceSite = "right_upper_thigh"
	SiteLeftUpperThigh     CircumferenceSite = "left_upper_thigh"
	SiteRightMidThigh      CircumferenceSite = "right_mid_thigh"
	SiteLeftMidThigh       CircumferenceSite = "left_mid_thigh"
	SiteRightLowerThigh    CircumferenceSite = "right_lower_thigh"
	SiteLeftLowerThigh     CircumferenceSite = "left_lower_thigh"
	SiteRightCalf          CircumferenceSite = "right_calf"
	SiteLeftCalf           CircumferenceSite = "left_calf"
)

// CircumferenceSites lists every recognized site, in display order.
var CircumferenceSites = []CircumferenceSite{
	SiteShoulder,
	SiteChest,
	SiteWaist,
	SiteAbdomen,
	SiteHip,
	SiteRightArmRelaxed,
	SiteLeftArmRelaxed,
	SiteRightArmContracted,
	SiteLeftArmContracted,
	SiteRightForearm,
	SiteLeftForearm,
	SiteRightUpperThigh,
	SiteLeftUpperThigh,
	SiteRightMidThigh,
	SiteLeftMidThigh,
	SiteRightLowerThigh,
	SiteLeftLowerThigh,
	SiteRightCalf,
	SiteLeftCalf,
}

// Circumferences maps a site to its measured value in centimeters.
type Circumferences map[CircumferenceSite]float64

// SkinfoldSite is one of the 7 Jackson-Pollock skinfold sites.
type SkinfoldSite string

const (
	SkinfoldChest       SkinfoldSite = "chest"
	SkinfoldMidaxillary SkinfoldSite = "midaxillary"
	SkinfoldTriceps     SkinfoldSite = "triceps"
	SkinfoldSubscapular SkinfoldSite = "subscapular"
	SkinfoldAbdominal   SkinfoldSite = "abdominal"
	SkinfoldSuprailiac  SkinfoldSite = "suprailiac"
	SkinfoldThigh       SkinfoldSite = "thigh"
)

// SkinfoldSites lists the 7 protocol sites, in measurement order.
var SkinfoldSites = []SkinfoldSite{
	SkinfoldChest,
	SkinfoldMidaxillary,
	SkinfoldTriceps,
	SkinfoldSubscapular,
	SkinfoldAbdominal,
	SkinfoldSuprailiac,
	SkinfoldThigh,
}

// Skinfolds maps a skinfold site to its measured thickness in millimeters.
type Skinfolds map[SkinfoldSite]float64

// Any reports whether at least one skinfold was actually measured.
func (s Skinfolds) Any() bool {
	for _, v := range s {
		if v > 0 {
			return true
		}
	}
	return false
}

// ActivityLevel is the self-reported physical activity level recorded
// with an assessment. Unrecognized levels are treated as Sedentary by
// the TDEE calculation.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "Sedentary"
	ActivityLight      ActivityLevel = "Lightly active"
	ActivityModerate   ActivityLevel = "Moderately active"
	ActivityVeryActive ActivityLevel = "Very active"
	ActivityExtreme    ActivityLevel = "Extremely active"
)

// TrainingIntensity categorizes a training session for the per-session
// calorie expenditure estimate.
type TrainingIntensity string

const (
	IntensityAdaptation   TrainingIntensity = "Adaptation"
	IntensityBeginner     TrainingIntensity = "Beginner"
	IntensityIntermediate TrainingIntensity = "Intermediate"
	IntensityAdvanced     TrainingIntensity = "Advanced"
)
