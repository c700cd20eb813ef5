package perimetry_test

import (
	"testing"

	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/domain"
	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/perimetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymmetry(t *testing.T) {
	result := perimetry.Symmetry(30, 28)
	assert.Equal(t, perimetry.SymmetryResult{
		AbsDiffCm:    2.0,
		PctDiff:      7.1, // 2/28*100, relative to the left side
		DominantSide: perimetry.SideRight,
	}, result)

	result = perimetry.Symmetry(28, 30)
	assert.Equal(t, perimetry.SymmetryResult{
		AbsDiffCm:    2.0,
		PctDiff:      6.7, // 2/30*100
		DominantSide: perimetry.SideLeft,
	}, result)

	result = perimetry.Symmetry(30, 30)
	assert.Equal(t, perimetry.SymmetryResult{
		AbsDiffCm:    0.0,
		PctDiff:      0.0,
		DominantSide: perimetry.SideEqual,
	}, result)

	// left side missing: no percentage base
	result = perimetry.Symmetry(30, 0)
	assert.Equal(t, 0.0, result.PctDiff)
	assert.Equal(t, perimetry.SideRight, result.DominantSide)
}

func TestSymmetryReport(t *testing.T) {
	circumferences := domain.Circumferences{
		domain.SiteRightArmContracted: 35,
		domain.SiteLeftArmContracted:  34,
		domain.SiteRightCalf:          38,
		domain.SiteLeftCalf:           38,
		// forearm measured on one side only: must be omitted entirely,
		// not reported as a 100% imbalance
		domain.SiteRightForearm: 30,
	}

	report := perimetry.SymmetryReport(circumferences)
	require.Len(t, report, 2)

	assert.Equal(t, "Arm (Contracted)", report[0].Limb)
	assert.Equal(t, 35.0, report[0].RightCm)
	assert.Equal(t, 34.0, report[0].LeftCm)
	assert.Equal(t, perimetry.SideRight, report[0].DominantSide)
	assert.Equal(t, 2.9, report[0].PctDiff) // 1/34*100

	assert.Equal(t, "Calf", report[1].Limb)
	assert.Equal(t, perimetry.SideEqual, report[1].DominantSide)
}

func TestSymmetryReport_Empty(t *testing.T) {
	assert.Empty(t, perimetry.SymmetryReport(domain.Circumferences{}))
	assert.Empty(t, perimetry.SymmetryReport(nil))
}

func TestVariation(t *testing.T) {
	prev := domain.Circumferences{
		domain.SiteWaist: 100,
		domain.SiteHip:   98,
		// chest never measured before
	}
	curr := domain.Circumferences{
		domain.SiteWaist: 95,
		domain.SiteHip:   98,
		domain.SiteChest: 105,
	}

	variations := perimetry.Variation(prev, curr)
	require.Len(t, variations, 2)

	waist := variations[domain.SiteWaist]
	assert.Equal(t, perimetry.VariationEntry{
		Name:    "Waist",
		PrevCm:  100,
		CurrCm:  95,
		DiffCm:  -5.0,
		DiffPct: -5.0,
		Status:  perimetry.StatusDecrease,
	}, waist)

	hip := variations[domain.SiteHip]
	assert.Equal(t, perimetry.StatusUnchanged, hip.Status)
	assert.Equal(t, 0.0, hip.DiffCm)

	// present only in curr: excluded, not a fresh baseline
	_, ok := variations[domain.SiteChest]
	assert.False(t, ok)
}

func TestVariation_Increase(t *testing.T) {
	prev := domain.Circumferences{domain.SiteRightArmContracted: 32}
	curr := domain.Circumferences{domain.SiteRightArmContracted: 33.5}

	variations := perimetry.Variation(prev, curr)
	require.Contains(t, variations, domain.SiteRightArmContracted)

	entry := variations[domain.SiteRightArmContracted]
	assert.Equal(t, 1.5, entry.DiffCm)
	assert.Equal(t, 4.7, entry.DiffPct) // 1.5/32*100
	assert.Equal(t, perimetry.StatusIncrease, entry.Status)
}

func TestRadar(t *testing.T) {
	circumferences := domain.Circumferences{
		domain.SiteShoulder: 110,
		domain.SiteChest:    98,
		domain.SiteWaist:    80,
	}

	series := perimetry.Radar(circumferences)
	require.Len(t, series.Categories, 10)
	require.Len(t, series.Values, 10)

	// fixed order, missing sites show as zero for visual consistency
	assert.Equal(t, "Shoulder", series.Categories[0])
	assert.Equal(t, 110.0, series.Values[0])
	assert.Equal(t, "Right Arm (Contracted)", series.Categories[2])
	assert.Equal(t, 0.0, series.Values[2])
}

func TestComparativeRadar(t *testing.T) {
	prev := domain.Circumferences{domain.SiteShoulder: 110}
	curr := domain.Circumferences{domain.SiteShoulder: 112, domain.SiteWaist: 79}

	series := perimetry.ComparativeRadar(prev, curr)
	require.Len(t, series.Categories, 10)
	require.Len(t, series.ValuesPrev, 10)
	require.Len(t, series.ValuesCurr, 10)

	assert.Equal(t, 110.0, series.ValuesPrev[0])
	assert.Equal(t, 112.0, series.ValuesCurr[0])

	// waist is category index 4 in the radar order
	assert.Equal(t, "Waist", series.Categories[4])
	assert.Equal(t, 0.0, series.ValuesPrev[4])
	assert.Equal(t, 79.0, series.ValuesCurr[4])
}

func TestSumCircumferences(t *testing.T) {
	circumferences := domain.Circumferences{
		domain.SiteShoulder:           110,
		domain.SiteChest:              98,
		domain.SiteRightArmContracted: 35,
		domain.SiteLeftArmContracted:  34,
		domain.SiteRightUpperThigh:    58,
		domain.SiteLeftUpperThigh:     57,
		domain.SiteRightCalf:          38,
		domain.SiteLeftCalf:           37.5,
	}

	assert.Equal(t, 277.0, perimetry.SumCircumferences(circumferences, perimetry.RegionUpper))
	assert.Equal(t, 190.5, perimetry.SumCircumferences(circumferences, perimetry.RegionLower))
	assert.Equal(t, 467.5, perimetry.SumCircumferences(circumferences, perimetry.RegionAll))

	// unknown regions behave like RegionAll
	assert.Equal(t, 467.5, perimetry.SumCircumferences(circumferences, perimetry.Region("torso")))
}

func TestWaistHipRatio(t *testing.T) {
	ratio, ok := perimetry.WaistHipRatio(domain.Circumferences{
		domain.SiteWaist: 80,
		domain.SiteHip:   100,
	})
	require.True(t, ok)
	assert.Equal(t, 0.8, ratio)

	_, ok = perimetry.WaistHipRatio(domain.Circumferences{domain.SiteWaist: 80})
	assert.False(t, ok)

	_, ok = perimetry.WaistHipRatio(domain.Circumferences{domain.SiteHip: 100})
	assert.False(t, ok)
}

func TestClassifyWaistHipRatio(t *testing.T) {
	tests := []struct {
		ratio    float64
		gender   domain.Gender
		expected string
	}{
		{0, domain.GenderMale, "Not calculated"},
		{0.89, domain.GenderMale, "Low risk"},
		{0.95, domain.GenderMale, "Moderate risk"},
		{1.0, domain.GenderMale, "High risk"},
		{0.79, domain.GenderFemale, "Low risk"},
		{0.80, domain.GenderFemale, "Moderate risk"},
		{0.85, domain.GenderFemale, "High risk"},
		{0.9, domain.Gender("other"), "Not calculated"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected,
			perimetry.ClassifyWaistHipRatio(tc.ratio, tc.gender),
			"ratio=%v gender=%s", tc.ratio, tc.gender)
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Right Upper Thigh", perimetry.DisplayName(domain.SiteRightUpperThigh))
	// unregistered sites fall back to the raw key
	assert.Equal(t, "neck", perimetry.DisplayName(domain.CircumferenceSite("neck")))
}
