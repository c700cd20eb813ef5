// Package perimetry analyzes body-circumference measurements: bilateral
// symmetry, per-site variation between two assessments, radar chart
// projections, region sums and the waist-hip ratio.
//
// All functions are pure and total over the fixed 19-site vocabulary
// defined in the domain package. A site measured as 0 (or absent) is
// treated as "not measured" and omitted from ratios and comparisons.
package perimetry

import (
	"math"

	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/domain"
)

// Dominant side labels.
const (
	SideRight = "Right"
	SideLeft  = "Left"
	SideEqual = "Equal"
)

// Variation status labels.
const (
	StatusIncrease  = "increase"
	StatusDecrease  = "decrease"
	StatusUnchanged = "unchanged"
)

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// SymmetryResult describes the imbalance between a right/left pair.
type SymmetryResult struct {
	AbsDiffCm    float64 `json:"absDiffCm"`
	PctDiff      float64 `json:"pctDiff"`
	DominantSide string  `json:"dominantSide"`
}

// Symmetry compares a right and a left measurement. The percentage is
// always relative to the left side by convention (0 when left <= 0).
func Symmetry(right, left float64) SymmetryResult {
	absDiff := math.Abs(right - left)

	var pctDiff float64
	if left > 0 {
		pctDiff = absDiff / left * 100
	}

	dominant := SideEqual
	if right > left {
		dominant = SideRight
	} else if left > right {
		dominant = SideLeft
	}

	return SymmetryResult{
		AbsDiffCm:    round1(absDiff),
		PctDiff:      round1(pctDiff),
		DominantSide: dominant,
	}
}

// SymmetryEntry is one pair's symmetry analysis, with the raw values.
type SymmetryEntry struct {
	Limb    string  `json:"limb"`
	RightCm float64 `json:"rightCm"`
	LeftCm  float64 `json:"leftCm"`
	SymmetryResult
}

// SymmetryReport analyzes every registered bilateral pair. Pairs with a
// missing side are silently omitted; a one-sided measurement is not an
// imbalance finding.
func SymmetryReport(circumferences domain.Circumferences) []SymmetryEntry {
	var entries []SymmetryEntry

	for _, pair := range symmetryPairs {
		right := circumferences[pair.Right]
		left := circumferences[pair.Left]
		if right <= 0 || left <= 0 {
			continue
		}

		entries = append(entries, SymmetryEntry{
			Limb:           pair.Limb,
			RightCm:        right,
			LeftCm:         left,
			SymmetryResult: Symmetry(right, left),
		})
	}

	return entries
}

// VariationEntry describes how one site changed between two assessments.
type VariationEntry struct {
	Name    string  `json:"name"`
	PrevCm  float64 `json:"prevCm"`
	CurrCm  float64 `json:"currCm"`
	DiffCm  float64 `json:"diffCm"`
	DiffPct float64 `json:"diffPct"`
	Status  string  `json:"status"`
}

// Variation compares two circumference snapshots site by site. A site is
// included only when measured (>0) in both snapshots; zero-filling would
// report false 100% losses for never-measured sites.
func Variation(prev, curr domain.Circumferences) map[domain.CircumferenceSite]VariationEntry {
	variations := make(map[domain.CircumferenceSite]VariationEntry)

	for _, site := range domain.CircumferenceSites {
		prevVal := prev[site]
		currVal := curr[site]
		if prevVal <= 0 || currVal <= 0 {
			continue
		}

		diff := currVal - prevVal
		status := StatusUnchanged
		if diff > 0 {
			status = StatusIncrease
		} else if diff < 0 {
			status = StatusDecrease
		}

		variations[site] = VariationEntry{
			Name:    DisplayName(site),
			PrevCm:  prevVal,
			CurrCm:  currVal,
			DiffCm:  round1(diff),
			DiffPct: round1(diff / prevVal * 100),
			Status:  status,
		}
	}

	return variations
}

// RadarSeries is a fixed-order projection for radar chart rendering.
// Unlike Variation, it always carries all 10 categories so overlapping
// charts stay visually aligned; missing sites show as 0.
type RadarSeries struct {
	Categories []string  `json:"categories"`
	Values     []float64 `json:"values"`
}

// Radar projects a snapshot onto the 10-site radar subset.
func Radar(circumferences domain.Circumferences) RadarSeries {
	series := RadarSeries{
		Categories: make([]string, 0, len(radarSites)),
		Values:     make([]float64, 0, len(radarSites)),
	}
	for _, site := range radarSites {
		series.Categories = append(series.Categories, DisplayName(site))
		series.Values = append(series.Values, circumferences[site])
	}
	return series
}

// ComparativeRadarSeries carries two aligned value series for overlaying
// a previous and a current assessment on the same radar chart.
type ComparativeRadarSeries struct {
	Categories []string  `json:"categories"`
	ValuesPrev []float64 `json:"valuesPrev"`
	ValuesCurr []float64 `json:"valuesCurr"`
}

// ComparativeRadar projects two snapshots onto the radar subset.
func ComparativeRadar(prev, curr domain.Circumferences) ComparativeRadarSeries {
	series := ComparativeRadarSeries{
		Categories: make([]string, 0, len(radarSites)),
		ValuesPrev: make([]float64, 0, len(radarSites)),
		ValuesCurr: make([]float64, 0, len(radarSites)),
	}
	for _, site := range radarSites {
		series.Categories = append(series.Categories, DisplayName(site))
		series.ValuesPrev = append(series.ValuesPrev, prev[site])
		series.ValuesCurr = append(series.ValuesCurr, curr[site])
	}
	return series
}

// Region selects a subset of sites for SumCircumferences.
type Region string

const (
	RegionAll   Region = "all"
	RegionUpper Region = "upper"
	RegionLower Region = "lower"
)

var regionSites = map[Region][]domain.CircumferenceSite{
	RegionUpper: {
		domain.SiteShoulder,
		domain.SiteChest,
		domain.SiteRightArmContracted,
		domain.SiteLeftArmContracted,
	},
	RegionLower: {
		domain.SiteRightUpperThigh,
		domain.SiteLeftUpperThigh,
		domain.SiteRightCalf,
		domain.SiteLeftCalf,
	},
}

// SumCircumferences sums the measured values over a region. Unknown
// regions behave like RegionAll.
func SumCircumferences(circumferences domain.Circumferences, region Region) float64 {
	sites, ok := regionSites[region]
	if !ok {
		sites = domain.CircumferenceSites
	}

	var sum float64
	for _, site := range sites {
		sum += circumferences[site]
	}
	return round1(sum)
}

// WaistHipRatio computes waist/hip (2 decimals), a cardiovascular risk
// indicator. The second return value is false when either measurement is
// missing.
func WaistHipRatio(circumferences domain.Circumferences) (float64, bool) {
	waist := circumferences[domain.SiteWaist]
	hip := circumferences[domain.SiteHip]
	if waist <= 0 || hip <= 0 {
		return 0, false
	}
	return math.Round(waist/hip*100) / 100, true
}

// ClassifyWaistHipRatio maps a waist-hip ratio to a cardiovascular risk
// bucket. Returns "Not calculated" for a non-positive ratio or an
// unrecognized gender token.
func ClassifyWaistHipRatio(ratio float64, gender domain.Gender) string {
	if ratio <= 0 {
		return "Not calculated"
	}

	switch gender {
	case domain.GenderMale:
		switch {
		case ratio < 0.90:
			return "Low risk"
		case ratio < 1.0:
			return "Moderate risk"
		default:
			return "High risk"
		}
	case domain.GenderFemale:
		switch {
		case ratio < 0.80:
			return "Low risk"
		case ratio < 0.85:
			return "Moderate risk"
		default:
			return "High risk"
		}
	default:
		return "Not calculated"
	}
}
