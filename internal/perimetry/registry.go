package perimetry

import "github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/domain"

// Static site registry: display names, bilateral symmetry pairs and the
// radar chart subset. Read-only after initialization.

// siteNames maps each circumference site to its display name.
var siteNames = map[domain.CircumferenceSite]string{
	domain.SiteShoulder:           "Shoulder",
	domain.SiteChest:              "Chest",
	domain.SiteWaist:              "Waist",
	domain.SiteAbdomen:            "Abdomen",
	domain.SiteHip:                "Hip",
	domain.SiteRightArmRelaxed:    "Right Arm (Relaxed)",
	domain.SiteLeftArmRelaxed:     "Left Arm (Relaxed)",
	domain.SiteRightArmContracted: "Right Arm (Contracted)",
	domain.SiteLeftArmContracted:  "Left Arm (Contracted)",
	domain.SiteRightForearm:       "Right Forearm",
	domain.SiteLeftForearm:        "Left Forearm",
	domain.SiteRightUpperThigh:    "Right Upper Thigh",
	domain.SiteLeftUpperThigh:     "Left Upper Thigh",
	domain.SiteRightMidThigh:      "Right Mid Thigh",
	domain.SiteLeftMidThigh:       "Left Mid Thigh",
	domain.SiteRightLowerThigh:    "Right Lower Thigh",
	domain.SiteLeftLowerThigh:     "Left Lower Thigh",
	domain.SiteRightCalf:          "Right Calf",
	domain.SiteLeftCalf:           "Left Calf",
}

// SymmetryPair is a right/left circumference pair compared for bilateral
// imbalance.
type SymmetryPair struct {
	Limb  string
	Right domain.CircumferenceSite
	Left  domain.CircumferenceSite
}

// symmetryPairs lists the 7 registered bilateral pairs.
var symmetryPairs = []SymmetryPair{
	{"Arm (Relaxed)", domain.SiteRightArmRelaxed, domain.SiteLeftArmRelaxed},
	{"Arm (Contracted)", domain.SiteRightArmContracted, domain.SiteLeftArmContracted},
	{"Forearm", domain.SiteRightForearm, domain.SiteLeftForearm},
	{"Upper Thigh", domain.SiteRightUpperThigh, domain.SiteLeftUpperThigh},
	{"Mid Thigh", domain.SiteRightMidThigh, domain.SiteLeftMidThigh},
	{"Lower Thigh", domain.SiteRightLowerThigh, domain.SiteLeftLowerThigh},
	{"Calf", domain.SiteRightCalf, domain.SiteLeftCalf},
}

// radarSites is the fixed-order 10-site projection used by the radar
// charts. Bilateral sites use the right side by convention.
var radarSites = []domain.CircumferenceSite{
	domain.SiteShoulder,
	domain.SiteChest,
	domain.SiteRightArmContracted,
	domain.SiteRightForearm,
	domain.SiteWaist,
	domain.SiteAbdomen,
	domain.SiteHip,
	domain.SiteRightUpperThigh,
	domain.SiteRightMidThigh,
	domain.SiteRightCalf,
}

// DisplayName returns the display name for a site, falling back to the
// raw key for unregistered sites.
func DisplayName(site domain.CircumferenceSite) string {
	if name, ok := siteNames[site]; ok {
		return name
	}
	return string(site)
}

// SymmetryPairs returns the registered bilateral pairs.
func SymmetryPairs() []SymmetryPair {
	out := make([]SymmetryPair, len(symmetryPairs))
	copy(out, symmetryPairs)
	return out
}
