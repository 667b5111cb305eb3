package services

import (
	"fmt"
	"math"

	"github.com/placeprep/readiness-service/internal/repositories"
)

// Readiness formula weights. The formula is not clamped: many
// certifications can push readiness above 100.
const (
	ResumeWeight        = 0.4
	AptitudeWeight      = 0.4
	CertificationPoints = 10.0
)

// Tier preset names accepted by PolicyForPreset.
const (
	TierPresetStandard = "standard"
	TierPresetMinimal  = "minimal"
)

// FeedbackTier maps a readiness threshold to a feedback message. Boundaries
// are closed-open: a total equal to the threshold belongs to this tier.
type FeedbackTier struct {
	Threshold float64
	Label     string
	Message   string
}

// TierPolicy is an ordered tier list, evaluated high to low.
type TierPolicy struct {
	Name  string
	Tiers []FeedbackTier
}

var standardPolicy = TierPolicy{
	Name: TierPresetStandard,
	Tiers: []FeedbackTier{
		{Threshold: 85, Label: "Excellent", Message: "Excellent readiness! You're well-prepared for placements."},
		{Threshold: 65, Label: "Good", Message: "Good progress! Focus on more certifications and skill-building."},
		{Threshold: 45, Label: "Average", Message: "Average readiness. Improve your aptitude and resume quality."},
		{Threshold: 0, Label: "Low", Message: "Low readiness. Strengthen your basics and attempt more mock tests."},
	},
}

var minimalPolicy = TierPolicy{
	Name: TierPresetMinimal,
	Tiers: []FeedbackTier{
		{Threshold: 85, Label: "Excellent", Message: "Excellent readiness! You're well-prepared for placements."},
		{Threshold: 0, Label: "Low", Message: "Low readiness. Strengthen your basics and attempt more mock tests."},
	},
}

// PolicyForPreset resolves a configured preset name into its tier policy.
func PolicyForPreset(name string) (TierPolicy, error) {
	switch name {
	case TierPresetStandard, "":
		return standardPolicy, nil
	case TierPresetMinimal:
		return minimalPolicy, nil
	default:
		return TierPolicy{}, fmt.Errorf("unknown tier preset %q", name)
	}
}

// Evaluate returns the tier for a readiness total.
func (p TierPolicy) Evaluate(total float64) FeedbackTier {
	for _, tier := range p.Tiers {
		if total >= tier.Threshold {
			return tier
		}
	}
	// Totals are never negative, but fall through to the lowest tier.
	return p.Tiers[len(p.Tiers)-1]
}

// computeReadiness applies the weighted formula to per-user aggregates,
// rounded to 2 decimal places.
func computeReadiness(s repositories.UserScoreSummary) float64 {
	total := ResumeWeight*s.ResumeAverage +
		AptitudeWeight*s.AptitudeAverage +
		CertificationPoints*float64(s.CertificationCount)
	return roundFloat(total, 2)
}

func roundFloat(val float64, precision int) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}
