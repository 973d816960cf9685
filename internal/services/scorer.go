package services

import (
	"math"
	"math/rand"
	"strings"

	"procintel/pipeline/internal/models"
)

// categoryRiskFactors weight the base risk by contract category; categories
// not listed carry a neutral 1.0.
var categoryRiskFactors = map[string]float64{
	"Communications":    1.5,
	"IT_Infrastructure": 1.4,
	"Defense_Systems":   1.6,
	"Construction":      1.2,
	"Ammunition":        1.1,
	"Medical_Equipment": 1.0,
	"Logistics_Support": 0.9,
}

// complexityKeywords mark titles whose subject matter pushes the complexity
// factor from 1.0 to 1.3.
var complexityKeywords = []string{"SATELLITE", "SIMULATOR", "CYBER", "AI", "ADVANCED"}

// Complexity tiers assigned by RiskScorer.Assess.
const (
	ComplexityLow    = "Low"
	ComplexityMedium = "Medium"
	ComplexityHigh   = "High"
)

// RiskScorer maps weak contract signals (value, competition, category,
// title complexity) onto the 4x4 likelihood/impact matrix. The impact
// sampling source is injected so tests can seed it.
type RiskScorer struct {
	rng *rand.Rand
}

func NewRiskScorer(rng *rand.Rand) *RiskScorer {
	return &RiskScorer{rng: rng}
}

// Assess computes the risk profile for one contract.
//
// The base risk is (valueRisk + competitionRisk) * categoryFactor *
// complexityFactor, where valueRisk saturates at 4 for contracts of 40M EUR
// and up, and competitionRisk rewards crowded fields. The base is bucketed
// into a likelihood tier and impact is sampled from a distribution
// conditioned on that tier.
func (s *RiskScorer) Assess(title, category string, valueEur int64, bidderCount int) models.RiskAssessment {
	valueRisk := math.Min(4, float64(valueEur)/10_000_000)

	competitionRisk := 4.0
	if bidderCount > 1 {
		competitionRisk = math.Max(1, float64(5-bidderCount))
	}

	categoryFactor, ok := categoryRiskFactors[category]
	if !ok {
		categoryFactor = 1.0
	}

	complexityFactor := 1.0
	if containsAny(strings.ToUpper(title), complexityKeywords) {
		complexityFactor = 1.3
	}

	baseRisk := (valueRisk + competitionRisk) * categoryFactor * complexityFactor

	var likelihood, impact models.Rating
	switch {
	case baseRisk <= 3:
		likelihood = models.RatingLow
		impact = s.sample(models.RatingLow, 0.7, models.RatingMedium)
	case baseRisk <= 6:
		likelihood = models.RatingMedium
		impact = s.sample(models.RatingMedium, 0.6, models.RatingHigh)
	case baseRisk <= 9:
		likelihood = models.RatingHigh
		impact = s.sample(models.RatingHigh, 0.7, models.RatingVeryHigh)
	default:
		likelihood = models.RatingVeryHigh
		impact = s.sample(models.RatingHigh, 0.3, models.RatingVeryHigh)
	}

	complexity := ComplexityLow
	switch {
	case complexityFactor > 1.2:
		complexity = ComplexityHigh
	case categoryFactor > 1.2:
		complexity = ComplexityMedium
	}

	return models.RiskAssessment{
		Likelihood: likelihood,
		Impact:     impact,
		Score:      likelihood.Rank() * impact.Rank(),
		Complexity: complexity,
	}
}

// sample returns first with probability p, otherwise second.
func (s *RiskScorer) sample(first models.Rating, p float64, second models.Rating) models.Rating {
	if s.rng.Float64() < p {
		return first
	}
	return second
}
