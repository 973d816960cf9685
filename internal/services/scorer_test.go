package services

import (
	"math/rand"
	"testing"

	"procintel/pipeline/internal/models"
)

var validRiskScores = map[int]bool{
	1: true, 2: true, 3: true, 4: true, 6: true, 8: true, 9: true, 12: true, 16: true,
}

func TestRiskScorer_ScoreAlwaysProductOfRanks(t *testing.T) {
	scorer := NewRiskScorer(rand.New(rand.NewSource(3)))

	titles := []string{
		"SATELLITE UPLINK", "FUEL SUPPLY", "MORTAR CARTRIDGES",
		"ADVANCED CYBER DEFENCE", "OFFICE FURNITURE",
	}
	for i := 0; i < 500; i++ {
		title := titles[i%len(titles)]
		category := CategorizeContract(title)
		risk := scorer.Assess(title, category, int64(i)*500_000, i%8)

		if !validRiskScores[risk.Score] {
			t.Fatalf("Invalid risk score %d for %q", risk.Score, title)
		}
		if risk.Score != risk.Likelihood.Rank()*risk.Impact.Rank() {
			t.Fatalf("Score %d is not likelihood rank %d x impact rank %d",
				risk.Score, risk.Likelihood.Rank(), risk.Impact.Rank())
		}
	}
}

func TestRiskScorer_LikelihoodBuckets(t *testing.T) {
	scorer := NewRiskScorer(rand.New(rand.NewSource(5)))

	// 5 bidders, negligible value, neutral category:
	// (0 + max(1, 5-5)) * 1.0 * 1.0 = 1 -> Low
	risk := scorer.Assess("OFFICE FURNITURE", CategoryOther, 100, 5)
	if risk.Likelihood != models.RatingLow {
		t.Errorf("Expected likelihood Low, got %q", risk.Likelihood)
	}
	if risk.Impact != models.RatingLow && risk.Impact != models.RatingMedium {
		t.Errorf("Impact %q not conditioned on Low likelihood", risk.Impact)
	}

	// Single bidder, 10M value, neutral category:
	// (1 + 4) * 1.0 * 1.0 = 5 -> Medium
	risk = scorer.Assess("OFFICE FURNITURE", CategoryOther, 10_000_000, 1)
	if risk.Likelihood != models.RatingMedium {
		t.Errorf("Expected likelihood Medium, got %q", risk.Likelihood)
	}
	if risk.Impact != models.RatingMedium && risk.Impact != models.RatingHigh {
		t.Errorf("Impact %q not conditioned on Medium likelihood", risk.Impact)
	}

	// Single bidder, 40M value, neutral category:
	// (4 + 4) * 1.0 * 1.0 = 8 -> High
	risk = scorer.Assess("OFFICE FURNITURE", CategoryOther, 40_000_000, 1)
	if risk.Likelihood != models.RatingHigh {
		t.Errorf("Expected likelihood High, got %q", risk.Likelihood)
	}

	// Single bidder, 40M value, Defense_Systems (1.6) and ADVANCED (1.3):
	// (4 + 4) * 1.6 * 1.3 = 16.64 -> Very High
	risk = scorer.Assess("ADVANCED RADAR", "Defense_Systems", 40_000_000, 1)
	if risk.Likelihood != models.RatingVeryHigh {
		t.Errorf("Expected likelihood Very High, got %q", risk.Likelihood)
	}
	if risk.Impact != models.RatingHigh && risk.Impact != models.RatingVeryHigh {
		t.Errorf("Impact %q not conditioned on Very High likelihood", risk.Impact)
	}
}

func TestRiskScorer_ComplexityTiers(t *testing.T) {
	scorer := NewRiskScorer(rand.New(rand.NewSource(11)))

	// Complexity keyword in the title dominates
	risk := scorer.Assess("CYBER RANGE", "Logistics_Support", 1_000_000, 3)
	if risk.Complexity != ComplexityHigh {
		t.Errorf("Expected complexity High, got %q", risk.Complexity)
	}

	// Category factor above 1.2 without a complexity keyword
	risk = scorer.Assess("NETWORK EQUIPMENT", "Communications", 1_000_000, 3)
	if risk.Complexity != ComplexityMedium {
		t.Errorf("Expected complexity Medium, got %q", risk.Complexity)
	}

	// Neutral everything
	risk = scorer.Assess("OFFICE FURNITURE", CategoryOther, 1_000_000, 3)
	if risk.Complexity != ComplexityLow {
		t.Errorf("Expected complexity Low, got %q", risk.Complexity)
	}
}

func TestRiskScorer_Deterministic(t *testing.T) {
	a := NewRiskScorer(rand.New(rand.NewSource(21)))
	b := NewRiskScorer(rand.New(rand.NewSource(21)))

	for i := 0; i < 50; i++ {
		ra := a.Assess("SATELLITE UPLINK", "Communications", 50_000_000, 2)
		rb := b.Assess("SATELLITE UPLINK", "Communications", 50_000_000, 2)
		if ra != rb {
			t.Fatalf("Same seed diverged at iteration %d: %+v vs %+v", i, ra, rb)
		}
	}
}

func TestRatingRank(t *testing.T) {
	cases := []struct {
		rating models.Rating
		rank   int
	}{
		{models.RatingLow, 1},
		{models.RatingMedium, 2},
		{models.RatingHigh, 3},
		{models.RatingVeryHigh, 4},
		{models.Rating("garbage"), 1},
	}
	for _, tc := range cases {
		if got := tc.rating.Rank(); got != tc.rank {
			t.Errorf("Rank(%q) = %d, want %d", tc.rating, got, tc.rank)
		}
	}
}
