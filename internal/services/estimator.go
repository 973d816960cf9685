package services

import (
	"math/rand"
	"strings"
)

// baseContractValueEur is the floor for every estimate; the published bid
// openings only cover contracts above the high-value threshold.
const baseContractValueEur = 1_000_000

// valueMultipliers scale the base value by the dominant subject of the RFP
// title. When several keywords match, the largest multiplier wins.
var valueMultipliers = []struct {
	Keyword    string
	Multiplier int
}{
	{"SATELLITE", 50},
	{"AIRCRAFT", 30},
	{"SIMULATOR", 20},
	{"CONSTRUCTION", 15},
	{"FUEL", 10},
	{"VEHICLE", 8},
	{"AMMUNITION", 5},
	{"TRAINING", 4},
	{"MEDICAL", 3},
}

// ValueEstimator produces a rough EUR estimate for a contract from its
// title. The jitter source is injected so callers can seed it for
// reproducible runs; estimates are deterministic for a fixed seed.
type ValueEstimator struct {
	rng *rand.Rand
}

func NewValueEstimator(rng *rand.Rand) *ValueEstimator {
	return &ValueEstimator{rng: rng}
}

// Estimate returns the estimated contract value in EUR: the base value times
// the largest matching keyword multiplier, scaled by a uniform jitter in
// [0.7, 1.5). The estimate is monotonically non-decreasing in the applied
// multiplier for a fixed random state.
func (e *ValueEstimator) Estimate(title string) int64 {
	upper := strings.ToUpper(title)

	multiplier := 1
	for _, m := range valueMultipliers {
		if m.Multiplier > multiplier && strings.Contains(upper, m.Keyword) {
			multiplier = m.Multiplier
		}
	}

	jitter := 0.7 + e.rng.Float64()*0.8
	return int64(float64(baseContractValueEur) * float64(multiplier) * jitter)
}
