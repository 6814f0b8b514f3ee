package meaning

import "github.com/mesh-intelligence/horasat/pkg/types"

// Fixed scoring weights. Earlier bases and earlier positions weigh more;
// the products are a relative ranking signal, not a probability.
var (
	baseWeights = [types.BaseCount + 1]float64{
		types.BaseDay:   0.95,
		types.BaseMonth: 0.90,
		types.BaseYear:  0.85,
		types.BaseSum:   0.80,
	}
	positionWeights = [types.PositionCount + 1]float64{
		1: 1.00, 2: 0.95, 3: 0.90, 4: 0.85, 5: 0.80, 6: 0.75, 7: 0.70,
	}
)

// boundaryBonus is added when the matched value is 1 or 9, the boundary
// values of the tradition's number line.
const boundaryBonus = 0.05

// ScoringEngine computes the relevance score of a resolved match.
// Scores fall in (0, 1.05] and are monotonic in base and position by
// construction.
type ScoringEngine struct{}

// NewScoringEngine creates a ScoringEngine.
func NewScoringEngine() *ScoringEngine {
	return &ScoringEngine{}
}

// Score returns the score for a 1-based (base, position) pair and an
// optional matched value. Out-of-range indices score zero.
func (s *ScoringEngine) Score(base, position int, value types.OptionalInt) float64 {
	if base < types.BaseDay || base > types.BaseSum {
		return 0
	}
	if position < 1 || position > types.PositionCount {
		return 0
	}
	score := baseWeights[base] * positionWeights[position]
	if value.Valid && (value.Int == 1 || value.Int == 9) {
		score += boundaryBonus
	}
	return score
}
