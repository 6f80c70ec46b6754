package analysis

import "math"

// Weights of the confidence heuristic. Coverage dominates; each matched
// family adds a flat 10 points regardless of how many of its keywords
// hit, and each detected target adds 5.
const (
	coverageWeight = 70
	familyWeight   = 10
	targetWeight   = 5
)

// ScoreConfidence combines text coverage (fraction in [0,1]), the true
// family-match count, and the detected-target count into a bounded
// confidence value in [0,100].
//
// familiesMatched must come from real matches even in fallback mode,
// while targetsDetected counts the targets actually reported, which in
// fallback mode is the substituted list.
func ScoreConfidence(coverage float64, familiesMatched, targetsDetected int) int {
	score := coverage*coverageWeight +
		float64(familiesMatched)*familyWeight +
		float64(targetsDetected)*targetWeight
	confidence := int(math.Round(score))
	if confidence > 100 {
		confidence = 100
	}
	return confidence
}
