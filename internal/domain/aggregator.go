package domain

import (
	"errors"
	"fmt"
	"sort"
)

// Strategy names an aggregation policy for collapsing per-illustration
// similarity scores into one artist-level score.
type Strategy string

const (
	// StrategyMax selects the best matching illustration.
	StrategyMax Strategy = "max"

	// StrategyMean averages all scores (overall portfolio quality).
	StrategyMean Strategy = "mean"

	// StrategyWeightedMean self-weights scores, emphasizing strong matches.
	StrategyWeightedMean Strategy = "weighted_mean"

	// StrategyTopKMean averages the best k illustrations.
	StrategyTopKMean Strategy = "top_k_mean"
)

// ErrNoScores indicates Aggregate was called with an empty score list. This
// is a contract violation by the caller, which must filter artists without
// embeddings before aggregating.
var ErrNoScores = errors.New("cannot aggregate empty list of scores")

// ParseStrategy validates a strategy name.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case StrategyMax, StrategyMean, StrategyWeightedMean, StrategyTopKMean:
		return Strategy(name), nil
	}
	return "", fmt.Errorf("invalid aggregation strategy %q", name)
}

// AggregationPolicy is an immutable, validated aggregation selection.
type AggregationPolicy struct {
	Strategy Strategy
	TopK     int
}

// NewAggregationPolicy validates the strategy name and top-k bound at
// construction time; aggregation itself never re-validates.
func NewAggregationPolicy(strategy string, topK int) (AggregationPolicy, error) {
	parsed, err := ParseStrategy(strategy)
	if err != nil {
		return AggregationPolicy{}, err
	}

	if topK < 1 {
		return AggregationPolicy{}, fmt.Errorf("top_k must be >= 1, got %d", topK)
	}

	return AggregationPolicy{Strategy: parsed, TopK: topK}, nil
}

// ScoreAggregator reduces per-illustration similarity scores to one artist
// score. Pure function of its input; no hidden state.
type ScoreAggregator struct {
	policy AggregationPolicy
}

// NewScoreAggregator creates an aggregator for a validated policy.
func NewScoreAggregator(policy AggregationPolicy) *ScoreAggregator {
	return &ScoreAggregator{policy: policy}
}

// Policy returns the aggregation policy in effect.
func (a *ScoreAggregator) Policy() AggregationPolicy {
	return a.policy
}

// Aggregate collapses a non-empty score list into a single value. For inputs
// in [0, 1] the result stays in [0, 1] for every strategy.
func (a *ScoreAggregator) Aggregate(scores []float64) (float64, error) {
	if len(scores) == 0 {
		return 0, ErrNoScores
	}

	switch a.policy.Strategy {
	case StrategyMax:
		return maxScore(scores), nil
	case StrategyMean:
		return meanScore(scores), nil
	case StrategyWeightedMean:
		return weightedMeanScore(scores), nil
	case StrategyTopKMean:
		return topKMeanScore(scores, a.policy.TopK), nil
	}

	// Unreachable: policy is validated at construction.
	return 0, fmt.Errorf("unknown strategy %q", a.policy.Strategy)
}

func maxScore(scores []float64) float64 {
	best := scores[0]
	for _, s := range scores[1:] {
		if s > best {
			best = s
		}
	}
	return best
}

func meanScore(scores []float64) float64 {
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// weightedMeanScore computes Σ(score²)/Σ(score): each score weighted by
// itself, quadratically emphasizing strong matches. Returns 0 when all
// scores are 0 to avoid dividing by zero.
func weightedMeanScore(scores []float64) float64 {
	var weightedSum, weightSum float64
	for _, s := range scores {
		weightedSum += s * s
		weightSum += s
	}

	if weightSum == 0 {
		return 0
	}

	return weightedSum / weightSum
}

func topKMeanScore(scores []float64, topK int) float64 {
	k := topK
	if k > len(scores) {
		k = len(scores)
	}

	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	return meanScore(sorted[:k])
}
