package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/artcollab/muse/internal/domain"
)

func newAggregator(t *testing.T, strategy string, topK int) *domain.ScoreAggregator {
	t.Helper()

	policy, err := domain.NewAggregationPolicy(strategy, topK)
	require.NoError(t, err)

	return domain.NewScoreAggregator(policy)
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected domain.Strategy
		wantErr  bool
	}{
		{name: "max", input: "max", expected: domain.StrategyMax, wantErr: false},
		{name: "mean", input: "mean", expected: domain.StrategyMean, wantErr: false},
		{name: "weighted mean", input: "weighted_mean", expected: domain.StrategyWeightedMean, wantErr: false},
		{name: "top k mean", input: "top_k_mean", expected: domain.StrategyTopKMean, wantErr: false},
		{name: "unknown", input: "median", expected: "", wantErr: true},
		{name: "empty", input: "", expected: "", wantErr: true},
		{name: "case sensitive", input: "MAX", expected: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy, err := domain.ParseStrategy(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, strategy)
		})
	}
}

func TestNewAggregationPolicy_RejectsInvalidTopK(t *testing.T) {
	_, err := domain.NewAggregationPolicy("top_k_mean", 0)
	require.Error(t, err)

	_, err = domain.NewAggregationPolicy("top_k_mean", -3)
	require.Error(t, err)
}

func TestAggregate_Max(t *testing.T) {
	aggregator := newAggregator(t, "max", 3)

	score, err := aggregator.Aggregate([]float64{0.9, 0.5, 0.3})
	require.NoError(t, err)
	require.InDelta(t, 0.9, score, 1e-9)
}

func TestAggregate_Mean(t *testing.T) {
	aggregator := newAggregator(t, "mean", 3)

	score, err := aggregator.Aggregate([]float64{0.9, 0.5, 0.3})
	require.NoError(t, err)
	require.InDelta(t, 0.5667, score, 1e-3)
}

func TestAggregate_WeightedMean(t *testing.T) {
	aggregator := newAggregator(t, "weighted_mean", 3)

	// (0.81 + 0.25 + 0.09) / (0.9 + 0.5 + 0.3) = 1.15 / 1.7
	score, err := aggregator.Aggregate([]float64{0.9, 0.5, 0.3})
	require.NoError(t, err)
	require.InDelta(t, 0.6765, score, 1e-3)
}

func TestAggregate_WeightedMean_AllZero(t *testing.T) {
	aggregator := newAggregator(t, "weighted_mean", 3)

	score, err := aggregator.Aggregate([]float64{0, 0, 0})
	require.NoError(t, err)
	require.Zero(t, score)
}

func TestAggregate_TopKMean(t *testing.T) {
	aggregator := newAggregator(t, "top_k_mean", 3)

	// Best three of six: 0.9, 0.8, 0.7.
	score, err := aggregator.Aggregate([]float64{0.1, 0.9, 0.3, 0.8, 0.2, 0.7})
	require.NoError(t, err)
	require.InDelta(t, 0.8, score, 1e-9)
}

func TestAggregate_TopKMean_FewerScoresThanK(t *testing.T) {
	aggregator := newAggregator(t, "top_k_mean", 5)

	score, err := aggregator.Aggregate([]float64{0.4, 0.6})
	require.NoError(t, err)
	require.InDelta(t, 0.5, score, 1e-9)
}

func TestAggregate_TopKMean_DoesNotMutateInput(t *testing.T) {
	aggregator := newAggregator(t, "top_k_mean", 2)

	scores := []float64{0.1, 0.9, 0.5}
	_, err := aggregator.Aggregate(scores)
	require.NoError(t, err)
	require.Equal(t, []float64{0.1, 0.9, 0.5}, scores)
}

func TestAggregate_SingleScore(t *testing.T) {
	for _, strategy := range []string{"max", "mean", "weighted_mean", "top_k_mean"} {
		t.Run(strategy, func(t *testing.T) {
			aggregator := newAggregator(t, strategy, 3)

			score, err := aggregator.Aggregate([]float64{0.42})
			require.NoError(t, err)
			require.InDelta(t, 0.42, score, 1e-9)
		})
	}
}

func TestAggregate_EmptyScores(t *testing.T) {
	for _, strategy := range []string{"max", "mean", "weighted_mean", "top_k_mean"} {
		t.Run(strategy, func(t *testing.T) {
			aggregator := newAggregator(t, strategy, 3)

			_, err := aggregator.Aggregate(nil)
			require.ErrorIs(t, err, domain.ErrNoScores)
		})
	}
}

func TestAggregate_StaysInUnitRange(t *testing.T) {
	scores := []float64{0.0, 0.25, 0.5, 0.75, 1.0}

	for _, strategy := range []string{"max", "mean", "weighted_mean", "top_k_mean"} {
		t.Run(strategy, func(t *testing.T) {
			aggregator := newAggregator(t, strategy, 3)

			score, err := aggregator.Aggregate(scores)
			require.NoError(t, err)
			require.GreaterOrEqual(t, score, 0.0)
			require.LessOrEqual(t, score, 1.0)
		})
	}
}
