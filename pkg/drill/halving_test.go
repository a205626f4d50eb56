package drill_test

import (
	"drills/pkg/drill"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepeatedHalving(t *testing.T) {
	tests := []struct {
		name  string
		in    float64
		out   float64
		steps int
	}{
		{name: "sixteen halves once", in: 16, out: 8, steps: 1},
		{name: "large value", in: 168923, out: 168923.0 / 32768, steps: 15},
		{name: "exactly threshold is untouched", in: 10, out: 10, steps: 0},
		{name: "just above threshold", in: 10.5, out: 5.25, steps: 1},
		{name: "twenty lands on threshold", in: 20, out: 10, steps: 1},
		{name: "zero", in: 0, out: 0, steps: 0},
		{name: "negative", in: -500, out: -500, steps: 0},
		{name: "fraction", in: 3.75, out: 3.75, steps: 0},
		{name: "positive infinity", in: math.Inf(1), out: math.Inf(1), steps: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.out, drill.RepeatedHalving(tt.in))
			require.Equal(t, tt.steps, drill.HalvingSteps(tt.in))

			got, steps := drill.Halve(tt.in)
			require.Equal(t, tt.out, got)
			require.Equal(t, tt.steps, steps)
		})
	}
}

func TestRepeatedHalving_NaN(t *testing.T) {
	require.True(t, math.IsNaN(drill.RepeatedHalving(math.NaN())))
	require.Zero(t, drill.HalvingSteps(math.NaN()))
}

func TestRepeatedHalving_Properties(t *testing.T) {
	inputs := []float64{0.1, 1, 9.99, 11, 100, 1024, 1e6, 123456789.123, math.MaxFloat64}

	for _, in := range inputs {
		out := drill.RepeatedHalving(in)
		require.LessOrEqual(t, out, float64(drill.HalvingThreshold), "input %v", in)
		// idempotent once at or below the threshold
		require.Equal(t, out, drill.RepeatedHalving(out), "input %v", in)
	}
}

func TestRepeatedHalving_MatchesSimulation(t *testing.T) {
	v := 168923.0
	for v > 10 {
		v /= 2
	}

	require.Equal(t, v, drill.RepeatedHalving(168923))
}
