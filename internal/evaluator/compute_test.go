package evaluator_test

import (
	"drills/internal/evaluator"
	"drills/pkg/domain"
	"drills/pkg/serrors"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const maxBits = 1 << 20

func halving(v float64) domain.EvaluationInput {
	return domain.EvaluationInput{Operation: domain.OperationHalving, Value: v}
}

func exponentiation(base, exponent float64, repeat uint, exact bool) domain.EvaluationInput {
	return domain.EvaluationInput{
		Operation: domain.OperationExponentiation,
		Base:      base,
		Exponent:  exponent,
		Repeat:    repeat,
		Exact:     exact,
	}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name  string
		input domain.EvaluationInput
		want  domain.EvaluationResult
	}{
		{
			name:  "halving",
			input: halving(16),
			want:  domain.EvaluationResult{Value: 8, Steps: 1},
		},
		{
			name:  "halving already small",
			input: halving(-3),
			want:  domain.EvaluationResult{Value: -3},
		},
		{
			name:  "halving many steps",
			input: halving(168923),
			want:  domain.EvaluationResult{Value: 168923.0 / 32768, Steps: 15},
		},
		{
			name:  "exponentiation",
			input: exponentiation(2, 4, 1, false),
			want:  domain.EvaluationResult{Value: 16},
		},
		{
			name:  "repeated exponentiation exact",
			input: exponentiation(2, 4, 3, true),
			want:  domain.EvaluationResult{Value: math.Pow(2, 64), Exact: "18446744073709551616"},
		},
		{
			name:  "zero repeat",
			input: exponentiation(7, 3, 0, true),
			want:  domain.EvaluationResult{Value: 7, Exact: "7"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evaluator.Compute(tt.input, maxBits)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCompute_ValueOverflow(t *testing.T) {
	got, err := evaluator.Compute(exponentiation(2, 4, 5, true), maxBits)
	require.NoError(t, err)
	require.True(t, got.ValueOverflow)
	require.Zero(t, got.Value)
	require.Len(t, got.Exact, 309) // 2^1024 has 309 decimal digits

	_, err = evaluator.Compute(exponentiation(2, 4, 5, false), maxBits)
	require.ErrorIs(t, err, serrors.ErrOverflow)
}

func TestCompute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   domain.EvaluationInput
		maxBits int
		kind    serrors.Kind
	}{
		{"unknown operation", domain.EvaluationInput{Operation: "ROOT"}, maxBits, serrors.ErrBadRequest},
		{"empty operation", domain.EvaluationInput{}, maxBits, serrors.ErrBadRequest},
		{"nan value", halving(math.NaN()), maxBits, serrors.ErrBadRequest},
		{"infinite value", halving(math.Inf(1)), maxBits, serrors.ErrBadRequest},
		{"infinite base", exponentiation(math.Inf(-1), 2, 1, false), maxBits, serrors.ErrBadRequest},
		{"nan exponent", exponentiation(2, math.NaN(), 1, false), maxBits, serrors.ErrBadRequest},
		{"not a real number", exponentiation(-8, 0.5, 1, false), maxBits, serrors.ErrBadRequest},
		{"float overflow", exponentiation(10, 400, 1, false), maxBits, serrors.ErrOverflow},
		{"exact fractional base", exponentiation(2.5, 2, 1, true), maxBits, serrors.ErrBadRequest},
		{"exact negative exponent", exponentiation(2, -1, 1, true), maxBits, serrors.ErrBadRequest},
		{"exact too large", exponentiation(2, 4, 3, true), 10, serrors.ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := evaluator.Compute(tt.input, tt.maxBits)
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.kind), "expected %v, got %v", tt.kind, err)
		})
	}
}
