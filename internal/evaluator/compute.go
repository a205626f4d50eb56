package evaluator

import (
	"drills/pkg/domain"
	"drills/pkg/drill"
	"drills/pkg/serrors"
	"errors"
	"math"
	"math/big"
)

// Compute validates input and runs the requested drill. Inputs are rejected
// with serrors.ErrBadRequest; results that cannot be represented are rejected
// with serrors.ErrOverflow. maxExactResultBits bounds exact results.
func Compute(input domain.EvaluationInput, maxExactResultBits int) (domain.EvaluationResult, error) {
	if err := Validate(input); err != nil {
		return domain.EvaluationResult{}, err
	}

	if input.Operation == domain.OperationHalving {
		value, steps := drill.Halve(input.Value)

		return domain.EvaluationResult{Value: value, Steps: steps}, nil
	}

	var res domain.EvaluationResult
	res.Value = drill.RepeatedExponentiation(input.Base, input.Exponent, input.Repeat)
	if math.IsNaN(res.Value) {
		return domain.EvaluationResult{}, serrors.With(serrors.ErrBadRequest, "result is not a real number")
	}

	if input.Exact {
		exact, err := exactExponentiation(input, maxExactResultBits)
		if err != nil {
			return domain.EvaluationResult{}, err
		}
		res.Exact = exact.String()
	}

	if math.IsInf(res.Value, 0) {
		if res.Exact == "" {
			return domain.EvaluationResult{}, serrors.With(serrors.ErrOverflow, "result overflows float64")
		}
		// the exact answer stands on its own
		res.Value = 0
		res.ValueOverflow = true
	}

	return res, nil
}

// Validate checks that input names a known operation with finite operands.
func Validate(input domain.EvaluationInput) error {
	switch input.Operation {
	case domain.OperationHalving:
		if !finite(input.Value) {
			return serrors.With(serrors.ErrBadRequest, "value must be a finite number")
		}
	case domain.OperationExponentiation:
		if !finite(input.Base) || !finite(input.Exponent) {
			return serrors.With(serrors.ErrBadRequest, "base and exponent must be finite numbers")
		}
		if input.Exact && (!integral(input.Base) || !integral(input.Exponent)) {
			return serrors.With(serrors.ErrBadRequest, "exact results need an integer base and exponent")
		}
	default:
		return serrors.With(serrors.ErrBadRequest, "unknown operation %q", input.Operation)
	}

	return nil
}

func exactExponentiation(input domain.EvaluationInput, maxBits int) (*big.Int, error) {
	base, _ := big.NewFloat(input.Base).Int(nil)
	exponent, _ := big.NewFloat(input.Exponent).Int(nil)

	res, err := drill.ExactRepeatedExponentiation(base, exponent, input.Repeat, maxBits)
	switch {
	case errors.Is(err, drill.ErrNegativeExponent):
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "exact result is not an integer")
	case errors.Is(err, drill.ErrResultTooLarge):
		return nil, serrors.Wrap(serrors.ErrOverflow, err, "exact result exceeds %d bits", maxBits)
	case err != nil:
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not compute exact result")
	}

	return res, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func integral(f float64) bool {
	return f == math.Trunc(f)
}
