package v1handler

import (
	"drills/pkg/domain"
	"drills/pkg/serrors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-faster/jx"
)

// DefaultRepeat is the repeat count used when a request omits it.
const DefaultRepeat uint = 1

// Halving answers GET /v1/halving?value=.
func (h Handler) Halving(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	value, err := floatParam(query, "value")
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	input := domain.EvaluationInput{Operation: domain.OperationHalving, Value: value}
	res, err := h.deps.Evaluator.Compute(ctx, input)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, func(e *jx.Encoder) { encodeResult(e, input.Operation, res) })
}

// Exponentiation answers GET /v1/exponentiation?base=&exponent=&repeat=&exact=.
func (h Handler) Exponentiation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	input, err := exponentiationInput(r.URL.Query())
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	res, err := h.deps.Evaluator.Compute(ctx, input)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, func(e *jx.Encoder) { encodeResult(e, input.Operation, res) })
}

func exponentiationInput(query url.Values) (domain.EvaluationInput, error) {
	input := domain.EvaluationInput{Operation: domain.OperationExponentiation, Repeat: DefaultRepeat}

	var err error
	if input.Base, err = floatParam(query, "base"); err != nil {
		return input, err
	}
	if input.Exponent, err = floatParam(query, "exponent"); err != nil {
		return input, err
	}

	if raw := query.Get("repeat"); raw != "" {
		repeat, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return input, serrors.Wrap(serrors.ErrBadRequest, err, "repeat must be a non-negative integer")
		}
		input.Repeat = uint(repeat)
	}

	if raw := query.Get("exact"); raw != "" {
		if input.Exact, err = strconv.ParseBool(raw); err != nil {
			return input, serrors.Wrap(serrors.ErrBadRequest, err, "exact must be a boolean")
		}
	}

	return input, nil
}

func floatParam(query url.Values, name string) (float64, error) {
	raw := query.Get(name)
	if raw == "" {
		return 0, serrors.With(serrors.ErrBadRequest, "%s is required", name)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "%s must be a number", name)
	}

	return v, nil
}

func encodeResult(e *jx.Encoder, op domain.Operation, res domain.EvaluationResult) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("value", func(e *jx.Encoder) { e.Float64(res.Value) })
		if op == domain.OperationHalving {
			e.Field("steps", func(e *jx.Encoder) { e.Int(res.Steps) })
		}
		if res.Exact != "" {
			e.Field("exact", func(e *jx.Encoder) { e.Str(res.Exact) })
		}
		if res.ValueOverflow {
			e.Field("valueOverflow", func(e *jx.Encoder) { e.Bool(true) })
		}
	})
}
