package v1handler

import (
	"drills/pkg/domain"
	"drills/pkg/serrors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// MaxBodyBytes bounds the size of request bodies.
const MaxBodyBytes = 1 << 16

// CreateEvaluationRequest is the body of POST /v1/evaluations.
type CreateEvaluationRequest struct {
	Input domain.EvaluationInput
	// Async queues the evaluation for the worker instead of computing it inline.
	Async bool
}

// Decode reads the request from d. A missing repeat defaults to DefaultRepeat
// for exponentiation.
func (req *CreateEvaluationRequest) Decode(d *jx.Decoder) error {
	req.Input.Repeat = DefaultRepeat

	if err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "operation":
			var op string
			op, err = d.Str()
			req.Input.Operation = domain.Operation(op)
		case "value":
			req.Input.Value, err = d.Float64()
		case "base":
			req.Input.Base, err = d.Float64()
		case "exponent":
			req.Input.Exponent, err = d.Float64()
		case "repeat":
			var repeat int
			repeat, err = d.Int()
			if err == nil && repeat < 0 {
				err = errors.New("must not be negative")
			}
			req.Input.Repeat = uint(repeat) //nolint: gosec
		case "exact":
			req.Input.Exact, err = d.Bool()
		case "async":
			req.Async, err = d.Bool()
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "decode %q", key)
		}

		return nil
	}); err != nil {
		return err
	}

	if req.Input.Operation != domain.OperationExponentiation {
		req.Input.Repeat = 0
	}

	return nil
}

func decodeCreateEvaluationRequest(w http.ResponseWriter, r *http.Request) (*CreateEvaluationRequest, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}

	var req CreateEvaluationRequest
	if err := req.Decode(jx.DecodeBytes(body)); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return &req, nil
}

func encodeInput(e *jx.Encoder, in domain.EvaluationInput) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("operation", func(e *jx.Encoder) { e.Str(string(in.Operation)) })
		switch in.Operation {
		case domain.OperationHalving:
			e.Field("value", func(e *jx.Encoder) { e.Float64(in.Value) })
		case domain.OperationExponentiation:
			e.Field("base", func(e *jx.Encoder) { e.Float64(in.Base) })
			e.Field("exponent", func(e *jx.Encoder) { e.Float64(in.Exponent) })
			e.Field("repeat", func(e *jx.Encoder) { e.UInt64(uint64(in.Repeat)) })
			e.Field("exact", func(e *jx.Encoder) { e.Bool(in.Exact) })
		}
	})
}

// EncodeEvaluation writes ev as a JSON object. The result is only present
// once the evaluation completed.
func EncodeEvaluation(e *jx.Encoder, ev *domain.Evaluation) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(ev.ID.String()) })
		e.Field("status", func(e *jx.Encoder) { e.Str(string(ev.Status)) })
		e.Field("input", func(e *jx.Encoder) { encodeInput(e, ev.Input) })
		if ev.Status == domain.EvaluationStatusCompleted {
			e.Field("result", func(e *jx.Encoder) { encodeResult(e, ev.Input.Operation, ev.Result) })
		}
		e.Field("attempts", func(e *jx.Encoder) { e.UInt64(uint64(ev.Attempts)) })
		if ev.LastError != "" {
			e.Field("lastError", func(e *jx.Encoder) { e.Str(ev.LastError) })
		}
		e.Field("createdAt", func(e *jx.Encoder) { e.Str(ev.CreatedAt.Format(time.RFC3339Nano)) })
		if !ev.UpdatedAt.IsZero() {
			e.Field("updatedAt", func(e *jx.Encoder) { e.Str(ev.UpdatedAt.Format(time.RFC3339Nano)) })
		}
	})
}

// CreateEvaluation computes or queues an evaluation for the caller.
func (h Handler) CreateEvaluation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := decodeCreateEvaluationRequest(w, r)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	status := http.StatusCreated
	var ev *domain.Evaluation
	if req.Async {
		status = http.StatusAccepted
		ev, err = h.deps.Evaluator.Enqueue(ctx, GetUserIDFromContext(ctx), req.Input)
	} else {
		ev, err = h.deps.Evaluator.Evaluate(ctx, GetUserIDFromContext(ctx), req.Input)
	}
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	w.Header().Set("Location", "/v1/evaluations/"+ev.ID.String())
	writeJSON(ctx, w, status, func(e *jx.Encoder) { EncodeEvaluation(e, ev) })
}

// ListEvaluations returns a page of the caller's evaluations.
func (h Handler) ListEvaluations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	var limit uint64
	if raw := query.Get("limit"); raw != "" {
		var err error
		if limit, err = strconv.ParseUint(raw, 10, 32); err != nil {
			h.writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "limit must be a non-negative integer"))

			return
		}
	}

	items, next, err := h.deps.Evaluator.UserEvaluations(ctx,
		GetUserIDFromContext(ctx),
		domain.EvaluationStatus(query.Get("status")),
		query.Get("cursor"),
		uint(limit))
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("items", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for i := range items {
						EncodeEvaluation(e, &items[i])
					}
				})
			})
			e.Field("nextCursor", func(e *jx.Encoder) {
				if next == "" {
					e.Null()

					return
				}
				e.Str(next)
			})
		})
	})
}

// GetEvaluation returns one of the caller's evaluations.
func (h Handler) GetEvaluation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := evaluationID(r)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	ev, err := h.deps.Evaluator.Result(ctx, GetUserIDFromContext(ctx), id)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, func(e *jx.Encoder) { EncodeEvaluation(e, ev) })
}

// DeleteEvaluation deletes one of the caller's evaluations.
func (h Handler) DeleteEvaluation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := evaluationID(r)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	if err := h.deps.Evaluator.Delete(ctx, GetUserIDFromContext(ctx), id); err != nil {
		h.writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func evaluationID(r *http.Request) (domain.EvaluationID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return domain.EvaluationID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid evaluation id")
	}

	return domain.EvaluationID(id), nil
}
