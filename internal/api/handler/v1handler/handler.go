// Package v1handler implements the v1 HTTP API: stateless drill endpoints and
// the authenticated evaluations resource.
package v1handler

import (
	"context"
	"drills/internal/evaluator"
	"drills/pkg/logger"
	"drills/pkg/serrors"
	"errors"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the services the handlers call into.
type Deps struct {
	Evaluator evaluator.Evaluator
}

// Handler serves the v1 routes.
type Handler struct {
	deps Deps
}

// New returns a Handler using deps.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts the v1 routes on mux. Evaluation routes require a bearer
// token checked by sec.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	mux.HandleFunc("GET /v1/halving", h.Halving)
	mux.HandleFunc("GET /v1/exponentiation", h.Exponentiation)

	mux.HandleFunc("POST /v1/evaluations", h.secured(sec, h.CreateEvaluation))
	mux.HandleFunc("GET /v1/evaluations", h.secured(sec, h.ListEvaluations))
	mux.HandleFunc("GET /v1/evaluations/{id}", h.secured(sec, h.GetEvaluation))
	mux.HandleFunc("DELETE /v1/evaluations/{id}", h.secured(sec, h.DeleteEvaluation))
}

func (h *Handler) secured(sec *SecHandler, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, err := sec.Authenticate(r)
		if err != nil {
			h.writeError(r.Context(), w, err)

			return
		}

		next(w, r.WithContext(ctx))
	}
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Code    string
	Message string
}

// Encode writes the response as a JSON object.
func (e ErrorResponse) Encode(enc *jx.Encoder) {
	enc.Obj(func(enc *jx.Encoder) {
		enc.Field("code", func(enc *jx.Encoder) { enc.Str(e.Code) })
		enc.Field("message", func(enc *jx.Encoder) { enc.Str(e.Message) })
	})
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

type errorMapping struct {
	status         int
	defaultMessage string
}

//nolint: gochecknoglobals
var errorMappings = map[serrors.Kind]errorMapping{
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
	serrors.ErrOverflow:     {http.StatusUnprocessableEntity, "result cannot be represented"},
}

// NewError maps err to a status code and body. Errors without a semantic
// kind, and internal errors, are reported as 500 without details.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	mapping, ok := errorMappings[kind]
	if kind == nil || !ok {
		logger.Error(ctx, "internal error", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response: ErrorResponse{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	logger.Debug(ctx, "request failed", zap.Error(err))

	msg := serrors.MessageOf(err)
	if msg == "" {
		msg = mapping.defaultMessage
	}

	return &ErrorStatusCode{
		StatusCode: mapping.status,
		Response: ErrorResponse{
			Code:    kind.Error(),
			Message: msg,
		},
	}
}

func (h Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	res := h.NewError(ctx, err)
	writeJSON(ctx, w, res.StatusCode, res.Response.Encode)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, encode func(*jx.Encoder)) {
	enc := jx.GetEncoder()
	defer jx.PutEncoder(enc)

	encode(enc)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(enc.Bytes()); err != nil && !errors.Is(err, http.ErrHandlerTimeout) {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}
