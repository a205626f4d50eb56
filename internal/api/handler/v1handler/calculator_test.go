package v1handler_test

import (
	"net/http"
	"testing"

	"drills/pkg/domain"
	"drills/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHalving(t *testing.T) {
	api := newTestAPI(t)

	api.evaluator.EXPECT().
		Compute(gomock.Any(), domain.EvaluationInput{Operation: domain.OperationHalving, Value: 16}).
		Return(domain.EvaluationResult{Value: 8, Steps: 1}, nil)

	status, body := api.do(t, http.MethodGet, "/v1/halving?value=16", "", false)
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"value":8,"steps":1}`, body)
}

func TestHalving_BadQuery(t *testing.T) {
	api := newTestAPI(t)

	for _, target := range []string{"/v1/halving", "/v1/halving?value=abc"} {
		status, body := api.do(t, http.MethodGet, target, "", false)
		require.Equal(t, http.StatusBadRequest, status, target)
		require.Contains(t, body, `"code":"BAD_REQUEST"`)
	}
}

func TestExponentiation(t *testing.T) {
	tests := []struct {
		name   string
		target string
		input  domain.EvaluationInput
		result domain.EvaluationResult
		want   string
	}{
		{
			name:   "default repeat",
			target: "/v1/exponentiation?base=2&exponent=4",
			input:  domain.EvaluationInput{Operation: domain.OperationExponentiation, Base: 2, Exponent: 4, Repeat: 1},
			result: domain.EvaluationResult{Value: 16},
			want:   `{"value":16}`,
		},
		{
			name:   "exact",
			target: "/v1/exponentiation?base=2&exponent=4&exact=true",
			input: domain.EvaluationInput{
				Operation: domain.OperationExponentiation, Base: 2, Exponent: 4, Repeat: 1, Exact: true,
			},
			result: domain.EvaluationResult{Value: 16, Exact: "16"},
			want:   `{"value":16,"exact":"16"}`,
		},
		{
			name:   "repeat zero",
			target: "/v1/exponentiation?base=3&exponent=9&repeat=0",
			input:  domain.EvaluationInput{Operation: domain.OperationExponentiation, Base: 3, Exponent: 9},
			result: domain.EvaluationResult{Value: 3},
			want:   `{"value":3}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.evaluator.EXPECT().Compute(gomock.Any(), tt.input).Return(tt.result, nil)

			status, body := api.do(t, http.MethodGet, tt.target, "", false)
			require.Equal(t, http.StatusOK, status)
			require.JSONEq(t, tt.want, body)
		})
	}
}

func TestExponentiation_Overflow(t *testing.T) {
	api := newTestAPI(t)

	api.evaluator.EXPECT().Compute(gomock.Any(), gomock.Any()).
		Return(domain.EvaluationResult{}, serrors.With(serrors.ErrOverflow, "result overflows float64"))

	status, body := api.do(t, http.MethodGet, "/v1/exponentiation?base=10&exponent=400", "", false)
	require.Equal(t, http.StatusUnprocessableEntity, status)
	require.JSONEq(t, `{"code":"OVERFLOW","message":"result overflows float64"}`, body)
}

func TestExponentiation_BadQuery(t *testing.T) {
	api := newTestAPI(t)

	for _, target := range []string{
		"/v1/exponentiation?base=2",
		"/v1/exponentiation?base=2&exponent=4&repeat=-1",
		"/v1/exponentiation?base=2&exponent=4&exact=maybe",
	} {
		status, _ := api.do(t, http.MethodGet, target, "", false)
		require.Equal(t, http.StatusBadRequest, status, target)
	}
}
