package v1handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"drills/internal/api/handler/v1handler"
	mockevaluator "drills/internal/evaluator/mock"
	"drills/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testAPI struct {
	mux       *http.ServeMux
	evaluator *mockevaluator.MockEvaluator
	userID    domain.UserID
	token     string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	priv, pubPEM := genRSAKeys(t)
	sec := newSecHandlerForTest(t, pubPEM)

	ctrl := gomock.NewController(t)
	ev := mockevaluator.NewMockEvaluator(ctrl)

	mux := http.NewServeMux()
	v1handler.New(v1handler.Deps{Evaluator: ev}).Register(mux, sec)

	uid := uuid.New()
	now := time.Now()

	return &testAPI{
		mux:       mux,
		evaluator: ev,
		userID:    domain.UserID(uid),
		token:     signJWTRS256(t, priv, uid.String(), now, now.Add(time.Hour)),
	}
}

func (a *testAPI) do(t *testing.T, method, target, body string, authenticated bool) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	rec := httptest.NewRecorder()
	a.mux.ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()
	out, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res.StatusCode, string(out)
}
