package serrors_test

import (
	"drills/pkg/serrors"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrOverflow,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("result is +Inf")

	e1 := serrors.With(serrors.ErrNotFound, "evaluation %d not found", 42)
	require.Equal(t, "evaluation 42 not found", e1.Error())

	e2 := serrors.Wrap(serrors.ErrOverflow, base, "exponentiation overflowed")
	require.Equal(t, "exponentiation overflowed: result is +Inf", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrBadRequest)
	require.Equal(t, "BAD_REQUEST", e3.Error())

	var nilErr *serrors.Error
	require.Equal(t, "<nil>", nilErr.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized)

	// still matches when wrapped by fmt
	require.ErrorIs(t, fmt.Errorf("could not get evaluation: %w", e), serrors.ErrNotFound)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(nil))
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrOverflow, serrors.KindOf(serrors.ErrOverflow))
	require.Equal(t, serrors.ErrBadRequest,
		serrors.KindOf(fmt.Errorf("outer: %w", serrors.With(serrors.ErrBadRequest, "bad operation"))))
}

func TestMessageOf(t *testing.T) {
	require.Empty(t, serrors.MessageOf(errors.New("plain")))
	require.Empty(t, serrors.MessageOf(serrors.KindOnly(serrors.ErrInternal)))

	inner := serrors.With(serrors.ErrBadRequest, "value must be finite")
	require.Equal(t, "value must be finite", serrors.MessageOf(fmt.Errorf("could not compute: %w", inner)))
	require.Equal(t, "value must be finite", serrors.MessageOf(serrors.Wrap(serrors.ErrBadRequest, inner, "")))
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}
