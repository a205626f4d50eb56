package drill

import (
	"errors"
	"fmt"
	"reflect"
	"unicode/utf8"
)

// ErrNoLength is returned by Length for values that have no notion of length.
var ErrNoLength = errors.New("value has no length")

// Length reports the length of v the way a generic len would: runes for
// strings, elements for slices, arrays and channels, and entries for maps.
func Length(v any) (int, error) {
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() { //nolint: exhaustive
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrNoLength, v)
	}
}
