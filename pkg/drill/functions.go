package drill

import (
	"slices"
	"unicode/utf8"
)

// Number is the set of numeric types accepted by the generic helpers.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// DivisibleByThree reports whether n is a multiple of three.
func DivisibleByThree(n int) bool {
	return n%3 == 0
}

// Add returns x + y.
func Add[T Number](x, y T) T {
	return x + y
}

// SortBySecondChar returns a copy of words stably sorted by their second rune.
// Words shorter than two runes sort first, keeping their relative order.
func SortBySecondChar(words []string) []string {
	out := slices.Clone(words)
	slices.SortStableFunc(out, func(a, b string) int {
		return secondRune(a) - secondRune(b)
	})

	return out
}

func secondRune(s string) int {
	_, size := utf8.DecodeRuneInString(s)
	if size == 0 || size == len(s) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(s[size:])

	return int(r)
}

// SquareAll returns a new slice holding the square of every element.
func SquareAll[T Number](values []T) []T {
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = v * v
	}

	return out
}
