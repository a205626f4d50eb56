package drill

// FirstHalf returns the first len/2 runes of s.
func FirstHalf(s string) string {
	r := []rune(s)

	return string(r[:len(r)/2])
}

// EveryThird returns every third rune of s starting with the first one.
func EveryThird(s string) string {
	r := []rune(s)
	out := make([]rune, 0, len(r)/3+1)
	for i := 0; i < len(r); i += 3 {
		out = append(out, r[i])
	}

	return string(out)
}

// OddDigits keeps only the odd decimal digits of s, in order. Any other rune is
// dropped.
func OddDigits(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' && (r-'0')%2 == 1 {
			out = append(out, r)
		}
	}

	return string(out)
}
