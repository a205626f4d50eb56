package drill

import (
	"errors"
	"math"
	"math/big"
)

var (
	// ErrNegativeExponent is returned by ExactRepeatedExponentiation when the
	// collapsed exponent is negative and the result would not be an integer.
	ErrNegativeExponent = errors.New("collapsed exponent is negative")
	// ErrResultTooLarge is returned by ExactRepeatedExponentiation when the
	// result would exceed the allowed number of bits.
	ErrResultTooLarge = errors.New("result exceeds the allowed size")
)

// Exponentiate raises base to exponent. It is RepeatedExponentiation with a
// repeat count of one.
func Exponentiate(base, exponent float64) float64 {
	return RepeatedExponentiation(base, exponent, 1)
}

// RepeatedExponentiation raises base to exponent, re-raising the result by the
// same exponent repeat times in total. ((b^e)^e)^e collapses to b^(e^repeat),
// so the closed form is computed directly with two calls to math.Pow.
//
// A repeat count of zero yields base. Overflow follows IEEE-754 and produces
// ±Inf.
func RepeatedExponentiation(base, exponent float64, repeat uint) float64 {
	return math.Pow(base, math.Pow(exponent, float64(repeat)))
}

// ExactRepeatedExponentiation is the arbitrary precision form of
// RepeatedExponentiation for integer operands. maxResultBits bounds the size of
// the result; inputs whose result would be larger return ErrResultTooLarge
// before any large allocation happens.
//
// base and exponent are never modified.
func ExactRepeatedExponentiation(base, exponent *big.Int, repeat uint, maxResultBits int) (*big.Int, error) {
	if repeat == 0 {
		return new(big.Int).Set(base), nil
	}

	// e^repeat keeps the sign of e only for odd repeat counts
	if exponent.Sign() < 0 && repeat%2 == 1 {
		return nil, ErrNegativeExponent
	}

	// 0^repeat == 0 and b^0 == 1
	if exponent.Sign() == 0 {
		return big.NewInt(1), nil
	}

	one := big.NewInt(1)
	if base.CmpAbs(one) <= 0 {
		// b in {-1, 0, 1}: parity of e^repeat equals parity of e
		if base.Sign() < 0 && exponent.Bit(0) == 0 {
			return big.NewInt(1), nil
		}

		return new(big.Int).Set(base), nil
	}

	// |e|^repeat >= 2^((bitlen-1)*repeat), which must fit in an uint64
	if bl := exponent.BitLen(); bl > 1 && repeat > uint(63/(bl-1)) {
		return nil, ErrResultTooLarge
	}

	collapsed := new(big.Int).Exp(new(big.Int).Abs(exponent), new(big.Int).SetUint64(uint64(repeat)), nil)
	if !collapsed.IsUint64() {
		return nil, ErrResultTooLarge
	}

	// |b|^e has at least (bitlen(b)-1)*e bits
	if maxResultBits <= 0 || collapsed.Uint64() > uint64(maxResultBits)/uint64(base.BitLen()-1) {
		return nil, ErrResultTooLarge
	}

	// the check above is a lower bound; the result can be up to bitlen(b)*e bits
	res := new(big.Int).Exp(base, collapsed, nil)
	if res.BitLen() > maxResultBits {
		return nil, ErrResultTooLarge
	}

	return res, nil
}
