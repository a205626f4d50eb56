package drill

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Answer is a single entry of the answer key.
type Answer struct {
	// Topic groups answers, e.g. "recursion" or "string slicing".
	Topic string
	// Question is a short description of what was asked.
	Question string
	// Value is the computed answer, already formatted for display.
	Value string
}

const (
	loremIpsum   = "loremipsumdolorsitamet"
	digitString  = "28393745129381"
	tongueTwist  = "Oh what a to-do to die today at a minute or two 'till two."
	exactMaxBits = 1 << 10
)

// AnswerKey returns the answers to every drill in a stable order.
func AnswerKey() []Answer {
	halved, steps := Halve(168923)

	exact, err := ExactRepeatedExponentiation(big.NewInt(2), big.NewInt(4), 3, exactMaxBits)
	exactStr := ""
	if err == nil {
		exactStr = exact.String()
	}

	evens := make([]string, 0, 50)
	for n := 0; n < 100; n++ {
		if n%2 == 0 {
			evens = append(evens, fmt.Sprint(n))
		}
	}

	strLen, _ := Length(tongueTwist)
	listLen, _ := Length([]float64{1, 2, 3, 55, 13.02})

	return []Answer{
		{"recursion", "halve 16 until <= 10", fmt.Sprint(RepeatedHalving(16))},
		{"recursion", "halve 168923 until <= 10", fmt.Sprintf("%v (%d halvings)", halved, steps)},
		{"functions", "exponentiate(2, 4)", fmt.Sprint(Exponentiate(2, 4))},
		{"functions", "exponentiate(2, 4, 3)", fmt.Sprintf("%g = %s", RepeatedExponentiation(2, 4, 3), exactStr)},
		{"functions", "9 divisible by three", fmt.Sprint(DivisibleByThree(9))},
		{"functions", "10 divisible by three", fmt.Sprint(DivisibleByThree(10))},
		{"lambdas", "add(3, 4)", fmt.Sprint(Add(3, 4))},
		{"lambdas", "sort spam, eggs, ham by second letter",
			strings.Join(SortBySecondChar([]string{"spam", "eggs", "ham"}), ", ")},
		{"lambdas", "square 2, 19, 3, 12, 44, 32, 12.5",
			fmt.Sprint(SquareAll([]float64{2, 19, 3, 12, 44, 32, 12.5}))},
		{"string slicing", "first half of " + loremIpsum, FirstHalf(loremIpsum)},
		{"string slicing", "every third letter of " + loremIpsum, EveryThird(loremIpsum)},
		{"string slicing", "odd digits of " + digitString, OddDigits(digitString)},
		{"polymorphism", "length of a sentence", fmt.Sprint(strLen)},
		{"polymorphism", "length of a list", fmt.Sprint(listLen)},
		{"polymorphism", "40 with five decimals", fmt.Sprintf("%.5f", 40.0)},
		{"operator precedence", "2^5 - 17 - ((20 + 1) * 2) / 1",
			fmt.Sprint(math.Pow(2, 5) - 17 - ((20+1)*2)/1)},
		{"operator precedence", "3^(3 - 1) + 2", fmt.Sprint(math.Pow(3, 3-1) + 2)},
		{"operator precedence", "even numbers below 100", strings.Join(evens, " ")},
		{"arithmetic", "9 + (13 - 20) + 2", fmt.Sprint(9 + (13 - 20) + 2)},
		{"arithmetic", "9 x 9", fmt.Sprint(9 * 9)},
		{"arithmetic", "2^4 - 15", fmt.Sprint(math.Pow(2, 4) - 15)},
	}
}
