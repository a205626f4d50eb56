// Package drill contains the answer key for the arithmetic practice drills.
//
// The two central routines are RepeatedHalving, which halves a value until it
// drops to or below HalvingThreshold, and RepeatedExponentiation, which
// collapses base^(exponent^repeat) into a single power. Both are pure and safe
// to call from any goroutine.
//
// The remaining helpers (DivisibleByThree, SortBySecondChar, FirstHalf, ...)
// answer the sibling exercises and are collected by AnswerKey.
package drill
