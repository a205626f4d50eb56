package drill

import "math"

// HalvingThreshold is the value at or below which RepeatedHalving stops.
const HalvingThreshold = 10

// RepeatedHalving divides value by two while it is strictly greater than
// HalvingThreshold and returns the first value at or below it.
//
// Values already at or below the threshold, including zero, negative numbers
// and NaN, are returned unchanged. +Inf never shrinks and is returned as is.
func RepeatedHalving(value float64) float64 {
	res, _ := halve(value, 0)

	return res
}

// HalvingSteps reports how many halvings RepeatedHalving performs for value.
func HalvingSteps(value float64) int {
	_, steps := halve(value, 0)

	return steps
}

// Halve returns both the halved value and the number of halvings applied.
func Halve(value float64) (float64, int) {
	return halve(value, 0)
}

// halve recurses at most ~1024 times for finite float64 inputs.
func halve(value float64, steps int) (float64, int) {
	if !(value > HalvingThreshold) || math.IsInf(value, 1) {
		return value, steps
	}

	return halve(value/2, steps+1)
}
