package linear

import "math"

// percentile reads the value at quantile k from an ascending sequence.
//
// The rule is fixed by the confidence-interval contract and is neither
// nearest-rank nor true linear interpolation: with index = n*k, an integer
// index selects the element at 1-based position index, and a fractional
// index averages the elements at 0-based positions floor(index)-1 and
// floor(index). Lookups use drop-then-head semantics, so a negative
// position reads the first element and a position past the end reports no
// value. Changing any of this moves the observable interval bounds.
func percentile(k float64, sorted []float64) (float64, bool) {
	index := float64(len(sorted)) * k
	if index == math.Floor(index) {
		return elementAt(sorted, int(index)-1)
	}

	low, okLow := elementAt(sorted, int(math.Floor(index))-1)
	high, okHigh := elementAt(sorted, int(math.Floor(index)))
	if !okLow || !okHigh {
		return 0, false
	}

	return (low + high) / 2, true
}

// elementAt reads the element at 0-based position i with drop-then-head
// semantics: negative positions clamp to 0, positions at or past the end
// have no value.
func elementAt(values []float64, i int) (float64, bool) {
	if i >= len(values) || len(values) == 0 {
		return 0, false
	}
	if i < 0 {
		i = 0
	}

	return values[i], true
}
