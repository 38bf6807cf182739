package worley

import (
	"math"
)

func isFinite(x Real) bool {
	f := float64(x)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func sqrt(x Real) Real { return Real(math.Sqrt(float64(x))) }

// mapValue linearly remaps value from [oldMin, oldMax] to [newMin, newMax].
// No clamping: inputs outside the old range map outside the new one.
func mapValue(value, oldMin, oldMax, newMin, newMax Real) Real {
	return newMin + (value-oldMin)*(newMax-newMin)/(oldMax-oldMin)
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
