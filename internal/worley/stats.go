package worley

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of values in a volume.
type Summary struct {
	Count    int
	Min, Max float64
	Mean     float64
	StdDev   float64
	Median   float64
	NegShare float64 // fraction of voxels below zero (the remap is unclamped)
}

// Summarize computes distribution statistics over the whole buffer.
func Summarize(v *Volume) Summary {
	vals := make([]float64, len(v.Buf))
	neg := 0
	for i, b := range v.Buf {
		vals[i] = float64(b)
		if b < 0 {
			neg++
		}
	}
	sort.Float64s(vals)

	mean, std := stat.MeanStdDev(vals, nil)
	return Summary{
		Count:    len(vals),
		Min:      vals[0],
		Max:      vals[len(vals)-1],
		Mean:     mean,
		StdDev:   std,
		Median:   stat.Quantile(0.5, stat.Empirical, vals, nil),
		NegShare: float64(neg) / float64(len(vals)),
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("voxels=%d min=%.4f max=%.4f mean=%.4f stddev=%.4f median=%.4f neg=%.2f%%",
		s.Count, s.Min, s.Max, s.Mean, s.StdDev, s.Median, s.NegShare*100)
}
