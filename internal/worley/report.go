package worley

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteHistogramHTML renders a standalone HTML bar chart of the volume's
// value distribution using go-echarts. Handy for eyeballing how much of the
// field sits near the feature points and how far the unclamped tail reaches
// below zero.
func WriteHistogramHTML(v *Volume, path string, bins int) error {
	if bins <= 0 {
		bins = HistBins
	}
	s := Summarize(v)
	span := s.Max - s.Min
	if span == 0 {
		span = 1 // constant volume, single occupied bin
	}
	width := span / float64(bins)

	counts := make([]int, bins)
	for _, b := range v.Buf {
		i := int((float64(b) - s.Min) / width)
		if i >= bins { // Max lands in the last bin
			i = bins - 1
		}
		counts[i]++
	}

	labels := make([]string, bins)
	data := make([]opts.BarData, bins)
	for i := 0; i < bins; i++ {
		labels[i] = fmt.Sprintf("%.3f", s.Min+(float64(i)+0.5)*width)
		data[i] = opts.BarData{Value: counts[i]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Worley noise histogram", Theme: "dark", Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Worley noise value distribution",
			Subtitle: s.String(),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "voxels"}),
	)
	bar.SetXAxis(labels).AddSeries("voxels", data)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return bar.Render(f)
}
