package tsfeatures

import (
	"math"
	"time"

	"github.com/aouyang1/go-tsfeatures/feature"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineTSeries generates an echart multi-line chart for some arbitrary time/value combination. The input
// y is a slice of series that must have the same length as the input time slice. NaN values from
// short lag lookbacks are skipped.
func LineTSeries(title string, seriesName []string, t []time.Time, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	lineData := make([][]opts.LineData, len(y))

	filteredT := make([]time.Time, 0, len(t))
	for i := 0; i < len(y); i++ {
		lineData[i] = make([]opts.LineData, 0, len(y[i]))
		for j := 0; j < len(y[i]); j++ {
			if math.IsNaN(y[i][j]) {
				continue
			}
			if i == 0 {
				filteredT = append(filteredT, t[j])
			}
			lineData[i] = append(lineData[i], opts.LineData{Value: y[i][j]})
		}
	}

	line = line.SetXAxis(filteredT)
	for i, series := range seriesName {
		line = line.AddSeries(series, lineData[i])
	}

	return line
}

// LineFeatures generates an echart line chart plotting every column of a
// feature set against time in sorted label order.
func LineFeatures(title string, t []time.Time, feats feature.Set) *charts.Line {
	labels := feats.Labels()
	if labels == nil {
		return LineTSeries(title, nil, t, nil)
	}

	names := make([]string, 0, labels.Len())
	y := make([][]float64, 0, labels.Len())
	for _, label := range labels.Labels() {
		names = append(names, label.String())
		y = append(y, feats[label.String()].Data)
	}
	return LineTSeries(title, names, t, y)
}
