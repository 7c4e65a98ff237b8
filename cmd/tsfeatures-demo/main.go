// Command tsfeatures-demo featurizes a simulated hourly load series and
// renders the generated columns to an HTML page of echarts.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tsfeatures "github.com/aouyang1/go-tsfeatures"
	"github.com/aouyang1/go-tsfeatures/timedataset"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/goccy/go-json"
)

func main() {
	out := flag.String("out", "tsfeatures-demo.html", "output HTML file")
	weeks := flag.Int("weeks", 104, "number of weeks of hourly data to simulate")
	flag.Parse()

	if err := run(*out, *weeks); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out string, weeks int) error {
	n := weeks * 7 * 24
	t := timedataset.GenerateT(n, time.Hour, time.Now)

	y := timedataset.GenerateConstY(n, 40.0).
		Add(timedataset.GenerateWaveY(t, 8.0, 86400.0, 1.0, 0.0)).
		Add(timedataset.GenerateWaveY(t, 3.0, 7*86400.0, 1.0, 0.0)).
		Add(timedataset.GenerateNoise(t, 1.0, 0.5, 86400.0, 1.0, 0.0))

	opt := tsfeatures.NewDefaultOptions()
	opt.MovingAverage = &tsfeatures.MovingWindowOptions{
		WindowSize: 1,
		StartWeek:  1,
		Count:      3,
	}

	feats, err := tsfeatures.New(opt).Generate(t, y, nil, t[len(t)-1])
	if err != nil {
		return fmt.Errorf("unable to featurize simulated series, %w", err)
	}

	summary := struct {
		Options *tsfeatures.Options `json:"options"`
		Rows    int                 `json:"rows"`
		Columns []string            `json:"columns"`
	}{
		Options: opt,
		Rows:    n,
	}
	for _, label := range feats.Labels().Labels() {
		summary.Columns = append(summary.Columns, label.String())
	}
	bytes, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal feature summary, %w", err)
	}
	fmt.Println(string(bytes))

	page := components.NewPage()
	page.AddCharts(
		tsfeatures.LineTSeries("Simulated Load", []string{"y"}, t, [][]float64{y}),
		tsfeatures.LineFeatures("Generated Features", t, feats),
	)

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("unable to create output file, %w", err)
	}
	defer file.Close()

	return page.Render(io.MultiWriter(file))
}
