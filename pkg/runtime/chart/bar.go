package chart

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"math"
	"strconv"

	"github.com/de-tools/retail-dashboard/pkg/services/dashboard"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	SaleColor     = drawing.Color{R: 53, G: 162, B: 235, A: 128}
	QuantityColor = drawing.Color{R: 75, G: 192, B: 192, A: 128}
)

type Config struct {
	Height     int
	MinWidth   int
	BarWidth   int
	BarSpacing int
}

func DefaultConfig() Config {
	return Config{
		Height:     400,
		MinWidth:   640,
		BarWidth:   60,
		BarSpacing: 20,
	}
}

type Renderer struct {
	config Config
}

func NewRenderer(config Config) *Renderer {
	return &Renderer{config: config}
}

// RenderSVG draws the sale and quantity series as grouped bars, one group per
// label. An empty view model renders a placeholder with the same size.
func (r *Renderer) RenderSVG(w io.Writer, vm dashboard.ChartViewModel) error {
	if vm.Len() == 0 {
		return r.renderEmpty(w, vm.Title)
	}

	bars := make([]gochart.Value, 0, 2*vm.Len())
	maxValue := 0.0
	for i, label := range vm.Labels {
		sale := vm.SaleAmounts[i]
		qty := float64(vm.Quantities[i])
		maxValue = math.Max(maxValue, math.Max(sale, qty))

		bars = append(bars,
			gochart.Value{Label: label, Value: sale, Style: barStyle(SaleColor)},
			gochart.Value{Label: " ", Value: qty, Style: barStyle(QuantityColor)},
		)
	}

	graph := gochart.BarChart{
		Title:      vm.Title,
		Height:     r.config.Height,
		Width:      r.width(len(bars)),
		BarWidth:   r.config.BarWidth,
		BarSpacing: r.config.BarSpacing,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis: gochart.YAxis{
			// bars start at zero, whatever the data
			Range:          &gochart.ContinuousRange{Min: 0, Max: niceMax(maxValue)},
			ValueFormatter: func(v interface{}) string { return formatTick(v) },
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.SVG, &buf); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) width(bars int) int {
	w := bars*(r.config.BarWidth+r.config.BarSpacing) + 120
	if w < r.config.MinWidth {
		return r.config.MinWidth
	}
	return w
}

func (r *Renderer) renderEmpty(w io.Writer, title string) error {
	_, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d"><text x="50%%" y="24" text-anchor="middle" font-family="sans-serif" font-size="16">%s</text><line x1="40" y1="%d" x2="%d" y2="%d" stroke="#ccc"/></svg>`,
		r.config.MinWidth, r.config.Height, html.EscapeString(title),
		r.config.Height-30, r.config.MinWidth-16, r.config.Height-30,
	)
	return err
}

func barStyle(c drawing.Color) gochart.Style {
	return gochart.Style{
		FillColor:   c,
		StrokeColor: c,
		StrokeWidth: 1,
	}
}

// niceMax rounds the top of the axis up to 1, 2 or 5 times a power of ten.
func niceMax(v float64) float64 {
	if v <= 0 {
		return 1
	}
	exp := math.Pow(10, math.Floor(math.Log10(v)))
	for _, m := range []float64{1, 2, 5, 10} {
		if v <= m*exp {
			return m * exp
		}
	}
	return 10 * exp
}

func formatTick(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}
