package chart

import (
	"bytes"
	"testing"

	"github.com/de-tools/retail-dashboard/pkg/services/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_RenderSVG(t *testing.T) {
	vm := dashboard.ChartViewModel{
		Title:       dashboard.ChartTitle,
		Labels:      []string{"Product 1", "Product 2"},
		SaleAmounts: []float64{199.5, 45},
		Quantities:  []int64{10, 3},
	}

	var buf bytes.Buffer
	err := NewRenderer(DefaultConfig()).RenderSVG(&buf, vm)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "Product")
	assert.Contains(t, out, dashboard.ChartTitle)
}

func TestRenderer_RenderSVG_AllZero(t *testing.T) {
	vm := dashboard.ChartViewModel{
		Title:       dashboard.ChartTitle,
		Labels:      []string{"Product 7"},
		SaleAmounts: []float64{0},
		Quantities:  []int64{0},
	}

	var buf bytes.Buffer
	err := NewRenderer(DefaultConfig()).RenderSVG(&buf, vm)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<svg")
}

func TestRenderer_RenderSVG_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(DefaultConfig()).RenderSVG(&buf, dashboard.BuildChart(nil))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, dashboard.ChartTitle)
	assert.NotContains(t, out, "<path")
}

func TestNiceMax(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0, 1},
		{-3, 1},
		{1, 1},
		{3, 5},
		{10, 10},
		{199.5, 200},
		{244.5, 500},
		{1200, 2000},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, niceMax(tt.input), 1e-9, "niceMax(%v)", tt.input)
	}
}

func TestRenderer_Width(t *testing.T) {
	r := NewRenderer(DefaultConfig())

	assert.Equal(t, 640, r.width(2))
	assert.Equal(t, 40*80+120, r.width(40))
}
