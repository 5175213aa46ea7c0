package export

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/de-tools/retail-dashboard/pkg/services/dashboard"
	"github.com/fatih/color"
)

type TableConfig struct {
	ProductWidth  int
	QuantityWidth int
	TotalWidth    int
	LabelWidth    int
	BarWidth      int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		ProductWidth:  12,
		QuantityWidth: 14,
		TotalWidth:    16,
		LabelWidth:    14,
		BarWidth:      40,
	}
}

const reportTemplate = `
{{ heading .Title }}
{{ repeat (len .Title) "=" }}
Session: {{ .SessionID | trunc 8 | default "n/a" }}
{{ with .Cards }}
{{ heading "Metrics" }}
  Total Revenue:    {{ .TotalRevenue }}
  Total Items Sold: {{ .TotalItemsSold }}
  Total Products:   {{ .TotalProducts }}
{{ end }}
{{ heading .Chart.Title }}
{{ legend }}
{{ range $i, $label := .Chart.Labels }}{{ chartRow $label (index $.Chart.SaleAmounts $i) (index $.Chart.Quantities $i) }}
{{ end }}
{{ heading "Detailed Sales Summary" }}
{{ separator }}
{{ formatRow "Product ID" "Quantity Sold" "Total Sales" }}
{{ separator }}
{{ range .Rows }}{{ formatRow .ProductID .QuantitySold .TotalSales }}
{{ end }}{{ separator }}
`

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// Handle writes one display session as a terminal report. The metrics block
// is left out entirely when the page has no cards.
func (c *Reporter) Handle(page dashboard.Page) error {
	headingColor := color.New(color.FgCyan, color.Bold)
	saleColor := color.New(color.FgBlue)
	quantityColor := color.New(color.FgGreen)

	maxSale, maxQuantity := seriesMax(page.Chart)

	funcMap := sprig.TxtFuncMap()
	funcMap["heading"] = func(s string) string {
		return headingColor.Sprint(s)
	}
	funcMap["legend"] = func() string {
		return fmt.Sprintf("%s %s   %s %s",
			saleColor.Sprint("#"), dashboard.SaleSeriesName,
			quantityColor.Sprint("#"), dashboard.QuantitySeriesName)
	}
	funcMap["chartRow"] = func(label string, sale float64, quantity int64) string {
		return fmt.Sprintf("%-*s %s %.2f\n%-*s %s %d",
			c.config.LabelWidth, label,
			saleColor.Sprint(bar(sale, maxSale, c.config.BarWidth)), sale,
			c.config.LabelWidth, "",
			quantityColor.Sprint(bar(float64(quantity), float64(maxQuantity), c.config.BarWidth)), quantity)
	}
	funcMap["formatRow"] = func(product, quantity, total string) string {
		return fmt.Sprintf("| %-*s | %*s | %*s |",
			c.config.ProductWidth, product,
			c.config.QuantityWidth, quantity,
			c.config.TotalWidth, total)
	}
	funcMap["separator"] = func() string {
		return fmt.Sprintf("+%s+%s+%s+",
			strings.Repeat("-", c.config.ProductWidth+2),
			strings.Repeat("-", c.config.QuantityWidth+2),
			strings.Repeat("-", c.config.TotalWidth+2))
	}

	t, err := template.New("report").Funcs(funcMap).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, page)
}

func seriesMax(vm dashboard.ChartViewModel) (float64, int64) {
	var maxSale float64
	var maxQuantity int64
	for i := range vm.Labels {
		maxSale = math.Max(maxSale, vm.SaleAmounts[i])
		if vm.Quantities[i] > maxQuantity {
			maxQuantity = vm.Quantities[i]
		}
	}
	return maxSale, maxQuantity
}

// bar scales value against max into at most width cells. Non-positive values
// draw nothing.
func bar(value, max float64, width int) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	n := int(math.Round(value / max * float64(width)))
	if n < 1 {
		n = 1
	}
	return strings.Repeat("#", n)
}
