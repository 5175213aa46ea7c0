package dashboard

import (
	"github.com/de-tools/retail-dashboard/pkg/models/domain"
)

const (
	PageTitle          = "Retail Sales Dashboard"
	ChartTitle         = "Sales Summary by Product"
	SaleSeriesName     = "Sales Amount ($)"
	QuantitySeriesName = "Quantity Sold"
)

// ChartViewModel is the chart-ready form of the summary rows. Labels,
// SaleAmounts and Quantities are parallel and share the order of the input rows.
type ChartViewModel struct {
	Title       string
	Labels      []string
	SaleAmounts []float64
	Quantities  []int64
}

func (c ChartViewModel) Len() int {
	return len(c.Labels)
}

type MetricCards struct {
	TotalRevenue   string
	TotalItemsSold string
	TotalProducts  string
}

type TableRow struct {
	ProductID    string
	QuantitySold string
	TotalSales   string
}

// Page is everything a renderer needs for one display session
type Page struct {
	SessionID    string
	Title        string
	Cards        *MetricCards // nil while metrics are not loaded
	Chart        ChartViewModel
	Rows         []TableRow
	SummaryState domain.SourceState
	MetricsState domain.SourceState
}

// BuildChart labels each row "Product <id>" and lines up both series with the labels.
func BuildChart(rows []domain.SalesSummaryRow) ChartViewModel {
	vm := ChartViewModel{
		Title:       ChartTitle,
		Labels:      make([]string, 0, len(rows)),
		SaleAmounts: make([]float64, 0, len(rows)),
		Quantities:  make([]int64, 0, len(rows)),
	}

	for _, row := range rows {
		vm.Labels = append(vm.Labels, ProductLabel(row.ProductID))
		vm.SaleAmounts = append(vm.SaleAmounts, row.TotalSaleAmount.InexactFloat64())
		vm.Quantities = append(vm.Quantities, row.TotalQuantity)
	}

	return vm
}

// BuildCards returns nil when metrics are not loaded, so the section is left out.
func BuildCards(metrics *domain.SalesMetrics) *MetricCards {
	if metrics == nil {
		return nil
	}
	return &MetricCards{
		TotalRevenue:   FormatCurrency(metrics.TotalRevenue),
		TotalItemsSold: FormatCount(metrics.TotalItemsSold),
		TotalProducts:  FormatCount(metrics.TotalProducts),
	}
}

// BuildTable formats the summary rows for the detailed table.
func BuildTable(rows []domain.SalesSummaryRow) []TableRow {
	table := make([]TableRow, 0, len(rows))
	for _, row := range rows {
		table = append(table, TableRow{
			ProductID:    FormatCount(row.ProductID),
			QuantitySold: FormatCount(row.TotalQuantity),
			TotalSales:   FormatCurrency(row.TotalSaleAmount),
		})
	}
	return table
}

// BuildPage derives the display-ready page from the session state. It is pure
// and cheap enough to run on every render.
func BuildPage(dash *domain.Dashboard) Page {
	if dash == nil {
		dash = domain.NewDashboard("")
	}

	return Page{
		SessionID:    dash.SessionID,
		Title:        PageTitle,
		Cards:        BuildCards(dash.Metrics),
		Chart:        BuildChart(dash.Summary),
		Rows:         BuildTable(dash.Summary),
		SummaryState: dash.SummaryState,
		MetricsState: dash.MetricsState,
	}
}
