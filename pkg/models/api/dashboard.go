package api

type Chart struct {
	Title       string    `json:"title"`
	Labels      []string  `json:"labels"`
	SaleAmounts []float64 `json:"sale_amounts"`
	Quantities  []int64   `json:"quantities"`
}

type MetricCards struct {
	TotalRevenue   string `json:"total_revenue"`
	TotalItemsSold string `json:"total_items_sold"`
	TotalProducts  string `json:"total_products"`
}

type SummaryRow struct {
	ProductID    string `json:"product_id"`
	QuantitySold string `json:"quantity_sold"`
	TotalSales   string `json:"total_sales"`
}

type SourceStates struct {
	Summary string `json:"summary"`
	Metrics string `json:"metrics"`
}

// Dashboard is the JSON view model of one display session
type Dashboard struct {
	SessionID string       `json:"session_id"`
	Sources   SourceStates `json:"sources"`
	Cards     *MetricCards `json:"cards,omitempty"`
	Chart     Chart        `json:"chart"`
	Rows      []SummaryRow `json:"rows"`
}
