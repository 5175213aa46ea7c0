package api

import "github.com/shopspring/decimal"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the response wrapper used by the sales API
type Envelope[T any] struct {
	Status  string `json:"status"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

type SalesSummaryRow struct {
	ProductID       int64           `json:"product_id"`
	TotalQuantity   int64           `json:"total_quantity"`
	TotalSaleAmount decimal.Decimal `json:"total_sale_amount"`
}

type SalesMetrics struct {
	TotalItemsSold int64           `json:"total_items_sold"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalProducts  int64           `json:"total_products"`
}
