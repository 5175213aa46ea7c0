package domain

import "github.com/shopspring/decimal"

// SalesSummaryRow is the aggregated sales record of a single product
type SalesSummaryRow struct {
	ProductID       int64
	TotalQuantity   int64
	TotalSaleAmount decimal.Decimal
}

// SalesMetrics summarizes the sales of all products
type SalesMetrics struct {
	TotalItemsSold int64
	TotalRevenue   decimal.Decimal
	TotalProducts  int64
}
