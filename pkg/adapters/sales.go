package adapters

import (
	"github.com/de-tools/retail-dashboard/pkg/models/api"
	"github.com/de-tools/retail-dashboard/pkg/models/domain"
)

func MapApiSummaryRowToDomain(row api.SalesSummaryRow) domain.SalesSummaryRow {
	return domain.SalesSummaryRow{
		ProductID:       row.ProductID,
		TotalQuantity:   row.TotalQuantity,
		TotalSaleAmount: row.TotalSaleAmount,
	}
}

// MapApiSummaryRowsToDomain keeps the order of the input rows
func MapApiSummaryRowsToDomain(rows []api.SalesSummaryRow) []domain.SalesSummaryRow {
	result := make([]domain.SalesSummaryRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, MapApiSummaryRowToDomain(row))
	}
	return result
}

func MapApiMetricsToDomain(metrics *api.SalesMetrics) *domain.SalesMetrics {
	if metrics == nil {
		return nil
	}
	return &domain.SalesMetrics{
		TotalItemsSold: metrics.TotalItemsSold,
		TotalRevenue:   metrics.TotalRevenue,
		TotalProducts:  metrics.TotalProducts,
	}
}
