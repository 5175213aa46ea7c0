package dashboard

import (
	"github.com/de-tools/retail-dashboard/pkg/models/api"
	"github.com/de-tools/retail-dashboard/pkg/services/dashboard"
)

func toResponse(page dashboard.Page) api.Dashboard {
	rows := make([]api.SummaryRow, 0, len(page.Rows))
	for _, row := range page.Rows {
		rows = append(rows, api.SummaryRow{
			ProductID:    row.ProductID,
			QuantitySold: row.QuantitySold,
			TotalSales:   row.TotalSales,
		})
	}

	var cards *api.MetricCards
	if page.Cards != nil {
		cards = &api.MetricCards{
			TotalRevenue:   page.Cards.TotalRevenue,
			TotalItemsSold: page.Cards.TotalItemsSold,
			TotalProducts:  page.Cards.TotalProducts,
		}
	}

	return api.Dashboard{
		SessionID: page.SessionID,
		Sources: api.SourceStates{
			Summary: string(page.SummaryState),
			Metrics: string(page.MetricsState),
		},
		Cards: cards,
		Chart: api.Chart{
			Title:       page.Chart.Title,
			Labels:      page.Chart.Labels,
			SaleAmounts: page.Chart.SaleAmounts,
			Quantities:  page.Chart.Quantities,
		},
		Rows: rows,
	}
}
