package domain

type SourceState string

const (
	SourceStateLoading SourceState = "loading"
	SourceStateLoaded  SourceState = "loaded"
	SourceStateFailed  SourceState = "failed"
)

// Dashboard holds the state of one display session. Summary and Metrics are
// replaced wholesale by the loader and never mutated afterwards.
type Dashboard struct {
	SessionID    string
	Summary      []SalesSummaryRow
	SummaryState SourceState
	Metrics      *SalesMetrics // nil until the metrics fetch succeeds
	MetricsState SourceState
}

func NewDashboard(sessionID string) *Dashboard {
	return &Dashboard{
		SessionID:    sessionID,
		Summary:      []SalesSummaryRow{},
		SummaryState: SourceStateLoading,
		MetricsState: SourceStateLoading,
	}
}
