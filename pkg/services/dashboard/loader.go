package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/de-tools/retail-dashboard/pkg/adapters"
	"github.com/de-tools/retail-dashboard/pkg/models/domain"
	"github.com/de-tools/retail-dashboard/pkg/store/client"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Policy decides how a failure of one read affects the other.
type Policy string

const (
	// PolicyIndependent stores every read that succeeded, whatever happened to the other one.
	PolicyIndependent Policy = "independent"
	// PolicyJoin treats both reads as one unit: if either fails nothing is stored.
	PolicyJoin Policy = "join"
)

// ParsePolicy maps a settings value to a Policy; empty means PolicyIndependent.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyIndependent, PolicyJoin:
		return p, nil
	case "":
		return PolicyIndependent, nil
	default:
		return "", fmt.Errorf("unknown loader policy %q, expected %q or %q", s, PolicyIndependent, PolicyJoin)
	}
}

// Loader runs the fetch cycle of a display session against a SalesReader.
type Loader struct {
	reader  client.SalesReader
	policy  Policy
	metrics *Metrics
}

// NewLoader returns a loader for reader. An empty policy means
// PolicyIndependent and nil metrics are replaced by unregistered collectors.
func NewLoader(reader client.SalesReader, policy Policy, metrics *Metrics) *Loader {
	if policy == "" {
		policy = PolicyIndependent
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &Loader{
		reader:  reader,
		policy:  policy,
		metrics: metrics,
	}
}

func (l *Loader) Policy() Policy {
	return l.policy
}

// Load runs one fetch cycle: both reads are issued concurrently and the
// returned dashboard is populated once both have settled. Failures are
// logged and leave the affected slot empty.
func (l *Loader) Load(ctx context.Context) *domain.Dashboard {
	dash := domain.NewDashboard(uuid.NewString())

	logger := zerolog.Ctx(ctx).With().
		Str("session_id", dash.SessionID).
		Str("policy", string(l.policy)).
		Logger()
	ctx = logger.WithContext(ctx)

	l.metrics.sessions.Inc()
	start := time.Now()

	switch l.policy {
	case PolicyJoin:
		l.loadJoined(ctx, dash)
	default:
		l.loadIndependent(ctx, dash)
	}

	logger.Debug().
		Str("summary", string(dash.SummaryState)).
		Str("metrics", string(dash.MetricsState)).
		Int("rows", len(dash.Summary)).
		Dur("elapsed", time.Since(start)).
		Msg("dashboard data loaded")

	return dash
}

func (l *Loader) loadIndependent(ctx context.Context, dash *domain.Dashboard) {
	logger := zerolog.Ctx(ctx)

	var (
		wg         sync.WaitGroup
		summary    []domain.SalesSummaryRow
		summaryErr error
		metrics    *domain.SalesMetrics
		metricsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		summary, summaryErr = l.fetchSummary(ctx)
	}()
	go func() {
		defer wg.Done()
		metrics, metricsErr = l.fetchMetrics(ctx)
	}()
	wg.Wait()

	if summaryErr != nil {
		logger.Error().Err(summaryErr).Str("endpoint", client.SummaryPath).Msg("failed to fetch sales summary")
		dash.SummaryState = domain.SourceStateFailed
	} else {
		dash.Summary = summary
		dash.SummaryState = domain.SourceStateLoaded
	}

	if metricsErr != nil {
		logger.Error().Err(metricsErr).Str("endpoint", client.MetricsPath).Msg("failed to fetch sales metrics")
		dash.MetricsState = domain.SourceStateFailed
	} else {
		dash.Metrics = metrics
		dash.MetricsState = domain.SourceStateLoaded
	}
}

func (l *Loader) loadJoined(ctx context.Context, dash *domain.Dashboard) {
	logger := zerolog.Ctx(ctx)

	var (
		g       errgroup.Group
		summary []domain.SalesSummaryRow
		metrics *domain.SalesMetrics
	)

	g.Go(func() error {
		var err error
		summary, err = l.fetchSummary(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		metrics, err = l.fetchMetrics(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		event := logger.Error().Err(err)
		var fetchErr *client.FetchError
		if errors.As(err, &fetchErr) {
			event = event.Str("endpoint", fetchErr.Endpoint)
		}
		event.Msg("failed to fetch dashboard data")
		dash.SummaryState = domain.SourceStateFailed
		dash.MetricsState = domain.SourceStateFailed
		return
	}

	dash.Summary = summary
	dash.SummaryState = domain.SourceStateLoaded
	dash.Metrics = metrics
	dash.MetricsState = domain.SourceStateLoaded
}

func (l *Loader) fetchSummary(ctx context.Context) ([]domain.SalesSummaryRow, error) {
	start := time.Now()
	rows, err := l.reader.GetSummary(ctx)
	l.metrics.observeFetch(client.SummaryPath, start, err)
	if err != nil {
		return nil, err
	}
	return adapters.MapApiSummaryRowsToDomain(rows), nil
}

func (l *Loader) fetchMetrics(ctx context.Context) (*domain.SalesMetrics, error) {
	start := time.Now()
	metrics, err := l.reader.GetMetrics(ctx)
	l.metrics.observeFetch(client.MetricsPath, start, err)
	if err != nil {
		return nil, err
	}
	return adapters.MapApiMetricsToDomain(metrics), nil
}
