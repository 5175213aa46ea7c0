package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/de-tools/retail-dashboard/pkg/models/api"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/rs/zerolog"
)

const (
	SummaryPath = "/api/sales/summary"
	MetricsPath = "/api/sales/metrics"

	defaultMaxBodySize = 4 << 20
)

var errBodyTooLarge = errors.New("response body exceeds size limit")

// SalesReader reads the pre-aggregated sales data owned by the sales API
type SalesReader interface {
	GetSummary(ctx context.Context) ([]api.SalesSummaryRow, error)
	GetMetrics(ctx context.Context) (*api.SalesMetrics, error)
}

type Options struct {
	BaseURL string
	// Timeout bounds a single request; zero means no overall timeout. The
	// pooled transport still limits dialing to 30s and TLS handshakes to 10s.
	Timeout     time.Duration
	MaxBodySize int64
}

type SalesClient struct {
	client      *http.Client
	baseURL     *url.URL
	maxBodySize int64
}

func NewSalesClient(opts Options) (*SalesClient, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("base url is empty")
	}

	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", opts.BaseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("unsupported base url scheme %q", base.Scheme)
	}

	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = opts.Timeout

	maxBodySize := opts.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = defaultMaxBodySize
	}

	return &SalesClient{
		client:      httpClient,
		baseURL:     base,
		maxBodySize: maxBodySize,
	}, nil
}

func (c *SalesClient) GetSummary(ctx context.Context) ([]api.SalesSummaryRow, error) {
	rows, err := getData[[]api.SalesSummaryRow](ctx, c, SummaryPath)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []api.SalesSummaryRow{}
	}
	return rows, nil
}

func (c *SalesClient) GetMetrics(ctx context.Context) (*api.SalesMetrics, error) {
	metrics, err := getData[*api.SalesMetrics](ctx, c, MetricsPath)
	if err != nil {
		return nil, err
	}
	if metrics == nil {
		return nil, &FetchError{Endpoint: MetricsPath, Message: "response has no data"}
	}
	return metrics, nil
}

func (c *SalesClient) endpoint(path string) string {
	return c.baseURL.String() + path
}

func getData[T any](ctx context.Context, c *SalesClient, path string) (T, error) {
	logger := zerolog.Ctx(ctx)
	var zero T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), nil)
	if err != nil {
		return zero, &FetchError{Endpoint: path, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	logger.Debug().Str("url", req.URL.String()).Msg("requesting sales data")

	resp, err := c.client.Do(req)
	if err != nil {
		return zero, &FetchError{Endpoint: path, Err: err}
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logger.Warn().Err(err).Str("endpoint", path).Msg("failed to close response body")
		}
	}(resp.Body)

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize+1))
	if err != nil {
		return zero, &FetchError{Endpoint: path, StatusCode: resp.StatusCode, Err: err}
	}
	if int64(len(body)) > c.maxBodySize {
		return zero, &FetchError{Endpoint: path, StatusCode: resp.StatusCode, Err: errBodyTooLarge}
	}

	var envelope api.Envelope[T]
	decodeErr := json.Unmarshal(body, &envelope)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fe := &FetchError{Endpoint: path, StatusCode: resp.StatusCode}
		if decodeErr == nil {
			fe.Message = envelope.Message
		}
		return zero, fe
	}
	if decodeErr != nil {
		return zero, &FetchError{
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decode response: %w", decodeErr),
		}
	}
	if envelope.Status == api.StatusError {
		return zero, &FetchError{Endpoint: path, StatusCode: resp.StatusCode, Message: envelope.Message}
	}

	return envelope.Data, nil
}
