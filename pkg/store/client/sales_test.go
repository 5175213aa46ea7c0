package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, routes map[string]func(w http.ResponseWriter)) *httptest.Server {
	mux := http.NewServeMux()
	for path, handle := range routes {
		handle := handle
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			handle(w)
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(status int, body string) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestNewSalesClient(t *testing.T) {
	tests := []struct {
		name        string
		baseURL     string
		expectError bool
	}{
		{name: "valid http url", baseURL: "http://localhost:5000"},
		{name: "trailing slash", baseURL: "http://localhost:5000/"},
		{name: "empty url", baseURL: "", expectError: true},
		{name: "unsupported scheme", baseURL: "ftp://localhost", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewSalesClient(Options{BaseURL: tt.baseURL})
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "http://localhost:5000"+SummaryPath, c.endpoint(SummaryPath))
		})
	}
}

func TestSalesClient_GetSummary(t *testing.T) {
	srv := newTestServer(t, map[string]func(http.ResponseWriter){
		SummaryPath: writeJSON(http.StatusOK, `{
			"status": "success",
			"data": [
				{"product_id": 1, "total_quantity": 10, "total_sale_amount": 199.5},
				{"product_id": 2, "total_quantity": 3, "total_sale_amount": 45}
			]
		}`),
	})

	c, err := NewSalesClient(Options{BaseURL: srv.URL})
	require.NoError(t, err)

	rows, err := c.GetSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, int64(1), rows[0].ProductID)
	assert.Equal(t, int64(10), rows[0].TotalQuantity)
	assert.True(t, decimal.RequireFromString("199.5").Equal(rows[0].TotalSaleAmount))
	assert.Equal(t, int64(2), rows[1].ProductID)
	assert.True(t, decimal.NewFromInt(45).Equal(rows[1].TotalSaleAmount))
}

func TestSalesClient_GetSummary_EmptyData(t *testing.T) {
	srv := newTestServer(t, map[string]func(http.ResponseWriter){
		SummaryPath: writeJSON(http.StatusOK, `{"status": "success", "data": null}`),
	})

	c, err := NewSalesClient(Options{BaseURL: srv.URL})
	require.NoError(t, err)

	rows, err := c.GetSummary(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestSalesClient_GetMetrics(t *testing.T) {
	srv := newTestServer(t, map[string]func(http.ResponseWriter){
		MetricsPath: writeJSON(http.StatusOK, `{
			"status": "success",
			"data": {"total_items_sold": 13, "total_revenue": 244.5, "total_products": 2}
		}`),
	})

	c, err := NewSalesClient(Options{BaseURL: srv.URL})
	require.NoError(t, err)

	metrics, err := c.GetMetrics(context.Background())
	require.NoError(t, err)
	require.NotNil(t, metrics)

	assert.Equal(t, int64(13), metrics.TotalItemsSold)
	assert.True(t, decimal.RequireFromString("244.5").Equal(metrics.TotalRevenue))
	assert.Equal(t, int64(2), metrics.TotalProducts)
}

func TestSalesClient_FetchFailures(t *testing.T) {
	tests := []struct {
		name            string
		handler         func(http.ResponseWriter)
		maxBodySize     int64
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "server error with error envelope",
			handler:         writeJSON(http.StatusInternalServerError, `{"status": "error", "message": "db down"}`),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "db down",
		},
		{
			name:           "non-json error",
			handler:        writeJSON(http.StatusBadGateway, `bad gateway`),
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:            "error envelope with ok status",
			handler:         writeJSON(http.StatusOK, `{"status": "error", "message": "query failed"}`),
			expectedStatus:  http.StatusOK,
			expectedMessage: "query failed",
		},
		{
			name:           "undecodable body",
			handler:        writeJSON(http.StatusOK, `{"data": {`),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "body over limit",
			handler:        writeJSON(http.StatusOK, `{"status": "success", "data": []}`+strings.Repeat(" ", 64)),
			maxBodySize:    16,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, map[string]func(http.ResponseWriter){
				SummaryPath: tt.handler,
			})

			c, err := NewSalesClient(Options{BaseURL: srv.URL, MaxBodySize: tt.maxBodySize})
			require.NoError(t, err)

			rows, err := c.GetSummary(context.Background())
			require.Error(t, err)
			assert.Nil(t, rows)

			var fe *FetchError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, SummaryPath, fe.Endpoint)
			assert.Equal(t, tt.expectedStatus, fe.StatusCode)
			assert.Equal(t, tt.expectedMessage, fe.Message)
		})
	}
}

func TestSalesClient_GetMetrics_MissingData(t *testing.T) {
	srv := newTestServer(t, map[string]func(http.ResponseWriter){
		MetricsPath: writeJSON(http.StatusOK, `{"status": "success"}`),
	})

	c, err := NewSalesClient(Options{BaseURL: srv.URL})
	require.NoError(t, err)

	metrics, err := c.GetMetrics(context.Background())
	assert.Nil(t, metrics)

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, MetricsPath, fe.Endpoint)
}

func TestSalesClient_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewSalesClient(Options{BaseURL: url})
	require.NoError(t, err)

	_, err = c.GetMetrics(context.Background())

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 0, fe.StatusCode)
	assert.NotNil(t, fe.Unwrap())
}

func TestFetchError_Error(t *testing.T) {
	err := &FetchError{Endpoint: MetricsPath, StatusCode: 500, Message: "db down"}
	assert.Equal(t, "fetch /api/sales/metrics: status 500: db down", err.Error())

	err = &FetchError{Endpoint: SummaryPath, Err: errors.New("connection refused")}
	assert.Equal(t, "fetch /api/sales/summary: connection refused", err.Error())
}

var _ SalesReader = (*SalesClient)(nil)
