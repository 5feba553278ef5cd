package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"adperf/internal/core/domain"
	"adperf/internal/metrics"
)

const (
	performancePath = "/api/bigquery/performance"
	summaryPath     = "/api/bigquery/performance/summary"
	settingsPath    = "/api/settings"

	// RequestIDHeader carries a fresh id on every outbound request.
	RequestIDHeader = "X-Request-ID"
)

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIError is a non-2xx answer of the API server.
type APIError struct {
	Status     int
	StatusText string
	// Detail is the "detail" string of the error body, if there was one.
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("API error: %d %s", e.Status, e.StatusText)
}

// Client talks to the performance and settings API. It implements
// port.PerformanceAPI and port.SettingsAPI.
type Client struct {
	base    *url.URL
	http    HTTPDoer
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New returns a client for the API served at baseURL.
func New(baseURL string, doer HTTPDoer, logger *slog.Logger, m *metrics.Metrics) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("parse api url: %q is not absolute", baseURL)
	}
	if m == nil {
		m = metrics.NewMetrics(nil)
	}
	return &Client{
		base:    base,
		http:    doer,
		logger:  logger.With(slog.String("component", "api_client")),
		metrics: m,
	}, nil
}

// FetchPerformance returns the ad rows of one employee. Without a range only
// P1 ads are returned; with a range all ads in it are.
func (c *Client) FetchPerformance(ctx context.Context, acronym string, rng *domain.DateRange) ([]domain.PerformanceRow, error) {
	var rows []domain.PerformanceRow
	if err := c.do(ctx, http.MethodGet, performancePath, performanceQuery(acronym, rng), nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// FetchPerformanceSummary returns the aggregates of one employee. A null
// blended ratio is read as zero.
func (c *Client) FetchPerformanceSummary(ctx context.Context, acronym string, rng *domain.DateRange) (domain.Aggregates, error) {
	var summary domain.PerformanceSummary
	if err := c.do(ctx, http.MethodGet, summaryPath, performanceQuery(acronym, rng), nil, &summary); err != nil {
		return domain.Aggregates{}, err
	}
	return summary.Aggregates(), nil
}

// FetchSettings returns the stored settings document as is.
func (c *Client) FetchSettings(ctx context.Context) (json.RawMessage, error) {
	var doc json.RawMessage
	if err := c.do(ctx, http.MethodGet, settingsPath, nil, nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// SaveSettings replaces the stored settings document and returns what the
// server stored.
func (c *Client) SaveSettings(ctx context.Context, settings domain.Settings) (json.RawMessage, error) {
	body, err := json.Marshal(settings)
	if err != nil {
		return nil, err
	}
	var doc json.RawMessage
	if err = c.do(ctx, http.MethodPut, settingsPath, nil, body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func performanceQuery(acronym string, rng *domain.DateRange) url.Values {
	q := url.Values{}
	q.Set("employee_acronym", acronym)
	if rng != nil {
		q.Set("start_date", rng.Start.String())
		q.Set("end_date", rng.End.String())
		q.Set("p1_only", "false")
	}
	return q
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, out any) (err error) {
	u := c.base.JoinPath(path)
	u.RawQuery = query.Encode()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	status := "error"
	defer func() {
		c.metrics.APIRequestDuration.WithLabelValues(path, status).Observe(time.Since(start).Seconds())
		if err != nil {
			c.logger.Debug("api request failed",
				slog.String("method", method),
				slog.String("path", path),
				slog.String("request_id", requestID),
				slog.Any("error", err),
			)
		}
	}()

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	status = strconv.Itoa(resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{
		Status:     resp.StatusCode,
		StatusText: strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" "),
	}
	if apiErr.StatusText == "" {
		apiErr.StatusText = http.StatusText(resp.StatusCode)
	}

	var payload struct {
		Detail any `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&payload); err == nil {
		if detail, ok := payload.Detail.(string); ok {
			apiErr.Detail = detail
		}
	}
	return apiErr
}
