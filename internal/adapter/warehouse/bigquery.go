package warehouse

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/big"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"adperf/internal/config/configs"
	"adperf/internal/core/domain"
	"adperf/internal/core/port"
)

// errProjectNotSet is reported before any client is built. It matches
// port.ErrWarehouseNotConfigured.
var errProjectNotSet = notConfigured("GCP_PROJECT is not set; BigQuery is not configured")

type notConfigured string

func (e notConfigured) Error() string { return string(e) }

func (e notConfigured) Is(target error) bool { return target == port.ErrWarehouseNotConfigured }

// BigQuery reads the ad performance table. It implements port.Warehouse.
type BigQuery struct {
	client     *bigquery.Client
	table      string
	dateColumn string
	logger     *slog.Logger
}

// New builds a BigQuery client for cfg. Credentials come from
// cfg.CredentialsJSON when set and from the application default credentials
// otherwise. The returned error matches port.ErrWarehouseNotConfigured or
// port.ErrWarehouseUnavailable.
func New(ctx context.Context, cfg configs.BigQuery, logger *slog.Logger) (*BigQuery, error) {
	if cfg.Project == "" {
		return nil, errProjectNotSet
	}

	var opts []option.ClientOption
	if cfg.CredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	}
	client, err := bigquery.NewClient(ctx, cfg.Project, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrWarehouseUnavailable, err)
	}
	if cfg.Location != "" {
		client.Location = cfg.Location
	}

	if cfg.Dataset == "" || cfg.Table == "" {
		_ = client.Close()
		return nil, port.ErrWarehouseNotConfigured
	}

	return &BigQuery{
		client:     client,
		table:      tableRef(cfg.Project, cfg.Dataset, cfg.Table),
		dateColumn: cfg.DateColumn,
		logger:     logger.With(slog.String("component", "bigquery")),
	}, nil
}

// Close releases the underlying client.
func (b *BigQuery) Close() error {
	return b.client.Close()
}

type performanceRecord struct {
	AdName    bigquery.NullString  `bigquery:"ad_name"`
	AdsetName bigquery.NullString  `bigquery:"adset_name"`
	Spend     bigquery.NullFloat64 `bigquery:"spend"`
	CROAS     bigquery.NullFloat64 `bigquery:"croas"`
}

// QueryPerformance runs the grouped performance query for q.
func (b *BigQuery) QueryPerformance(ctx context.Context, q domain.PerformanceQuery) ([]domain.PerformanceRow, error) {
	sql, params := performanceQuery(b.table, b.dateColumn, q)
	query := b.client.Query(sql)
	query.Parameters = params

	it, err := query.Read(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.PerformanceRow, 0, it.TotalRows)
	for {
		var rec performanceRecord
		err = it.Next(&rec)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}

		row := domain.PerformanceRow{
			AdName:    rec.AdName.StringVal,
			AdsetName: rec.AdsetName.StringVal,
			Spend:     rec.Spend.Float64,
		}
		if rec.CROAS.Valid {
			v := rec.CROAS.Float64
			row.CROAS = &v
		}
		rows = append(rows, row)
	}

	b.logger.Debug("performance query",
		slog.String("acronym", q.Acronym),
		slog.Bool("p1_only", q.P1Only),
		slog.Int("rows", len(rows)),
	)
	return rows, nil
}

// Sample returns up to limit rows of the table with every value converted to
// a JSON-safe form.
func (b *BigQuery) Sample(ctx context.Context, limit int) ([]map[string]any, error) {
	it, err := b.client.Query(sampleQuery(b.table, limit)).Read(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, limit)
	for len(out) < limit {
		row := map[string]bigquery.Value{}
		err = it.Next(&row)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}

		converted := make(map[string]any, len(row))
		for k, v := range row {
			converted[k] = jsonValue(v)
		}
		out = append(out, converted)
	}
	return out, nil
}

// jsonValue converts a value read from BigQuery into something
// encoding/json renders faithfully: dates and times as ISO strings, numerics
// as floats and bytes as hex. NaN and infinite floats become null since JSON
// has no encoding for them.
func jsonValue(v bigquery.Value) any {
	switch val := v.(type) {
	case nil:
		return nil
	case civil.Date:
		return val.String()
	case civil.Time:
		return val.String()
	case civil.DateTime:
		return val.String()
	case time.Time:
		return val.Format(time.RFC3339Nano)
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil
		}
		return val
	case *big.Rat:
		f, _ := val.Float64()
		return f
	case []byte:
		return hex.EncodeToString(val)
	case []bigquery.Value:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = jsonValue(item)
		}
		return out
	case map[string]bigquery.Value:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = jsonValue(item)
		}
		return out
	default:
		return val
	}
}
