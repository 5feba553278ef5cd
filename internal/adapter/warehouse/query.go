package warehouse

import (
	"fmt"
	"regexp"
	"strings"

	"cloud.google.com/go/bigquery"

	"adperf/internal/core/domain"
)

// Columns of the ad performance table.
const (
	colAdName    = "ad_name"
	colAdsetName = "adset_name"
	colSpend     = "spend_sum"
	colRevenue   = "placed_order_total_revenue_sum_direct_session"
)

// AcronymPattern matches acronym as a word of a lower-cased adset name:
// surrounded by non-letters or the ends of the string. "hm" matches
// "sc_p_hm_us" but "cp" does not match "cpa".
func AcronymPattern(acronym string) string {
	escaped := regexp.QuoteMeta(strings.ToLower(strings.TrimSpace(acronym)))
	return "(^|[^a-zA-Z])" + escaped + "([^a-zA-Z]|$)"
}

// quoteIdent wraps name in backticks for use as a BigQuery identifier.
func quoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "\\`") + "`"
}

func tableRef(project, dataset, table string) string {
	return quoteIdent(project) + "." + quoteIdent(dataset) + "." + quoteIdent(table)
}

func sampleQuery(table string, limit int) string {
	return fmt.Sprintf("SELECT * FROM %s LIMIT %d", table, limit)
}

// performanceQuery returns the grouped performance query for q together with
// its named parameters. Rows sharing ad and adset name are merged; spend is
// summed and the ratio is the summed revenue over the summed spend.
func performanceQuery(table, dateColumn string, q domain.PerformanceQuery) (string, []bigquery.QueryParameter) {
	where := []string{
		fmt.Sprintf("REGEXP_CONTAINS(LOWER(%s), @acronym_regex)", colAdsetName),
	}
	params := []bigquery.QueryParameter{
		{Name: "acronym_regex", Value: AcronymPattern(q.Acronym)},
	}

	if q.P1Only {
		where = append([]string{fmt.Sprintf("LOWER(%s) LIKE '%%p1%%'", colAdName)}, where...)
	}
	if q.Range != nil {
		where = append(where, fmt.Sprintf("DATE(%s) BETWEEN @start_date AND @end_date", quoteIdent(dateColumn)))
		params = append(params,
			bigquery.QueryParameter{Name: "start_date", Value: q.Range.Start},
			bigquery.QueryParameter{Name: "end_date", Value: q.Range.End},
		)
	}

	sql := fmt.Sprintf(`SELECT
    %[1]s AS ad_name,
    %[2]s AS adset_name,
    CAST(SUM(%[3]s) AS FLOAT64) AS spend,
    CAST(SAFE_DIVIDE(SUM(%[4]s), SUM(%[3]s)) AS FLOAT64) AS croas
FROM %[5]s
WHERE %[6]s
GROUP BY %[1]s, %[2]s
ORDER BY spend DESC`,
		colAdName, colAdsetName, colSpend, colRevenue, table, strings.Join(where, "\n  AND "))

	return sql, params
}
