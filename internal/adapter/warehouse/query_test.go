package warehouse

import (
	"encoding/json"
	"math"
	"math/big"
	"regexp"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adperf/internal/core/domain"
)

func TestAcronymPattern(t *testing.T) {
	tests := []struct {
		acronym string
		adset   string
		match   bool
	}{
		{"HM", "SC_P_HM_US", true},
		{"hm", "hm", true},
		{" HM ", "hm-retargeting", true},
		{"HM", "SC_P_HMX_US", false},
		{"CP", "CPA_prospecting", false},
		{"CPA", "CPA_prospecting", true},
		{"A.B", "x_a.b_y", true},
		{"A.B", "x_axb_y", false},
		{"HM", "sc2hm3us", true},
	}

	for _, tt := range tests {
		t.Run(tt.acronym+"/"+tt.adset, func(t *testing.T) {
			re := regexp.MustCompile(AcronymPattern(tt.acronym))
			assert.Equal(t, tt.match, re.MatchString(strings.ToLower(tt.adset)))
		})
	}
}

func TestPerformanceQueryP1Only(t *testing.T) {
	table := tableRef("proj", "ds", "ads")
	sql, params := performanceQuery(table, "date", domain.PerformanceQuery{Acronym: "HM", P1Only: true})

	assert.Contains(t, sql, "FROM `proj`.`ds`.`ads`")
	assert.Contains(t, sql, "LOWER(ad_name) LIKE '%p1%'")
	assert.Contains(t, sql, "REGEXP_CONTAINS(LOWER(adset_name), @acronym_regex)")
	assert.Contains(t, sql, "GROUP BY ad_name, adset_name")
	assert.Contains(t, sql, "ORDER BY spend DESC")
	assert.NotContains(t, sql, "@start_date")

	require.Len(t, params, 1)
	assert.Equal(t, "acronym_regex", params[0].Name)
	assert.Equal(t, AcronymPattern("HM"), params[0].Value)
}

func TestPerformanceQueryWithRange(t *testing.T) {
	rng := &domain.DateRange{
		Start: civil.Date{Year: 2024, Month: 1, Day: 1},
		End:   civil.Date{Year: 2024, Month: 3, Day: 31},
	}
	sql, params := performanceQuery("`p`.`d`.`t`", "report_date", domain.PerformanceQuery{Acronym: "HM", Range: rng})

	assert.NotContains(t, sql, "LIKE '%p1%'")
	assert.Contains(t, sql, "DATE(`report_date`) BETWEEN @start_date AND @end_date")

	require.Len(t, params, 3)
	assert.Equal(t, bigquery.QueryParameter{Name: "start_date", Value: rng.Start}, params[1])
	assert.Equal(t, bigquery.QueryParameter{Name: "end_date", Value: rng.End}, params[2])
}

func TestQuoteIdentEscapesBackticks(t *testing.T) {
	assert.Equal(t, "`a\\`b`", quoteIdent("a`b"))
	assert.Equal(t, "SELECT * FROM `p`.`d`.`t` LIMIT 5", sampleQuery(tableRef("p", "d", "t"), 5))
}

func TestJSONValue(t *testing.T) {
	ts := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)

	assert.Nil(t, jsonValue(nil))
	assert.Equal(t, "2024-02-03", jsonValue(civil.DateOf(ts)))
	assert.Equal(t, "2024-02-03T04:05:06Z", jsonValue(ts))
	assert.Equal(t, 1.25, jsonValue(big.NewRat(5, 4)))
	assert.Equal(t, "cafe", jsonValue([]byte{0xca, 0xfe}))
	assert.Equal(t, int64(7), jsonValue(int64(7)))
	assert.Equal(t,
		[]any{"2024-02-03", map[string]any{"b": "00"}},
		jsonValue([]bigquery.Value{civil.DateOf(ts), map[string]bigquery.Value{"b": []byte{0}}}),
	)
}

func TestJSONValueNonFiniteFloats(t *testing.T) {
	assert.Equal(t, 2.5, jsonValue(2.5))
	assert.Nil(t, jsonValue(math.NaN()))
	assert.Nil(t, jsonValue(math.Inf(1)))
	assert.Nil(t, jsonValue(math.Inf(-1)))

	row := map[string]any{}
	for k, v := range map[string]bigquery.Value{"croas": math.NaN(), "spend": math.Inf(1), "ok": 1.5} {
		row[k] = jsonValue(v)
	}
	body, err := json.Marshal([]map[string]any{row})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"croas":null,"spend":null,"ok":1.5}]`, string(body))
}
