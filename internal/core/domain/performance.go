package domain

// PerformanceRow is the deduplicated performance of one ad inside one ad set,
// as returned by the warehouse. CROAS is nil when the warehouse could not
// compute a ratio for the row.
type PerformanceRow struct {
	AdName    string   `json:"ad_name"`
	AdsetName string   `json:"adset_name"`
	Spend     float64  `json:"spend"`
	CROAS     *float64 `json:"croas"`
}

// Aggregates summarises the performance rows of one employee. It is always
// recomputed from scratch and never updated incrementally.
type Aggregates struct {
	TotalSpend   float64 `json:"totalSpend"`
	BlendedRatio float64 `json:"blendedCroas"`
	RowCount     int     `json:"rowCount"`
}

// Aggregate reduces rows to their total spend and spend-weighted cROAS. A row
// without a ratio contributes its spend to the total but nothing to the
// weighted sum. Negative spend is not rejected.
func Aggregate(rows []PerformanceRow) Aggregates {
	if len(rows) == 0 {
		return Aggregates{}
	}

	var total, weighted float64
	for _, row := range rows {
		total += row.Spend
		if row.CROAS != nil {
			weighted += row.Spend * *row.CROAS
		}
	}

	agg := Aggregates{TotalSpend: total, RowCount: len(rows)}
	if total > 0 {
		agg.BlendedRatio = weighted / total
	}
	return agg
}

// PerformanceSummary is the wire form of Aggregates served by the summary
// endpoint. BlendedCROAS is null when there was no spend to weight by.
type PerformanceSummary struct {
	TotalSpend   float64  `json:"total_spend"`
	BlendedCROAS *float64 `json:"blended_croas"`
	RowCount     int      `json:"row_count"`
}

// Summarize builds the summary served for rows.
func Summarize(rows []PerformanceRow) PerformanceSummary {
	agg := Aggregate(rows)
	summary := PerformanceSummary{TotalSpend: agg.TotalSpend, RowCount: agg.RowCount}
	if agg.TotalSpend > 0 {
		ratio := agg.BlendedRatio
		summary.BlendedCROAS = &ratio
	}
	return summary
}

// Aggregates converts the summary back into Aggregates, reading a null
// blended ratio as zero.
func (s PerformanceSummary) Aggregates() Aggregates {
	agg := Aggregates{TotalSpend: s.TotalSpend, RowCount: s.RowCount}
	if s.BlendedCROAS != nil {
		agg.BlendedRatio = *s.BlendedCROAS
	}
	return agg
}

// PerformanceQuery selects the rows of one employee. Without a Range the
// query covers all time and P1Only is usually set; with a Range the P1 filter
// is normally lifted.
type PerformanceQuery struct {
	Acronym string
	Range   *DateRange
	P1Only  bool
}
