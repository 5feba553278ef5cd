package domain

// Color is the evaluation result shown next to a metric.
type Color string

const (
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
	// ColorGray marks a value no band covers, or a metric without data.
	ColorGray Color = "gray"
)

// BandColors lists the colors every normalized threshold table carries, in
// table order.
var BandColors = []Color{ColorGreen, ColorYellow, ColorRed}

// Valid reports whether c is one of the known colors.
func (c Color) Valid() bool {
	switch c {
	case ColorGreen, ColorYellow, ColorRed, ColorGray:
		return true
	}
	return false
}

// Threshold is a half-open band [Min, Max). A nil Max is unbounded above.
type Threshold struct {
	Min   float64  `json:"min"`
	Max   *float64 `json:"max"`
	Color Color    `json:"color"`
}

// Contains reports whether v falls inside the band.
func (t Threshold) Contains(v float64) bool {
	return v >= t.Min && (t.Max == nil || v < *t.Max)
}

// ThresholdTable is an ordered list of bands. Ordering and overlap are not
// validated: the first band that contains a value decides its color.
type ThresholdTable []Threshold

// Evaluate returns the color of the first band containing v, or ColorGray
// when no band does.
func (t ThresholdTable) Evaluate(v float64) Color {
	for _, band := range t {
		if band.Contains(v) {
			return band.Color
		}
	}
	return ColorGray
}

// Band returns the first band with the given color.
func (t ThresholdTable) Band(c Color) (Threshold, bool) {
	for _, band := range t {
		if band.Color == c {
			return band, true
		}
	}
	return Threshold{}, false
}

// Clone returns a deep copy of the table.
func (t ThresholdTable) Clone() ThresholdTable {
	if t == nil {
		return nil
	}
	out := make(ThresholdTable, len(t))
	for i, band := range t {
		out[i] = band
		if band.Max != nil {
			m := *band.Max
			out[i].Max = &m
		}
	}
	return out
}

// Metric names one of the two evaluated metrics.
type Metric string

const (
	MetricSpend Metric = "spend"
	MetricCROAS Metric = "croas"
)

// DefaultTable returns the built-in thresholds for m.
func (m Metric) DefaultTable() (ThresholdTable, bool) {
	switch m {
	case MetricSpend:
		return DefaultSpendThresholds(), true
	case MetricCROAS:
		return DefaultCROASThresholds(), true
	}
	return nil, false
}

// DefaultSpendThresholds are the spend bands, in account currency.
func DefaultSpendThresholds() ThresholdTable {
	return ThresholdTable{
		{Min: 20000, Max: nil, Color: ColorGreen},
		{Min: 10000, Max: bound(20000), Color: ColorYellow},
		{Min: 0, Max: bound(10000), Color: ColorRed},
	}
}

// DefaultCROASThresholds are the blended cROAS bands.
func DefaultCROASThresholds() ThresholdTable {
	return ThresholdTable{
		{Min: 3, Max: nil, Color: ColorGreen},
		{Min: 1, Max: bound(3), Color: ColorYellow},
		{Min: 0, Max: bound(1), Color: ColorRed},
	}
}

func bound(v float64) *float64 { return &v }
