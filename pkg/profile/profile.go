// Package profile computes per-column data-quality summaries: mode structure,
// uniqueness, distribution shape, and the low-variance / high-skew flags used
// to annotate the report. Flags are informational only; no column is removed
// or transformed on their account.
package profile

import (
	"github.com/JohnPaulinePineda/Portfolio-Project-21/pkg/dataset"
	"github.com/JohnPaulinePineda/Portfolio-Project-21/pkg/stats"
)

// Flag thresholds and the sentinel substituted when a column has no second
// mode (the ratio would otherwise divide by zero).
const (
	ModeRatioThreshold   = 5.0
	UniqueRatioThreshold = 0.01
	SkewThreshold        = 3.0
	SecondModeSentinel   = 0.00001
	// CategoricalSentinel marks a missing second mode in categorical summaries.
	CategoricalSentinel = "x"
)

// Record is the full-precision quality summary of one numeric column.
// Display rounding is a separate concern; see Format.
type Record struct {
	Name              string
	Count             int
	Unique            int
	UniqueRatio       float64
	FirstMode         float64
	FirstModeCount    int
	SecondMode        float64
	SecondModeCount   int
	ModeRatio         float64
	SecondModeMissing bool
	Min               float64
	Mean              float64
	Median            float64
	Max               float64
	Q1                float64
	Q3                float64
	Skewness          float64
	Kurtosis          float64
}

// LowVarianceByModeRatio reports a dominant first mode (ratio > 5).
func (r Record) LowVarianceByModeRatio() bool {
	return !r.SecondModeMissing && r.ModeRatio > ModeRatioThreshold
}

// LowVarianceByUniqueness reports too few distinct values (ratio < 0.01).
func (r Record) LowVarianceByUniqueness() bool {
	return r.UniqueRatio < UniqueRatioThreshold
}

// HighSkew reports |skewness| > 3.
func (r Record) HighSkew() bool {
	return r.Skewness > SkewThreshold || r.Skewness < -SkewThreshold
}

// Column profiles a single numeric column.
func Column(name string, x []float64) Record {
	r := Record{
		Name:   name,
		Count:  len(x),
		Unique: stats.UniqueCount(x),
	}
	if r.Count > 0 {
		r.UniqueRatio = float64(r.Unique) / float64(r.Count)
	}
	first, second, ok := stats.Modes(x)
	r.FirstMode = first.Value
	r.FirstModeCount = first.Count
	if ok {
		r.SecondMode = second.Value
		r.SecondModeCount = second.Count
		r.ModeRatio = float64(first.Count) / float64(second.Count)
	} else {
		r.SecondModeMissing = true
		r.ModeRatio = SecondModeSentinel
	}
	r.Min, r.Max = stats.MinMax(x)
	r.Mean = stats.Mean(x)
	r.Median = stats.Median(x)
	r.Q1 = stats.Percentile(x, 25)
	r.Q3 = stats.Percentile(x, 75)
	r.Skewness = stats.Skewness(x)
	r.Kurtosis = stats.Kurtosis(x)
	return r
}

// Profile computes one Record per descriptor column of the table.
func Profile(t *dataset.Table) []Record {
	recs := make([]Record, t.Cols())
	for j := 0; j < t.Cols(); j++ {
		recs[j] = Column(t.Names[j], t.Column(j))
	}
	return recs
}

// CategoricalRecord summarizes the label column. A missing second mode is
// reported as the "x" sentinel rather than an empty string.
type CategoricalRecord struct {
	Name            string
	Count           int
	Unique          int
	UniqueRatio     float64
	FirstMode       string
	FirstModeCount  int
	SecondMode      string
	SecondModeCount int
	ModeRatio       float64
}

// Categorical profiles a categorical column.
func Categorical(name string, values []string) CategoricalRecord {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	r := CategoricalRecord{Name: name, Count: len(values), Unique: len(seen)}
	if r.Count > 0 {
		r.UniqueRatio = float64(r.Unique) / float64(r.Count)
	}
	first, second, ok := stats.StringModes(values)
	r.FirstMode = first.Value
	r.FirstModeCount = first.Count
	if ok {
		r.SecondMode = second.Value
		r.SecondModeCount = second.Count
		r.ModeRatio = float64(first.Count) / float64(second.Count)
	} else {
		r.SecondMode = CategoricalSentinel
		r.ModeRatio = SecondModeSentinel
	}
	return r
}

// Flagged partitions column names by which quality flag they trip.
type Flagged struct {
	ByModeRatio  []string
	ByUniqueness []string
	HighSkew     []string
}

// Flags collects the flagged column names from a set of records.
func Flags(recs []Record) Flagged {
	var f Flagged
	for _, r := range recs {
		if r.LowVarianceByModeRatio() {
			f.ByModeRatio = append(f.ByModeRatio, r.Name)
		}
		if r.LowVarianceByUniqueness() {
			f.ByUniqueness = append(f.ByUniqueness, r.Name)
		}
		if r.HighSkew() {
			f.HighSkew = append(f.HighSkew, r.Name)
		}
	}
	return f
}
