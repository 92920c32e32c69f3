package profile

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-gota/gota/dataframe"
)

// header is the fixed column set of the exported quality-profile table.
var header = []string{
	"column", "count", "unique", "unique_ratio",
	"first_mode", "first_mode_count", "second_mode", "second_mode_count", "mode_ratio",
	"min", "mean", "median", "max", "q1", "q3", "skewness", "kurtosis",
	"flag_mode_ratio", "flag_uniqueness", "flag_high_skew",
}

func round3(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// FormatRecords renders records for display: numbers rounded to 3 decimals,
// missing second modes shown as the sentinel. The records themselves keep
// full precision.
func FormatRecords(recs []Record) [][]string {
	rows := make([][]string, 0, len(recs)+1)
	rows = append(rows, header)
	for _, r := range recs {
		secondMode, secondCount := round3(r.SecondMode), strconv.Itoa(r.SecondModeCount)
		modeRatio := round3(r.ModeRatio)
		if r.SecondModeMissing {
			secondMode = CategoricalSentinel
			secondCount = "0"
			modeRatio = strconv.FormatFloat(SecondModeSentinel, 'f', 5, 64)
		}
		rows = append(rows, []string{
			r.Name,
			strconv.Itoa(r.Count),
			strconv.Itoa(r.Unique),
			round3(r.UniqueRatio),
			round3(r.FirstMode),
			strconv.Itoa(r.FirstModeCount),
			secondMode,
			secondCount,
			modeRatio,
			round3(r.Min),
			round3(r.Mean),
			round3(r.Median),
			round3(r.Max),
			round3(r.Q1),
			round3(r.Q3),
			round3(r.Skewness),
			round3(r.Kurtosis),
			strconv.FormatBool(r.LowVarianceByModeRatio()),
			strconv.FormatBool(r.LowVarianceByUniqueness()),
			strconv.FormatBool(r.HighSkew()),
		})
	}
	return rows
}

// WriteCSV exports the formatted quality-profile table.
func WriteCSV(w io.Writer, recs []Record) error {
	df := dataframe.LoadRecords(FormatRecords(recs))
	if df.Err != nil {
		return fmt.Errorf("profile: %w", df.Err)
	}
	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	return nil
}
