// Package aggregate builds the summary tables served by the API: per-game
// scoreboards and leader tables from boxscore lines, and per-pitcher /
// per-pitch-type summaries from the derived pitch table. Every table is
// recomputed wholesale from the current snapshot's rows; sorting is
// deterministic so identical inputs produce identical tables.
package aggregate

import "math"

// rate returns numer/denom rounded to three decimals, or nil when the
// denominator is zero. A missing rate is null downstream, never zero.
func rate(numer, denom int) *float64 {
	if denom == 0 {
		return nil
	}
	v := round3(float64(numer) / float64(denom))
	return &v
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func ptr(v float64) *float64 { return &v }

// mean averages the non-missing values, returning nil when none were
// reported.
func mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	m := sum / float64(len(values))
	return &m
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
