package forecast

import (
	"math"
	"time"
)

// MaxHourGap is the largest accepted distance between an arrival time and the
// closest forecast bucket. Arrivals farther than this from every bucket are
// outside the forecast horizon.
const MaxHourGap = 12 * time.Hour

// Accepted timestamp layouts for series entries. Open-Meteo emits minute
// precision without a zone designator; other sources use RFC 3339.
var seriesLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// NearestHourIndex returns the index of the series entry closest in time to
// target, and false when the series is empty or every entry is farther than
// MaxHourGap from target. The series may be unsorted and sparse; unparsable
// entries are skipped rather than aborting the scan. Ties keep the first
// minimum found in scan order.
//
// Comparisons happen in UTC: target is converted, and series entries without
// zone information are taken as UTC (the forecast adapter requests UTC
// series).
func NearestHourIndex(times []string, target time.Time) (int, bool) {
	target = target.UTC()

	bestIdx := -1
	bestDiff := time.Duration(math.MaxInt64)

	for i, raw := range times {
		t, ok := parseSeriesTime(raw)
		if !ok {
			continue
		}

		diff := t.Sub(target)
		if diff < 0 {
			// Sub saturates at the int64 extremes; negating the minimum
			// overflows back to a negative value. An entry that far out is
			// never within the horizon.
			if diff == math.MinInt64 {
				continue
			}
			diff = -diff
		}
		if diff < bestDiff {
			bestDiff = diff
			bestIdx = i
		}
	}

	if bestIdx < 0 || bestDiff > MaxHourGap {
		return -1, false
	}
	return bestIdx, true
}

func parseSeriesTime(raw string) (time.Time, bool) {
	for _, layout := range seriesLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
