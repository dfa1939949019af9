package runner

import (
	"math"
	"slices"
	"time"
)

type LatencyStats struct {
	Min         time.Duration `json:"min"`
	Max         time.Duration `json:"max"`
	Mean        time.Duration `json:"mean"`
	Median      time.Duration `json:"median"`
	P95         time.Duration `json:"p95"`
	Stddev      time.Duration `json:"stddev"`
	SampleCount int           `json:"sample_count"`
}

func ComputeLatencyStats(durations []time.Duration) LatencyStats {
	if len(durations) == 0 {
		return LatencyStats{}
	}

	sorted := slices.Clone(durations)
	slices.Sort(sorted)

	stats := LatencyStats{
		Min:         sorted[0],
		Max:         sorted[len(sorted)-1],
		Median:      percentile(sorted, 50),
		P95:         percentile(sorted, 95),
		SampleCount: len(sorted),
	}

	var sum int64
	for _, d := range sorted {
		sum += int64(d)
	}
	stats.Mean = time.Duration(sum / int64(len(sorted)))

	if len(sorted) > 1 {
		var sumSquares float64
		mean := float64(stats.Mean)
		for _, d := range sorted {
			diff := float64(d) - mean
			sumSquares += diff * diff
		}
		stats.Stddev = time.Duration(math.Sqrt(sumSquares / float64(len(sorted)-1)))
	}

	return stats
}

// percentile interpolates linearly between the two nearest ranks.
func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := float64(p) / 100.0 * float64(len(sorted)-1)
	lower := int(rank)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := rank - float64(lower)
	return time.Duration(float64(sorted[lower])*(1-weight) + float64(sorted[upper])*weight)
}

func (s LatencyStats) IsZero() bool {
	return s.SampleCount == 0
}
