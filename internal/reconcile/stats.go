package reconcile

import "math"

// ComputeStats derives batch-level match statistics from one pass's records.
// matched + unmatched always equals total; the rate is 0 for an empty batch.
func ComputeStats(records []CandidateRecord) MatchStats {
	stats := MatchStats{Total: len(records)}
	for _, r := range records {
		if r.Matched {
			stats.Matched++
		}
	}
	stats.Unmatched = stats.Total - stats.Matched
	if stats.Total > 0 {
		stats.MatchRatePercent = int(math.Round(float64(stats.Matched) / float64(stats.Total) * 100))
	}
	return stats
}
