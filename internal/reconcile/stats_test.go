package reconcile

import "testing"

func recordsWithMatches(matched, unmatched int) []CandidateRecord {
	var out []CandidateRecord
	for i := 0; i < matched; i++ {
		out = append(out, CandidateRecord{Matched: true})
	}
	for i := 0; i < unmatched; i++ {
		out = append(out, CandidateRecord{})
	}
	return out
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name      string
		matched   int
		unmatched int
		wantRate  int
	}{
		{"empty batch", 0, 0, 0},
		{"all matched", 3, 0, 100},
		{"none matched", 0, 4, 0},
		{"two thirds rounds up", 2, 1, 67},
		{"one third rounds down", 1, 2, 33},
		{"half rounds up", 1, 1, 50},
		{"five of eight", 5, 3, 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeStats(recordsWithMatches(tt.matched, tt.unmatched))

			if stats.Total != tt.matched+tt.unmatched {
				t.Errorf("total = %d, want %d", stats.Total, tt.matched+tt.unmatched)
			}
			if stats.Matched != tt.matched {
				t.Errorf("matched = %d, want %d", stats.Matched, tt.matched)
			}
			if stats.Matched+stats.Unmatched != stats.Total {
				t.Errorf("matched+unmatched = %d, want total %d", stats.Matched+stats.Unmatched, stats.Total)
			}
			if stats.MatchRatePercent != tt.wantRate {
				t.Errorf("rate = %d, want %d", stats.MatchRatePercent, tt.wantRate)
			}
		})
	}
}
