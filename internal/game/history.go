package game

import "sort"

// Run is a completed-game record. Never mutated after creation.
type Run struct {
	Seconds float64 `yaml:"seconds"`
	Score   int     `yaml:"score"`
}

// SortRuns returns a copy of runs ordered for high-score display:
// score descending, elapsed time ascending as the tie-break.
func SortRuns(runs []Run) []Run {
	sorted := make([]Run, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].Seconds < sorted[j].Seconds
	})
	return sorted
}

// bestRun derives the best run under the same ordering.
func bestRun(runs []Run) (Run, bool) {
	if len(runs) == 0 {
		return Run{}, false
	}
	best := runs[0]
	for _, r := range runs[1:] {
		if r.Score > best.Score || (r.Score == best.Score && r.Seconds < best.Seconds) {
			best = r
		}
	}
	return best, true
}
