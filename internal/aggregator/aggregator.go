package aggregator

import (
	"github.com/atikulmunna/logsummary/internal/model"
)

// FileScanner produces the report for a single path.
type FileScanner interface {
	ScanFile(path string) model.FileReport
}

// Stats holds totals across every file in a ReportSet.
type Stats struct {
	Files       int                    `json:"files"`
	TotalEvents int                    `json:"total_events"`
	LevelCounts map[model.Severity]int `json:"level_counts"`
}

// Aggregator builds a ReportSet by scanning input paths in order.
type Aggregator struct {
	scanner FileScanner
}

// New creates an Aggregator backed by the given scanner.
func New(s FileScanner) *Aggregator {
	return &Aggregator{scanner: s}
}

// Run scans each path once, in the order given, keyed by the path exactly as
// passed. A repeated path keeps its first position but holds the last result.
func (a *Aggregator) Run(paths []string) *model.ReportSet {
	set := model.NewReportSet()
	for _, p := range paths {
		set.Set(p, a.scanner.ScanFile(p))
	}
	return set
}

// Snapshot sums level counts over all files in set.
func Snapshot(set *model.ReportSet) Stats {
	stats := Stats{
		Files:       set.Len(),
		LevelCounts: make(map[model.Severity]int),
	}
	for _, p := range set.Paths() {
		r, _ := set.Get(p)
		for sev, n := range r.Counts {
			stats.LevelCounts[sev] += n
			stats.TotalEvents += n
		}
	}
	return stats
}
