package model

// FileReport holds the severity tallies and matched records of one input file.
type FileReport struct {
	Counts  map[Severity]int `json:"counts"`
	Matches []MatchRecord    `json:"matches"`
}

// NewFileReport returns an empty report.
func NewFileReport() FileReport {
	return FileReport{Counts: make(map[Severity]int)}
}

// Add records a match and increments its severity count.
func (r *FileReport) Add(rec MatchRecord) {
	if r.Counts == nil {
		r.Counts = make(map[Severity]int)
	}
	r.Counts[rec.Severity]++
	r.Matches = append(r.Matches, rec)
}

// Count returns the number of matches for sev (0 if none).
func (r FileReport) Count(sev Severity) int {
	return r.Counts[sev]
}

// Total returns the number of matched lines.
func (r FileReport) Total() int {
	var n int
	for _, c := range r.Counts {
		n += c
	}
	return n
}

// Sample returns the message of the first ERROR or CRITICAL record, or "".
func (r FileReport) Sample() string {
	for _, m := range r.Matches {
		if m.Severity.IsSample() {
			return m.Message
		}
	}
	return ""
}

// ReportSet maps input paths to their reports, preserving first-insertion order.
type ReportSet struct {
	order   []string
	reports map[string]FileReport
}

// NewReportSet returns an empty set.
func NewReportSet() *ReportSet {
	return &ReportSet{reports: make(map[string]FileReport)}
}

// Set stores the report for path. Re-setting a path replaces its report
// but keeps its original position.
func (s *ReportSet) Set(path string, r FileReport) {
	if _, exists := s.reports[path]; !exists {
		s.order = append(s.order, path)
	}
	s.reports[path] = r
}

// Get returns the report for path.
func (s *ReportSet) Get(path string) (FileReport, bool) {
	r, ok := s.reports[path]
	return r, ok
}

// Paths returns the keys in insertion order.
func (s *ReportSet) Paths() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of distinct paths.
func (s *ReportSet) Len() int {
	return len(s.order)
}
