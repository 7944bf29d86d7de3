package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/atikulmunna/logsummary/internal/model"
)

// DefaultReportDir is where CSV summaries are written unless configured otherwise.
const DefaultReportDir = "reports"

var csvHeader = []string{"source_file", "level", "count", "sample_message"}

// CSVReporter writes one timestamped CSV summary per run.
type CSVReporter struct {
	Dir string
	Now func() time.Time
}

// NewCSVReporter returns a reporter writing into dir using the local clock.
func NewCSVReporter(dir string) *CSVReporter {
	return &CSVReporter{Dir: dir, Now: time.Now}
}

// Write creates Dir if needed and writes log_summary_<YYYYMMDD_HHMMSS>.csv.
// Each file contributes one row per severity with a non-zero count; every
// row of a file carries the same sample message. Returns the CSV path.
func (r *CSVReporter) Write(set *model.ReportSet) (string, error) {
	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	name := fmt.Sprintf("log_summary_%s.csv", r.Now().Format("20060102_150405"))
	path := filepath.Join(r.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}

	if err := writeRows(csv.NewWriter(f), set); err != nil {
		f.Close()
		return "", fmt.Errorf("write report %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report %s: %w", path, err)
	}
	return path, nil
}

func writeRows(w *csv.Writer, set *model.ReportSet) error {
	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, src := range set.Paths() {
		report, _ := set.Get(src)
		sample := report.Sample()

		for _, sev := range model.Severities() {
			c := report.Count(sev)
			if c == 0 {
				continue
			}
			if err := w.Write([]string{src, string(sev), strconv.Itoa(c), sample}); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}
