package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/atikulmunna/logsummary/internal/aggregator"
	"github.com/atikulmunna/logsummary/internal/config"
	"github.com/atikulmunna/logsummary/internal/inputs"
	"github.com/atikulmunna/logsummary/internal/model"
	"github.com/atikulmunna/logsummary/internal/output"
	"github.com/atikulmunna/logsummary/internal/parser"
	"github.com/atikulmunna/logsummary/internal/scanner"
)

// summarize scans args, writes the CSV report, then prints the summary and
// report path to out. Unreadable inputs are reported on out and skipped;
// only a failure to write the report is returned.
func summarize(out io.Writer, cfg config.Config, args []string) error {
	paths := inputs.Expand(args, cfg.Glob)

	sc := scanner.New(parser.NewKeywordParser(), out)
	set := aggregator.New(sc).Run(paths)

	csvPath, err := output.NewCSVReporter(cfg.ReportDir).Write(set)
	if err != nil {
		return err
	}

	if err := output.NewSummary(out).Render(set, cfg.ReportDir); err != nil {
		return fmt.Errorf("print summary: %w", err)
	}

	stats := aggregator.Snapshot(set)
	slog.Info("summary complete",
		"files", stats.Files,
		"events", stats.TotalEvents,
		"errors", stats.LevelCounts[model.SeverityError],
		"critical", stats.LevelCounts[model.SeverityCritical],
		"report", csvPath,
	)

	_, err = fmt.Fprintf(out, "\nCSV report: %s\n", csvPath)
	return err
}
