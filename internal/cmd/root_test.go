package cmd

import (
	"bytes"
	"encoding/csv"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes a fresh root command inside an isolated working directory.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestNoArgsPrintsUsage(t *testing.T) {
	out, err := runCLI(t)

	if !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if !strings.Contains(out, "Usage:") {
		t.Errorf("expected usage line, got %q", out)
	}
	if _, statErr := os.Stat("reports"); !os.IsNotExist(statErr) {
		t.Error("expected no report directory to be created")
	}
}

func TestSummarizeMissingAndWarning(t *testing.T) {
	logDir := t.TempDir()
	missing := filepath.Join(logDir, "missing.log")
	warn := filepath.Join(logDir, "warn.log")
	if err := os.WriteFile(warn, []byte("2024-01-15 10:22:01 WARNING queue depth high\nplain line\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, missing, warn)
	if err != nil {
		t.Fatalf("expected success despite missing file, got %v", err)
	}

	if !strings.Contains(out, "[!] File not found: "+missing) {
		t.Errorf("expected not-found notice, got:\n%s", out)
	}
	if strings.Count(out, "File: ") != 2 {
		t.Errorf("expected two file blocks, got:\n%s", out)
	}
	if !strings.Contains(out, "Reports saved to ./reports/") {
		t.Errorf("expected report footer, got:\n%s", out)
	}

	idx := strings.Index(out, "CSV report: ")
	if idx < 0 {
		t.Fatalf("expected CSV path in output, got:\n%s", out)
	}
	csvPath := strings.TrimSpace(out[idx+len("CSV report: "):])
	if !strings.HasPrefix(csvPath, filepath.Join("reports", "log_summary_")) {
		t.Errorf("unexpected CSV path %q", csvPath)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected header plus one data row, got %v", rows)
	}
	row := rows[1]
	if row[0] != warn || row[1] != "WARNING" || row[2] != "1" || row[3] != "" {
		t.Errorf("unexpected data row %v", row)
	}
}

func TestSummarizeReportDirFlag(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(logPath, []byte("ERROR boom\nCRITICAL worse\n"), 0644); err != nil {
		t.Fatal(err)
	}
	reportDir := filepath.Join(t.TempDir(), "nested", "out")

	out, err := runCLI(t, "--report-dir", reportDir, logPath)
	if err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(reportDir)
	if err != nil {
		t.Fatalf("expected report dir to be created: %v", err)
	}
	if len(entries) != 1 || !strings.HasSuffix(entries[0].Name(), ".csv") {
		t.Errorf("expected one CSV report, got %v", entries)
	}
	if !strings.Contains(out, "Reports saved to "+filepath.ToSlash(reportDir)+"/") {
		t.Errorf("expected footer to name %s, got:\n%s", reportDir, out)
	}
}

func TestSummarizeGlob(t *testing.T) {
	logDir := t.TempDir()
	for _, name := range []string{"a.log", "b.log"} {
		if err := os.WriteFile(filepath.Join(logDir, name), []byte("INFO up\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	out, err := runCLI(t, "--glob", filepath.Join(logDir, "*.log"))
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "File: "+filepath.Join(logDir, "a.log")) ||
		!strings.Contains(out, "File: "+filepath.Join(logDir, "b.log")) {
		t.Errorf("expected both expanded files in summary, got:\n%s", out)
	}
}

func TestSummarizeReportWriteFailure(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(logPath, []byte("INFO up\n"), 0644); err != nil {
		t.Fatal(err)
	}
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := runCLI(t, "--report-dir", blocker, logPath)
	if err == nil {
		t.Fatal("expected report write failure to be returned")
	}
	if errors.Is(err, errUsage) {
		t.Errorf("expected write error, got usage error")
	}
}
