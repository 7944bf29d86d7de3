package scanner

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/atikulmunna/logsummary/internal/model"
	"github.com/atikulmunna/logsummary/internal/parser"
)

// maxLineSize bounds a single line held in memory.
const maxLineSize = 16 * 1024 * 1024

// ErrorKind distinguishes per-file failures.
type ErrorKind int

const (
	NotFound ErrorKind = iota
	ReadFailed
)

// ScanError describes why a file contributed no results.
type ScanError struct {
	Path string
	Kind ErrorKind
	Err  error
}

func (e *ScanError) Error() string {
	if e.Kind == NotFound {
		return "File not found: " + e.Path
	}
	return fmt.Sprintf("Error reading %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// Scanner reads log files line by line and classifies each line.
type Scanner struct {
	parser parser.Parser
	diag   io.Writer // receives "[!]" notices for unreadable files
}

// New creates a Scanner. Per-file failures are reported to diag.
func New(p parser.Parser, diag io.Writer) *Scanner {
	return &Scanner{parser: p, diag: diag}
}

// ScanFile classifies every line of path. Failures are reported and yield an
// empty report; they never propagate to the caller.
func (s *Scanner) ScanFile(path string) model.FileReport {
	report, lines, err := s.scan(path)
	if err != nil {
		fmt.Fprintf(s.diag, "[!] %v\n", err)
		slog.Debug("scan failed", "path", path, "error", err)
		return model.NewFileReport()
	}

	slog.Debug("scanned file", "path", path, "lines", lines, "matches", len(report.Matches))
	return report
}

// scan does the work of ScanFile and returns a *ScanError on failure.
func (s *Scanner) scan(path string) (model.FileReport, int, error) {
	report := model.NewFileReport()

	f, err := os.Open(path)
	if err != nil {
		return report, 0, classify(path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(transform.NewReader(f, permissive()))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	sc.Split(scanLines)

	var lines int
	for sc.Scan() {
		lines++
		if rec, ok := s.parser.Parse(sc.Text()); ok {
			report.Add(rec)
		}
	}
	if err := sc.Err(); err != nil {
		return model.NewFileReport(), lines, classify(path, err)
	}

	return report, lines, nil
}

func classify(path string, err error) *ScanError {
	kind := ReadFailed
	if errors.Is(err, fs.ErrNotExist) {
		kind = NotFound
	}
	return &ScanError{Path: path, Kind: kind, Err: err}
}

// permissive drops ill-formed UTF-8 sequences so decoding never fails.
func permissive() transform.Transformer {
	return runes.Remove(runes.Predicate(func(r rune) bool {
		return r == utf8.RuneError
	}))
}

// scanLines is a bufio.SplitFunc that accepts "\n", "\r\n" and a lone "\r"
// as line terminators. Terminators are not included in the token.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// '\r': need one more byte to tell "\r\n" from a lone "\r".
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
