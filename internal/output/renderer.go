package output

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/atikulmunna/logsummary/internal/model"
)

const bannerWidth = 40

// Summary prints the per-file severity table to a terminal or any writer.
type Summary struct {
	w      io.Writer
	styles map[model.Severity]lipgloss.Style
	source lipgloss.Style
}

// NewSummary returns a Summary writing to w. Colors are only emitted when
// w is a terminal that supports them.
func NewSummary(w io.Writer) *Summary {
	re := lipgloss.NewRenderer(w)
	return &Summary{
		w: w,
		styles: map[model.Severity]lipgloss.Style{
			model.SeverityError:    re.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			model.SeverityWarning:  re.NewStyle().Foreground(lipgloss.Color("220")),
			model.SeverityCritical: re.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("196")).Bold(true),
			model.SeverityInfo:     re.NewStyle().Foreground(lipgloss.Color("245")),
		},
		source: re.NewStyle().Foreground(lipgloss.Color("39")), // cyan
	}
}

// Render writes the banner, one block per file, and the report location.
func (s *Summary) Render(set *model.ReportSet, reportDir string) error {
	rule := strings.Repeat("=", bannerWidth)

	var b strings.Builder
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "Log Parser Summary")
	fmt.Fprintln(&b, rule)

	for _, src := range set.Paths() {
		report, _ := set.Get(src)
		fmt.Fprintf(&b, "\nFile: %s\n", s.source.Render(src))
		for _, sev := range model.Severities() {
			fmt.Fprintf(&b, "  %s : %d\n", s.levelTag(sev), report.Count(sev))
		}
	}

	fmt.Fprintf(&b, "\nReports saved to %s\n", displayDir(reportDir))

	_, err := io.WriteString(s.w, b.String())
	return err
}

func (s *Summary) levelTag(sev model.Severity) string {
	padded := fmt.Sprintf("%-8s", sev)
	if st, ok := s.styles[sev]; ok {
		return st.Render(padded)
	}
	return padded
}

// displayDir formats dir the way the summary footer shows it ("./reports/").
func displayDir(dir string) string {
	dir = filepath.ToSlash(filepath.Clean(dir))
	switch {
	case dir == ".":
		return "./"
	case strings.HasPrefix(dir, "/"), strings.HasPrefix(dir, "../"), filepath.IsAbs(dir):
		return dir + "/"
	default:
		return "./" + dir + "/"
	}
}
