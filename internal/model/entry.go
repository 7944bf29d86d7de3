package model

import "strings"

// Severity is a log level keyword recognized by the classifier.
type Severity string

const (
	SeverityError    Severity = "ERROR"
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
	SeverityInfo     Severity = "INFO"
)

// Severities returns the recognized levels in report order.
func Severities() []Severity {
	return []Severity{SeverityError, SeverityWarning, SeverityCritical, SeverityInfo}
}

// ParseSeverity matches s case-insensitively against the recognized levels.
func ParseSeverity(s string) (Severity, bool) {
	sev := Severity(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Severities() {
		if sev == known {
			return sev, true
		}
	}
	return "", false
}

// IsSample reports whether records of this severity qualify as a file's sample message.
func (s Severity) IsSample() bool {
	return s == SeverityError || s == SeverityCritical
}

// MatchRecord is a single classified log line.
type MatchRecord struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"` // line with timestamp prefix removed
}
