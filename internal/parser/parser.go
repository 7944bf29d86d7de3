package parser

import (
	"regexp"
	"strings"

	"github.com/atikulmunna/logsummary/internal/model"
)

// Parser classifies a raw log line.
// ok is false when the line carries no recognized severity keyword.
type Parser interface {
	Parse(raw string) (rec model.MatchRecord, ok bool)
}

var (
	// levelRe finds the leftmost whole-word severity keyword.
	levelRe = regexp.MustCompile(`(?i)\b(ERROR|WARNING|CRITICAL|INFO)\b`)

	// timestampRe matches one leading date prefix, either bracketed
	// ("[2024-01-15 10:22:01 UTC]") or bare with an optional time of day
	// ("2024/01/15T10:22:01.123+02:00").
	timestampRe = regexp.MustCompile(
		`^(?:\[\d{4}[-/]\d{2}[-/]\d{2}[^\]\r\n]*\]` +
			`|\[?\d{4}[-/]\d{2}[-/]\d{2}` +
			`(?:[T ]\d{2}:\d{2}(?::\d{2})?(?:[.,]\d+)?(?:Z|[+-]\d{2}:?\d{2})?)?\]?)\s*`)
)

// KeywordParser detects severity by keyword and strips timestamp prefixes.
type KeywordParser struct{}

func NewKeywordParser() *KeywordParser { return &KeywordParser{} }

func (p *KeywordParser) Parse(raw string) (model.MatchRecord, bool) {
	m := levelRe.FindStringSubmatch(raw)
	if m == nil {
		return model.MatchRecord{}, false
	}

	// The regex only admits known keywords, so this cannot fail.
	sev, _ := model.ParseSeverity(m[1])

	return model.MatchRecord{
		Severity: sev,
		Message:  strings.TrimSpace(StripTimestamp(raw)),
	}, true
}

// StripTimestamp removes a single leading date/time prefix from line.
// The rest of the line is returned untouched.
func StripTimestamp(line string) string {
	loc := timestampRe.FindStringIndex(line)
	if loc == nil {
		return line
	}
	return line[loc[1]:]
}
