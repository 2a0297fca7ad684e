// Package diagnostic defines the stable output shape every rule and the
// config loader report through: a severity, a message, one or more source
// labels, and an optional help string.
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/web-infra-dev/rslint-core/internal/span"
)

// Severity is off/warn/error, matching ESLint's three-level convention the
// teacher's config format also uses.
type Severity uint8

const (
	SeverityOff Severity = iota
	SeverityWarn
	SeverityError
)

// ParseSeverity accepts the config file's string and numeric spellings
// ("off"/"warn"/"error", 0/1/2), case-insensitively for the string form.
func ParseSeverity(v any) (Severity, error) {
	switch val := v.(type) {
	case string:
		switch strings.ToLower(val) {
		case "off":
			return SeverityOff, nil
		case "warn", "warning":
			return SeverityWarn, nil
		case "error":
			return SeverityError, nil
		}
		return SeverityOff, fmt.Errorf("diagnostic: unknown severity %q", val)
	case float64:
		return severityFromInt(int(val))
	case int:
		return severityFromInt(val)
	}
	return SeverityOff, fmt.Errorf("diagnostic: unsupported severity value %v", v)
}

func severityFromInt(n int) (Severity, error) {
	switch n {
	case 0:
		return SeverityOff, nil
	case 1:
		return SeverityWarn, nil
	case 2:
		return SeverityError, nil
	}
	return SeverityOff, fmt.Errorf("diagnostic: severity out of range %d", n)
}

func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	}
	return "unknown"
}

// Label attaches a human-readable note to a specific source range; a
// Diagnostic may carry more than one, e.g. "defined here" plus "used here".
type Label struct {
	Span    span.Span
	Message string
}

// Diagnostic is the output of one rule firing once. RuleName lets a
// reporter group or filter by rule the way ESLint's `ruleId` does.
type Diagnostic struct {
	RuleName string
	Severity Severity
	Message  string
	Labels   []Label
	Help     string
}

// New builds a Diagnostic with a single primary label at sp.
func New(ruleName string, severity Severity, message string, sp span.Span) Diagnostic {
	return Diagnostic{
		RuleName: ruleName,
		Severity: severity,
		Message:  message,
		Labels:   []Label{{Span: sp, Message: ""}},
	}
}

// WithHelp returns a copy of d with Help set, for chaining at the call site.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}

// Sink accumulates diagnostics as the rule runner produces them. Rules
// never see a Sink directly — they go through rule.Context's ReportNode,
// ReportNodeWithHelp and ReportSpan, which append to whichever Sink the
// Runner was constructed with.
type Sink struct {
	diagnostics []Diagnostic
}

func NewSink() *Sink { return &Sink{} }

func (s *Sink) Add(d Diagnostic) { s.diagnostics = append(s.diagnostics, d) }

func (s *Sink) All() []Diagnostic { return s.diagnostics }

func (s *Sink) Len() int { return len(s.diagnostics) }
