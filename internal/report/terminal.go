// Package report renders diagnostic.Diagnostic slices to a terminal or to
// JSON for CI consumption.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/web-infra-dev/rslint-core/internal/diagnostic"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	warnColor  = color.New(color.FgYellow, color.Bold)
	ruleColor  = color.New(color.Faint)
)

// defaultTerminalWidth is used wherever the ioctl probe fails (not a tty,
// or an unsupported platform) — 80 columns is the same fallback the
// teacher's own terminal-aware output uses.
const defaultTerminalWidth = 80

// Terminal renders diagnostics as colorized, human-readable lines, wrapping
// the message body to width if it doesn't fit on one line.
type Terminal struct {
	Out   io.Writer
	Width int
}

func NewTerminal(out io.Writer, width int) *Terminal {
	if width <= 0 {
		width = defaultTerminalWidth
	}
	return &Terminal{Out: out, Width: width}
}

// Write renders one file's diagnostics, path first for grouping.
func (t *Terminal) Write(path string, diagnostics []diagnostic.Diagnostic) {
	for _, d := range diagnostics {
		severityLabel := warnColor.Sprint("warning")
		if d.Severity == diagnostic.SeverityError {
			severityLabel = errorColor.Sprint("error")
		}
		label := ""
		if len(d.Labels) > 0 {
			label = fmt.Sprintf(" [%d:%d]", d.Labels[0].Span.Start, d.Labels[0].Span.End)
		}
		fmt.Fprintf(t.Out, "%s%s %s %s %s\n", path, label, severityLabel, wrap(d.Message, t.Width), ruleColor.Sprintf("(%s)", d.RuleName))
		if d.Help != "" {
			fmt.Fprintf(t.Out, "  help: %s\n", wrap(d.Help, t.Width))
		}
	}
}

// wrap breaks s into width-limited lines on whitespace boundaries so a long
// diagnostic message doesn't run off the edge of a narrow terminal.
func wrap(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	var out []byte
	lineLen := 0
	lastSpace := -1
	for i := 0; i < len(s); i++ {
		out = append(out, s[i])
		lineLen++
		if s[i] == ' ' {
			lastSpace = len(out) - 1
		}
		if lineLen >= width && lastSpace >= 0 {
			out[lastSpace] = '\n'
			lineLen = len(out) - lastSpace - 1
			lastSpace = -1
		}
	}
	return string(out)
}
