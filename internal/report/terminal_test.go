package report

import (
	"bytes"
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/web-infra-dev/rslint-core/internal/diagnostic"
	"github.com/web-infra-dev/rslint-core/internal/span"
)

func TestTerminalWriteIncludesPathSeverityMessageAndRuleName(t *testing.T) {
	var buf bytes.Buffer
	terminal := NewTerminal(&buf, 80)

	d := diagnostic.New("no-restricted-imports", diagnostic.SeverityError, "boom", span.New(3, 7))
	terminal.Write("app.ts", []diagnostic.Diagnostic{d})

	out := buf.String()
	assert.Assert(t, strings.Contains(out, "app.ts"))
	assert.Assert(t, strings.Contains(out, "[3:7]"))
	assert.Assert(t, strings.Contains(out, "error"))
	assert.Assert(t, strings.Contains(out, "boom"))
	assert.Assert(t, strings.Contains(out, "(no-restricted-imports)"))
}

func TestTerminalWriteRendersWarnSeverityDistinctlyFromError(t *testing.T) {
	var buf bytes.Buffer
	terminal := NewTerminal(&buf, 80)

	d := diagnostic.New("some-rule", diagnostic.SeverityWarn, "careful", span.Zero)
	terminal.Write("app.ts", []diagnostic.Diagnostic{d})

	assert.Assert(t, strings.Contains(buf.String(), "warning"))
}

func TestTerminalWriteAppendsHelpLineWhenPresent(t *testing.T) {
	var buf bytes.Buffer
	terminal := NewTerminal(&buf, 80)

	d := diagnostic.New("rule", diagnostic.SeverityError, "msg", span.Zero).WithHelp("use this instead")
	terminal.Write("app.ts", []diagnostic.Diagnostic{d})

	assert.Assert(t, strings.Contains(buf.String(), "help: use this instead"))
}

func TestTerminalWriteOmitsHelpLineWhenAbsent(t *testing.T) {
	var buf bytes.Buffer
	terminal := NewTerminal(&buf, 80)

	d := diagnostic.New("rule", diagnostic.SeverityError, "msg", span.Zero)
	terminal.Write("app.ts", []diagnostic.Diagnostic{d})

	assert.Assert(t, !strings.Contains(buf.String(), "help:"))
}

func TestNewTerminalFallsBackToDefaultWidthWhenNonPositive(t *testing.T) {
	terminal := NewTerminal(&bytes.Buffer{}, 0)
	assert.Equal(t, terminal.Width, defaultTerminalWidth)

	terminal = NewTerminal(&bytes.Buffer{}, -5)
	assert.Equal(t, terminal.Width, defaultTerminalWidth)
}

func TestWrapLeavesShortStringsUntouched(t *testing.T) {
	assert.Equal(t, wrap("short message", 80), "short message")
}

func TestWrapBreaksOnWhitespaceBeyondWidth(t *testing.T) {
	original := "one two three four five six seven eight nine ten"
	wrapped := wrap(original, 10)

	assert.Assert(t, strings.Contains(wrapped, "\n"))
	assert.Equal(t, strings.ReplaceAll(wrapped, "\n", " "), original)
}
