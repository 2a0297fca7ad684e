package diagnostic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"

	"github.com/web-infra-dev/rslint-core/internal/span"
)

func TestParseSeverityAcceptsStringFormsCaseInsensitively(t *testing.T) {
	for _, v := range []string{"off", "OFF", "Warn", "warning", "ERROR"} {
		_, err := ParseSeverity(v)
		assert.NilError(t, err)
	}

	sev, err := ParseSeverity("Error")
	assert.NilError(t, err)
	assert.Equal(t, sev, SeverityError)
}

func TestParseSeverityAcceptsNumericForms(t *testing.T) {
	sev, err := ParseSeverity(float64(2))
	assert.NilError(t, err)
	assert.Equal(t, sev, SeverityError)

	sev, err = ParseSeverity(1)
	assert.NilError(t, err)
	assert.Equal(t, sev, SeverityWarn)
}

func TestParseSeverityRejectsUnknownStringOrOutOfRangeNumber(t *testing.T) {
	_, err := ParseSeverity("catastrophic")
	assert.ErrorContains(t, err, "catastrophic")

	_, err = ParseSeverity(float64(9))
	assert.ErrorContains(t, err, "out of range")

	_, err = ParseSeverity(true)
	assert.ErrorContains(t, err, "unsupported")
}

func TestSeverityStringRoundTrip(t *testing.T) {
	assert.Equal(t, SeverityOff.String(), "off")
	assert.Equal(t, SeverityWarn.String(), "warn")
	assert.Equal(t, SeverityError.String(), "error")
}

func TestNewBuildsSingleLabelDiagnostic(t *testing.T) {
	sp := span.New(3, 7)
	d := New("no-restricted-imports", SeverityError, "boom", sp)

	assert.Equal(t, d.RuleName, "no-restricted-imports")
	assert.Equal(t, d.Severity, SeverityError)
	assert.Equal(t, len(d.Labels), 1)
	assert.Equal(t, d.Labels[0].Span, sp)
	assert.Equal(t, d.Help, "")
}

func TestWithHelpReturnsCopyAndLeavesOriginalUntouched(t *testing.T) {
	base := New("rule", SeverityWarn, "msg", span.Zero)
	withHelp := base.WithHelp("try this instead")

	assert.Equal(t, base.Help, "")
	assert.Equal(t, withHelp.Help, "try this instead")
}

func TestWithHelpProducesExpectedDiagnosticShape(t *testing.T) {
	got := New("rule", SeverityError, "msg", span.New(1, 2)).WithHelp("fix it")
	want := Diagnostic{
		RuleName: "rule",
		Severity: SeverityError,
		Message:  "msg",
		Labels:   []Label{{Span: span.New(1, 2)}},
		Help:     "fix it",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("diagnostic mismatch (-want +got):\n%s", diff)
	}
}

func TestSinkAccumulatesInOrder(t *testing.T) {
	sink := NewSink()
	assert.Equal(t, sink.Len(), 0)

	sink.Add(New("a", SeverityWarn, "first", span.Zero))
	sink.Add(New("b", SeverityError, "second", span.Zero))

	assert.Equal(t, sink.Len(), 2)
	all := sink.All()
	assert.Equal(t, all[0].RuleName, "a")
	assert.Equal(t, all[1].RuleName, "b")
}
