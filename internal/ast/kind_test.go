package ast

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/web-infra-dev/rslint-core/internal/span"
)

func TestKindStringReturnsRegisteredName(t *testing.T) {
	assert.Equal(t, KindProgram.String(), "Program")
	assert.Equal(t, KindBinaryExpression.String(), "BinaryExpression")
}

func TestKindStringFallsBackToUnknownPastKindCount(t *testing.T) {
	assert.Equal(t, Kind(KindCount+1000).String(), "Unknown")
}

func TestEveryKindBelowCountHasAName(t *testing.T) {
	for k := KindInvalid + 1; int(k) < KindCount; k++ {
		assert.Assert(t, k.String() != "Unknown", "kind %d has no registered name", int(k))
	}
}

func TestNewStringLiteralSetsKindAndValue(t *testing.T) {
	lit := NewStringLiteral(span.New(0, 5), "abc", `"abc"`)
	assert.Equal(t, lit.Kind(), KindStringLiteral)
	assert.Equal(t, lit.Value, "abc")
	assert.Equal(t, lit.Raw, `"abc"`)
}

func TestNewBindingIdentifierSetsKindAndName(t *testing.T) {
	id := NewBindingIdentifier(span.Zero, "x")
	assert.Equal(t, id.Kind(), KindBindingIdentifier)
	assert.Equal(t, id.Name, "x")
}

func TestNewProgramStoresBodyAndSourceType(t *testing.T) {
	body := []Statement{}
	p := NewProgram(span.New(0, 100), SourceType{IsModule: true}, nil, body)
	assert.Equal(t, p.Kind(), KindProgram)
	assert.Assert(t, p.SourceType.IsModule)
}
