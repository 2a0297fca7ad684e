package rule

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/web-infra-dev/rslint-core/internal/ast"
)

func TestKindSetAddAndHas(t *testing.T) {
	var s KindSet
	assert.Assert(t, s.IsEmpty())

	s.Add(ast.KindImportDeclaration)
	s.Add(ast.KindCallExpression)

	assert.Assert(t, s.Has(ast.KindImportDeclaration))
	assert.Assert(t, s.Has(ast.KindCallExpression))
	assert.Assert(t, !s.Has(ast.KindBinaryExpression))
	assert.Assert(t, !s.IsEmpty())
}

func TestKindSetSpansMultipleWords(t *testing.T) {
	// KindExportSpecifier is the last declared kind, well past bit 64, so
	// this exercises the word-array indexing rather than a single uint64.
	s := NewKindSet(ast.KindExportSpecifier)
	assert.Assert(t, s.Has(ast.KindExportSpecifier))
	assert.Assert(t, !s.Has(ast.KindProgram))
}

func TestKindSetKindsIsSortedAndExact(t *testing.T) {
	s := NewKindSet(ast.KindCallExpression, ast.KindBinaryExpression, ast.KindProgram)
	got := s.Kinds()
	assert.DeepEqual(t, got, []ast.Kind{ast.KindProgram, ast.KindBinaryExpression, ast.KindCallExpression})
}

func TestNewKindSetEmptyIsNoneSentinel(t *testing.T) {
	s := NewKindSet()
	assert.Assert(t, s.IsEmpty())
	assert.Equal(t, len(s.Kinds()), 0)
}
