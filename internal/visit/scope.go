package visit

import "github.com/web-infra-dev/rslint-core/internal/ast"

// ScopeFlags marks what kind of lexical scope a BlockStatement, Function,
// or Program entry represents. Rules and the semantic pass both need this
// to tell, for instance, a function body's top-level block apart from an
// ordinary nested block, or to know whether `this` is rebindable here.
type ScopeFlags uint16

const (
	ScopeFlagsNone ScopeFlags = 0

	ScopeFlagsTop ScopeFlags = 1 << iota
	ScopeFlagsFunction
	ScopeFlagsArrow
	ScopeFlagsConstructor
	ScopeFlagsGetAccessor
	ScopeFlagsSetAccessor
	ScopeFlagsClassStaticBlock
	ScopeFlagsTsModuleBlock
	ScopeFlagsStrictMode
)

// Has reports whether every bit in mask is set.
func (f ScopeFlags) Has(mask ScopeFlags) bool { return f&mask == mask }

// Union combines flags, used when entering a scope that inherits strictness
// from its parent (e.g. any scope nested inside a class body is strict).
func (f ScopeFlags) Union(other ScopeFlags) ScopeFlags { return f | other }

// hasUseStrictDirective reports whether directives opens with a literal
// "use strict" prologue directive, the one source-level signal a Program
// or Function scope has for ScopeFlagsStrictMode.
func hasUseStrictDirective(directives []*ast.Directive) bool {
	for _, d := range directives {
		if d.Expression != nil && d.Expression.Value == "use strict" {
			return true
		}
	}
	return false
}
