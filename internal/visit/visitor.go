// Package visit implements the single generic traversal every rule and the
// parenthesization decider's ancestor-stack builder rides on top of. It
// mirrors oxc_ast's Visit trait: a default walk for every node kind, with
// enter/leave hooks a caller can override instead of re-implementing
// descent into every field by hand.
package visit

import "github.com/web-infra-dev/rslint-core/internal/ast"

// Visitor receives callbacks as Walk descends into and back out of the
// tree. EnterScope/LeaveScope bracket only the nodes that actually
// introduce a new lexical scope (Program, Function, Arrow, block, catch
// clause, switch, a for/for-in/for-of head with a lexical declaration,
// class expressions, class static blocks, TS modules, TS enums and TS type
// parameters); every other node only gets EnterNode/LeaveNode.
type Visitor interface {
	EnterNode(node ast.Node)
	LeaveNode(node ast.Node)
	EnterScope(flags ScopeFlags, node ast.Node)
	LeaveScope(node ast.Node)
}

// BaseVisitor is a no-op Visitor meant to be embedded; concrete visitors
// override only the hooks they care about.
type BaseVisitor struct{}

func (BaseVisitor) EnterNode(ast.Node)            {}
func (BaseVisitor) LeaveNode(ast.Node)            {}
func (BaseVisitor) EnterScope(ScopeFlags, ast.Node) {}
func (BaseVisitor) LeaveScope(ast.Node)           {}

// Walk drives a single depth-first traversal of node and everything beneath
// it, invoking v's hooks in preorder/postorder. A nil node is a no-op so
// callers don't have to guard every optional child field before recursing.
func Walk(v Visitor, node ast.Node) {
	if node == nil || isNilNode(node) {
		return
	}
	flags, enters := scopeFlagsFor(node)
	v.EnterNode(node)
	if enters {
		v.EnterScope(flags, node)
	}
	walkChildren(v, node)
	if enters {
		v.LeaveScope(node)
	}
	v.LeaveNode(node)
}

// scopeFlagsFor reports the ScopeFlags a node introduces, and whether it
// introduces a scope at all. Program is ScopeFlagsTop; ordinary
// FunctionBody/BlockStatement pairs inherit flags from the Function or
// ArrowFunctionExpression that owns them rather than being scopes twice.
func scopeFlagsFor(node ast.Node) (ScopeFlags, bool) {
	switch n := node.(type) {
	case *ast.Program:
		flags := ScopeFlagsTop
		if hasUseStrictDirective(n.Directives) {
			flags |= ScopeFlagsStrictMode
		}
		return flags, true
	case *ast.Function:
		flags := ScopeFlagsFunction
		if n.Body != nil && hasUseStrictDirective(n.Body.Directives) {
			flags |= ScopeFlagsStrictMode
		}
		return flags, true
	case *ast.ArrowFunctionExpression:
		flags := ScopeFlagsFunction | ScopeFlagsArrow
		if !n.IsExprBody && n.Body != nil && hasUseStrictDirective(n.Body.Directives) {
			flags |= ScopeFlagsStrictMode
		}
		return flags, true
	case *ast.BlockStatement:
		return ScopeFlagsNone, true
	case *ast.CatchClause:
		return ScopeFlagsNone, true
	case *ast.SwitchStatement:
		return ScopeFlagsNone, true
	case *ast.ForStatement:
		if introducesLexicalBinding(n.Init) {
			return ScopeFlagsNone, true
		}
	case *ast.ForInStatement:
		if introducesLexicalBinding(n.Left) {
			return ScopeFlagsNone, true
		}
	case *ast.ForOfStatement:
		if introducesLexicalBinding(n.Left) {
			return ScopeFlagsNone, true
		}
	case *ast.Class:
		if n.Kind() == ast.KindClassExpression {
			return ScopeFlagsNone, true
		}
	case *ast.StaticBlock:
		return ScopeFlagsClassStaticBlock, true
	case *ast.TSModuleDeclaration:
		return ScopeFlagsTsModuleBlock, true
	case *ast.TSEnumDeclaration:
		return ScopeFlagsNone, true
	case *ast.TSTypeParameter:
		return ScopeFlagsNone, true
	}
	return ScopeFlagsNone, false
}

// introducesLexicalBinding reports whether a for/for-in/for-of head's
// init/left clause is a `let`/`const`/`using`/`await using` declaration,
// the one case in which the loop head itself introduces a per-iteration
// scope rather than reusing whichever scope surrounds the loop.
func introducesLexicalBinding(node ast.Node) bool {
	switch n := node.(type) {
	case *ast.VariableDeclaration:
		return n.DeclKind != ast.VarVar
	case *ast.UsingDeclaration:
		return true
	}
	return false
}

// isNilNode reports whether an interface value wraps a typed nil pointer,
// the classic Go trap when an optional field is declared as the interface
// type but left as a nil *ConcreteType rather than a true nil interface.
func isNilNode(node ast.Node) bool {
	switch n := node.(type) {
	case *ast.BlockStatement:
		return n == nil
	case *ast.Function:
		return n == nil
	case *ast.FunctionBody:
		return n == nil
	case *ast.Class:
		return n == nil
	case *ast.CatchClause:
		return n == nil
	}
	return false
}
