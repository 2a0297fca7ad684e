package ast

import "github.com/web-infra-dev/rslint-core/internal/span"

// Node is implemented by every concrete AST struct. Kind is a dense integer
// so the rule runner can index a bitset by it directly (spec.md section 8);
// GetSpan is what every diagnostic label ultimately points at.
type Node interface {
	Kind() Kind
	GetSpan() span.Span
}

// Base is embedded by every concrete node and supplies Kind/GetSpan without
// repeating the boilerplate per variant. NodeKind is set once at
// construction time and never mutated.
type Base struct {
	NodeKind Kind
	NodeSpan span.Span
}

func (b *Base) Kind() Kind          { return b.NodeKind }
func (b *Base) GetSpan() span.Span  { return b.NodeSpan }

// Marker interfaces group nodes by grammatical position, the way oxc's enums
// do with match arms and kdy1-go-typescript-eslint does with Go interfaces.
// A concrete type satisfies one of these by embedding Base and adding the
// corresponding unexported marker method; the method body is never called,
// it exists purely to make the implements-relationship a compile error if a
// struct is attached to the wrong family.
type (
	Statement interface {
		Node
		statementNode()
	}
	Declaration interface {
		Statement
		declarationNode()
	}
	Expression interface {
		Node
		expressionNode()
	}
	Pattern interface {
		Node
		patternNode()
	}
	AssignmentTarget interface {
		Node
		assignmentTargetNode()
	}
	TSType interface {
		Node
		tsTypeNode()
	}
	JSXChild interface {
		Node
		jsxChildNode()
	}
	ModuleDeclaration interface {
		Statement
		moduleDeclarationNode()
	}
	ClassElement interface {
		Node
		classElementNode()
	}
)
