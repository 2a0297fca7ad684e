package ast

// ImportPhase distinguishes `import`, `import type`, and `import defer`.
type ImportPhase uint8

const (
	ImportPhaseNone ImportPhase = iota
	ImportPhaseType
	ImportPhaseDefer
)

// ImportDeclarationSpecifier is ImportSpecifier, ImportDefaultSpecifier, or
// ImportNamespaceSpecifier.
type ImportDeclarationSpecifier interface{ Node }

// ImportDeclaration is `import Specifiers from Source [with Attributes];`,
// or the bare `import Source;` side-effect form when Specifiers is empty.
type ImportDeclaration struct {
	Base
	Specifiers []ImportDeclarationSpecifier
	Source     *StringLiteral
	Phase      ImportPhase
	WithClause *WithClause // may be nil
}

func (*ImportDeclaration) statementNode()          {}
func (*ImportDeclaration) moduleDeclarationNode()  {}

// ImportSpecifier is `Imported [as Local]` inside `{ }`.
type ImportSpecifier struct {
	Base
	Imported  Expression // IdentifierName or StringLiteral
	Local     *BindingIdentifier
	ImportKind ImportPhase
}

// ImportDefaultSpecifier is the bare `Local` in `import Local from "x"`.
type ImportDefaultSpecifier struct {
	Base
	Local *BindingIdentifier
}

// ImportNamespaceSpecifier is `* as Local`.
type ImportNamespaceSpecifier struct {
	Base
	Local *BindingIdentifier
}

// ImportAttribute is one `key: value` pair of an import attributes clause.
type ImportAttribute struct {
	Base
	Key   Expression // IdentifierName or StringLiteral
	Value *StringLiteral
}

// WithClause is the `with { Attributes }` suffix of an import/export.
type WithClause struct {
	Base
	Attributes []*ImportAttribute
}

// ExportAllDeclaration is `export * [as Exported] from Source [with Attrs];`.
type ExportAllDeclaration struct {
	Base
	Exported   Expression // IdentifierName or StringLiteral, may be nil
	Source     *StringLiteral
	WithClause *WithClause
}

func (*ExportAllDeclaration) statementNode()         {}
func (*ExportAllDeclaration) moduleDeclarationNode() {}

// ExportDefaultDeclarationValue is a Declaration or an Expression — a
// default export can name a function/class declaration or any expression.
type ExportDefaultDeclarationValue interface{ Node }

type ExportDefaultDeclaration struct {
	Base
	Declaration ExportDefaultDeclarationValue
}

func (*ExportDefaultDeclaration) statementNode()         {}
func (*ExportDefaultDeclaration) moduleDeclarationNode() {}

// ExportNamedDeclaration is `export Declaration;`, `export { Specifiers };`,
// or `export { Specifiers } from Source;`. Declaration is non-nil only for
// the first form, mutually exclusive with a non-empty Specifiers/Source.
type ExportNamedDeclaration struct {
	Base
	Declaration Declaration // may be nil
	Specifiers  []*ExportSpecifier
	Source      *StringLiteral // may be nil
	WithClause  *WithClause
}

func (*ExportNamedDeclaration) statementNode()         {}
func (*ExportNamedDeclaration) moduleDeclarationNode() {}

// ExportSpecifier is `Local [as Exported]` inside `export { }`.
type ExportSpecifier struct {
	Base
	Local    Expression // IdentifierName or StringLiteral
	Exported Expression // IdentifierName or StringLiteral
}
