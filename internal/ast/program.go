package ast

import "github.com/web-infra-dev/rslint-core/internal/span"

// SourceType distinguishes script/module/jsx/ts combinations the way oxc's
// SourceType does; rules and the parenthesization decider consult it for
// context-sensitive decisions (e.g. `for (let of x)` ambiguity only matters
// outside strict modules in some edge cases, and export-related kinds only
// exist when IsModule is true).
type SourceType struct {
	IsModule   bool
	IsTypeScript bool
	IsJSX      bool
}

// Program is the arena-allocated root of one file's AST.
type Program struct {
	Base
	SourceType SourceType
	Directives []*Directive
	Body       []Statement
}

func NewProgram(sp span.Span, sourceType SourceType, directives []*Directive, body []Statement) *Program {
	return &Program{Base: Base{NodeKind: KindProgram, NodeSpan: sp}, SourceType: sourceType, Directives: directives, Body: body}
}

// Directive is a prologue string-literal statement (e.g. "use strict").
type Directive struct {
	Base
	Expression *StringLiteral
	Raw        string
}

func (d *Directive) statementNode() {}

func NewDirective(sp span.Span, expr *StringLiteral, raw string) *Directive {
	return &Directive{Base: Base{NodeKind: KindDirective, NodeSpan: sp}, Expression: expr, Raw: raw}
}
