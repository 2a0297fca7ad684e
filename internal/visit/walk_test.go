package visit

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/web-infra-dev/rslint-core/internal/ast"
	"github.com/web-infra-dev/rslint-core/internal/span"
)

// recorder logs every EnterNode/LeaveNode kind in order, plus scope
// enter/leave markers, so tests can assert on traversal shape without
// hand-writing a visitor per test.
type recorder struct {
	BaseVisitor
	events []string
}

func (r *recorder) EnterNode(node ast.Node) {
	r.events = append(r.events, "enter:"+node.Kind().String())
}

func (r *recorder) LeaveNode(node ast.Node) {
	r.events = append(r.events, "leave:"+node.Kind().String())
}

func (r *recorder) EnterScope(flags ScopeFlags, node ast.Node) {
	r.events = append(r.events, "scope-enter:"+node.Kind().String())
}

func (r *recorder) LeaveScope(node ast.Node) {
	r.events = append(r.events, "scope-leave:"+node.Kind().String())
}

func ident(name string) *ast.IdentifierReference {
	return &ast.IdentifierReference{Base: ast.Base{NodeKind: ast.KindIdentifierReference, NodeSpan: span.Zero}, Name: name}
}

func TestWalkEnterLeaveIsProperlyNested(t *testing.T) {
	program := ast.NewProgram(span.Zero, ast.SourceType{IsModule: true}, nil, []ast.Statement{
		ast.NewExpressionStatement(span.Zero, ident("a")),
	})

	r := &recorder{}
	Walk(r, program)

	assert.DeepEqual(t, r.events, []string{
		"enter:Program",
		"scope-enter:Program",
		"enter:ExpressionStatement",
		"enter:IdentifierReference",
		"leave:IdentifierReference",
		"leave:ExpressionStatement",
		"scope-leave:Program",
		"leave:Program",
	})
}

func TestWalkClassVisitsDecoratorsBeforeIDAndSuperClassAndBody(t *testing.T) {
	class := &ast.Class{
		Base:       ast.Base{NodeKind: ast.KindClassDeclaration, NodeSpan: span.Zero},
		ID:         ast.NewBindingIdentifier(span.Zero, "Foo"),
		SuperClass: ident("Base"),
		Decorators: []*ast.Decorator{
			{Base: ast.Base{NodeKind: ast.KindDecorator, NodeSpan: span.Zero}, Expression: ident("dec")},
		},
		Body: &ast.ClassBody{Base: ast.Base{NodeKind: ast.KindClassBody, NodeSpan: span.Zero}},
	}

	r := &recorder{}
	Walk(r, class)

	order := enterOrderOnly(r.events)
	assert.DeepEqual(t, order, []string{
		"Class",
		"Decorator",
		"IdentifierReference", // dec
		"BindingIdentifier",   // ID
		"IdentifierReference", // SuperClass
		"ClassBody",
	})
}

func TestWalkCallExpressionVisitsArgumentsBeforeCallee(t *testing.T) {
	call := &ast.CallExpression{
		Base:      ast.Base{NodeKind: ast.KindCallExpression, NodeSpan: span.Zero},
		Callee:    ident("callee"),
		Arguments: []ast.Argument{ident("arg1"), ident("arg2")},
	}

	r := &recorder{}
	Walk(r, call)

	order := enterOrderOnly(r.events)
	assert.DeepEqual(t, order, []string{
		"CallExpression",
		"IdentifierReference", // arg1
		"IdentifierReference", // arg2
		"IdentifierReference", // callee
	})
}

func TestWalkNilNodeIsNoOp(t *testing.T) {
	r := &recorder{}
	Walk(r, nil)
	assert.Equal(t, len(r.events), 0)

	var fn *ast.Function
	Walk(r, fn)
	assert.Equal(t, len(r.events), 0)
}

func TestWalkFunctionIntroducesFunctionScope(t *testing.T) {
	fn := &ast.Function{
		Base:   ast.Base{NodeKind: ast.KindFunctionDeclaration, NodeSpan: span.Zero},
		ID:     ast.NewBindingIdentifier(span.Zero, "f"),
		Params: &ast.FormalParameters{Base: ast.Base{NodeKind: ast.KindFormalParameters, NodeSpan: span.Zero}},
		Body:   &ast.FunctionBody{Base: ast.Base{NodeKind: ast.KindFunctionBody, NodeSpan: span.Zero}},
	}

	var gotFlags ScopeFlags
	v := &scopeCapturingVisitor{onEnterScope: func(flags ScopeFlags, node ast.Node) {
		if node.Kind() == ast.KindFunctionDeclaration {
			gotFlags = flags
		}
	}}
	Walk(v, fn)

	assert.Assert(t, gotFlags.Has(ScopeFlagsFunction))
}

func TestWalkMethodFunctionAppliesConstructorFlag(t *testing.T) {
	method := &ast.MethodDefinition{
		Base:       ast.Base{NodeKind: ast.KindMethodDefinition, NodeSpan: span.Zero},
		Key:        ident("constructor"),
		MethodKind: ast.MethodKindConstructor,
		Value: &ast.Function{
			Base:   ast.Base{NodeKind: ast.KindFunctionExpression, NodeSpan: span.Zero},
			Params: &ast.FormalParameters{Base: ast.Base{NodeKind: ast.KindFormalParameters, NodeSpan: span.Zero}},
			Body:   &ast.FunctionBody{Base: ast.Base{NodeKind: ast.KindFunctionBody, NodeSpan: span.Zero}},
		},
	}

	var gotFlags ScopeFlags
	v := &scopeCapturingVisitor{onEnterScope: func(flags ScopeFlags, node ast.Node) {
		if node.Kind() == ast.KindFunctionExpression {
			gotFlags = flags
		}
	}}
	Walk(v, method)

	assert.Assert(t, gotFlags.Has(ScopeFlagsFunction))
	assert.Assert(t, gotFlags.Has(ScopeFlagsConstructor))
}

func TestWalkBlockCatchAndSwitchOpenEmptyScopes(t *testing.T) {
	block := &ast.BlockStatement{Base: ast.Base{NodeKind: ast.KindBlockStatement, NodeSpan: span.Zero}}
	r := &recorder{}
	Walk(r, block)
	assert.DeepEqual(t, r.events, []string{"enter:BlockStatement", "scope-enter:BlockStatement", "scope-leave:BlockStatement", "leave:BlockStatement"})

	catch := &ast.CatchClause{Base: ast.Base{NodeKind: ast.KindCatchClause, NodeSpan: span.Zero}, Body: &ast.BlockStatement{Base: ast.Base{NodeKind: ast.KindBlockStatement, NodeSpan: span.Zero}}}
	r = &recorder{}
	Walk(r, catch)
	assert.Assert(t, contains(r.events, "scope-enter:CatchClause"))

	sw := &ast.SwitchStatement{Base: ast.Base{NodeKind: ast.KindSwitchStatement, NodeSpan: span.Zero}, Discriminant: ident("x")}
	r = &recorder{}
	Walk(r, sw)
	assert.Assert(t, contains(r.events, "scope-enter:SwitchStatement"))
}

func TestWalkForHeadOpensScopeOnlyForLexicalBinding(t *testing.T) {
	letInit := &ast.VariableDeclaration{Base: ast.Base{NodeKind: ast.KindVariableDeclaration}, DeclKind: ast.VarLet, Declarations: []*ast.VariableDeclarator{{Base: ast.Base{NodeKind: ast.KindVariableDeclarator}, ID: ast.NewBindingIdentifier(span.Zero, "i")}}}
	forLet := &ast.ForStatement{Base: ast.Base{NodeKind: ast.KindForStatement, NodeSpan: span.Zero}, Init: letInit, Body: &ast.BlockStatement{Base: ast.Base{NodeKind: ast.KindBlockStatement}}}
	r := &recorder{}
	Walk(r, forLet)
	assert.Assert(t, contains(r.events, "scope-enter:ForStatement"))

	varInit := &ast.VariableDeclaration{Base: ast.Base{NodeKind: ast.KindVariableDeclaration}, DeclKind: ast.VarVar, Declarations: []*ast.VariableDeclarator{{Base: ast.Base{NodeKind: ast.KindVariableDeclarator}, ID: ast.NewBindingIdentifier(span.Zero, "i")}}}
	forVar := &ast.ForStatement{Base: ast.Base{NodeKind: ast.KindForStatement, NodeSpan: span.Zero}, Init: varInit, Body: &ast.BlockStatement{Base: ast.Base{NodeKind: ast.KindBlockStatement}}}
	r = &recorder{}
	Walk(r, forVar)
	assert.Assert(t, !contains(r.events, "scope-enter:ForStatement"))
}

func TestWalkForOfWithUsingDeclarationOpensScope(t *testing.T) {
	using := &ast.UsingDeclaration{Base: ast.Base{NodeKind: ast.KindUsingDeclaration}, Declarations: []*ast.VariableDeclarator{{Base: ast.Base{NodeKind: ast.KindVariableDeclarator}, ID: ast.NewBindingIdentifier(span.Zero, "r")}}}
	forOf := &ast.ForOfStatement{Base: ast.Base{NodeKind: ast.KindForOfStatement, NodeSpan: span.Zero}, Left: using, Right: ident("xs"), Body: &ast.BlockStatement{Base: ast.Base{NodeKind: ast.KindBlockStatement}}}
	r := &recorder{}
	Walk(r, forOf)
	assert.Assert(t, contains(r.events, "scope-enter:ForOfStatement"))
}

func TestWalkClassExpressionOpensScopeButDeclarationDoesNot(t *testing.T) {
	classExpr := &ast.Class{Base: ast.Base{NodeKind: ast.KindClassExpression, NodeSpan: span.Zero}, Body: &ast.ClassBody{Base: ast.Base{NodeKind: ast.KindClassBody}}}
	r := &recorder{}
	Walk(r, classExpr)
	assert.Assert(t, contains(r.events, "scope-enter:Class"))

	classDecl := &ast.Class{Base: ast.Base{NodeKind: ast.KindClassDeclaration, NodeSpan: span.Zero}, Body: &ast.ClassBody{Base: ast.Base{NodeKind: ast.KindClassBody}}}
	r = &recorder{}
	Walk(r, classDecl)
	assert.Assert(t, !contains(r.events, "scope-enter:Class"))
}

func TestWalkTSEnumDeclarationAndTypeParameterOpenScopes(t *testing.T) {
	enum := &ast.TSEnumDeclaration{Base: ast.Base{NodeKind: ast.KindTSEnumDeclaration, NodeSpan: span.Zero}, ID: ast.NewBindingIdentifier(span.Zero, "E")}
	r := &recorder{}
	Walk(r, enum)
	assert.Assert(t, contains(r.events, "scope-enter:TSEnumDeclaration"))

	typeParam := &ast.TSTypeParameter{Base: ast.Base{NodeKind: ast.KindTSTypeParameter, NodeSpan: span.Zero}, Name: "T"}
	r = &recorder{}
	Walk(r, typeParam)
	assert.Assert(t, contains(r.events, "scope-enter:TSTypeParameter"))
}

func TestWalkArrowFunctionExpressionTypeParametersAreReachable(t *testing.T) {
	typeParam := &ast.TSTypeParameter{Base: ast.Base{NodeKind: ast.KindTSTypeParameter, NodeSpan: span.Zero}, Name: "T"}
	arrow := &ast.ArrowFunctionExpression{
		Base:       ast.Base{NodeKind: ast.KindArrowFunctionExpression, NodeSpan: span.Zero},
		Params:     &ast.FormalParameters{Base: ast.Base{NodeKind: ast.KindFormalParameters}},
		IsExprBody: true,
		ExprBody:   ident("x"),
		TypeParams: &ast.TSTypeParameterDeclaration{Base: ast.Base{NodeKind: ast.KindTSTypeParameterDeclaration}, Params: []*ast.TSTypeParameter{typeParam}},
	}
	r := &recorder{}
	Walk(r, arrow)
	assert.Assert(t, contains(enterOrderOnly(r.events), "TSTypeParameter"))
}

func TestWalkProgramWithUseStrictDirectiveSetsStrictModeFlag(t *testing.T) {
	directive := ast.NewDirective(span.Zero, ast.NewStringLiteral(span.Zero, "use strict", `"use strict"`), "use strict")
	program := ast.NewProgram(span.Zero, ast.SourceType{IsModule: true}, []*ast.Directive{directive}, nil)

	var gotFlags ScopeFlags
	v := &scopeCapturingVisitor{onEnterScope: func(flags ScopeFlags, node ast.Node) {
		if node.Kind() == ast.KindProgram {
			gotFlags = flags
		}
	}}
	Walk(v, program)

	assert.Assert(t, gotFlags.Has(ScopeFlagsStrictMode))
}

func TestWalkProgramWithoutDirectiveHasNoStrictModeFlag(t *testing.T) {
	program := ast.NewProgram(span.Zero, ast.SourceType{IsModule: true}, nil, nil)

	var gotFlags ScopeFlags
	v := &scopeCapturingVisitor{onEnterScope: func(flags ScopeFlags, node ast.Node) {
		if node.Kind() == ast.KindProgram {
			gotFlags = flags
		}
	}}
	Walk(v, program)

	assert.Assert(t, !gotFlags.Has(ScopeFlagsStrictMode))
}

func TestWalkFunctionWithUseStrictDirectiveSetsStrictModeFlag(t *testing.T) {
	directive := ast.NewDirective(span.Zero, ast.NewStringLiteral(span.Zero, "use strict", `"use strict"`), "use strict")
	fn := &ast.Function{
		Base:   ast.Base{NodeKind: ast.KindFunctionDeclaration, NodeSpan: span.Zero},
		Params: &ast.FormalParameters{Base: ast.Base{NodeKind: ast.KindFormalParameters}},
		Body:   &ast.FunctionBody{Base: ast.Base{NodeKind: ast.KindFunctionBody}, Directives: []*ast.Directive{directive}},
	}

	var gotFlags ScopeFlags
	v := &scopeCapturingVisitor{onEnterScope: func(flags ScopeFlags, node ast.Node) {
		if node.Kind() == ast.KindFunctionDeclaration {
			gotFlags = flags
		}
	}}
	Walk(v, fn)

	assert.Assert(t, gotFlags.Has(ScopeFlagsStrictMode))
}

func contains(events []string, want string) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}

type scopeCapturingVisitor struct {
	BaseVisitor
	onEnterScope func(flags ScopeFlags, node ast.Node)
}

func (v *scopeCapturingVisitor) EnterScope(flags ScopeFlags, node ast.Node) {
	v.onEnterScope(flags, node)
}

func enterOrderOnly(events []string) []string {
	var out []string
	for _, e := range events {
		if len(e) > 6 && e[:6] == "enter:" {
			out = append(out, e[6:])
		}
	}
	return out
}
