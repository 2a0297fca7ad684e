package visit

import "github.com/web-infra-dev/rslint-core/internal/ast"

// walkChildren descends into node's children in source order, with two
// documented exceptions: Class visits its Decorators before anything else
// (they evaluate in the enclosing scope, before the class's own scope
// exists), and CallExpression visits Arguments before Callee.
func walkChildren(v Visitor, node ast.Node) {
	switch n := node.(type) {

	case *ast.Program:
		for _, d := range n.Directives {
			Walk(v, d)
		}
		for _, s := range n.Body {
			Walk(v, s)
		}
	case *ast.Directive:
		Walk(v, n.Expression)

	// --- Statements ---
	case *ast.BlockStatement:
		for _, s := range n.Body {
			Walk(v, s)
		}
	case *ast.BreakStatement:
		Walk(v, n.Label)
	case *ast.ContinueStatement:
		Walk(v, n.Label)
	case *ast.DoWhileStatement:
		Walk(v, n.Body)
		Walk(v, n.Test)
	case *ast.ExpressionStatement:
		Walk(v, n.Expression)
	case *ast.ForStatement:
		if n.Init != nil {
			Walk(v, n.Init)
		}
		if n.Test != nil {
			Walk(v, n.Test)
		}
		if n.Update != nil {
			Walk(v, n.Update)
		}
		Walk(v, n.Body)
	case *ast.ForInStatement:
		Walk(v, n.Left)
		Walk(v, n.Right)
		Walk(v, n.Body)
	case *ast.ForOfStatement:
		Walk(v, n.Left)
		Walk(v, n.Right)
		Walk(v, n.Body)
	case *ast.IfStatement:
		Walk(v, n.Test)
		Walk(v, n.Consequent)
		if n.Alternate != nil {
			Walk(v, n.Alternate)
		}
	case *ast.LabeledStatement:
		Walk(v, n.Label)
		Walk(v, n.Body)
	case *ast.ReturnStatement:
		if n.Argument != nil {
			Walk(v, n.Argument)
		}
	case *ast.SwitchStatement:
		Walk(v, n.Discriminant)
		for _, c := range n.Cases {
			Walk(v, c)
		}
	case *ast.SwitchCase:
		if n.Test != nil {
			Walk(v, n.Test)
		}
		for _, s := range n.Consequent {
			Walk(v, s)
		}
	case *ast.ThrowStatement:
		Walk(v, n.Argument)
	case *ast.TryStatement:
		Walk(v, n.Block)
		if n.Handler != nil {
			Walk(v, n.Handler)
		}
		if n.Finalizer != nil {
			Walk(v, n.Finalizer)
		}
	case *ast.CatchClause:
		if n.Param != nil {
			Walk(v, n.Param)
		}
		Walk(v, n.Body)
	case *ast.WhileStatement:
		Walk(v, n.Test)
		Walk(v, n.Body)
	case *ast.WithStatement:
		Walk(v, n.Object)
		Walk(v, n.Body)

	// --- Declarations ---
	case *ast.VariableDeclaration:
		for _, d := range n.Declarations {
			Walk(v, d)
		}
	case *ast.VariableDeclarator:
		Walk(v, n.ID)
		if n.Init != nil {
			Walk(v, n.Init)
		}
	case *ast.UsingDeclaration:
		for _, d := range n.Declarations {
			Walk(v, d)
		}
	case *ast.Function:
		if n.ID != nil {
			Walk(v, n.ID)
		}
		if n.TypeParams != nil {
			Walk(v, n.TypeParams)
		}
		walkFormalParameters(v, n.Params)
		if n.Body != nil {
			Walk(v, n.Body)
		}
	case *ast.FormalParameters:
		walkFormalParameters(v, n)
	case *ast.FormalParameter:
		for _, d := range n.Decorators {
			Walk(v, d)
		}
		Walk(v, n.Pattern)
	case *ast.FunctionBody:
		for _, d := range n.Directives {
			Walk(v, d)
		}
		for _, s := range n.Statements {
			Walk(v, s)
		}
	case *ast.Class:
		for _, d := range n.Decorators {
			Walk(v, d)
		}
		if n.ID != nil {
			Walk(v, n.ID)
		}
		if n.TypeParams != nil {
			Walk(v, n.TypeParams)
		}
		if n.SuperClass != nil {
			Walk(v, n.SuperClass)
		}
		for _, t := range n.Implements {
			Walk(v, t)
		}
		Walk(v, n.Body)
	case *ast.ClassBody:
		for _, el := range n.Body {
			Walk(v, el)
		}
	case *ast.MethodDefinition:
		for _, d := range n.Decorators {
			Walk(v, d)
		}
		Walk(v, n.Key)
		walkMethodFunction(v, n.MethodKind, n.Value)
	case *ast.PropertyDefinition:
		for _, d := range n.Decorators {
			Walk(v, d)
		}
		Walk(v, n.Key)
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *ast.StaticBlock:
		for _, s := range n.Body {
			Walk(v, s)
		}
	case *ast.Decorator:
		Walk(v, n.Expression)
	case *ast.TSTypeAliasDeclaration:
		Walk(v, n.ID)
		if n.TypeParams != nil {
			Walk(v, n.TypeParams)
		}
		if n.TypeAnnot != nil {
			Walk(v, n.TypeAnnot)
		}
	case *ast.TSInterfaceDeclaration:
		Walk(v, n.ID)
		if n.TypeParams != nil {
			Walk(v, n.TypeParams)
		}
		for _, t := range n.Extends {
			Walk(v, t)
		}
		if n.Body != nil {
			Walk(v, n.Body)
		}
	case *ast.TSInterfaceBody:
		for _, m := range n.Body {
			Walk(v, m)
		}
	case *ast.TSEnumDeclaration:
		Walk(v, n.ID)
		for _, m := range n.Members {
			Walk(v, m)
		}
	case *ast.TSEnumMember:
		Walk(v, n.ID)
		if n.Initializer != nil {
			Walk(v, n.Initializer)
		}
	case *ast.TSModuleDeclaration:
		Walk(v, n.ID)
		if n.Body != nil {
			Walk(v, n.Body)
		}
	case *ast.TSImportEqualsDeclaration:
		Walk(v, n.ID)
		Walk(v, n.ModuleReference)

	// --- Expressions ---
	case *ast.TemplateLiteral:
		for _, q := range n.Quasis {
			Walk(v, q)
		}
		for _, e := range n.Expressions {
			Walk(v, e)
		}
	case *ast.ArrayExpression:
		for _, el := range n.Elements {
			if el != nil {
				Walk(v, el)
			}
		}
	case *ast.ObjectExpression:
		for _, p := range n.Properties {
			Walk(v, p)
		}
	case *ast.ObjectProperty:
		Walk(v, n.Key)
		Walk(v, n.Value)
	case *ast.ArrowFunctionExpression:
		if n.TypeParams != nil {
			Walk(v, n.TypeParams)
		}
		walkFormalParameters(v, n.Params)
		if n.IsExprBody {
			Walk(v, n.ExprBody)
		} else {
			Walk(v, n.Body)
		}
	case *ast.AssignmentExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *ast.UpdateExpression:
		Walk(v, n.Argument)
	case *ast.UnaryExpression:
		Walk(v, n.Argument)
	case *ast.BinaryExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *ast.LogicalExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *ast.ConditionalExpression:
		Walk(v, n.Test)
		Walk(v, n.Consequent)
		Walk(v, n.Alternate)
	case *ast.CallExpression:
		// Documented exception: arguments before callee.
		for _, a := range n.Arguments {
			Walk(v, a)
		}
		Walk(v, n.Callee)
	case *ast.NewExpression:
		Walk(v, n.Callee)
		for _, a := range n.Arguments {
			Walk(v, a)
		}
	case *ast.ComputedMemberExpression:
		Walk(v, n.ObjectExpr)
		Walk(v, n.Property)
	case *ast.StaticMemberExpression:
		Walk(v, n.ObjectExpr)
		Walk(v, n.Property)
	case *ast.PrivateFieldExpression:
		Walk(v, n.ObjectExpr)
		Walk(v, n.Field)
	case *ast.SequenceExpression:
		for _, e := range n.Expressions {
			Walk(v, e)
		}
	case *ast.TaggedTemplateExpression:
		Walk(v, n.Tag)
		Walk(v, n.Quasi)
	case *ast.AwaitExpression:
		Walk(v, n.Argument)
	case *ast.YieldExpression:
		if n.Argument != nil {
			Walk(v, n.Argument)
		}
	case *ast.ParenthesizedExpression:
		Walk(v, n.Expression)
	case *ast.ChainExpression:
		Walk(v, n.Element)
	case *ast.SpreadElement:
		Walk(v, n.Argument)
	case *ast.ImportExpression:
		Walk(v, n.Source)
		if n.Options != nil {
			Walk(v, n.Options)
		}
	case *ast.PrivateInExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *ast.TSAsExpression:
		Walk(v, n.Expression)
		Walk(v, n.TypeAnnot)
	case *ast.TSSatisfiesExpression:
		Walk(v, n.Expression)
		Walk(v, n.TypeAnnot)
	case *ast.TSNonNullExpression:
		Walk(v, n.Expression)
	case *ast.TSTypeAssertion:
		Walk(v, n.TypeAnnot)
		Walk(v, n.Expression)
	case *ast.TSInstantiationExpression:
		Walk(v, n.Expression)

	// --- Patterns / assignment targets ---
	case *ast.ObjectPattern:
		for _, p := range n.Properties {
			Walk(v, p)
		}
		if n.Rest != nil {
			Walk(v, n.Rest)
		}
	case *ast.ObjectPatternProperty:
		Walk(v, n.Key)
		Walk(v, n.Value)
	case *ast.ArrayPattern:
		for _, el := range n.Elements {
			if el != nil {
				Walk(v, el)
			}
		}
		if n.Rest != nil {
			Walk(v, n.Rest)
		}
	case *ast.AssignmentPattern:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *ast.RestElement:
		Walk(v, n.Argument)
	case *ast.ArrayAssignmentTarget:
		for _, el := range n.Elements {
			if el != nil {
				Walk(v, el)
			}
		}
		if n.Rest != nil {
			Walk(v, n.Rest)
		}
	case *ast.ObjectAssignmentTarget:
		for _, p := range n.Properties {
			Walk(v, p)
		}
		if n.Rest != nil {
			Walk(v, n.Rest)
		}

	// --- JSX ---
	case *ast.JSXElement:
		Walk(v, n.Opening)
		for _, c := range n.Children {
			Walk(v, c)
		}
		if n.Closing != nil {
			Walk(v, n.Closing)
		}
	case *ast.JSXFragment:
		for _, c := range n.Children {
			Walk(v, c)
		}
	case *ast.JSXOpeningElement:
		for _, a := range n.Attributes {
			Walk(v, a)
		}
	case *ast.JSXAttribute:
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *ast.JSXSpreadAttribute:
		Walk(v, n.Argument)
	case *ast.JSXExpressionContainer:
		if n.Expression != nil {
			Walk(v, n.Expression)
		}

	// --- TypeScript types ---
	case *ast.TSArrayType:
		Walk(v, n.ElementType)
	case *ast.TSTupleType:
		for _, t := range n.ElementTypes {
			Walk(v, t)
		}
	case *ast.TSUnionType:
		for _, t := range n.Types {
			Walk(v, t)
		}
	case *ast.TSIntersectionType:
		for _, t := range n.Types {
			Walk(v, t)
		}
	case *ast.TSConditionalType:
		Walk(v, n.CheckType)
		Walk(v, n.ExtendsType)
		Walk(v, n.TrueType)
		Walk(v, n.FalseType)
	case *ast.TSMappedType:
		Walk(v, n.Constraint)
		if n.NameType != nil {
			Walk(v, n.NameType)
		}
		Walk(v, n.ValueType)
	case *ast.TSIndexedAccessType:
		Walk(v, n.ObjectType)
		Walk(v, n.IndexType)
	case *ast.TSTypeOperator:
		Walk(v, n.TypeAnnot)
	case *ast.TSTypePredicate:
		if n.TypeAnnot != nil {
			Walk(v, n.TypeAnnot)
		}
	case *ast.TSTypeQuery:
		Walk(v, n.ExprName)
	case *ast.TSTypeLiteral:
		for _, m := range n.Members {
			Walk(v, m)
		}
	case *ast.TSFunctionType:
		walkFormalParameters(v, n.Params)
		if n.ReturnType != nil {
			Walk(v, n.ReturnType)
		}
	case *ast.TSConstructorType:
		walkFormalParameters(v, n.Params)
		if n.ReturnType != nil {
			Walk(v, n.ReturnType)
		}
	case *ast.TSTypeReference:
		Walk(v, n.TypeName)
	case *ast.TSLiteralType:
		Walk(v, n.Literal)
	case *ast.TSImportType:
		Walk(v, n.Argument)
	case *ast.TSTemplateLiteralType:
		for _, t := range n.Types {
			Walk(v, t)
		}
	case *ast.TSInferType:
		Walk(v, n.TypeParam)
	case *ast.TSTypeParameterDeclaration:
		for _, p := range n.Params {
			Walk(v, p)
		}
	case *ast.TSTypeParameter:
		if n.Constraint != nil {
			Walk(v, n.Constraint)
		}
		if n.Default != nil {
			Walk(v, n.Default)
		}

	// --- Modules ---
	case *ast.ImportDeclaration:
		for _, s := range n.Specifiers {
			Walk(v, s)
		}
		Walk(v, n.Source)
	case *ast.ImportSpecifier:
		Walk(v, n.Imported)
		Walk(v, n.Local)
	case *ast.ImportDefaultSpecifier:
		Walk(v, n.Local)
	case *ast.ImportNamespaceSpecifier:
		Walk(v, n.Local)
	case *ast.ExportAllDeclaration:
		if n.Exported != nil {
			Walk(v, n.Exported)
		}
		Walk(v, n.Source)
	case *ast.ExportDefaultDeclaration:
		Walk(v, n.Declaration)
	case *ast.ExportNamedDeclaration:
		if n.Declaration != nil {
			Walk(v, n.Declaration)
		}
		for _, s := range n.Specifiers {
			Walk(v, s)
		}
		if n.Source != nil {
			Walk(v, n.Source)
		}
	case *ast.ExportSpecifier:
		Walk(v, n.Local)
		Walk(v, n.Exported)

	default:
		// Leaf kinds (literals, identifiers, keyword types, this/super) have
		// no children to descend into.
	}
}

func walkFormalParameters(v Visitor, params *ast.FormalParameters) {
	if params == nil {
		return
	}
	for _, p := range params.Items {
		Walk(v, p)
	}
	if params.Rest != nil {
		Walk(v, params.Rest)
	}
}

// walkMethodFunction walks a class method's Function value with the scope
// flags its MethodDefinitionKind implies (constructor/get/set) instead of
// the plain ScopeFlagsFunction that Walk would otherwise assign via
// scopeFlagsFor's generic *ast.Function case.
func walkMethodFunction(v Visitor, kind ast.MethodDefinitionKind, fn *ast.Function) {
	if fn == nil {
		return
	}
	flags := ScopeFlagsFunction
	switch kind {
	case ast.MethodKindConstructor:
		flags |= ScopeFlagsConstructor
	case ast.MethodKindGet:
		flags |= ScopeFlagsGetAccessor
	case ast.MethodKindSet:
		flags |= ScopeFlagsSetAccessor
	}
	if fn.Body != nil && hasUseStrictDirective(fn.Body.Directives) {
		flags |= ScopeFlagsStrictMode
	}
	v.EnterNode(fn)
	v.EnterScope(flags, fn)
	if fn.ID != nil {
		Walk(v, fn.ID)
	}
	walkFormalParameters(v, fn.Params)
	if fn.Body != nil {
		Walk(v, fn.Body)
	}
	v.LeaveScope(fn)
	v.LeaveNode(fn)
}
