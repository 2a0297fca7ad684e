package ast

import "github.com/web-infra-dev/rslint-core/internal/span"

// --- Literals ---------------------------------------------------------

type BooleanLiteral struct {
	Base
	Value bool
}

func (*BooleanLiteral) expressionNode() {}

type NullLiteral struct{ Base }

func (*NullLiteral) expressionNode() {}

type NumericLiteral struct {
	Base
	Value float64
	Raw   string
}

func (*NumericLiteral) expressionNode() {}

type BigIntLiteral struct {
	Base
	Raw string
}

func (*BigIntLiteral) expressionNode() {}

type RegExpLiteral struct {
	Base
	Pattern string
	Flags   string
}

func (*RegExpLiteral) expressionNode() {}

type StringLiteral struct {
	Base
	Value string
	Raw   string
}

func (*StringLiteral) expressionNode() {}

func NewStringLiteral(sp span.Span, value, raw string) *StringLiteral {
	return &StringLiteral{Base{KindStringLiteral, sp}, value, raw}
}

// TemplateLiteral is a template string with Quasis interleaved with
// Expressions (len(Quasis) == len(Expressions)+1 always).
type TemplateLiteral struct {
	Base
	Quasis      []*TemplateElement
	Expressions []Expression
}

func (*TemplateLiteral) expressionNode() {}

type TemplateElement struct {
	Base
	Raw    string
	Cooked string
	Tail   bool
}

// --- Identifiers --------------------------------------------------------

// IdentifierReference is a read of a binding — resolved against the scope
// chain by the external semantic/scope pass, not by this module.
type IdentifierReference struct {
	Base
	Name string
}

func (*IdentifierReference) expressionNode() {}

// IdentifierName is a non-binding identifier position: a property key, a
// JSX attribute name's non-JSX form, an import/export specifier name, etc.
type IdentifierName struct {
	Base
	Name string
}

func (*IdentifierName) expressionNode() {}

// BindingIdentifier introduces a new binding (parameter, variable
// declarator id, function/class name, catch param, import specifier local).
type BindingIdentifier struct {
	Base
	Name string
}

func (*BindingIdentifier) patternNode() {}

func NewBindingIdentifier(sp span.Span, name string) *BindingIdentifier {
	return &BindingIdentifier{Base{KindBindingIdentifier, sp}, name}
}

// LabelIdentifier names a LabeledStatement / break / continue target. It is
// never resolved against variable scope.
type LabelIdentifier struct {
	Base
	Name string
}

// PrivateIdentifier is `#name` used in class member keys and `#x in obj`.
type PrivateIdentifier struct {
	Base
	Name string
}

func (*PrivateIdentifier) expressionNode() {}

// --- Primary expressions -------------------------------------------------

type ThisExpression struct{ Base }

func (*ThisExpression) expressionNode() {}

type Super struct{ Base }

func (*Super) expressionNode() {}

// MetaProperty is `new.target` or `import.meta`.
type MetaProperty struct {
	Base
	Meta     string
	Property string
}

func (*MetaProperty) expressionNode() {}

// ArrayExpressionElement is an Expression, SpreadElement, or nil (an elision
// hole, e.g. `[, , x]`).
type ArrayExpressionElement interface{ Node }

type ArrayExpression struct {
	Base
	Elements []ArrayExpressionElement // nil entries are elisions
}

func (*ArrayExpression) expressionNode() {}

// ObjectExpression is `{ Properties }`.
type ObjectExpression struct {
	Base
	Properties []Node // *ObjectProperty or *SpreadElement
}

func (*ObjectExpression) expressionNode() {}

// ObjectPropertyKind distinguishes a plain key:value from method/get/set
// shorthand forms.
type ObjectPropertyKind uint8

const (
	PropertyKindInit ObjectPropertyKind = iota
	PropertyKindGet
	PropertyKindSet
)

type ObjectProperty struct {
	Base
	PropertyKind ObjectPropertyKind
	Key          Expression
	Value        Expression
	Computed     bool
	Shorthand    bool
	Method       bool
}

// Function already covers both declarations and expressions; an
// ArrowFunctionExpression is different enough (no own `this`/`arguments`,
// optional expression body) to get its own struct.
type ArrowFunctionExpression struct {
	Base
	Async       bool
	Params      *FormalParameters
	Body        *FunctionBody // used when IsExprBody is false
	ExprBody    Expression    // used when IsExprBody is true
	IsExprBody  bool
	TypeParams  *TSTypeParameterDeclaration
	ReturnType  TSType
}

func (*ArrowFunctionExpression) expressionNode() {}

// --- Operator expressions ------------------------------------------------

// AssignmentExpression assigns Right to Left, which holds an assignment
// target (an identifier, ArrayAssignmentTarget or ObjectAssignmentTarget)
// or any member expression used as an lvalue.
type AssignmentExpression struct {
	Base
	Operator AssignmentOperator
	Left     Node // AssignmentTarget or member expression
	Right    Expression
}

func (*AssignmentExpression) expressionNode() {}

type UpdateExpression struct {
	Base
	Operator UpdateOperator
	Prefix   bool
	Argument Node // simple assignment target
}

func (*UpdateExpression) expressionNode() {}

type UnaryExpression struct {
	Base
	Operator UnaryOperator
	Argument Expression
}

func (*UnaryExpression) expressionNode() {}

type BinaryExpression struct {
	Base
	Operator BinaryOperator
	Left     Expression
	Right    Expression
}

func (*BinaryExpression) expressionNode() {}

type LogicalExpression struct {
	Base
	Operator LogicalOperator
	Left     Expression
	Right    Expression
}

func (*LogicalExpression) expressionNode() {}

type ConditionalExpression struct {
	Base
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func (*ConditionalExpression) expressionNode() {}

// Argument is satisfied by Expression or SpreadElement.
type Argument interface{ Node }

type CallExpression struct {
	Base
	Callee       Expression
	TypeArgs     *TSTypeParameterInstantiation
	Arguments    []Argument
	Optional     bool // the `?.()` form
}

func (*CallExpression) expressionNode() {}

type NewExpression struct {
	Base
	Callee    Expression
	TypeArgs  *TSTypeParameterInstantiation
	Arguments []Argument
}

func (*NewExpression) expressionNode() {}

// ComputedMemberExpression is `Object[Property]`.
type ComputedMemberExpression struct {
	Base
	ObjectExpr Expression
	Property   Expression
	Optional   bool
}

func (*ComputedMemberExpression) expressionNode() {}

// StaticMemberExpression is `Object.property`.
type StaticMemberExpression struct {
	Base
	ObjectExpr Expression
	Property   *IdentifierName
	Optional   bool
}

func (*StaticMemberExpression) expressionNode() {}

// PrivateFieldExpression is `Object.#field`.
type PrivateFieldExpression struct {
	Base
	ObjectExpr Expression
	Field      *PrivateIdentifier
	Optional   bool
}

func (*PrivateFieldExpression) expressionNode() {}

type SequenceExpression struct {
	Base
	Expressions []Expression
}

func (*SequenceExpression) expressionNode() {}

type TaggedTemplateExpression struct {
	Base
	Tag      Expression
	TypeArgs *TSTypeParameterInstantiation
	Quasi    *TemplateLiteral
}

func (*TaggedTemplateExpression) expressionNode() {}

type AwaitExpression struct {
	Base
	Argument Expression
}

func (*AwaitExpression) expressionNode() {}

type YieldExpression struct {
	Base
	Delegate bool // `yield*`
	Argument Expression // may be nil
}

func (*YieldExpression) expressionNode() {}

// ParenthesizedExpression preserves source parens the printer could
// otherwise decide to elide; also used by the decider's "is there already a
// grouping here" shortcuts.
type ParenthesizedExpression struct {
	Base
	Expression Expression
}

func (*ParenthesizedExpression) expressionNode() {}

// ChainExpression wraps the top of an optional-chain (`a?.b.c`) so that a
// parenthesization check on the chain as a whole can tell it apart from a
// non-optional member/call chain. Element is restricted to a call or member
// expression by construction (spec.md invariant).
type ChainExpression struct {
	Base
	Element Expression
}

func (*ChainExpression) expressionNode() {}

type SpreadElement struct {
	Base
	Argument Expression
}

// ImportExpression is the dynamic `import(Source, Options?)` call form.
type ImportExpression struct {
	Base
	Source  Expression
	Options Expression // may be nil
}

func (*ImportExpression) expressionNode() {}

// PrivateInExpression is `#field in obj`, the ergonomic brand check.
type PrivateInExpression struct {
	Base
	Left  *PrivateIdentifier
	Right Expression
}

func (*PrivateInExpression) expressionNode() {}

// --- TypeScript expression wrappers --------------------------------------

type TSAsExpression struct {
	Base
	Expression Expression
	TypeAnnot  TSType
}

func (*TSAsExpression) expressionNode() {}

type TSSatisfiesExpression struct {
	Base
	Expression Expression
	TypeAnnot  TSType
}

func (*TSSatisfiesExpression) expressionNode() {}

type TSNonNullExpression struct {
	Base
	Expression Expression
}

func (*TSNonNullExpression) expressionNode() {}

type TSTypeAssertion struct {
	Base
	TypeAnnot  TSType
	Expression Expression
}

func (*TSTypeAssertion) expressionNode() {}

type TSInstantiationExpression struct {
	Base
	Expression Expression
	TypeArgs   *TSTypeParameterInstantiation
}

func (*TSInstantiationExpression) expressionNode() {}
