package ast

import "github.com/web-infra-dev/rslint-core/internal/span"

// TSKeywordType covers the thirteen parameterless keyword types (any,
// unknown, never, null, undefined, void, string, number, boolean, bigint,
// object, symbol, this). They share one struct because their only payload
// is which keyword it is, carried by Base.NodeKind itself; giving each its
// own Kind constant (rather than collapsing them into one Kind with a
// string field) keeps them individually addressable in a rule's KindSet,
// e.g. a no-explicit-any rule wants exactly KindTSAnyKeyword.
type TSKeywordType struct{ Base }

func (*TSKeywordType) tsTypeNode() {}

func NewTSKeywordType(kind Kind, sp span.Span) *TSKeywordType {
	return &TSKeywordType{Base{kind, sp}}
}

type TSThisType struct{ Base }

func (*TSThisType) tsTypeNode() {}

type TSArrayType struct {
	Base
	ElementType TSType
}

func (*TSArrayType) tsTypeNode() {}

type TSTupleType struct {
	Base
	ElementTypes []TSType
}

func (*TSTupleType) tsTypeNode() {}

type TSUnionType struct {
	Base
	Types []TSType
}

func (*TSUnionType) tsTypeNode() {}

type TSIntersectionType struct {
	Base
	Types []TSType
}

func (*TSIntersectionType) tsTypeNode() {}

// TSConditionalType is `CheckType extends ExtendsType ? TrueType : FalseType`.
type TSConditionalType struct {
	Base
	CheckType   TSType
	ExtendsType TSType
	TrueType    TSType
	FalseType   TSType
}

func (*TSConditionalType) tsTypeNode() {}

// TSMappedType is `{ [Key in Constraint]: ValueType }` with optional
// readonly/optional modifiers (+/-/absent).
type TSMappedTypeModifier int8

const (
	TSModifierAbsent TSMappedTypeModifier = 0
	TSModifierPlus   TSMappedTypeModifier = 1
	TSModifierMinus  TSMappedTypeModifier = -1
)

type TSMappedType struct {
	Base
	KeyID         string
	Constraint    TSType
	NameType      TSType // the `as` clause, may be nil
	ValueType     TSType
	Optional      TSMappedTypeModifier
	Readonly      TSMappedTypeModifier
}

func (*TSMappedType) tsTypeNode() {}

type TSIndexedAccessType struct {
	Base
	ObjectType TSType
	IndexType  TSType
}

func (*TSIndexedAccessType) tsTypeNode() {}

// TSTypeOperatorName is keyof/unique/readonly.
type TSTypeOperatorName uint8

const (
	TSOperatorKeyof TSTypeOperatorName = iota
	TSOperatorUnique
	TSOperatorReadonly
)

type TSTypeOperator struct {
	Base
	Operator  TSTypeOperatorName
	TypeAnnot TSType
}

func (*TSTypeOperator) tsTypeNode() {}

// TSTypePredicate is `[asserts] ParamName is TypeAnnot`.
type TSTypePredicate struct {
	Base
	Asserts   bool
	ParamName string // or "this"
	TypeAnnot TSType // may be nil for a bare `asserts x`
}

func (*TSTypePredicate) tsTypeNode() {}

type TSTypeQuery struct {
	Base
	ExprName Expression // IdentifierReference or qualified member chain
	TypeArgs *TSTypeParameterInstantiation
}

func (*TSTypeQuery) tsTypeNode() {}

type TSTypeLiteral struct {
	Base
	Members []Node
}

func (*TSTypeLiteral) tsTypeNode() {}

type TSPropertySignature struct {
	Base
	Key       Expression
	Computed  bool
	Optional  bool
	Readonly  bool
	TypeAnnot TSType
}

type TSIndexSignature struct {
	Base
	ParamName string
	ParamType TSType
	TypeAnnot TSType
	Readonly  bool
	Static    bool
}

type TSCallSignatureDeclaration struct {
	Base
	TypeParams *TSTypeParameterDeclaration
	Params     *FormalParameters
	ReturnType TSType
}

type TSConstructSignatureDeclaration struct {
	Base
	TypeParams *TSTypeParameterDeclaration
	Params     *FormalParameters
	ReturnType TSType
}

type TSMethodSignature struct {
	Base
	Key        Expression
	Computed   bool
	Optional   bool
	Kind       MethodDefinitionKind
	TypeParams *TSTypeParameterDeclaration
	Params     *FormalParameters
	ReturnType TSType
}

type TSFunctionType struct {
	Base
	TypeParams *TSTypeParameterDeclaration
	Params     *FormalParameters
	ReturnType TSType
}

func (*TSFunctionType) tsTypeNode() {}

type TSConstructorType struct {
	Base
	Abstract   bool
	TypeParams *TSTypeParameterDeclaration
	Params     *FormalParameters
	ReturnType TSType
}

func (*TSConstructorType) tsTypeNode() {}

// TSTypeReference is a named type usage, e.g. `Foo<Bar>` or `A.B.C`.
type TSTypeReference struct {
	Base
	TypeName Expression // IdentifierReference or qualified member chain
	TypeArgs *TSTypeParameterInstantiation
}

func (*TSTypeReference) tsTypeNode() {}

// TSLiteralType wraps a literal expression used as a type, e.g. `"a" | "b"`.
type TSLiteralType struct {
	Base
	Literal Expression
}

func (*TSLiteralType) tsTypeNode() {}

type TSImportType struct {
	Base
	Argument  TSType // the string literal argument, typed as TSLiteralType
	Qualifier Expression
	TypeArgs  *TSTypeParameterInstantiation
}

func (*TSImportType) tsTypeNode() {}

type TSTemplateLiteralType struct {
	Base
	Quasis []*TemplateElement
	Types  []TSType
}

func (*TSTemplateLiteralType) tsTypeNode() {}

type TSInferType struct {
	Base
	TypeParam *TSTypeParameter
}

func (*TSInferType) tsTypeNode() {}

type TSTypeParameter struct {
	Base
	Name       string
	Constraint TSType // may be nil
	Default    TSType // may be nil
	In         bool
	Out        bool
	Const      bool
}

type TSTypeParameterDeclaration struct {
	Base
	Params []*TSTypeParameter
}

type TSTypeParameterInstantiation struct {
	Base
	Params []TSType
}
