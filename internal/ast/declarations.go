package ast

import "github.com/web-infra-dev/rslint-core/internal/span"

// VariableDeclarationKind is var/let/const/using/await-using.
type VariableDeclarationKind uint8

const (
	VarVar VariableDeclarationKind = iota
	VarLet
	VarConst
	VarUsing
	VarAwaitUsing
)

// VariableDeclaration is `kind Declarators;`.
type VariableDeclaration struct {
	Base
	DeclKind    VariableDeclarationKind
	Declarations []*VariableDeclarator
	Declare     bool // TypeScript `declare var x: T;`
}

func (*VariableDeclaration) statementNode()    {}
func (*VariableDeclaration) declarationNode()  {}

// VariableDeclarator is one `Id [: Type] [= Init]` binding within a
// VariableDeclaration.
type VariableDeclarator struct {
	Base
	ID   Pattern
	Init Expression // may be nil
}

// UsingDeclaration mirrors VariableDeclaration but is kept as a distinct
// Kind because `using`/`await using` bindings have disposal semantics no
// other declarator does; the decider and rules that care about "is this a
// binding declaration" check both kinds.
type UsingDeclaration struct {
	Base
	IsAwait      bool
	Declarations []*VariableDeclarator
}

func (*UsingDeclaration) statementNode()   {}
func (*UsingDeclaration) declarationNode() {}

// Function backs both function declarations and function expressions; the
// Kind() tag alone disambiguates grammatical position (spec.md invariant: a Function used as a declaration always has
// a non-nil ID; as an expression the ID is optional).
type Function struct {
	Base
	ID         *BindingIdentifier // nil for anonymous function expressions
	Generator  bool
	Async      bool
	Params     *FormalParameters
	Body       *FunctionBody // nil for ambient/overload declarations (TS)
	TypeParams *TSTypeParameterDeclaration // nil if absent
	ReturnType TSType                      // nil if absent
	Declare    bool                        // TypeScript `declare function f(): T;`
}

// Function's Kind() tag (KindFunctionDeclaration vs KindFunctionExpression)
// is what distinguishes its grammatical position; it satisfies both
// Declaration and Expression so a single struct can serve either, the way
// oxc's Function node carries an r#type discriminant instead of splitting
// into two Rust structs.
func (*Function) statementNode()   {}
func (*Function) declarationNode() {}
func (*Function) expressionNode()  {}

func NewFunctionDeclaration(sp span.Span, id *BindingIdentifier, params *FormalParameters, body *FunctionBody) *Function {
	return &Function{Base: Base{KindFunctionDeclaration, sp}, ID: id, Params: params, Body: body}
}

func NewFunctionExpression(sp span.Span, id *BindingIdentifier, params *FormalParameters, body *FunctionBody) *Function {
	return &Function{Base: Base{KindFunctionExpression, sp}, ID: id, Params: params, Body: body}
}

// FormalParameters is the parenthesized parameter list of a function.
type FormalParameters struct {
	Base
	Items []*FormalParameter
	Rest  *RestElement // may be nil
}

// FormalParameter is one parameter; Decorators supports TS parameter
// properties (`constructor(private x: number)`).
type FormalParameter struct {
	Base
	Pattern    Pattern
	Decorators []*Decorator
}

// FunctionBody is a block statement restricted to function position; kept
// as a distinct Kind (rather than reusing BlockStatement) because directive
// prologues are only meaningful here and at Program level.
type FunctionBody struct {
	Base
	Directives []*Directive
	Statements []Statement
}

// Class backs both class declarations and class expressions; its Kind()
// tag (KindClassDeclaration vs KindClassExpression) distinguishes a class
// used as a Statement from one used as an Expression — the two share every
// other field.
type Class struct {
	Base
	ID             *BindingIdentifier // may be nil for anonymous class expressions
	SuperClass     Expression         // may be nil
	SuperTypeArgs  *TSTypeParameterInstantiation
	Implements     []TSType
	Body           *ClassBody
	TypeParams     *TSTypeParameterDeclaration
	Decorators     []*Decorator
	Abstract       bool
	Declare        bool
}

// Class's Kind() tag (KindClassDeclaration vs KindClassExpression)
// distinguishes grammatical position, the same way Function's does.
func (*Class) statementNode()   {}
func (*Class) declarationNode() {}
func (*Class) expressionNode()  {}

// ClassBody holds the member list between a class's braces.
type ClassBody struct {
	Base
	Body []ClassElement
}

// MethodDefinitionKind is method/get/set/constructor.
type MethodDefinitionKind uint8

const (
	MethodKindMethod MethodDefinitionKind = iota
	MethodKindGet
	MethodKindSet
	MethodKindConstructor
)

// MethodDefinition is a class method, getter, setter, or constructor.
type MethodDefinition struct {
	Base
	MethodKind MethodDefinitionKind
	Key        Expression // Identifier, StringLiteral, NumericLiteral, or computed Expression
	Computed   bool
	Value      *Function
	Static     bool
	Abstract   bool
	Override   bool
	Optional   bool
	Decorators []*Decorator
}

func (*MethodDefinition) classElementNode() {}

// PropertyDefinition is a class field, `[static] [#name|name][: Type] [= Value];`.
type PropertyDefinition struct {
	Base
	Key        Expression
	Computed   bool
	Value      Expression // may be nil
	TypeAnnot  TSType     // may be nil
	Static     bool
	Abstract   bool
	Override   bool
	Readonly   bool
	Optional   bool
	Definite   bool
	Decorators []*Decorator
}

func (*PropertyDefinition) classElementNode() {}

// StaticBlock is a class's `static { ... }` initializer block.
type StaticBlock struct {
	Base
	Body []Statement
}

func (*StaticBlock) classElementNode() {}

// Decorator is `@Expression` attached to a class, method, property, or
// parameter.
type Decorator struct {
	Base
	Expression Expression
}

// TSTypeAliasDeclaration is `type Id<TypeParams> = TypeAnnotation;`.
type TSTypeAliasDeclaration struct {
	Base
	ID         *BindingIdentifier
	TypeParams *TSTypeParameterDeclaration
	TypeAnnot  TSType
	Declare    bool
}

func (*TSTypeAliasDeclaration) statementNode()   {}
func (*TSTypeAliasDeclaration) declarationNode() {}

// TSInterfaceDeclaration is `interface Id<TypeParams> extends Extends { Body }`.
type TSInterfaceDeclaration struct {
	Base
	ID         *BindingIdentifier
	TypeParams *TSTypeParameterDeclaration
	Extends    []TSType
	Body       *TSInterfaceBody
	Declare    bool
}

func (*TSInterfaceDeclaration) statementNode()   {}
func (*TSInterfaceDeclaration) declarationNode() {}

// TSInterfaceBody holds an interface's member signatures.
type TSInterfaceBody struct {
	Base
	Body []Node
}

// TSEnumDeclaration is `[const] enum Id { Members }`.
type TSEnumDeclaration struct {
	Base
	ID      *BindingIdentifier
	Members []*TSEnumMember
	Const   bool
	Declare bool
}

func (*TSEnumDeclaration) statementNode()   {}
func (*TSEnumDeclaration) declarationNode() {}

// TSEnumMember is one `Id [= Initializer]` member of an enum.
type TSEnumMember struct {
	Base
	ID          Expression // IdentifierName or StringLiteral
	Initializer Expression // may be nil
}

// TSModuleDeclaration is `[declare] (module|namespace) Id { Body }`.
type TSModuleDeclaration struct {
	Base
	ID      Expression // IdentifierName or StringLiteral for ambient `module "foo"`
	Body    *BlockStatement
	Global  bool
	Declare bool
}

func (*TSModuleDeclaration) statementNode()   {}
func (*TSModuleDeclaration) declarationNode() {}

// TSImportEqualsDeclaration is `import Id = ModuleReference;`.
type TSImportEqualsDeclaration struct {
	Base
	ID              *BindingIdentifier
	ModuleReference Expression
	IsExport        bool
}

func (*TSImportEqualsDeclaration) statementNode()   {}
func (*TSImportEqualsDeclaration) declarationNode() {}
