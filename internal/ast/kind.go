// Package ast defines the tagged-variant AST: one Kind constant and one Go
// struct per ECMAScript/TypeScript/JSX construct, all allocated from a
// single arena.Arena per file (spec.md section 3).
package ast

// Kind is the dense, small, non-negative integer discriminator of an AST
// node's concrete variant. It is part of the rule-runner ABI (spec.md
// section 9): rules declare their interest as a bitset indexed by Kind, so
// the ordering here must stay stable once rules start shipping against it.
type Kind uint16

const (
	KindInvalid Kind = iota

	// Root
	KindProgram

	// Statements
	KindBlockStatement
	KindBreakStatement
	KindContinueStatement
	KindDebuggerStatement
	KindDoWhileStatement
	KindEmptyStatement
	KindExpressionStatement
	KindForStatement
	KindForInStatement
	KindForOfStatement
	KindIfStatement
	KindLabeledStatement
	KindReturnStatement
	KindSwitchStatement
	KindSwitchCase
	KindThrowStatement
	KindTryStatement
	KindCatchClause
	KindWhileStatement
	KindWithStatement

	// Declarations
	KindVariableDeclaration
	KindVariableDeclarator
	KindFunctionDeclaration
	KindClassDeclaration
	KindUsingDeclaration
	KindTSTypeAliasDeclaration
	KindTSInterfaceDeclaration
	KindTSEnumDeclaration
	KindTSModuleDeclaration
	KindTSImportEqualsDeclaration

	// Supporting declaration/class machinery
	KindClassBody
	KindMethodDefinition
	KindPropertyDefinition
	KindStaticBlock
	KindDecorator
	KindFormalParameters
	KindFormalParameter
	KindFunctionBody
	KindDirective
	KindTSInterfaceBody
	KindTSEnumMember

	// Expressions: literals
	KindBooleanLiteral
	KindNullLiteral
	KindNumericLiteral
	KindBigIntLiteral
	KindRegExpLiteral
	KindStringLiteral
	KindTemplateLiteral
	KindTemplateElement

	// Expressions: identifiers
	KindIdentifierReference
	KindIdentifierName
	KindBindingIdentifier
	KindLabelIdentifier
	KindPrivateIdentifier

	// Expressions: primary
	KindThisExpression
	KindSuper
	KindMetaProperty
	KindArrayExpression
	KindObjectExpression
	KindObjectProperty
	KindFunctionExpression
	KindArrowFunctionExpression
	KindClassExpression

	// Expressions: operators
	KindAssignmentExpression
	KindUpdateExpression
	KindUnaryExpression
	KindBinaryExpression
	KindLogicalExpression
	KindConditionalExpression
	KindCallExpression
	KindNewExpression
	KindComputedMemberExpression
	KindStaticMemberExpression
	KindPrivateFieldExpression
	KindSequenceExpression
	KindTaggedTemplateExpression
	KindAwaitExpression
	KindYieldExpression
	KindParenthesizedExpression
	KindChainExpression
	KindSpreadElement
	KindImportExpression
	KindPrivateInExpression

	// TypeScript expression wrappers
	KindTSAsExpression
	KindTSSatisfiesExpression
	KindTSNonNullExpression
	KindTSTypeAssertion
	KindTSInstantiationExpression

	// Patterns
	KindObjectPattern
	KindArrayPattern
	KindAssignmentPattern
	KindRestElement
	KindObjectPatternProperty

	// Assignment targets (grammatical position distinct from Patterns)
	KindAssignmentTargetIdentifier
	KindArrayAssignmentTarget
	KindObjectAssignmentTarget

	// JSX
	KindJSXElement
	KindJSXFragment
	KindJSXOpeningElement
	KindJSXClosingElement
	KindJSXAttribute
	KindJSXSpreadAttribute
	KindJSXExpressionContainer
	KindJSXIdentifier
	KindJSXNamespacedName
	KindJSXMemberExpression
	KindJSXText

	// TypeScript types: keywords
	KindTSAnyKeyword
	KindTSUnknownKeyword
	KindTSNeverKeyword
	KindTSNullKeyword
	KindTSUndefinedKeyword
	KindTSVoidKeyword
	KindTSStringKeyword
	KindTSNumberKeyword
	KindTSBooleanKeyword
	KindTSBigIntKeyword
	KindTSObjectKeyword
	KindTSSymbolKeyword
	KindTSThisType

	// TypeScript types: compound
	KindTSArrayType
	KindTSTupleType
	KindTSUnionType
	KindTSIntersectionType
	KindTSConditionalType
	KindTSMappedType
	KindTSIndexedAccessType
	KindTSTypeOperator
	KindTSTypePredicate
	KindTSTypeQuery
	KindTSTypeLiteral
	KindTSPropertySignature
	KindTSIndexSignature
	KindTSCallSignatureDeclaration
	KindTSConstructSignatureDeclaration
	KindTSMethodSignature
	KindTSFunctionType
	KindTSConstructorType
	KindTSTypeReference
	KindTSLiteralType
	KindTSImportType
	KindTSTemplateLiteralType
	KindTSInferType
	KindTSTypeParameter
	KindTSTypeParameterDeclaration
	KindTSTypeParameterInstantiation

	// Modules
	KindImportDeclaration
	KindImportSpecifier
	KindImportDefaultSpecifier
	KindImportNamespaceSpecifier
	KindImportAttribute
	KindWithClause
	KindExportAllDeclaration
	KindExportDefaultDeclaration
	KindExportNamedDeclaration
	KindExportSpecifier

	// kindCount must stay last: it is the width of every KindSet bitset.
	kindCount
)

// KindCount is the number of distinct AST kinds, i.e. the width required of
// a rule-interest bitset.
const KindCount = int(kindCount)

var kindNames = [...]string{
	KindInvalid:                         "Invalid",
	KindProgram:                         "Program",
	KindBlockStatement:                  "BlockStatement",
	KindBreakStatement:                  "BreakStatement",
	KindContinueStatement:               "ContinueStatement",
	KindDebuggerStatement:               "DebuggerStatement",
	KindDoWhileStatement:                "DoWhileStatement",
	KindEmptyStatement:                  "EmptyStatement",
	KindExpressionStatement:             "ExpressionStatement",
	KindForStatement:                    "ForStatement",
	KindForInStatement:                  "ForInStatement",
	KindForOfStatement:                  "ForOfStatement",
	KindIfStatement:                     "IfStatement",
	KindLabeledStatement:                "LabeledStatement",
	KindReturnStatement:                 "ReturnStatement",
	KindSwitchStatement:                 "SwitchStatement",
	KindSwitchCase:                      "SwitchCase",
	KindThrowStatement:                  "ThrowStatement",
	KindTryStatement:                    "TryStatement",
	KindCatchClause:                     "CatchClause",
	KindWhileStatement:                  "WhileStatement",
	KindWithStatement:                   "WithStatement",
	KindVariableDeclaration:             "VariableDeclaration",
	KindVariableDeclarator:              "VariableDeclarator",
	KindFunctionDeclaration:             "Function",
	KindClassDeclaration:                "Class",
	KindUsingDeclaration:                "UsingDeclaration",
	KindTSTypeAliasDeclaration:          "TSTypeAliasDeclaration",
	KindTSInterfaceDeclaration:          "TSInterfaceDeclaration",
	KindTSEnumDeclaration:               "TSEnumDeclaration",
	KindTSModuleDeclaration:             "TSModuleDeclaration",
	KindTSImportEqualsDeclaration:       "TSImportEqualsDeclaration",
	KindClassBody:                       "ClassBody",
	KindMethodDefinition:                "MethodDefinition",
	KindPropertyDefinition:              "PropertyDefinition",
	KindStaticBlock:                     "StaticBlock",
	KindDecorator:                       "Decorator",
	KindFormalParameters:                "FormalParameters",
	KindFormalParameter:                 "FormalParameter",
	KindFunctionBody:                    "FunctionBody",
	KindDirective:                       "Directive",
	KindTSInterfaceBody:                 "TSInterfaceBody",
	KindTSEnumMember:                    "TSEnumMember",
	KindBooleanLiteral:                  "BooleanLiteral",
	KindNullLiteral:                     "NullLiteral",
	KindNumericLiteral:                  "NumericLiteral",
	KindBigIntLiteral:                   "BigIntLiteral",
	KindRegExpLiteral:                   "RegExpLiteral",
	KindStringLiteral:                   "StringLiteral",
	KindTemplateLiteral:                 "TemplateLiteral",
	KindTemplateElement:                 "TemplateElement",
	KindIdentifierReference:             "IdentifierReference",
	KindIdentifierName:                  "IdentifierName",
	KindBindingIdentifier:               "BindingIdentifier",
	KindLabelIdentifier:                 "LabelIdentifier",
	KindPrivateIdentifier:               "PrivateIdentifier",
	KindThisExpression:                  "ThisExpression",
	KindSuper:                           "Super",
	KindMetaProperty:                    "MetaProperty",
	KindArrayExpression:                 "ArrayExpression",
	KindObjectExpression:                "ObjectExpression",
	KindObjectProperty:                  "ObjectProperty",
	KindFunctionExpression:              "FunctionExpression",
	KindArrowFunctionExpression:         "ArrowFunctionExpression",
	KindClassExpression:                 "ClassExpression",
	KindAssignmentExpression:            "AssignmentExpression",
	KindUpdateExpression:                "UpdateExpression",
	KindUnaryExpression:                 "UnaryExpression",
	KindBinaryExpression:                "BinaryExpression",
	KindLogicalExpression:               "LogicalExpression",
	KindConditionalExpression:           "ConditionalExpression",
	KindCallExpression:                  "CallExpression",
	KindNewExpression:                   "NewExpression",
	KindComputedMemberExpression:        "ComputedMemberExpression",
	KindStaticMemberExpression:          "StaticMemberExpression",
	KindPrivateFieldExpression:          "PrivateFieldExpression",
	KindSequenceExpression:              "SequenceExpression",
	KindTaggedTemplateExpression:        "TaggedTemplateExpression",
	KindAwaitExpression:                 "AwaitExpression",
	KindYieldExpression:                 "YieldExpression",
	KindParenthesizedExpression:         "ParenthesizedExpression",
	KindChainExpression:                 "ChainExpression",
	KindSpreadElement:                   "SpreadElement",
	KindImportExpression:                "ImportExpression",
	KindPrivateInExpression:             "PrivateInExpression",
	KindTSAsExpression:                  "TSAsExpression",
	KindTSSatisfiesExpression:           "TSSatisfiesExpression",
	KindTSNonNullExpression:             "TSNonNullExpression",
	KindTSTypeAssertion:                 "TSTypeAssertion",
	KindTSInstantiationExpression:       "TSInstantiationExpression",
	KindObjectPattern:                   "ObjectPattern",
	KindArrayPattern:                    "ArrayPattern",
	KindAssignmentPattern:               "AssignmentPattern",
	KindRestElement:                     "RestElement",
	KindObjectPatternProperty:           "ObjectPatternProperty",
	KindAssignmentTargetIdentifier:      "AssignmentTargetIdentifier",
	KindArrayAssignmentTarget:           "ArrayAssignmentTarget",
	KindObjectAssignmentTarget:          "ObjectAssignmentTarget",
	KindJSXElement:                      "JSXElement",
	KindJSXFragment:                     "JSXFragment",
	KindJSXOpeningElement:               "JSXOpeningElement",
	KindJSXClosingElement:               "JSXClosingElement",
	KindJSXAttribute:                    "JSXAttribute",
	KindJSXSpreadAttribute:              "JSXSpreadAttribute",
	KindJSXExpressionContainer:          "JSXExpressionContainer",
	KindJSXIdentifier:                   "JSXIdentifier",
	KindJSXNamespacedName:               "JSXNamespacedName",
	KindJSXMemberExpression:             "JSXMemberExpression",
	KindJSXText:                         "JSXText",
	KindTSAnyKeyword:                    "TSAnyKeyword",
	KindTSUnknownKeyword:                "TSUnknownKeyword",
	KindTSNeverKeyword:                  "TSNeverKeyword",
	KindTSNullKeyword:                   "TSNullKeyword",
	KindTSUndefinedKeyword:              "TSUndefinedKeyword",
	KindTSVoidKeyword:                   "TSVoidKeyword",
	KindTSStringKeyword:                 "TSStringKeyword",
	KindTSNumberKeyword:                 "TSNumberKeyword",
	KindTSBooleanKeyword:                "TSBooleanKeyword",
	KindTSBigIntKeyword:                 "TSBigIntKeyword",
	KindTSObjectKeyword:                 "TSObjectKeyword",
	KindTSSymbolKeyword:                 "TSSymbolKeyword",
	KindTSThisType:                      "TSThisType",
	KindTSArrayType:                     "TSArrayType",
	KindTSTupleType:                     "TSTupleType",
	KindTSUnionType:                     "TSUnionType",
	KindTSIntersectionType:              "TSIntersectionType",
	KindTSConditionalType:               "TSConditionalType",
	KindTSMappedType:                    "TSMappedType",
	KindTSIndexedAccessType:             "TSIndexedAccessType",
	KindTSTypeOperator:                  "TSTypeOperator",
	KindTSTypePredicate:                 "TSTypePredicate",
	KindTSTypeQuery:                     "TSTypeQuery",
	KindTSTypeLiteral:                   "TSTypeLiteral",
	KindTSPropertySignature:             "TSPropertySignature",
	KindTSIndexSignature:                "TSIndexSignature",
	KindTSCallSignatureDeclaration:      "TSCallSignatureDeclaration",
	KindTSConstructSignatureDeclaration: "TSConstructSignatureDeclaration",
	KindTSMethodSignature:               "TSMethodSignature",
	KindTSFunctionType:                  "TSFunctionType",
	KindTSConstructorType:               "TSConstructorType",
	KindTSTypeReference:                 "TSTypeReference",
	KindTSLiteralType:                   "TSLiteralType",
	KindTSImportType:                    "TSImportType",
	KindTSTemplateLiteralType:           "TSTemplateLiteralType",
	KindTSInferType:                     "TSInferType",
	KindTSTypeParameter:                 "TSTypeParameter",
	KindTSTypeParameterDeclaration:      "TSTypeParameterDeclaration",
	KindTSTypeParameterInstantiation:    "TSTypeParameterInstantiation",
	KindImportDeclaration:               "ImportDeclaration",
	KindImportSpecifier:                 "ImportSpecifier",
	KindImportDefaultSpecifier:          "ImportDefaultSpecifier",
	KindImportNamespaceSpecifier:        "ImportNamespaceSpecifier",
	KindImportAttribute:                 "ImportAttribute",
	KindWithClause:                      "WithClause",
	KindExportAllDeclaration:            "ExportAllDeclaration",
	KindExportDefaultDeclaration:        "ExportDefaultDeclaration",
	KindExportNamedDeclaration:          "ExportNamedDeclaration",
	KindExportSpecifier:                 "ExportSpecifier",
}

// String returns the kind's debug name, e.g. for diagnostics and panics on
// invariant violations (spec.md section 7).
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}
