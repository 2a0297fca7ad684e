package ast

// BinaryOperator enumerates the infix operators of BinaryExpression and the
// synthetic "in"/"instanceof" relational pair. Precedence mirrors the table
// oxc_syntax::operator::BinaryOperator::precedence uses, which the
// parenthesization decider depends on for its binary/binary comparisons.
type BinaryOperator uint8

const (
	BinEquality BinaryOperator = iota
	BinInequality
	BinStrictEquality
	BinStrictInequality
	BinLessThan
	BinLessEqualThan
	BinGreaterThan
	BinGreaterEqualThan
	BinLeftShift
	BinRightShift
	BinShiftRightZeroFill
	BinAddition
	BinSubtraction
	BinMultiplication
	BinDivision
	BinRemainder
	BinBitwiseOR
	BinBitwiseXOR
	BinBitwiseAnd
	BinIn
	BinInstanceof
	BinExponential
)

// binaryPrecedence assigns each operator a binding strength; higher binds
// tighter. Grouped exactly the way the original's match arms group them.
var binaryPrecedence = map[BinaryOperator]int{
	BinBitwiseOR:          1,
	BinBitwiseXOR:         2,
	BinBitwiseAnd:         3,
	BinEquality:           4,
	BinInequality:         4,
	BinStrictEquality:     4,
	BinStrictInequality:   4,
	BinLessThan:           5,
	BinLessEqualThan:      5,
	BinGreaterThan:        5,
	BinGreaterEqualThan:   5,
	BinIn:                 5,
	BinInstanceof:         5,
	BinLeftShift:          6,
	BinRightShift:         6,
	BinShiftRightZeroFill: 6,
	BinAddition:           7,
	BinSubtraction:        7,
	BinMultiplication:     8,
	BinDivision:           8,
	BinRemainder:          8,
	BinExponential:        9,
}

// Precedence returns the operator's binding strength for the
// parenthesization decider's binary/binary comparisons.
func (op BinaryOperator) Precedence() int { return binaryPrecedence[op] }

// IsEquality reports whether op is one of the four (in)equality operators.
func (op BinaryOperator) IsEquality() bool {
	switch op {
	case BinEquality, BinInequality, BinStrictEquality, BinStrictInequality:
		return true
	}
	return false
}

// IsRelational reports whether op is a relational comparison, including the
// two keyword operators `in`/`instanceof` that parse as binary expressions.
func (op BinaryOperator) IsRelational() bool {
	switch op {
	case BinLessThan, BinLessEqualThan, BinGreaterThan, BinGreaterEqualThan, BinIn, BinInstanceof:
		return true
	}
	return false
}

// IsIn reports whether op is the `in` operator specifically — the
// parenthesization decider needs this in isolation because `in` is
// forbidden inside a bare for-statement initializer (spec.md section 4.3).
func (op BinaryOperator) IsIn() bool { return op == BinIn }

// IsBitwise reports whether op operates on the operand's bit pattern.
func (op BinaryOperator) IsBitwise() bool {
	switch op {
	case BinBitwiseOR, BinBitwiseXOR, BinBitwiseAnd, BinLeftShift, BinRightShift, BinShiftRightZeroFill:
		return true
	}
	return false
}

// IsArithmetic reports whether op is a numeric arithmetic operator.
func (op BinaryOperator) IsArithmetic() bool {
	switch op {
	case BinAddition, BinSubtraction, BinMultiplication, BinDivision, BinRemainder, BinExponential:
		return true
	}
	return false
}

// LogicalOperator enumerates the short-circuiting logical connectives.
// These are kept distinct from BinaryOperator, mirroring oxc's split between
// BinaryExpression and LogicalExpression — mixing `??` with `&&`/`||`
// without parens is a syntax error, which the decider must always force.
type LogicalOperator uint8

const (
	LogicalAnd LogicalOperator = iota
	LogicalOr
	LogicalNullish
)

// Precedence mirrors the relative binding strength of the three connectives
// (`&&` binds tighter than `||`; `??` shares `||`'s level and cannot be
// directly mixed with `&&`/`||` at all). These values are only comparable
// with each other: every logical connective binds looser than every
// BinaryOperator, which the decider checks separately rather than by
// comparing against binaryPrecedence.
func (op LogicalOperator) Precedence() int {
	switch op {
	case LogicalOr, LogicalNullish:
		return 1
	case LogicalAnd:
		return 2
	}
	return 0
}

// UnaryOperator enumerates prefix unary operators (excluding ++/-- which are
// UpdateOperator, and await/yield which get their own expression kinds).
type UnaryOperator uint8

const (
	UnaryUnaryPlus UnaryOperator = iota
	UnaryUnaryNegation
	UnaryLogicalNot
	UnaryBitwiseNot
	UnaryTypeof
	UnaryVoid
	UnaryDelete
)

// String returns the operator's source token.
func (op UnaryOperator) String() string {
	switch op {
	case UnaryUnaryPlus:
		return "+"
	case UnaryUnaryNegation:
		return "-"
	case UnaryLogicalNot:
		return "!"
	case UnaryBitwiseNot:
		return "~"
	case UnaryTypeof:
		return "typeof"
	case UnaryVoid:
		return "void"
	case UnaryDelete:
		return "delete"
	}
	return ""
}

// IsKeyword reports whether the operator renders as a word (`typeof`,
// `void`, `delete`) rather than a symbol — needed by the printer to decide
// whether a trailing space is required instead of tight concatenation.
func (op UnaryOperator) IsKeyword() bool {
	switch op {
	case UnaryTypeof, UnaryVoid, UnaryDelete:
		return true
	}
	return false
}

// UpdateOperator enumerates ++ and --.
type UpdateOperator uint8

const (
	UpdateIncrement UpdateOperator = iota
	UpdateDecrement
)

// AssignmentOperator enumerates `=` and every compound assignment operator.
type AssignmentOperator uint8

const (
	AssignAssign AssignmentOperator = iota
	AssignAddAssign
	AssignSubtractAssign
	AssignMultiplyAssign
	AssignDivideAssign
	AssignRemainderAssign
	AssignExponentialAssign
	AssignLeftShiftAssign
	AssignRightShiftAssign
	AssignShiftRightZeroFillAssign
	AssignBitwiseORAssign
	AssignBitwiseXORAssign
	AssignBitwiseAndAssign
	AssignLogicalAndAssign
	AssignLogicalOrAssign
	AssignLogicalNullishAssign
)

// IsLogical reports whether op is one of the three logical-assignment
// operators (`&&=`, `||=`, `??=`), which the decider treats like a logical
// expression's right-hand side for parenthesization purposes.
func (op AssignmentOperator) IsLogical() bool {
	switch op {
	case AssignLogicalAndAssign, AssignLogicalOrAssign, AssignLogicalNullishAssign:
		return true
	}
	return false
}
