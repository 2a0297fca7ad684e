package ast

import "github.com/web-infra-dev/rslint-core/internal/span"

// BlockStatement groups a sequence of statements inside braces; spec.md
// section 4.1 calls out that it opens and closes a lexical scope the
// visitor must enter/leave around Body.
type BlockStatement struct {
	Base
	Body []Statement
}

func (*BlockStatement) statementNode() {}

func NewBlockStatement(sp span.Span, body []Statement) *BlockStatement {
	return &BlockStatement{Base{KindBlockStatement, sp}, body}
}

// BreakStatement optionally names the label it breaks out of.
type BreakStatement struct {
	Base
	Label *LabelIdentifier
}

func (*BreakStatement) statementNode() {}

// ContinueStatement optionally names the label it continues.
type ContinueStatement struct {
	Base
	Label *LabelIdentifier
}

func (*ContinueStatement) statementNode() {}

// DebuggerStatement is the bare `debugger;` statement.
type DebuggerStatement struct{ Base }

func (*DebuggerStatement) statementNode() {}

// DoWhileStatement is `do <Body> while (<Test>);`.
type DoWhileStatement struct {
	Base
	Test Expression
	Body Statement
}

func (*DoWhileStatement) statementNode() {}

// EmptyStatement is the bare `;`.
type EmptyStatement struct{ Base }

func (*EmptyStatement) statementNode() {}

// ExpressionStatement wraps an expression used as a statement; it is the
// canonical "ambiguous leading token" site for the parenthesization
// decider's ASI-avoidance checks (`(function(){})()`, `({}).x`, ...).
type ExpressionStatement struct {
	Base
	Expression Expression
}

func (*ExpressionStatement) statementNode() {}

func NewExpressionStatement(sp span.Span, expr Expression) *ExpressionStatement {
	return &ExpressionStatement{Base{KindExpressionStatement, sp}, expr}
}

// ForStatementInit is satisfied by VariableDeclaration or any Expression.
type ForStatementInit interface{ Node }

// ForStatement is the general C-style `for (Init; Test; Update) Body`.
type ForStatement struct {
	Base
	Init   ForStatementInit // may be nil
	Test   Expression       // may be nil
	Update Expression       // may be nil
	Body   Statement
}

func (*ForStatement) statementNode() {}

// ForStatementLeft is satisfied by VariableDeclaration or any
// AssignmentTarget — the left side of a for-in/for-of header.
type ForStatementLeft interface{ Node }

// ForInStatement is `for (Left in Right) Body`.
type ForInStatement struct {
	Base
	Left  ForStatementLeft
	Right Expression
	Body  Statement
}

func (*ForInStatement) statementNode() {}

// ForOfStatement is `for [await] (Left of Right) Body`. IsAwait marks
// `for await (... of ...)`, which the decider's starts-with helper must
// still treat as starting with the keyword `for`, not `await`.
type ForOfStatement struct {
	Base
	IsAwait bool
	Left    ForStatementLeft
	Right   Expression
	Body    Statement
}

func (*ForOfStatement) statementNode() {}

// IfStatement is `if (Test) Consequent [else Alternate]`.
type IfStatement struct {
	Base
	Test       Expression
	Consequent Statement
	Alternate  Statement // may be nil
}

func (*IfStatement) statementNode() {}

// LabeledStatement is `Label: Body`.
type LabeledStatement struct {
	Base
	Label *LabelIdentifier
	Body  Statement
}

func (*LabeledStatement) statementNode() {}

// ReturnStatement optionally carries a return value.
type ReturnStatement struct {
	Base
	Argument Expression // may be nil
}

func (*ReturnStatement) statementNode() {}

// SwitchStatement is `switch (Discriminant) { Cases }`.
type SwitchStatement struct {
	Base
	Discriminant Expression
	Cases        []*SwitchCase
}

func (*SwitchStatement) statementNode() {}

// SwitchCase is one `case Test:` or `default:` arm. Test is nil for default.
type SwitchCase struct {
	Base
	Test       Expression
	Consequent []Statement
}

// ThrowStatement is `throw Argument;`.
type ThrowStatement struct {
	Base
	Argument Expression
}

func (*ThrowStatement) statementNode() {}

// TryStatement is `try Block [catch (Param) Handler] [finally Finalizer]`.
type TryStatement struct {
	Base
	Block     *BlockStatement
	Handler   *CatchClause // may be nil
	Finalizer *BlockStatement // may be nil
}

func (*TryStatement) statementNode() {}

// CatchClause is the `catch (Param) Body` clause; Param is nil for a
// parameterless catch.
type CatchClause struct {
	Base
	Param Pattern // may be nil
	Body  *BlockStatement
}

// WhileStatement is `while (Test) Body`.
type WhileStatement struct {
	Base
	Test Expression
	Body Statement
}

func (*WhileStatement) statementNode() {}

// WithStatement is the legacy, non-strict-mode `with (Object) Body`.
type WithStatement struct {
	Base
	Object Expression
	Body   Statement
}

func (*WithStatement) statementNode() {}
