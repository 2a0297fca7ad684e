package rule

import (
	"github.com/web-infra-dev/rslint-core/internal/ast"
	"github.com/web-infra-dev/rslint-core/internal/diagnostic"
	"github.com/web-infra-dev/rslint-core/internal/semantic"
	"github.com/web-infra-dev/rslint-core/internal/span"
)

// Message is one of a rule's named diagnostic templates, the same shape as
// the teacher's RuleMessage — rules look theirs up by Id so a config's
// `message` override (no-restricted-imports supports a custom per-path
// message) has something stable to key off.
type Message struct {
	Id          string
	Description string
}

// Context is what a rule's Run/RunOnce callback receives: read access to
// the current file's module record and (future) scope/symbol data, plus
// the means to report a diagnostic. Rules never touch a diagnostic.Sink
// directly so that every reported diagnostic is automatically stamped with
// the reporting rule's name.
type Context struct {
	RuleName     string
	Severity     diagnostic.Severity
	Program      *ast.Program
	ModuleRecord *semantic.ModuleRecord
	Scopes       *semantic.ScopeTree
	Symbols      *semantic.SymbolTable
	sink         *diagnostic.Sink
}

// NewContext builds a Context bound to sink; Runner constructs one per rule
// per file.
func NewContext(name string, severity diagnostic.Severity, program *ast.Program, modRecord *semantic.ModuleRecord, scopes *semantic.ScopeTree, symbols *semantic.SymbolTable, sink *diagnostic.Sink) *Context {
	return &Context{
		RuleName:     name,
		Severity:     severity,
		Program:      program,
		ModuleRecord: modRecord,
		Scopes:       scopes,
		Symbols:      symbols,
		sink:         sink,
	}
}

// ReportNode records a diagnostic anchored at node's span.
func (c *Context) ReportNode(node ast.Node, message string) {
	c.sink.Add(diagnostic.New(c.RuleName, c.Severity, message, node.GetSpan()))
}

// ReportNodeWithHelp is ReportNode plus a help string.
func (c *Context) ReportNodeWithHelp(node ast.Node, message, help string) {
	c.sink.Add(diagnostic.New(c.RuleName, c.Severity, message, node.GetSpan()).WithHelp(help))
}

// ReportSpan records a diagnostic anchored at an explicit span rather than
// a node — used by RunOnce hooks that report against module-record
// bookkeeping instead of a node they visited during the walk.
func (c *Context) ReportSpan(sp span.Span, message string) {
	c.sink.Add(diagnostic.New(c.RuleName, c.Severity, message, sp))
}

// RunFunc is called once per matching node during the single tree walk.
type RunFunc func(ctx *Context, node ast.Node)

// RunOnceFunc is called exactly once per file, after every Run call has
// completed — the hook no-restricted-imports uses to flag side-effect-only
// imports that were never visited as an individual "uses" node.
type RunOnceFunc func(ctx *Context)

// Rule is a named, configurable lint check. Kinds is the "None sentinel"
// special case when IsEmpty(): such a rule's Run is invoked at every node
// instead of a restricted subset (spec.md section 8's bitset soundness
// property must hold for both the restricted and the None case equally).
type Rule struct {
	Name    string
	Kinds   KindSet
	Run     RunFunc
	RunOnce RunOnceFunc
	Messages map[string]Message
}
