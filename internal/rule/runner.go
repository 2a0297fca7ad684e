package rule

import (
	"sort"

	"github.com/web-infra-dev/rslint-core/internal/ast"
	"github.com/web-infra-dev/rslint-core/internal/diagnostic"
	"github.com/web-infra-dev/rslint-core/internal/semantic"
	"github.com/web-infra-dev/rslint-core/internal/visit"
)

// ConfiguredRule pairs a Rule with the severity its config entry resolved
// to; SeverityOff rules should be filtered out before a Runner is built so
// they cost nothing at traversal time.
type ConfiguredRule struct {
	Rule     Rule
	Severity diagnostic.Severity
}

// Runner drives one pass over a Program, invoking every enabled rule's Run
// at each node whose Kind it declared interest in, then every rule's
// RunOnce after the walk completes.
//
// Dispatch is a dense []Kind-indexed table built once at construction,
// rather than a per-node scan of every rule's bitset: each slot holds only
// the rules actually interested in that Kind, so per-node cost is
// O(active-rules-at-this-kind) instead of O(all-rules). None-sentinel rules
// (empty KindSet) sit in a separate "always" list checked at every node.
// This is an implementation strategy only — bitset soundness is identical
// to a naive per-node bitset scan.
type Runner struct {
	byKind  [ast.KindCount][]ConfiguredRule
	always  []ConfiguredRule
	ordered []ConfiguredRule // stable name order, for RunOnce and determinism
}

// NewRunner builds a Runner from the given configured rules, sorted by name
// so that diagnostic ordering within a node is deterministic across runs
// regardless of map iteration order upstream.
func NewRunner(rules []ConfiguredRule) *Runner {
	sort.Slice(rules, func(i, j int) bool { return rules[i].Rule.Name < rules[j].Rule.Name })
	r := &Runner{ordered: rules}
	for _, cr := range rules {
		if cr.Rule.Kinds.IsEmpty() {
			r.always = append(r.always, cr)
			continue
		}
		for _, k := range cr.Rule.Kinds.Kinds() {
			r.byKind[k] = append(r.byKind[k], cr)
		}
	}
	return r
}

// dispatchVisitor adapts the Runner's per-kind dispatch into a visit.Visitor
// so the single Walk call the Run function does double duty as both the
// generic traversal and the rule dispatch.
type dispatchVisitor struct {
	visit.BaseVisitor
	runner       *Runner
	program      *ast.Program
	moduleRecord *semantic.ModuleRecord
	scopes       *semantic.ScopeTree
	symbols      *semantic.SymbolTable
	sink         *diagnostic.Sink
}

func (d *dispatchVisitor) EnterNode(node ast.Node) {
	k := node.Kind()
	for _, cr := range d.runner.byKind[k] {
		ctx := NewContext(cr.Rule.Name, cr.Severity, d.program, d.moduleRecord, d.scopes, d.symbols, d.sink)
		cr.Rule.Run(ctx, node)
	}
	for _, cr := range d.runner.always {
		ctx := NewContext(cr.Rule.Name, cr.Severity, d.program, d.moduleRecord, d.scopes, d.symbols, d.sink)
		cr.Rule.Run(ctx, node)
	}
}

// Run executes every configured rule's Run over program's entire tree, then
// every rule's RunOnce, strictly after the walk completes, and returns the
// accumulated diagnostics.
func (r *Runner) Run(program *ast.Program, moduleRecord *semantic.ModuleRecord) []diagnostic.Diagnostic {
	sink := diagnostic.NewSink()
	dv := &dispatchVisitor{
		runner:       r,
		program:      program,
		moduleRecord: moduleRecord,
		scopes:       semantic.NewScopeTree(),
		symbols:      semantic.NewSymbolTable(),
		sink:         sink,
	}
	visit.Walk(dv, program)

	for _, cr := range r.ordered {
		if cr.Rule.RunOnce == nil {
			continue
		}
		ctx := NewContext(cr.Rule.Name, cr.Severity, program, moduleRecord, dv.scopes, dv.symbols, sink)
		cr.Rule.RunOnce(ctx)
	}
	return sink.All()
}
