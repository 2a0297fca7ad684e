// Package semantic holds the external-collaborator data shapes a rule's
// context needs but that this module does not itself compute from source
// text: the module record (which this module does own, since it's a pure
// function of the AST) and stand-ins for the scope tree / symbol table a
// full semantic analysis pass would build (out of scope here; see
// SPEC_FULL.md's Non-goals).
package semantic

import "github.com/web-infra-dev/rslint-core/internal/span"

// ImportName is either a binding name or the sentinel meaning "the whole
// namespace" / "the default export", matching the distinction ESM's own
// module record keeps between named, default, and namespace imports.
type ImportName struct {
	Kind ImportNameKind
	Name string // meaningful only when Kind == ImportNameKindName
}

type ImportNameKind uint8

const (
	ImportNameKindName ImportNameKind = iota
	ImportNameKindDefault
	ImportNameKindNamespace
	ImportNameKindAll // `export * from` re-export, no individual local name
)

// ImportEntry records one binding introduced by an ImportDeclaration.
type ImportEntry struct {
	ModuleRequest string
	ImportName    ImportName
	LocalName     string
	Span          span.Span
	IsTypeOnly    bool
}

// LocalExportEntry records `export { x }` or `export const x = ...` for a
// binding declared in this module.
type LocalExportEntry struct {
	ExportName string
	LocalName  string
	Span       span.Span
}

// IndirectExportEntry records `export { x } from "mod"` — re-exporting a
// name without binding it locally.
type IndirectExportEntry struct {
	ExportName    string
	ModuleRequest string
	ImportName    ImportName
	Span          span.Span
}

// StarExportEntry records `export * from "mod"` (ExportName empty) or
// `export * as ns from "mod"`.
type StarExportEntry struct {
	ExportName    string
	ModuleRequest string
	Span          span.Span
}

// RequestedModule is one `import`/`export ... from` statement's worth of
// bookkeeping about how a given source was requested — a module can be
// imported more than once, with different import/export forms, from a
// single file.
type RequestedModule struct {
	IsImport     bool
	StatementSpan span.Span
}

// ModuleRecord is the complete static-import/export surface of one file,
// exactly what no-restricted-imports needs to decide which statements bind
// which names from which sources, and what a bundler's module graph needs
// as its per-file node.
type ModuleRecord struct {
	ImportEntries         []ImportEntry
	LocalExportEntries    []LocalExportEntry
	IndirectExportEntries []IndirectExportEntry
	StarExportEntries     []StarExportEntry
	RequestedModules      map[string][]RequestedModule
}

// NewModuleRecord returns an empty record ready for a builder to populate.
func NewModuleRecord() *ModuleRecord {
	return &ModuleRecord{RequestedModules: make(map[string][]RequestedModule)}
}

// RequestModule records that source was named by an import or export
// statement at sp, appending rather than overwriting so the same source
// requested twice (once for a value import, once for a type-only export)
// keeps both entries.
func (m *ModuleRecord) RequestModule(source string, isImport bool, sp span.Span) {
	m.RequestedModules[source] = append(m.RequestedModules[source], RequestedModule{
		IsImport:      isImport,
		StatementSpan: sp,
	})
}
