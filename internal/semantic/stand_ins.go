package semantic

// ScopeTree and SymbolTable stand in for the scope/binding resolution a
// full semantic analysis pass would provide. Building that pass is out of
// scope here (SPEC_FULL.md's Non-goals carry this forward from the
// original spec's "external collaborators" framing): a rule.Context can
// carry one, but no-restricted-imports (the one fully specified rule) only
// needs the ModuleRecord, so these stay minimal placeholders a future
// semantic pass can populate without changing rule.Context's shape.
type ScopeTree struct{}

type SymbolTable struct{}

func NewScopeTree() *ScopeTree   { return &ScopeTree{} }
func NewSymbolTable() *SymbolTable { return &SymbolTable{} }
