package rule

import "fmt"

// Factory builds a Rule bound to one config entry's raw options for this
// rule name. Options arrives as whatever go-json-experiment/json (by way of hujson)
// decoded the rule's config value into — typically a map[string]any for an
// object-shaped option, or nil when the rule takes no options. Keeping
// rules as factories rather than fixed values is what lets the same
// registered rule serve different option values across different config
// entries (spec.md's `files`/`ignores`-scoped overrides).
type Factory func(options any) (Rule, error)

// Registry maps a rule name to its Factory. GlobalRuleRegistry is the
// process-wide instance every rule package registers itself into from an
// init function, mirroring the teacher's internal/config.RegisterAllRules
// pattern but spread across each rule's own package instead of one giant
// switch.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds factory under name, panicking on a duplicate name — that is
// always a programming error (two rule packages claiming the same id),
// never a runtime condition a caller should recover from.
func (reg *Registry) Register(name string, factory Factory) {
	if _, exists := reg.factories[name]; exists {
		panic(fmt.Sprintf("rule: duplicate rule name %q", name))
	}
	reg.factories[name] = factory
}

// Build looks up name's factory and invokes it with options, producing a
// concrete Rule ready to hand to NewRunner.
func (reg *Registry) Build(name string, options any) (Rule, error) {
	factory, ok := reg.factories[name]
	if !ok {
		return Rule{}, fmt.Errorf("rule: unknown rule %q", name)
	}
	return factory(options)
}

// Names returns every registered rule name, in no particular order.
func (reg *Registry) Names() []string {
	out := make([]string, 0, len(reg.factories))
	for name := range reg.factories {
		out = append(out, name)
	}
	return out
}

// GlobalRuleRegistry is the registry every built-in rule package registers
// into at init time.
var GlobalRuleRegistry = NewRegistry()
