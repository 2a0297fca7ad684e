package config

import (
	"fmt"

	"github.com/web-infra-dev/rslint-core/internal/diagnostic"
	"github.com/web-infra-dev/rslint-core/internal/rule"
)

// BuildRunner resolves the rules configured for path against registry and
// returns a ready-to-use rule.Runner. A rule set to "off" is skipped
// entirely rather than built with SeverityOff, so it costs nothing at
// traversal time (Runner's dense dispatch table never gets an entry for it).
func BuildRunner(cfg Config, registry *rule.Registry, path string) (*rule.Runner, error) {
	resolved := cfg.ResolvedRules(path)
	configured := make([]rule.ConfiguredRule, 0, len(resolved))
	for name, rc := range resolved {
		severity, err := diagnostic.ParseSeverity(rc.Severity)
		if err != nil {
			return nil, fmt.Errorf("config: rule %q: %w", name, err)
		}
		if severity == diagnostic.SeverityOff {
			continue
		}
		r, err := registry.Build(name, rc.RawOptions)
		if err != nil {
			return nil, fmt.Errorf("config: building rule %q: %w", name, err)
		}
		configured = append(configured, rule.ConfiguredRule{Rule: r, Severity: severity})
	}
	return rule.NewRunner(configured), nil
}
