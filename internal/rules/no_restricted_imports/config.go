// Package no_restricted_imports implements the one fully specified example
// rule: flagging imports (and re-exports) of configured modules, optionally
// restricted to specific import names, matched either by exact path or by
// a glob/regex pattern.
package no_restricted_imports

import (
	"fmt"
	"regexp"

	"github.com/go-json-experiment/json"
)

// RestrictedPath restricts a single exact module specifier.
type RestrictedPath struct {
	Name                   string   `json:"name"`
	Message                string   `json:"message"`
	ImportNames            []string `json:"importNames"`
	AllowImportNames       []string `json:"allowImportNames"`
	ImportNamePattern      string   `json:"importNamePattern"`
	AllowImportNamePattern string   `json:"allowImportNamePattern"`
	AllowTypeImports       bool     `json:"allowTypeImports"`
}

// UnmarshalJSON accepts the bare-string shorthand (`"lodash"`, equivalent
// to `{"name": "lodash"}`) alongside the full object form, per spec.md
// section 6's `string | {name, ...}` path-entry grammar.
func (p *RestrictedPath) UnmarshalJSON(data []byte) error {
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		*p = RestrictedPath{Name: bare}
		return nil
	}
	type restrictedPathAlias RestrictedPath
	var full restrictedPathAlias
	if err := json.Unmarshal(data, &full); err != nil {
		return fmt.Errorf("no-restricted-imports: path entry must be a string or object: %w", err)
	}
	*p = RestrictedPath(full)
	return nil
}

// RestrictedPattern restricts every module specifier matching a
// doublestar-style glob group or, alternatively, a regular expression.
// Exactly one of Group/Regex must be set; the config loader drops entries
// that set both or neither instead of erroring (spec.md section 7:
// malformed configuration is silently skipped, not fatal).
type RestrictedPattern struct {
	Group                  []string `json:"group"`
	Regex                  string   `json:"regex"`
	ImportNames            []string `json:"importNames"`
	AllowImportNames       []string `json:"allowImportNames"`
	ImportNamePattern      string   `json:"importNamePattern"`
	AllowImportNamePattern string   `json:"allowImportNamePattern"`
	Message                string   `json:"message"`
	CaseSensitive          *bool    `json:"caseSensitive"`
	AllowTypeImports       bool     `json:"allowTypeImports"`

	compiledRegex             *regexp.Regexp
	compiledImportNamePattern *regexp.Regexp
	compiledAllowNamePattern  *regexp.Regexp
}

// UnmarshalJSON accepts the bare-string shorthand (`"lodash/*"`,
// equivalent to `{"group": ["lodash/*"]}`) alongside the full object form,
// per spec.md section 6's `string | {group?|regex?, ...}` pattern-entry
// grammar.
func (p *RestrictedPattern) UnmarshalJSON(data []byte) error {
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		*p = RestrictedPattern{Group: []string{bare}}
		return nil
	}
	type restrictedPatternAlias RestrictedPattern
	var full restrictedPatternAlias
	if err := json.Unmarshal(data, &full); err != nil {
		return fmt.Errorf("no-restricted-imports: pattern entry must be a string or object: %w", err)
	}
	*p = RestrictedPattern(full)
	return nil
}

// Config is the rule's full option shape: `["error", { paths, patterns }]`.
type Config struct {
	Paths    []RestrictedPath    `json:"paths"`
	Patterns []RestrictedPattern `json:"patterns"`
}

// isWellFormed reports whether p sets exactly one of Group/Regex, per
// spec.md section 9's supplement on the regex alternative to group.
func (p RestrictedPattern) isWellFormed() bool {
	hasGroup := len(p.Group) > 0
	hasRegex := p.Regex != ""
	return hasGroup != hasRegex
}

// Normalize compiles every pattern's regex fields and drops malformed
// patterns (both or neither of Group/Regex set, or a regex that fails to
// compile). Returns a new Config; the caller's original is left untouched.
func Normalize(cfg Config) Config {
	out := Config{Paths: cfg.Paths}
	for _, p := range cfg.Patterns {
		if !p.isWellFormed() {
			continue
		}
		if p.Regex != "" {
			re, err := regexp.Compile(p.Regex)
			if err != nil {
				continue
			}
			p.compiledRegex = re
		}
		if p.ImportNamePattern != "" {
			re, err := regexp.Compile(p.ImportNamePattern)
			if err != nil {
				continue
			}
			p.compiledImportNamePattern = re
		}
		if p.AllowImportNamePattern != "" {
			re, err := regexp.Compile(p.AllowImportNamePattern)
			if err != nil {
				continue
			}
			p.compiledAllowNamePattern = re
		}
		out.Patterns = append(out.Patterns, p)
	}
	return out
}
