// Package config loads the rslint.jsonc-style project configuration: an
// array of entries, each scoping `files`/`ignores` globs to a set of rule
// severities and language options.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-json-experiment/json"
	"github.com/tailscale/hujson"
)

// RuleConfig is either a bare severity string ("error"/"warn"/"off") or an
// ESLint-style `[severity, options]` tuple; RawOptions stays as `any` so
// each rule's own Factory decodes it into its own option struct.
type RuleConfig struct {
	Severity   string
	RawOptions any
}

// UnmarshalJSON accepts both encodings the teacher's config format allows.
func (r *RuleConfig) UnmarshalJSON(data []byte) error {
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		r.Severity = bare
		r.RawOptions = nil
		return nil
	}
	var tuple []any
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("config: rule entry must be a severity string or [severity, options] tuple: %w", err)
	}
	if len(tuple) == 0 {
		return fmt.Errorf("config: empty rule tuple")
	}
	sev, ok := tuple[0].(string)
	if !ok {
		return fmt.Errorf("config: rule tuple's first element must be a severity string")
	}
	r.Severity = sev
	if len(tuple) > 1 {
		r.RawOptions = tuple[1]
	}
	return nil
}

// LanguageOptions mirrors the subset of parserOptions this core cares
// about; the actual parser is an external collaborator (SPEC_FULL.md's
// Non-goals), so these fields only steer how Program.SourceType and
// diagnostics are interpreted, never how parsing itself happens.
type LanguageOptions struct {
	EcmaVersion string `json:"ecmaVersion"`
	SourceType  string `json:"sourceType"`
	JSX         bool   `json:"jsx"`
}

// Entry is one element of the top-level config array.
type Entry struct {
	Files           []string              `json:"files"`
	Ignores         []string              `json:"ignores"`
	LanguageOptions LanguageOptions        `json:"languageOptions"`
	Rules           map[string]RuleConfig `json:"rules"`
}

// Config is the full, ordered list of entries a project's config file
// holds; later entries override earlier ones for any file both match, the
// same cascade ESLint's flat config uses.
type Config []Entry

// Load reads path, strips JSONC comments/trailing commas with hujson, and
// decodes the result. hujson is required here and not optional: the
// teacher's own embedded default config template is JSONC, so any loader
// that only calls encoding/json would reject the exact config this project
// ships as its starting point.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	standardized, err := hujson.Standardize(raw)
	if err != nil {
		return nil, fmt.Errorf("config: parsing JSONC in %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return cfg, nil
}

// EntriesForFile returns every entry whose files/ignores glob matches
// path, in config order, so a caller can fold rule severities left-to-right
// and have later entries win.
func (c Config) EntriesForFile(path string) []Entry {
	normalized := filepath.ToSlash(path)
	var matched []Entry
	for _, entry := range c {
		if entryMatches(entry, normalized) {
			matched = append(matched, entry)
		}
	}
	return matched
}

func entryMatches(entry Entry, path string) bool {
	if len(entry.Files) > 0 && !matchesAny(entry.Files, path) {
		return false
	}
	if matchesAny(entry.Ignores, path) {
		return false
	}
	return true
}

func matchesAny(patterns []string, path string) bool {
	for _, pat := range patterns {
		if ok, _ := doublestar.Match(pat, path); ok {
			return true
		}
	}
	return false
}

// ResolvedRules folds every matching entry's rules for path into one
// severity-by-name map, later entries overriding earlier ones.
func (c Config) ResolvedRules(path string) map[string]RuleConfig {
	out := make(map[string]RuleConfig)
	for _, entry := range c.EntriesForFile(path) {
		for name, rc := range entry.Rules {
			out[name] = rc
		}
	}
	return out
}
