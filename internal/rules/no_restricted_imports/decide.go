package no_restricted_imports

import (
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/cases"
)

// Outcome is the result of deciding whether one imported name from one
// source is allowed, and if not, which of the three disallowed shapes it
// is — each shape gets its own message template because the wording
// differs ("this whole module", "its default export", "this specific
// name").
type Outcome uint8

const (
	OutcomeAllowed Outcome = iota
	OutcomeGeneralDisallowed
	OutcomeDefaultDisallowed
	OutcomeNameDisallowed
)

// MatchedMessageID names which of the eight diagnostic templates fired.
type MatchedMessageID string

const (
	MsgPathGeneral          MatchedMessageID = "pathGeneral"
	MsgPathDefault          MatchedMessageID = "pathDefault"
	MsgPathName             MatchedMessageID = "pathName"
	MsgPatternGeneralGroup  MatchedMessageID = "patternGeneralGroup"
	MsgPatternGeneralRegex  MatchedMessageID = "patternGeneralRegex"
	MsgPatternDefault       MatchedMessageID = "patternDefault"
	MsgPatternNameGroup     MatchedMessageID = "patternNameGroup"
	MsgPatternNameRegex     MatchedMessageID = "patternNameRegex"
)

// Decision is the full result of evaluating one imported name against the
// configuration: the outcome, which template fired, and the custom
// `message` override (if the matching restriction set one).
type Decision struct {
	Outcome      Outcome
	MessageID    MatchedMessageID
	CustomMessage string
}

var allowedDecision = Decision{Outcome: OutcomeAllowed}

// ImportNameKind distinguishes a default import, a namespace import (`* as
// ns`), and a named import, since only named/default imports can be
// individually restricted by ImportNames — a namespace import always hits
// the general/pattern-general outcome if the module itself is restricted.
type ImportNameKind uint8

const (
	NameKindNamed ImportNameKind = iota
	NameKindDefault
	NameKindNamespace
)

// Decide evaluates one imported binding (name, kind, whether the import
// statement itself is type-only) against the normalized Config and returns
// the outcome for that single name. A module with N named imports is
// decided N times, once per name, since different names can have different
// outcomes against the same restriction (spec.md section 4.3).
func Decide(cfg Config, source string, name string, kind ImportNameKind, isTypeOnly bool) Decision {
	if d := decideAgainstPaths(cfg.Paths, source, name, kind, isTypeOnly); d.Outcome != OutcomeAllowed {
		return d
	}
	if d := decideAgainstPatterns(cfg.Patterns, source, name, kind, isTypeOnly); d.Outcome != OutcomeAllowed {
		return d
	}
	return allowedDecision
}

func decideAgainstPaths(paths []RestrictedPath, source, name string, kind ImportNameKind, isTypeOnly bool) Decision {
	for _, p := range paths {
		if p.Name != source {
			continue
		}
		if isTypeOnly && p.AllowTypeImports {
			continue
		}
		if len(p.ImportNames) == 0 && p.ImportNamePattern == "" {
			return Decision{Outcome: OutcomeGeneralDisallowed, MessageID: MsgPathGeneral, CustomMessage: p.Message}
		}
		if isNameAllowed(name, p.AllowImportNames, nil) {
			continue
		}
		if nameMatches(name, p.ImportNames, nil) {
			if kind == NameKindDefault || name == "default" {
				return Decision{Outcome: OutcomeDefaultDisallowed, MessageID: MsgPathDefault, CustomMessage: p.Message}
			}
			return Decision{Outcome: OutcomeNameDisallowed, MessageID: MsgPathName, CustomMessage: p.Message}
		}
	}
	return allowedDecision
}

func decideAgainstPatterns(patterns []RestrictedPattern, source, name string, kind ImportNameKind, isTypeOnly bool) Decision {
	for _, p := range patterns {
		if !patternMatchesSource(p, source) {
			continue
		}
		if isTypeOnly && p.AllowTypeImports {
			continue
		}
		generalID := MsgPatternGeneralGroup
		nameID := MsgPatternNameGroup
		if p.compiledRegex != nil {
			generalID = MsgPatternGeneralRegex
			nameID = MsgPatternNameRegex
		}
		if len(p.ImportNames) == 0 && p.compiledImportNamePattern == nil {
			return Decision{Outcome: OutcomeGeneralDisallowed, MessageID: generalID, CustomMessage: p.Message}
		}
		if isNameAllowed(name, p.AllowImportNames, p.compiledAllowNamePattern) {
			continue
		}
		if nameMatches(name, p.ImportNames, p.compiledImportNamePattern) {
			if kind == NameKindDefault || name == "default" {
				return Decision{Outcome: OutcomeDefaultDisallowed, MessageID: MsgPatternDefault, CustomMessage: p.Message}
			}
			return Decision{Outcome: OutcomeNameDisallowed, MessageID: nameID, CustomMessage: p.Message}
		}
	}
	return allowedDecision
}

func nameMatches(name string, list []string, pattern *regexp.Regexp) bool {
	for _, n := range list {
		if n == name {
			return true
		}
	}
	if pattern != nil {
		return pattern.MatchString(name)
	}
	return false
}

func isNameAllowed(name string, list []string, pattern *regexp.Regexp) bool {
	return nameMatches(name, list, pattern)
}

var caseFolder = cases.Fold()

func patternMatchesSource(p RestrictedPattern, source string) bool {
	if p.compiledRegex != nil {
		return p.compiledRegex.MatchString(source)
	}
	caseSensitive := p.CaseSensitive == nil || *p.CaseSensitive
	return matchGroup(p.Group, source, caseSensitive)
}

// matchGroup implements the gitignore-style "last match wins" semantics
// spec.md section 4.3 describes for a pattern's `group`: later entries
// override earlier ones, and a leading `!` negates a prior positive match.
// A bare pattern with no `/` is implicitly anchored as `**/pattern`, the
// same way a .gitignore entry without a slash matches at any depth.
func matchGroup(group []string, source string, caseSensitive bool) bool {
	matched := false
	for _, raw := range group {
		pat := raw
		negate := strings.HasPrefix(pat, "!")
		if negate {
			pat = pat[1:]
		}
		if !strings.Contains(pat, "/") {
			pat = "**/" + pat
		}
		candidate := source
		if !caseSensitive {
			pat = caseFolder.String(pat)
			candidate = caseFolder.String(candidate)
		}
		if ok, _ := doublestar.Match(pat, candidate); ok {
			matched = !negate
		}
	}
	return matched
}
