package no_restricted_imports

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestDecidePathGeneralBan(t *testing.T) {
	cfg := Normalize(Config{Paths: []RestrictedPath{{Name: "lodash", Message: "use lodash-es"}}})

	d := Decide(cfg, "lodash", "default", NameKindDefault, false)
	assert.Equal(t, d.Outcome, OutcomeGeneralDisallowed)
	assert.Equal(t, d.MessageID, MsgPathGeneral)
	assert.Equal(t, d.CustomMessage, "use lodash-es")
}

func TestDecidePathSpecificNameDefaultVsNamed(t *testing.T) {
	cfg := Normalize(Config{Paths: []RestrictedPath{{Name: "lodash", ImportNames: []string{"default", "pick"}}}})

	def := Decide(cfg, "lodash", "default", NameKindDefault, false)
	assert.Equal(t, def.Outcome, OutcomeDefaultDisallowed)
	assert.Equal(t, def.MessageID, MsgPathDefault)

	named := Decide(cfg, "lodash", "pick", NameKindNamed, false)
	assert.Equal(t, named.Outcome, OutcomeNameDisallowed)
	assert.Equal(t, named.MessageID, MsgPathName)

	allowed := Decide(cfg, "lodash", "omit", NameKindNamed, false)
	assert.Equal(t, allowed.Outcome, OutcomeAllowed)
}

func TestDecidePathAllowImportNamesOverridesBan(t *testing.T) {
	cfg := Normalize(Config{Paths: []RestrictedPath{{
		Name:             "lodash",
		ImportNames:      []string{"pick", "omit"},
		AllowImportNames: []string{"pick"},
	}}})

	allowed := Decide(cfg, "lodash", "pick", NameKindNamed, false)
	assert.Equal(t, allowed.Outcome, OutcomeAllowed)

	disallowed := Decide(cfg, "lodash", "omit", NameKindNamed, false)
	assert.Equal(t, disallowed.Outcome, OutcomeNameDisallowed)
}

func TestDecidePathAllowTypeImports(t *testing.T) {
	cfg := Normalize(Config{Paths: []RestrictedPath{{Name: "lodash", AllowTypeImports: true}}})

	allowed := Decide(cfg, "lodash", "default", NameKindDefault, true)
	assert.Equal(t, allowed.Outcome, OutcomeAllowed)

	disallowed := Decide(cfg, "lodash", "default", NameKindDefault, false)
	assert.Equal(t, disallowed.Outcome, OutcomeGeneralDisallowed)
}

func TestDecidePatternGroupGlob(t *testing.T) {
	cfg := Normalize(Config{Patterns: []RestrictedPattern{{Group: []string{"lodash/*"}}}})

	d := Decide(cfg, "lodash/pick", "default", NameKindDefault, false)
	assert.Equal(t, d.Outcome, OutcomeGeneralDisallowed)
	assert.Equal(t, d.MessageID, MsgPatternGeneralGroup)

	allowed := Decide(cfg, "underscore", "default", NameKindDefault, false)
	assert.Equal(t, allowed.Outcome, OutcomeAllowed)
}

func TestDecidePatternGroupNegation(t *testing.T) {
	cfg := Normalize(Config{Patterns: []RestrictedPattern{{Group: []string{"lodash/*", "!lodash/pick"}}}})

	assert.Equal(t, Decide(cfg, "lodash/omit", "default", NameKindDefault, false).Outcome, OutcomeGeneralDisallowed)
	assert.Equal(t, Decide(cfg, "lodash/pick", "default", NameKindDefault, false).Outcome, OutcomeAllowed)
}

func TestDecidePatternRegex(t *testing.T) {
	cfg := Normalize(Config{Patterns: []RestrictedPattern{{Regex: `^lodash\..+$`}}})

	d := Decide(cfg, "lodash.pick", "default", NameKindDefault, false)
	assert.Equal(t, d.Outcome, OutcomeGeneralDisallowed)
	assert.Equal(t, d.MessageID, MsgPatternGeneralRegex)

	assert.Equal(t, Decide(cfg, "lodash", "default", NameKindDefault, false).Outcome, OutcomeAllowed)
}

func TestDecidePatternCaseInsensitiveGroup(t *testing.T) {
	insensitive := false
	cfg := Normalize(Config{Patterns: []RestrictedPattern{{
		Group:         []string{"LoDash/*"},
		CaseSensitive: &insensitive,
	}}})

	d := Decide(cfg, "lodash/pick", "default", NameKindDefault, false)
	assert.Equal(t, d.Outcome, OutcomeGeneralDisallowed)
}

func TestDecidePatternAllowImportNamePattern(t *testing.T) {
	cfg := Normalize(Config{Patterns: []RestrictedPattern{{
		Group:                  []string{"lodash/*"},
		ImportNamePattern:      `^(pick|omit)$`,
		AllowImportNamePattern: `^pick$`,
	}}})

	assert.Equal(t, Decide(cfg, "lodash/x", "pick", NameKindNamed, false).Outcome, OutcomeAllowed)
	assert.Equal(t, Decide(cfg, "lodash/x", "omit", NameKindNamed, false).Outcome, OutcomeNameDisallowed)
	assert.Equal(t, Decide(cfg, "lodash/x", "other", NameKindNamed, false).Outcome, OutcomeAllowed)
}

func TestNormalizeDropsMalformedPatterns(t *testing.T) {
	cfg := Normalize(Config{Patterns: []RestrictedPattern{
		{},                                    // neither group nor regex
		{Group: []string{"a"}, Regex: "b"},    // both
		{Regex: "("},                          // invalid regex
		{Group: []string{"ok/*"}},             // well-formed, kept
	}})

	assert.Equal(t, len(cfg.Patterns), 1)
	assert.DeepEqual(t, cfg.Patterns[0].Group, []string{"ok/*"})
}
