package no_restricted_imports

import (
	"fmt"
	"strings"

	"github.com/go-json-experiment/json"

	"github.com/web-infra-dev/rslint-core/internal/ast"
	"github.com/web-infra-dev/rslint-core/internal/rule"
)

// Name is the rule's config key, `"no-restricted-imports"`.
const Name = "no-restricted-imports"

func init() {
	rule.GlobalRuleRegistry.Register(Name, New)
}

// New decodes options (typically a map[string]any, []any, or bare string
// straight from the hujson-parsed config file) into a Config and returns
// the bound Rule. A nil/empty options value is a valid, always-allowing
// configuration — the rule simply never fires, matching ESLint's "no
// options means the bare rule name restricts nothing" convention.
func New(options any) (rule.Rule, error) {
	cfg, err := decodeConfig(options)
	if err != nil {
		return rule.Rule{}, err
	}
	cfg = Normalize(cfg)

	kinds := rule.NewKindSet(
		ast.KindImportDeclaration,
		ast.KindExportNamedDeclaration,
		ast.KindExportAllDeclaration,
	)

	return rule.Rule{
		Name:     Name,
		Kinds:    kinds,
		Run:      func(ctx *rule.Context, node ast.Node) { run(cfg, ctx, node) },
		RunOnce:  func(ctx *rule.Context) { runOnce(cfg, ctx) },
		Messages: messages,
	}, nil
}

// decodeConfig accepts every configuration-surface shape spec.md section 6
// documents for this rule: a bare forbidden-source string, a bare array of
// forbidden sources, or the full `{paths, patterns}` object. The bare forms
// are recognized directly off options' Go-native shape (the config loader
// hands these through as string/[]any straight from its own generic JSON
// decode) before falling back to a JSON round-trip for the object form,
// which is where RestrictedPath/RestrictedPattern's own UnmarshalJSON
// methods apply the same bare-string shorthand one level down.
func decodeConfig(options any) (Config, error) {
	if options == nil {
		return Config{}, nil
	}
	switch v := options.(type) {
	case string:
		return Config{Paths: []RestrictedPath{{Name: v}}}, nil
	case []string:
		paths := make([]RestrictedPath, len(v))
		for i, name := range v {
			paths[i] = RestrictedPath{Name: name}
		}
		return Config{Paths: paths}, nil
	case []any:
		paths := make([]RestrictedPath, len(v))
		for i, entry := range v {
			name, ok := entry.(string)
			if !ok {
				return Config{}, fmt.Errorf("no-restricted-imports: array shorthand entries must be strings, got %T", entry)
			}
			paths[i] = RestrictedPath{Name: name}
		}
		return Config{Paths: paths}, nil
	}

	var cfg Config
	raw, err := json.Marshal(options)
	if err != nil {
		return Config{}, fmt.Errorf("no-restricted-imports: re-encoding options: %w", err)
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("no-restricted-imports: decoding options: %w", err)
	}
	return cfg, nil
}

var messages = map[string]rule.Message{
	string(MsgPathGeneral):         {Id: string(MsgPathGeneral), Description: "'{{source}}' import is restricted from being used."},
	string(MsgPathDefault):         {Id: string(MsgPathDefault), Description: "'{{source}}' default import is restricted from being used."},
	string(MsgPathName):            {Id: string(MsgPathName), Description: "'{{importName}}' import from '{{source}}' is restricted."},
	string(MsgPatternGeneralGroup): {Id: string(MsgPatternGeneralGroup), Description: "'{{source}}' import is restricted from being used by a pattern."},
	string(MsgPatternGeneralRegex): {Id: string(MsgPatternGeneralRegex), Description: "'{{source}}' import is restricted from being used by a regex pattern."},
	string(MsgPatternDefault):      {Id: string(MsgPatternDefault), Description: "'{{source}}' default import is restricted from being used by a pattern."},
	string(MsgPatternNameGroup):    {Id: string(MsgPatternNameGroup), Description: "'{{importName}}' import from '{{source}}' is restricted by a pattern."},
	string(MsgPatternNameRegex):    {Id: string(MsgPatternNameRegex), Description: "'{{importName}}' import from '{{source}}' is restricted by a regex pattern."},
}

func renderMessage(d Decision, source, importName string) string {
	if d.CustomMessage != "" {
		return d.CustomMessage
	}
	tmpl, ok := messages[string(d.MessageID)]
	if !ok {
		return fmt.Sprintf("'%s' import from '%s' is restricted.", importName, source)
	}
	msg := tmpl.Description
	msg = strings.ReplaceAll(msg, "{{source}}", source)
	msg = strings.ReplaceAll(msg, "{{importName}}", importName)
	return msg
}

// run checks every per-name import/export binding introduced by an
// ImportDeclaration, ExportNamedDeclaration (re-export form), or
// ExportAllDeclaration against the configured paths/patterns. Whole-module
// bans are deliberately left to runOnce so a banned module with ten named
// imports produces one diagnostic, not ten (see runOnce's doc comment).
func run(cfg Config, ctx *rule.Context, node ast.Node) {
	switch n := node.(type) {
	case *ast.ImportDeclaration:
		source := n.Source.Value
		isTypeOnly := n.Phase == ast.ImportPhaseType
		for _, spec := range n.Specifiers {
			switch s := spec.(type) {
			case *ast.ImportDefaultSpecifier:
				reportIfDisallowed(cfg, ctx, s, source, "default", NameKindDefault, isTypeOnly)
			case *ast.ImportNamespaceSpecifier:
				reportIfDisallowed(cfg, ctx, s, source, "*", NameKindNamespace, isTypeOnly)
			case *ast.ImportSpecifier:
				name := specifierName(s.Imported)
				specTypeOnly := isTypeOnly || s.ImportKind == ast.ImportPhaseType
				reportIfDisallowed(cfg, ctx, s, source, name, NameKindNamed, specTypeOnly)
			}
		}
	case *ast.ExportNamedDeclaration:
		if n.Source == nil {
			return
		}
		source := n.Source.Value
		for _, spec := range n.Specifiers {
			name := specifierName(spec.Local)
			reportIfDisallowed(cfg, ctx, spec, source, name, NameKindNamed, false)
		}
	case *ast.ExportAllDeclaration:
		// A star re-export has no individual names to check against
		// ImportNames restrictions; only a whole-module ban applies, which
		// runOnce covers via the module record.
		_ = n
	}
}

func specifierName(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.IdentifierName:
		return e.Name
	case *ast.StringLiteral:
		return e.Value
	}
	return ""
}

func reportIfDisallowed(cfg Config, ctx *rule.Context, node ast.Node, source, name string, kind ImportNameKind, isTypeOnly bool) {
	d := Decide(cfg, source, name, kind, isTypeOnly)
	switch d.Outcome {
	case OutcomeDefaultDisallowed, OutcomeNameDisallowed:
		ctx.ReportNode(node, renderMessage(d, source, name))
	}
}

// runOnce sweeps every module this file requested exactly once, flagging
// any source banned in full (RestrictedPath/RestrictedPattern with no
// ImportNames set) regardless of how many specifiers pulled from it — or
// none at all, which is what makes this the right place to also catch
// side-effect-only imports (`import "polyfill";`), since those carry no
// specifier for run's per-name loop to ever visit.
func runOnce(cfg Config, ctx *rule.Context) {
	if ctx.ModuleRecord == nil {
		return
	}
	for source, requests := range ctx.ModuleRecord.RequestedModules {
		d := Decide(cfg, source, "", NameKindNamed, false)
		if d.Outcome != OutcomeGeneralDisallowed {
			continue
		}
		for _, req := range requests {
			ctx.ReportSpan(req.StatementSpan, renderMessage(d, source, ""))
		}
	}
}
