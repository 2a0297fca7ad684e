package config

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/web-infra-dev/rslint-core/internal/ast"
	"github.com/web-infra-dev/rslint-core/internal/diagnostic"
	"github.com/web-infra-dev/rslint-core/internal/rule"
	"github.com/web-infra-dev/rslint-core/internal/span"
)

func testRegistry() *rule.Registry {
	reg := rule.NewRegistry()
	reg.Register("always-fires", func(options any) (rule.Rule, error) {
		return rule.Rule{
			Name: "always-fires",
			Run: func(ctx *rule.Context, node ast.Node) {
				if node.Kind() == ast.KindProgram {
					ctx.ReportNode(node, "fired")
				}
			},
		}, nil
	})
	return reg
}

func TestBuildRunnerSkipsOffRules(t *testing.T) {
	cfg := Config{{Files: []string{"**/*.ts"}, Rules: map[string]RuleConfig{"always-fires": {Severity: "off"}}}}

	runner, err := BuildRunner(cfg, testRegistry(), "app.ts")
	assert.NilError(t, err)

	diagnostics := runner.Run(ast.NewProgram(span.Zero, ast.SourceType{IsModule: true}, nil, nil), nil)
	assert.Equal(t, len(diagnostics), 0)
}

func TestBuildRunnerBuildsEnabledRules(t *testing.T) {
	cfg := Config{{Files: []string{"**/*.ts"}, Rules: map[string]RuleConfig{"always-fires": {Severity: "error"}}}}

	runner, err := BuildRunner(cfg, testRegistry(), "app.ts")
	assert.NilError(t, err)

	diagnostics := runner.Run(ast.NewProgram(span.Zero, ast.SourceType{IsModule: true}, nil, nil), nil)
	assert.Equal(t, len(diagnostics), 1)
	assert.Equal(t, diagnostics[0].Severity, diagnostic.SeverityError)
}

func TestBuildRunnerErrorsOnUnknownRule(t *testing.T) {
	cfg := Config{{Files: []string{"**/*.ts"}, Rules: map[string]RuleConfig{"nonexistent": {Severity: "error"}}}}

	_, err := BuildRunner(cfg, testRegistry(), "app.ts")
	assert.ErrorContains(t, err, "nonexistent")
}

func TestBuildRunnerErrorsOnInvalidSeverity(t *testing.T) {
	cfg := Config{{Files: []string{"**/*.ts"}, Rules: map[string]RuleConfig{"always-fires": {Severity: "nope"}}}}

	_, err := BuildRunner(cfg, testRegistry(), "app.ts")
	assert.ErrorContains(t, err, "always-fires")
}
