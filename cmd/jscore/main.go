// Command jscore is the project-facing entry point for the config loader,
// rule registry, and diagnostic reporters: init a config file, list the
// rules a build registers, or run the registered rules over an (externally
// parsed) Program and report what fired.
//
// Building ast.Program values is the parser's job (SPEC_FULL.md's
// Non-goals) — this binary never parses source text itself. The `lint`
// subcommand takes a bare file list and runs the configured rules against
// an empty Program for that path, which is the integration seam a real
// parser slots into; it still exercises the full config → registry →
// runner → reporter pipeline end to end.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	_ "github.com/web-infra-dev/rslint-core/internal/rules/no_restricted_imports"

	"github.com/web-infra-dev/rslint-core/internal/ast"
	"github.com/web-infra-dev/rslint-core/internal/config"
	"github.com/web-infra-dev/rslint-core/internal/diagnostic"
	"github.com/web-infra-dev/rslint-core/internal/report"
	"github.com/web-infra-dev/rslint-core/internal/rule"
	"github.com/web-infra-dev/rslint-core/internal/semantic"
	"github.com/web-infra-dev/rslint-core/internal/span"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		usage()
		return 1
	}
	switch args[0] {
	case "init":
		return runInit(args[1:])
	case "rules":
		return runRules(args[1:])
	case "lint":
		return runLint(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "jscore: unknown command %q\n", args[0])
		usage()
		return 1
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: jscore <init|rules|lint> [args]")
}

func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	path := fs.String("config", "rslint.jsonc", "path to write the default config")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if err := config.InitDefaultConfig(*path); err != nil {
		fmt.Fprintf(os.Stderr, "jscore: %v\n", err)
		return 1
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", *path)
	return 0
}

func runRules(args []string) int {
	names := rule.GlobalRuleRegistry.Names()
	sort.Strings(names)
	for _, name := range names {
		fmt.Println(name)
	}
	return 0
}

func runLint(args []string) int {
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	configPath := fs.String("config", "rslint.jsonc", "path to the project config")
	jsonOutput := fs.Bool("json", false, "emit JSON instead of terminal output")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "jscore: lint requires at least one file")
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jscore: %v\n", err)
		return 1
	}

	byFile := make(map[string][]diagnostic.Diagnostic)
	order := make([]string, 0, len(files))
	exitCode := 0
	for _, path := range files {
		runner, err := config.BuildRunner(cfg, rule.GlobalRuleRegistry, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "jscore: %s: %v\n", path, err)
			exitCode = 1
			continue
		}
		program := ast.NewProgram(span.Zero, ast.SourceType{IsModule: true}, nil, nil)
		moduleRecord := semantic.BuildModuleRecord(program)
		byFile[path] = runner.Run(program, moduleRecord)
		order = append(order, path)
	}

	if *jsonOutput {
		if err := report.NewJSON(os.Stdout).Write(byFile); err != nil {
			fmt.Fprintf(os.Stderr, "jscore: %v\n", err)
			return 1
		}
		return exitCode
	}

	terminal := report.NewTerminal(os.Stdout, report.TerminalWidth(int(os.Stdout.Fd())))
	for _, path := range order {
		terminal.Write(path, byFile[path])
	}
	return exitCode
}
