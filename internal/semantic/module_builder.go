package semantic

import "github.com/web-infra-dev/rslint-core/internal/ast"

// BuildModuleRecord walks a Program's top-level statements and produces the
// ModuleRecord a rule's rule.Context exposes. It only looks at top-level
// import/export declarations — nested ones are a syntax error the parser
// would have already rejected, so there's nothing to guard against here.
func BuildModuleRecord(program *ast.Program) *ModuleRecord {
	record := NewModuleRecord()
	for _, stmt := range program.Body {
		switch decl := stmt.(type) {
		case *ast.ImportDeclaration:
			addImportDeclaration(record, decl)
		case *ast.ExportNamedDeclaration:
			addExportNamedDeclaration(record, decl)
		case *ast.ExportDefaultDeclaration:
			record.LocalExportEntries = append(record.LocalExportEntries, LocalExportEntry{
				ExportName: "default",
				LocalName:  "*default*",
				Span:       decl.GetSpan(),
			})
		case *ast.ExportAllDeclaration:
			addExportAllDeclaration(record, decl)
		}
	}
	return record
}

func addImportDeclaration(record *ModuleRecord, decl *ast.ImportDeclaration) {
	source := decl.Source.Value
	record.RequestModule(source, true, decl.GetSpan())
	for _, spec := range decl.Specifiers {
		switch s := spec.(type) {
		case *ast.ImportDefaultSpecifier:
			record.ImportEntries = append(record.ImportEntries, ImportEntry{
				ModuleRequest: source,
				ImportName:    ImportName{Kind: ImportNameKindDefault},
				LocalName:     s.Local.Name,
				Span:          s.GetSpan(),
			})
		case *ast.ImportNamespaceSpecifier:
			record.ImportEntries = append(record.ImportEntries, ImportEntry{
				ModuleRequest: source,
				ImportName:    ImportName{Kind: ImportNameKindNamespace},
				LocalName:     s.Local.Name,
				Span:          s.GetSpan(),
			})
		case *ast.ImportSpecifier:
			record.ImportEntries = append(record.ImportEntries, ImportEntry{
				ModuleRequest: source,
				ImportName:    ImportName{Kind: ImportNameKindName, Name: importedName(s.Imported)},
				LocalName:     s.Local.Name,
				Span:          s.GetSpan(),
				IsTypeOnly:    s.ImportKind == ast.ImportPhaseType || decl.Phase == ast.ImportPhaseType,
			})
		}
	}
	// A bare `import "side-effect";` has no specifiers at all but still
	// needs the module requested — handled by the RequestModule call above
	// unconditionally.
}

func importedName(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.IdentifierName:
		return e.Name
	case *ast.StringLiteral:
		return e.Value
	}
	return ""
}

func addExportNamedDeclaration(record *ModuleRecord, decl *ast.ExportNamedDeclaration) {
	if decl.Declaration != nil {
		for _, name := range declaredNames(decl.Declaration) {
			record.LocalExportEntries = append(record.LocalExportEntries, LocalExportEntry{
				ExportName: name,
				LocalName:  name,
				Span:       decl.GetSpan(),
			})
		}
		return
	}
	if decl.Source != nil {
		source := decl.Source.Value
		record.RequestModule(source, false, decl.GetSpan())
		for _, spec := range decl.Specifiers {
			record.IndirectExportEntries = append(record.IndirectExportEntries, IndirectExportEntry{
				ExportName:    exprName(spec.Exported),
				ModuleRequest: source,
				ImportName:    ImportName{Kind: ImportNameKindName, Name: exprName(spec.Local)},
				Span:          spec.GetSpan(),
			})
		}
		return
	}
	for _, spec := range decl.Specifiers {
		record.LocalExportEntries = append(record.LocalExportEntries, LocalExportEntry{
			ExportName: exprName(spec.Exported),
			LocalName:  exprName(spec.Local),
			Span:       spec.GetSpan(),
		})
	}
}

func addExportAllDeclaration(record *ModuleRecord, decl *ast.ExportAllDeclaration) {
	source := decl.Source.Value
	record.RequestModule(source, false, decl.GetSpan())
	name := ""
	if decl.Exported != nil {
		name = exprName(decl.Exported)
	}
	record.StarExportEntries = append(record.StarExportEntries, StarExportEntry{
		ExportName:    name,
		ModuleRequest: source,
		Span:          decl.GetSpan(),
	})
}

func exprName(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.IdentifierName:
		return e.Name
	case *ast.StringLiteral:
		return e.Value
	}
	return ""
}

// declaredNames extracts the top-level binding names introduced by a
// `export` declaration, e.g. `export const a = 1, b = 2;` exports both a
// and b, `export function f(){}` exports f.
func declaredNames(decl ast.Declaration) []string {
	switch d := decl.(type) {
	case *ast.VariableDeclaration:
		var names []string
		for _, declarator := range d.Declarations {
			names = append(names, bindingNames(declarator.ID)...)
		}
		return names
	case *ast.Function:
		if d.ID != nil {
			return []string{d.ID.Name}
		}
	case *ast.Class:
		if d.ID != nil {
			return []string{d.ID.Name}
		}
	case *ast.TSTypeAliasDeclaration:
		return []string{d.ID.Name}
	case *ast.TSInterfaceDeclaration:
		return []string{d.ID.Name}
	case *ast.TSEnumDeclaration:
		return []string{d.ID.Name}
	}
	return nil
}

func bindingNames(pattern ast.Pattern) []string {
	switch p := pattern.(type) {
	case *ast.BindingIdentifier:
		return []string{p.Name}
	case *ast.ObjectPattern:
		var names []string
		for _, prop := range p.Properties {
			names = append(names, bindingNames(prop.Value)...)
		}
		if p.Rest != nil {
			names = append(names, bindingNames(p.Rest.Argument)...)
		}
		return names
	case *ast.ArrayPattern:
		var names []string
		for _, el := range p.Elements {
			if el == nil {
				continue
			}
			if pat, ok := el.(ast.Pattern); ok {
				names = append(names, bindingNames(pat)...)
			}
		}
		if p.Rest != nil {
			names = append(names, bindingNames(p.Rest.Argument)...)
		}
		return names
	case *ast.AssignmentPattern:
		return bindingNames(p.Left)
	}
	return nil
}
