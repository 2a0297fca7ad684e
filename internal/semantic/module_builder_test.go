package semantic

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/web-infra-dev/rslint-core/internal/ast"
	"github.com/web-infra-dev/rslint-core/internal/span"
)

func strLit(v string) *ast.StringLiteral { return ast.NewStringLiteral(span.Zero, v, `"`+v+`"`) }

func TestBuildModuleRecordTracksDefaultAndNamedImports(t *testing.T) {
	decl := &ast.ImportDeclaration{
		Base:   ast.Base{NodeKind: ast.KindImportDeclaration, NodeSpan: span.New(0, 30)},
		Source: strLit("react"),
		Specifiers: []ast.ImportDeclarationSpecifier{
			&ast.ImportDefaultSpecifier{Base: ast.Base{NodeKind: ast.KindImportDefaultSpecifier}, Local: ast.NewBindingIdentifier(span.Zero, "React")},
			&ast.ImportSpecifier{
				Base:     ast.Base{NodeKind: ast.KindImportSpecifier},
				Imported: &ast.IdentifierName{Base: ast.Base{NodeKind: ast.KindIdentifierName}, Name: "useState"},
				Local:    ast.NewBindingIdentifier(span.Zero, "useState"),
			},
		},
	}
	p := ast.NewProgram(span.Zero, ast.SourceType{IsModule: true}, nil, []ast.Statement{decl})

	record := BuildModuleRecord(p)

	assert.Equal(t, len(record.ImportEntries), 2)
	assert.Equal(t, record.ImportEntries[0].ImportName.Kind, ImportNameKindDefault)
	assert.Equal(t, record.ImportEntries[1].ImportName.Name, "useState")
	assert.Equal(t, len(record.RequestedModules["react"]), 1)
	assert.Assert(t, record.RequestedModules["react"][0].IsImport)
}

func TestBuildModuleRecordSideEffectImportStillRequestsModule(t *testing.T) {
	decl := &ast.ImportDeclaration{
		Base:   ast.Base{NodeKind: ast.KindImportDeclaration, NodeSpan: span.New(0, 15)},
		Source: strLit("polyfill"),
	}
	p := ast.NewProgram(span.Zero, ast.SourceType{IsModule: true}, nil, []ast.Statement{decl})

	record := BuildModuleRecord(p)

	assert.Equal(t, len(record.ImportEntries), 0)
	assert.Equal(t, len(record.RequestedModules["polyfill"]), 1)
}

func TestBuildModuleRecordReExport(t *testing.T) {
	decl := &ast.ExportNamedDeclaration{
		Base:   ast.Base{NodeKind: ast.KindExportNamedDeclaration, NodeSpan: span.New(0, 20)},
		Source: strLit("./utils"),
		Specifiers: []*ast.ExportSpecifier{
			{
				Base:     ast.Base{NodeKind: ast.KindExportSpecifier},
				Local:    &ast.IdentifierName{Base: ast.Base{NodeKind: ast.KindIdentifierName}, Name: "helper"},
				Exported: &ast.IdentifierName{Base: ast.Base{NodeKind: ast.KindIdentifierName}, Name: "helper"},
			},
		},
	}
	p := ast.NewProgram(span.Zero, ast.SourceType{IsModule: true}, nil, []ast.Statement{decl})

	record := BuildModuleRecord(p)

	assert.Equal(t, len(record.IndirectExportEntries), 1)
	assert.Equal(t, record.IndirectExportEntries[0].ExportName, "helper")
	assert.Assert(t, !record.RequestedModules["./utils"][0].IsImport)
}

func TestBuildModuleRecordStarExport(t *testing.T) {
	decl := &ast.ExportAllDeclaration{
		Base:   ast.Base{NodeKind: ast.KindExportAllDeclaration, NodeSpan: span.New(0, 10)},
		Source: strLit("./all"),
	}
	p := ast.NewProgram(span.Zero, ast.SourceType{IsModule: true}, nil, []ast.Statement{decl})

	record := BuildModuleRecord(p)

	assert.Equal(t, len(record.StarExportEntries), 1)
	assert.Equal(t, record.StarExportEntries[0].ModuleRequest, "./all")
}

func TestBuildModuleRecordDeclaredNamesFromVariableDeclaration(t *testing.T) {
	decl := &ast.ExportNamedDeclaration{
		Base: ast.Base{NodeKind: ast.KindExportNamedDeclaration, NodeSpan: span.New(0, 20)},
		Declaration: &ast.VariableDeclaration{
			Base:     ast.Base{NodeKind: ast.KindVariableDeclaration},
			DeclKind: ast.VarConst,
			Declarations: []*ast.VariableDeclarator{
				{Base: ast.Base{NodeKind: ast.KindVariableDeclarator}, ID: ast.NewBindingIdentifier(span.Zero, "a")},
				{Base: ast.Base{NodeKind: ast.KindVariableDeclarator}, ID: ast.NewBindingIdentifier(span.Zero, "b")},
			},
		},
	}
	p := ast.NewProgram(span.Zero, ast.SourceType{IsModule: true}, nil, []ast.Statement{decl})

	record := BuildModuleRecord(p)

	assert.Equal(t, len(record.LocalExportEntries), 2)
	assert.Equal(t, record.LocalExportEntries[0].ExportName, "a")
	assert.Equal(t, record.LocalExportEntries[1].ExportName, "b")
}
