package main

import (
	"go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// NoDirectOsExit анализатор, запрещающий прямые вызовы os.Exit
// в функции main пакета main.
// nolint:gochecknoglobals
var NoDirectOsExit = &analysis.Analyzer{
	Name: "nodirectosexit",
	Doc:  "check for direct os.Exit calls in main function",
	Run:  runNoDirectOsExit,
}

func runNoDirectOsExit(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil //nolint:nilnil
	}

	for _, file := range pass.Files {
		// Пропускаем файлы из кэша сборки
		filename := pass.Fset.Position(file.Pos()).Filename
		if strings.Contains(filename, "go-build") {
			continue
		}

		ast.Inspect(file, func(n ast.Node) bool {
			funcDecl, okF := n.(*ast.FuncDecl)
			if !okF || funcDecl.Name.Name != "main" || funcDecl.Recv != nil {
				return true
			}

			ast.Inspect(funcDecl.Body, func(n ast.Node) bool {
				callExpr, okC := n.(*ast.CallExpr)
				if !okC {
					return true
				}
				selExpr, okS := callExpr.Fun.(*ast.SelectorExpr)
				if !okS {
					return true
				}
				ident, okI := selExpr.X.(*ast.Ident)
				if !okI || ident.Name != "os" || selExpr.Sel.Name != "Exit" {
					return true
				}
				pass.Reportf(callExpr.Pos(), "direct call os.Exit is not allowed in main function")
				return true
			})
			return false
		})
	}

	return nil, nil //nolint:nilnil
}
