package main

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// CtxKeyAnalyzer reports context.WithValue calls whose key has a built-in
// string type. Keys must be a package-local named type so that values set by
// different packages cannot collide.
var CtxKeyAnalyzer = &analysis.Analyzer{
	Name:     "ctxkeylint",
	Doc:      "reports context.WithValue keys of built-in string type",
	Run:      runCtxKey,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

func runCtxKey(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		if len(call.Args) != 3 || !isPkgFunc(pass, call, "context", "WithValue") {
			return
		}

		key := call.Args[1]
		if b, ok := pass.TypesInfo.TypeOf(key).(*types.Basic); ok && b.Info()&types.IsString != 0 {
			pass.Reportf(key.Pos(), "context key must not be of built-in type %s", b.Name())
		}
	})

	return nil, nil
}

// isPkgFunc reports whether call invokes the package-level function pkg.name.
func isPkgFunc(pass *analysis.Pass, call *ast.CallExpr, pkg, name string) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != name {
		return false
	}

	fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
	if !ok || fn.Pkg() == nil {
		return false
	}

	return fn.Pkg().Path() == pkg && fn.Type().(*types.Signature).Recv() == nil
}
