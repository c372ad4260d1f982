// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
)

const simdImportPath = "github.com/go-highway/simd-models/simd"

const draftHeader = `// Code drafted by modeldraft. REVIEW REQUIRED: the source signature is
// looser than the abstraction layer's typing; lane types and vector shapes
// below need manual refinement before this model compiles.

`

// Draft rewrites the source of one real intrinsic into a draft model.
// The returned bytes are a complete formatted file; on any error nothing
// is returned, never a partially rewritten file.
func Draft(filename string, src []byte, rewrites map[string]string) ([]byte, error) {
	for name, repl := range rewrites {
		if _, err := parser.ParseExpr(repl); err != nil {
			return nil, fmt.Errorf("rewrite target %q for %q is not a valid expression: %w", repl, name, err)
		}
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	stripDirectives(file)
	flattenUnsafe(file)
	usesSimd := rewriteCalls(file, rewrites)

	if !astutil.UsesImport(file, "unsafe") {
		astutil.DeleteImport(fset, file, "unsafe")
	}
	if usesSimd && !astutil.UsesImport(file, simdImportPath) {
		astutil.AddImport(fset, file, simdImportPath)
	}

	var buf bytes.Buffer
	buf.WriteString(draftHeader)
	if err := format.Node(&buf, fset, file); err != nil {
		return nil, fmt.Errorf("formatting draft: %w", err)
	}
	return buf.Bytes(), nil
}

func isDirective(c *ast.Comment) bool {
	return strings.HasPrefix(c.Text, "//go:") || strings.HasPrefix(c.Text, "// +build")
}

// stripDirectives drops build constraints and tool directives while keeping
// documentation comments. Comment groups are filtered in place so that Doc
// references and the file's comment list stay consistent.
func stripDirectives(file *ast.File) {
	for _, group := range file.Comments {
		kept := group.List[:0]
		for _, c := range group.List {
			if !isDirective(c) {
				kept = append(kept, c)
			}
		}
		group.List = kept
	}

	groups := file.Comments[:0]
	for _, group := range file.Comments {
		if len(group.List) > 0 {
			groups = append(groups, group)
		}
	}
	file.Comments = groups

	ast.Inspect(file, func(n ast.Node) bool {
		switch d := n.(type) {
		case *ast.FuncDecl:
			if d.Doc != nil && len(d.Doc.List) == 0 {
				d.Doc = nil
			}
		case *ast.GenDecl:
			if d.Doc != nil && len(d.Doc.List) == 0 {
				d.Doc = nil
			}
		case *ast.TypeSpec:
			if d.Doc != nil && len(d.Doc.List) == 0 {
				d.Doc = nil
			}
		case *ast.ValueSpec:
			if d.Doc != nil && len(d.Doc.List) == 0 {
				d.Doc = nil
			}
		case *ast.Field:
			if d.Doc != nil && len(d.Doc.List) == 0 {
				d.Doc = nil
			}
		}
		return true
	})
	if file.Doc != nil && len(file.Doc.List) == 0 {
		file.Doc = nil
	}
}

// flattenUnsafe turns the *(*T)(unsafe.Pointer(&x)) reinterpretation
// pattern into the conversion draft T(x). Models never touch raw memory,
// so the reinterpretation becomes an ordinary lane-view change left for
// the reviewer to type-check.
func flattenUnsafe(file *ast.File) {
	astutil.Apply(file, nil, func(c *astutil.Cursor) bool {
		star, ok := c.Node().(*ast.StarExpr)
		if !ok {
			return true
		}
		call, ok := star.X.(*ast.CallExpr)
		if !ok || len(call.Args) != 1 {
			return true
		}
		paren, ok := call.Fun.(*ast.ParenExpr)
		if !ok {
			return true
		}
		ptr, ok := paren.X.(*ast.StarExpr)
		if !ok {
			return true
		}
		inner, ok := call.Args[0].(*ast.CallExpr)
		if !ok || !isUnsafePointer(inner.Fun) || len(inner.Args) != 1 {
			return true
		}
		addr, ok := inner.Args[0].(*ast.UnaryExpr)
		if !ok || addr.Op != token.AND {
			return true
		}
		c.Replace(&ast.CallExpr{Fun: ptr.X, Args: []ast.Expr{addr.X}})
		return true
	})
}

func isUnsafePointer(e ast.Expr) bool {
	sel, ok := e.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	pkg, ok := sel.X.(*ast.Ident)
	return ok && pkg.Name == "unsafe" && sel.Sel.Name == "Pointer"
}

// rewriteCalls replaces recognized primitive calls with abstraction layer
// calls. A method-style call x.name(args) whose name is in the table is
// hoisted to name(x, args). Reports whether any replacement referenced the
// simd package.
func rewriteCalls(file *ast.File, rewrites map[string]string) bool {
	usesSimd := false
	replace := func(repl string) ast.Expr {
		e, _ := parser.ParseExpr(repl)
		if strings.HasPrefix(repl, "simd.") {
			usesSimd = true
		}
		return e
	}

	astutil.Apply(file, nil, func(c *astutil.Cursor) bool {
		call, ok := c.Node().(*ast.CallExpr)
		if !ok {
			return true
		}
		switch fun := call.Fun.(type) {
		case *ast.Ident:
			if repl, ok := rewrites[fun.Name]; ok {
				call.Fun = replace(repl)
			}
		case *ast.SelectorExpr:
			if repl, ok := rewrites[fun.Sel.Name]; ok {
				call.Fun = replace(repl)
				call.Args = append([]ast.Expr{fun.X}, call.Args...)
			}
		}
		return true
	})
	return usesSimd
}
