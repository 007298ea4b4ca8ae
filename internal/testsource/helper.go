// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package testsource provides utilities for parsing Go source code in tests.
//
// It handles the boilerplate of parsing source fragments and locating
// declarations, so tests of the transformation stages can work on real syntax trees.
package testsource

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"slices"
	"testing"

	"fillmore-labs.com/calltrace/internal/codegen"
)

const filename = "test.go"

// Parse parses a complete Go source file, including comments.
func Parse(tb testing.TB, src string) (*token.FileSet, *ast.File) {
	tb.Helper()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f
}

// Func parses the source and returns the function or method declaration with the given name.
func Func(tb testing.TB, src, name string) (*token.FileSet, *ast.File, *ast.FuncDecl) {
	tb.Helper()

	fset, f := Parse(tb, src)

	for _, decl := range f.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok && fn.Name.Name == name {
			return fset, f, fn
		}
	}

	tb.Fatalf("Can't find function %q", name)

	return nil, nil, nil
}

// Expr parses a Go expression.
func Expr(tb testing.TB, src string) ast.Expr {
	tb.Helper()

	x, err := parser.ParseExpr(src)
	if err != nil {
		tb.Fatalf("Failed to parse expression %q: %v", src, err)
	}

	return x
}

// Print formats a node as Go source.
func Print(tb testing.TB, fset *token.FileSet, node any) string {
	tb.Helper()

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, node); err != nil {
		tb.Fatalf("Failed to print node: %v", err)
	}

	return buf.String()
}

// Apply rewrites the syntax tree of the planned functions, so tests can print the result.
func Apply(plan ...codegen.Instrumentation) {
	for _, in := range plan {
		if in.Results != nil {
			in.Func.Type.Results = in.Results
		}

		in.Func.Body.List = append(slices.Clone(in.Prologue), in.Func.Body.List...)
	}
}
