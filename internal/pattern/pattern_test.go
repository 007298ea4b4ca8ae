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

package pattern_test

import (
	"errors"
	"go/ast"
	"slices"
	"testing"

	. "fillmore-labs.com/calltrace/internal/pattern"
	"fillmore-labs.com/calltrace/internal/testsource"
)

func names(idents []*ast.Ident) []string {
	n := make([]string, 0, len(idents))
	for _, id := range idents {
		n = append(n, id.Name)
	}

	return n
}

func TestFlattenParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"simple", "func f(a int, b string) {}", []string{"a", "b"}},
		{"grouped", "func f(a, b int, c bool) {}", []string{"a", "b", "c"}},
		{"blank", "func f(_ int, b int) {}", []string{"b"}},
		{"unnamed", "func f(int, string) {}", []string{}},
		{"none", "func f() {}", []string{}},
		{"variadic", "func f(format string, args ...any) {}", []string{"format", "args"}},
		{"duplicates", "func f(a, a int) {}", []string{"a", "a"}},
		{"self parameter", "func (r T) f(self T, a int) {}", []string{"self", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, fn := testsource.Func(t, "package test\n\n"+tt.src, "f")

			got, err := Flatten(fn.Type.Params)
			if err != nil {
				t.Fatalf("Flatten failed: %v", err)
			}

			if g := names(got); !slices.Equal(g, tt.want) {
				t.Errorf("Got %q, want %q", g, tt.want)
			}
		})
	}
}

func TestFlattenPatterns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"ident", "a", []string{"a"}},
		{"wildcard", "_", []string{}},
		{"parens", "((a))", []string{"a"}},
		{"tuple struct", "Point(x, _)", []string{"x"}},
		{"record", "Point{X: x, Y: y}", []string{"x", "y"}},
		{"nested record", "Line{From: Point{X: a}, To: Point(b, c)}", []string{"a", "b", "c"}},
		{"slice", "[]int{a, b}", []string{"a", "b"}},
		{"tuple order", "Pair(b, a)", []string{"b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Flatten(testsource.Expr(t, tt.src))
			if err != nil {
				t.Fatalf("Flatten(%s) failed: %v", tt.src, err)
			}

			if g := names(got); !slices.Equal(g, tt.want) {
				t.Errorf("Got %q, want %q", g, tt.want)
			}
		})
	}
}

func TestFlattenRest(t *testing.T) {
	t.Parallel()

	slice := &ast.CompositeLit{
		Type: &ast.ArrayType{Elt: ast.NewIdent("int")},
		Elts: []ast.Expr{
			ast.NewIdent("first"),
			&ast.Ellipsis{Elt: ast.NewIdent("middle")},
			ast.NewIdent("last"),
		},
	}

	got, err := Flatten(slice)
	if err != nil {
		t.Fatalf("Flatten failed: %v", err)
	}

	if g, want := names(got), []string{"first", "middle", "last"}; !slices.Equal(g, want) {
		t.Errorf("Got %q, want %q", g, want)
	}
}

func TestFlattenUnsupported(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		kind string
	}{
		{"1", "literal"},
		{`"s"`, "literal"},
		{"a + b", "range"},
		{"s[1:2]", "range"},
		{"&x", "reference"},
		{"*x", "indirection"},
		{"a.b", "path"},
		{"Point{X: 1}", "literal"},
		{"func() {}", "function literal"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()

			_, err := Flatten(testsource.Expr(t, tt.src))
			if !errors.Is(err, ErrUnsupported) {
				t.Fatalf("Got error %v, want %v", err, ErrUnsupported)
			}

			var uerr *UnsupportedError
			if !errors.As(err, &uerr) {
				t.Fatalf("Got error %T, want %T", err, uerr)
			}

			if uerr.Kind != tt.kind {
				t.Errorf("Got kind %q, want %q", uerr.Kind, tt.kind)
			}
		})
	}

	if _, err := Flatten(&ast.BadExpr{}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Got error %v for bad expression, want %v", err, ErrUnsupported)
	}
}
