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

package codegen

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"fillmore-labs.com/calltrace/internal/pattern"
)

const (
	// Package is the import path of the runtime support package.
	Package = "fillmore-labs.com/calltrace"

	// Name is the package name generated code refers to.
	Name = "calltrace"

	// DepthVar holds the depth returned by calltrace.Enter.
	DepthVar = "_calltraceDepth"

	// ResultPrefix prefixes synthesized result names.
	ResultPrefix = "_calltraceRet"
)

// Generator synthesizes instrumentation for functions of one package.
type Generator struct {
	// Location is printed as the path of every traced function, usually the package path.
	Location string
}

// Instrumentation is the planned rewrite of one function.
type Instrumentation struct {
	Func     *ast.FuncDecl
	Display  string        // name printed in traces
	Results  *ast.FieldList // named result list replacing the original, nil if unchanged
	Prologue []ast.Stmt
}

// Instrument plans the instrumentation of fn, which must have a body.
// owner is the receiver type name of a method in a marked type, or empty.
func (g Generator) Instrument(fn *ast.FuncDecl, owner string) (Instrumentation, error) {
	if owner == "" {
		owner = OwnerName(fn.Recv)
	}

	display := DisplayName(owner, fn.Name.Name)

	params, err := pattern.Flatten(fn.Type.Params)
	if err != nil {
		return Instrumentation{}, fmt.Errorf("parameters of %s: %w", display, err)
	}

	results, named := nameResults(fn.Type.Results)

	prologue := []ast.Stmt{
		&ast.AssignStmt{
			Lhs: []ast.Expr{ast.NewIdent(DepthVar)},
			Tok: token.DEFINE,
			Rhs: []ast.Expr{call("Enter")},
		},
		&ast.ExprStmt{X: g.enter(display, params)},
		&ast.DeferStmt{
			Call: &ast.CallExpr{
				Fun: &ast.FuncLit{
					Type: &ast.FuncType{Params: &ast.FieldList{}},
					Body: &ast.BlockStmt{List: []ast.Stmt{
						&ast.ExprStmt{X: g.exit(display, named)},
						&ast.ExprStmt{X: call("Exit")},
					}},
				},
			},
		},
	}

	return Instrumentation{Func: fn, Display: display, Results: results, Prologue: prologue}, nil
}

// enter builds the enter trace.
func (g Generator) enter(display string, params []*ast.Ident) *ast.CallExpr {
	var format strings.Builder

	format.WriteString("%s %s.")
	format.WriteString(display)
	format.WriteByte('(')

	args := []ast.Expr{
		nil, // format
		call("Indent", ast.NewIdent(DepthVar)),
		stringLit(g.Location),
	}

	for i, p := range params {
		if i > 0 {
			format.WriteString(", ")
		}

		format.WriteString(p.Name)
		format.WriteString(": %v")

		args = append(args, call("Value", ast.NewIdent(p.Name)))
	}

	format.WriteByte(')')

	args[0] = stringLit(format.String())

	return call("Tracef", args...)
}

// exit builds the exit trace.
func (g Generator) exit(display string, results []string) *ast.CallExpr {
	var value ast.Expr
	if len(results) == 1 {
		value = call("Value", ast.NewIdent(results[0]))
	} else {
		values := make([]ast.Expr, 0, len(results))
		for _, r := range results {
			values = append(values, ast.NewIdent(r))
		}

		value = call("Results", values...)
	}

	return call("Tracef",
		stringLit("%s %s."+display+" = %v"),
		call("Outdent", call("Depth")),
		stringLit(g.Location),
		value,
	)
}

// nameResults returns a result list where every result is named, or nil if the original already is.
func nameResults(results *ast.FieldList) (*ast.FieldList, []string) {
	if results.NumFields() == 0 {
		return nil, nil
	}

	var (
		names   []string
		changed bool
		list    = make([]*ast.Field, 0, len(results.List))
	)

	for _, field := range results.List {
		if len(field.Names) == 0 {
			name := ResultPrefix + strconv.Itoa(len(names))
			names = append(names, name)
			list = append(list, &ast.Field{Names: []*ast.Ident{ast.NewIdent(name)}, Type: field.Type})
			changed = true

			continue
		}

		idents := make([]*ast.Ident, 0, len(field.Names))
		for _, id := range field.Names {
			name := id.Name
			if name == "_" {
				name = ResultPrefix + strconv.Itoa(len(names))
				changed = true
			}

			names = append(names, name)
			idents = append(idents, ast.NewIdent(name))
		}

		list = append(list, &ast.Field{Names: idents, Type: field.Type})
	}

	if !changed {
		return nil, names
	}

	return &ast.FieldList{Opening: results.Opening, List: list, Closing: results.Closing}, names
}

func call(fun string, args ...ast.Expr) *ast.CallExpr {
	return &ast.CallExpr{
		Fun:  &ast.SelectorExpr{X: ast.NewIdent(Name), Sel: ast.NewIdent(fun)},
		Args: args,
	}
}

func stringLit(s string) *ast.BasicLit {
	return &ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(s)}
}
