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

// Package pattern reduces parameter patterns to the bindings printed by an enter trace.
package pattern

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/ast/astutil"
)

// Flatten returns the bindings of a pattern from left to right.
//
// Parameter lists and grouped fields are tuples; call expressions like Point(x, y)
// are tuples of named fields; composite literals are records or slices, where a
// rest... element binds the middle. Blank identifiers and unnamed parameters bind nothing.
// Parentheses are transparent. Anything else is an *[UnsupportedError].
func Flatten(node ast.Node) ([]*ast.Ident, error) {
	var f flattener
	if err := f.flatten(node); err != nil {
		return nil, err
	}

	return f.idents, nil
}

type flattener struct {
	idents []*ast.Ident
}

func (f *flattener) flatten(node ast.Node) error {
	switch n := node.(type) {
	case nil:

	case *ast.Ident:
		if n.Name != "_" {
			f.idents = append(f.idents, n)
		}

	case *ast.FieldList:
		if n == nil {
			return nil
		}

		for _, field := range n.List {
			if err := f.flatten(field); err != nil {
				return err
			}
		}

	case *ast.Field:
		for _, name := range n.Names {
			if err := f.flatten(name); err != nil {
				return err
			}
		}

	case *ast.ParenExpr:
		return f.flatten(n.X)

	case *ast.CallExpr:
		return f.flattenAll(n.Args)

	case *ast.CompositeLit:
		return f.flattenAll(n.Elts)

	case *ast.KeyValueExpr:
		return f.flatten(n.Value)

	case *ast.Ellipsis:
		if n.Elt == nil {
			return nil // rest without binding
		}

		return f.flatten(n.Elt)

	default:
		return unsupported(node)
	}

	return nil
}

func (f *flattener) flattenAll(exprs []ast.Expr) error {
	for _, x := range exprs {
		if err := f.flatten(x); err != nil {
			return err
		}
	}

	return nil
}

func unsupported(node ast.Node) error {
	var kind string
	switch n := node.(type) {
	case *ast.BasicLit:
		kind = "literal"

	case *ast.BinaryExpr, *ast.SliceExpr:
		kind = "range"

	case *ast.UnaryExpr:
		if n.Op == token.AND {
			kind = "reference"
		} else {
			kind = astutil.NodeDescription(n)
		}

	case *ast.StarExpr:
		kind = "indirection"

	case *ast.SelectorExpr:
		kind = "path"

	case *ast.BadExpr:
		kind = "verbatim"

	default:
		kind = astutil.NodeDescription(n)
	}

	return &UnsupportedError{Kind: kind, Pos: node.Pos()}
}
