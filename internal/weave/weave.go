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

// Package weave runs one transformation invocation per marker of a package.
package weave

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"

	"fillmore-labs.com/calltrace/internal/codegen"
	"fillmore-labs.com/calltrace/internal/fold"
	"fillmore-labs.com/calltrace/internal/marker"
	"fillmore-labs.com/calltrace/internal/outline"
)

// Invocation is the result of folding one marked node.
type Invocation struct {
	Marker *marker.Marker
	Node   outline.Node
	Plan   fold.Plan
	Err    error
}

// Result holds all invocations of a package.
type Result struct {
	Invocations []Invocation
	files       map[*ast.FuncDecl]*ast.File
}

// Package plans the invocations for the files of package pkgPath.
//
// Every marker occurrence gets exactly one invocation; a type marker covers the
// methods of its type in all files. Invocations are independent; a failed
// invocation contributes no plan.
func Package(pkgPath string, files []*ast.File) *Result {
	gen := codegen.Generator{Location: pkgPath}
	out := outline.Build(files)

	r := &Result{files: make(map[*ast.FuncDecl]*ast.File)}

	invoke := func(m *marker.Marker, node outline.Node) {
		plan, err := fold.Fold(gen, m.Args, node)
		if err != nil {
			plan = nil
		}

		r.Invocations = append(r.Invocations, Invocation{Marker: m, Node: node, Plan: plan, Err: err})
	}

	for _, mod := range out.Modules {
		if mod.Marker != nil {
			invoke(mod.Marker, mod)
		}

		for _, item := range mod.Items {
			switch n := item.(type) {
			case *outline.Func:
				r.files[n.Decl] = n.File
				if n.Marker != nil {
					invoke(n.Marker, n)
				}

			case *outline.Impl:
				for _, m := range n.Methods {
					r.files[m.Decl] = m.File
					if m.Marker != nil {
						invoke(m.Marker, m)
					}
				}
			}
		}
	}

	for _, impl := range out.Types {
		invoke(impl.Marker, impl)
	}

	for _, s := range out.Strays {
		invoke(s.Marker, s)
	}

	return r
}

// ByFile groups the planned instrumentations of successful invocations by file.
func (r *Result) ByFile() map[*ast.File]fold.Plan {
	plans := make(map[*ast.File]fold.Plan)

	for _, inv := range r.Invocations {
		for _, in := range inv.Plan {
			f := r.files[in.Func]
			plans[f] = append(plans[f], in)
		}
	}

	return plans
}

// Err returns the errors of all failed invocations, annotated with the marker position.
func (r *Result) Err(fset *token.FileSet) error {
	var errs []error

	for _, inv := range r.Invocations {
		if inv.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", fset.Position(inv.Marker.Pos()), inv.Err))
		}
	}

	return errors.Join(errs...)
}
