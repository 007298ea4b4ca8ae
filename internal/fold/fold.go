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

// Package fold plans the instrumentation of a marked node.
//
// A marker on a file instruments every function and method of the file, a marker
// on a type every method of the type, a marker on a function just that function.
// Nodes inside the folded node that carry their own marker are skipped, since they
// get their own invocation; ignore markers keep a node untouched.
package fold

import (
	"fmt"

	"fillmore-labs.com/calltrace/internal/codegen"
	"fillmore-labs.com/calltrace/internal/config"
	"fillmore-labs.com/calltrace/internal/marker"
	"fillmore-labs.com/calltrace/internal/outline"
)

// Plan lists the instrumentations of one invocation in source order.
type Plan []codegen.Instrumentation

// Folder walks the node of one invocation.
type Folder struct {
	gen   codegen.Generator
	scope Scope
	owner string // receiver type name while folding an [outline.Impl]
	plan  Plan
}

// Fold plans the instrumentation of node, marked with the argument list args.
//
// Nothing is modified; the plan is complete or an error is returned.
func Fold(gen codegen.Generator, args string, node outline.Node) (Plan, error) {
	cfg, err := config.Parse(args)
	if err != nil {
		return nil, err
	}

	f := Folder{gen: gen}

	switch n := node.(type) {
	case *outline.Module:
		f.scope = ScopeModule
		if cfg.Ignore {
			return nil, nil
		}

		err = f.module(n)

	case *outline.Impl:
		f.scope = ScopeImpl
		if cfg.Ignore {
			return nil, nil
		}

		err = f.impl(n)

	case *outline.Func:
		if n.Decl.Body == nil {
			return nil, &PlacementError{Reason: "function without body"}
		}

		f.scope = ScopeFunction
		if cfg.Ignore {
			return nil, nil
		}

		err = f.fn(n)

	case *outline.Stray:
		return nil, &PlacementError{Reason: n.Reason}

	default:
		return nil, &PlacementError{Reason: fmt.Sprintf("unexpected node %T", node)}
	}

	if err != nil {
		return nil, err
	}

	return f.plan, nil
}

// deferred reports whether a node with its own marker is handled by its own invocation.
func (f *Folder) deferred(m *marker.Marker, own Scope) bool {
	return m != nil && f.scope > own
}

func (f *Folder) module(n *outline.Module) error {
	for _, item := range n.Items {
		var err error
		switch i := item.(type) {
		case *outline.Impl:
			err = f.impl(i)

		case *outline.Func:
			err = f.fn(i)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (f *Folder) impl(n *outline.Impl) error {
	if f.deferred(n.Marker, ScopeImpl) {
		return nil
	}

	f.owner = n.TypeName
	defer func() { f.owner = "" }()

	for _, m := range n.Methods {
		if err := f.fn(m); err != nil {
			return err
		}
	}

	return nil
}

func (f *Folder) fn(n *outline.Func) error {
	if f.deferred(n.Marker, ScopeFunction) {
		return nil
	}

	if n.Decl.Body == nil || codegen.Instrumented(n.Decl) {
		return nil
	}

	in, err := f.gen.Instrument(n.Decl, f.owner)
	if err != nil {
		return err
	}

	f.plan = append(f.plan, in)

	return nil
}
