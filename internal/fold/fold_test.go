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

package fold_test

import (
	"errors"
	"go/ast"
	"slices"
	"testing"

	"fillmore-labs.com/calltrace/internal/codegen"
	"fillmore-labs.com/calltrace/internal/config"
	. "fillmore-labs.com/calltrace/internal/fold"
	"fillmore-labs.com/calltrace/internal/outline"
	"fillmore-labs.com/calltrace/internal/testsource"
)

var gen = codegen.Generator{Location: "example.com/m"}

const nested = `//calltrace:trace
package test

func top() {}

//calltrace:trace
type Marked int

func (m Marked) Plain() {}

//calltrace:trace
func (m Marked) Own() {}

type Unmarked int

func (u Unmarked) Plain() {}

//calltrace:trace(ignore)
func (u Unmarked) Ignored() {}

func (u *Unmarked) Sibling() {}
`

func displays(plan Plan) []string {
	names := make([]string, 0, len(plan))
	for _, in := range plan {
		names = append(names, in.Display)
	}

	return names
}

func build(t *testing.T, src string) *outline.Module {
	t.Helper()

	_, f := testsource.Parse(t, src)

	return outline.Build([]*ast.File{f}).Modules[0]
}

func TestFoldModule(t *testing.T) {
	t.Parallel()

	mod := build(t, nested)

	plan, err := Fold(gen, mod.Marker.Args, mod)
	if err != nil {
		t.Fatalf("Fold failed: %v", err)
	}

	want := []string{"top", "Unmarked.Plain", "Unmarked.Sibling"}
	if got := displays(plan); !slices.Equal(got, want) {
		t.Errorf("Got %q, want %q", got, want)
	}

	for _, in := range plan {
		if len(in.Func.Body.List) != 0 {
			t.Errorf("Fold modified %s", in.Display)
		}
	}
}

func TestFoldImpl(t *testing.T) {
	t.Parallel()

	mod := build(t, nested)
	impl := mod.Items[1].(*outline.Impl)

	plan, err := Fold(gen, impl.Marker.Args, impl)
	if err != nil {
		t.Fatalf("Fold failed: %v", err)
	}

	want := []string{"Marked.Plain"}
	if got := displays(plan); !slices.Equal(got, want) {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestFoldFunction(t *testing.T) {
	t.Parallel()

	mod := build(t, nested)
	own := mod.Items[1].(*outline.Impl).Methods[1]
	sibling := mod.Items[2].(*outline.Impl).Methods[2]

	for _, fn := range []*outline.Func{own, sibling} {
		plan, err := Fold(gen, "", fn)
		if err != nil {
			t.Fatalf("Fold failed: %v", err)
		}

		testsource.Apply(plan...)

		if len(plan) != 1 {
			t.Fatalf("Got %d instrumentations of %s, want 1", len(plan), fn.Decl.Name.Name)
		}

		if !codegen.Instrumented(fn.Decl) {
			t.Errorf("%s is not instrumented", fn.Decl.Name.Name)
		}

		// running again is a no-op
		again, err := Fold(gen, "", fn)
		if err != nil || len(again) != 0 {
			t.Errorf("Got %d instrumentations, error %v on second run, want none", len(again), err)
		}
	}
}

func TestFoldIgnore(t *testing.T) {
	t.Parallel()

	mod := build(t, nested)

	plan, err := Fold(gen, "ignore", mod)
	if err != nil || plan != nil {
		t.Errorf("Got plan %q, error %v for ignored module, want none", displays(plan), err)
	}

	ignored := mod.Items[2].(*outline.Impl).Methods[1]

	plan, err = Fold(gen, ignored.Marker.Args, ignored)
	if err != nil || plan != nil {
		t.Errorf("Got plan %q, error %v for ignored function, want none", displays(plan), err)
	}
}

func TestFoldErrors(t *testing.T) {
	t.Parallel()

	const src = `package test

//calltrace:trace
var x int

//calltrace:trace
func external()

func f() {}
`

	_, file := testsource.Parse(t, src)
	pkg := outline.Build([]*ast.File{file})
	fn := pkg.Modules[0].Items[1].(*outline.Func)

	tests := []struct {
		name   string
		args   string
		node   outline.Node
		target error
	}{
		{"var", "", pkg.Strays[0], ErrPlacement},
		{"no body", "", pkg.Modules[0].Items[0], ErrPlacement},
		{"unknown option", "verbose", fn, config.ErrConfig},
		{"ignore with value", "ignore = 1", fn, config.ErrConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			plan, err := Fold(gen, tt.args, tt.node)
			if !errors.Is(err, tt.target) {
				t.Errorf("Got error %v, want %v", err, tt.target)
			}

			if plan != nil {
				t.Errorf("Got plan %q, want none", displays(plan))
			}
		})
	}
}

func TestScopeOrder(t *testing.T) {
	t.Parallel()

	if !(ScopeFunction < ScopeImpl && ScopeImpl < ScopeModule) {
		t.Error("Scopes are not ordered")
	}

	if got := ScopeImpl.String(); got != "impl" {
		t.Errorf("Got %q, want impl", got)
	}
}
