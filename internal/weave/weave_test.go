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

package weave_test

import (
	"errors"
	"go/ast"
	"slices"
	"strings"
	"testing"

	"fillmore-labs.com/calltrace/internal/config"
	"fillmore-labs.com/calltrace/internal/fold"
	"fillmore-labs.com/calltrace/internal/testsource"
	. "fillmore-labs.com/calltrace/internal/weave"
)

const src = `//calltrace:trace
package test

func top() {}

//calltrace:trace
type Point struct{ X int }

func (p *Point) Move(dx int) { p.X += dx }

//calltrace:trace
func (p Point) Get() int { return p.X }

//calltrace:trace(verbose)
func broken() {}

//calltrace:trace
const c = 1
`

func TestPackage(t *testing.T) {
	t.Parallel()

	fset, f := testsource.Parse(t, src)

	r := Package("example.com/m", []*ast.File{f})

	if n := len(r.Invocations); n != 5 {
		t.Fatalf("Got %d invocations, want 5", n)
	}

	var names []string
	for _, in := range r.ByFile()[f] {
		names = append(names, in.Display)
	}

	slices.Sort(names)

	want := []string{"Point.Get", "Point.Move", "top"}
	if !slices.Equal(names, want) {
		t.Errorf("Got %q, want %q", names, want)
	}

	err := r.Err(fset)
	if !errors.Is(err, config.ErrConfig) {
		t.Errorf("Got error %v, want %v", err, config.ErrConfig)
	}

	if !errors.Is(err, fold.ErrPlacement) {
		t.Errorf("Got error %v, want %v", err, fold.ErrPlacement)
	}

	if !strings.Contains(err.Error(), "test.go:14:1") {
		t.Errorf("Got error %q, want position test.go:14:1", err)
	}
}

func TestPackageWithoutMarkers(t *testing.T) {
	t.Parallel()

	fset, f := testsource.Parse(t, "package test\n\nfunc f() {}\n")

	r := Package("example.com/m", []*ast.File{f})

	if len(r.Invocations) != 0 || len(r.ByFile()) != 0 {
		t.Errorf("Got %d invocations, want none", len(r.Invocations))
	}

	if err := r.Err(fset); err != nil {
		t.Errorf("Got error %v, want none", err)
	}
}

func TestPackageTypeMarkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want error
	}{
		{"type without methods", "package test\n\n//calltrace:trace\ntype Lonely int\n", nil},
		{"bad key without methods", "package test\n\n//calltrace:trace(verbose)\ntype Lonely int\n", config.ErrConfig},
		{"interface", "package test\n\n//calltrace:trace\ntype Iface interface{ M() }\n", fold.ErrPlacement},
		{"bad key on interface", "package test\n\n//calltrace:trace(bogus = 1)\ntype Iface interface{ M() }\n", config.ErrConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, f := testsource.Parse(t, tt.src)

			r := Package("example.com/m", []*ast.File{f})

			if n := len(r.Invocations); n != 1 {
				t.Fatalf("Got %d invocations, want 1", n)
			}

			if len(r.ByFile()) != 0 {
				t.Errorf("Got plans %v, want none", r.ByFile())
			}

			err := r.Err(fset)
			if tt.want == nil {
				if err != nil {
					t.Errorf("Got error %v, want none", err)
				}

				return
			}

			if !errors.Is(err, tt.want) {
				t.Errorf("Got error %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPackageTypeAcrossFiles(t *testing.T) {
	t.Parallel()

	fset, types := testsource.Parse(t, "package test\n\n//calltrace:trace(verbose)\ntype T int\n")
	_, a := testsource.Parse(t, "package test\n\nfunc (t T) A() {}\n")
	_, b := testsource.Parse(t, "package test\n\nfunc (t *T) B() {}\n")

	r := Package("example.com/m", []*ast.File{types, a, b})

	if n := len(r.Invocations); n != 1 {
		t.Fatalf("Got %d invocations, want 1", n)
	}

	err := r.Err(fset)
	if !errors.Is(err, config.ErrConfig) {
		t.Fatalf("Got error %v, want %v", err, config.ErrConfig)
	}

	if n := strings.Count(err.Error(), "verbose"); n != 1 {
		t.Errorf("Got %d reports of the invalid key, want 1: %v", n, err)
	}
}

func TestPackageTypeMethodsAcrossFiles(t *testing.T) {
	t.Parallel()

	fset, types := testsource.Parse(t, "package test\n\n//calltrace:trace\ntype T int\n")
	_, a := testsource.Parse(t, "package test\n\nfunc (t T) A() {}\n")
	_, b := testsource.Parse(t, "package test\n\nfunc (t *T) B() {}\n")

	r := Package("example.com/m", []*ast.File{types, a, b})
	if err := r.Err(fset); err != nil {
		t.Fatalf("Got error %v", err)
	}

	plans := r.ByFile()

	if len(plans[a]) != 1 || plans[a][0].Display != "T.A" {
		t.Errorf("Got plan %v for first file, want T.A", plans[a])
	}

	if len(plans[b]) != 1 || plans[b][0].Display != "T.B" {
		t.Errorf("Got plan %v for second file, want T.B", plans[b])
	}
}
