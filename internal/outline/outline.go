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

// Package outline turns the syntax trees of a package into the nodes markers can be attached to.
//
// A [Module] is one file, an [Impl] the methods of one receiver type, a [Func]
// a function or method. Markers on anything else become a [Stray].
package outline

import (
	"go/ast"
	"go/token"

	"fillmore-labs.com/calltrace/internal/marker"
)

// Node is one of [*Module], [*Impl], [*Func] or [*Stray].
type Node interface {
	Pos() token.Pos
	node()
}

// Module is a source file.
type Module struct {
	File   *ast.File
	Marker *marker.Marker
	Items  []Node // *Func and *Impl in source order
}

// Impl holds the methods of a receiver type.
//
// Module items hold the methods declared in their file; the Impls of
// [Package.Types] hold all methods of a marked type in the package.
type Impl struct {
	TypeName string
	Marker   *marker.Marker // from the type declaration, which may be in another file
	Methods  []*Func
}

// Func is a function or method declaration.
type Func struct {
	Decl   *ast.FuncDecl
	File   *ast.File
	Marker *marker.Marker
}

// Stray is a marker that can't be attached to a module, type or function.
type Stray struct {
	Node   ast.Node
	Marker *marker.Marker
	Reason string
}

func (m *Module) Pos() token.Pos { return m.File.Package }

func (i *Impl) Pos() token.Pos {
	switch {
	case len(i.Methods) > 0:
		return i.Methods[0].Pos()

	case i.Marker != nil:
		return i.Marker.Pos()

	default:
		return token.NoPos
	}
}

func (f *Func) Pos() token.Pos { return f.Decl.Pos() }

func (s *Stray) Pos() token.Pos { return s.Marker.Pos() }

func (*Module) node() {}

func (*Impl) node() {}

func (*Func) node() {}

func (*Stray) node() {}

// Package is the outline of a package.
type Package struct {
	Modules []*Module
	Types   []*Impl // marked types in declaration order, including types without methods
	Strays  []*Stray
}
