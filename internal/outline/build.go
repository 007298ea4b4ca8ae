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

package outline

import (
	"go/ast"
	"go/token"

	"fillmore-labs.com/calltrace/internal/codegen"
	"fillmore-labs.com/calltrace/internal/marker"
)

// Build outlines the files of one package.
func Build(files []*ast.File) *Package {
	b := builder{
		types:   make(map[string]*Impl),
		claimed: make(map[*ast.Comment]bool),
		pkg:     &Package{},
	}

	for _, f := range files {
		b.collectTypes(f)
	}

	for _, f := range files {
		b.file(f)
	}

	return b.pkg
}

type builder struct {
	types   map[string]*Impl // marked types by name
	claimed map[*ast.Comment]bool
	pkg     *Package
}

func (b *builder) find(doc *ast.CommentGroup) *marker.Marker {
	m := marker.Find(doc)
	if m != nil {
		b.claimed[m.Comment] = true
	}

	return m
}

func (b *builder) stray(node ast.Node, m *marker.Marker, reason string) {
	b.pkg.Strays = append(b.pkg.Strays, &Stray{Node: node, Marker: m, Reason: reason})
}

// collectTypes records the markers of type declarations.
func (b *builder) collectTypes(f *ast.File) {
	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}

		grouped := gen.Lparen.IsValid()
		if m := b.find(gen.Doc); m != nil && grouped {
			b.stray(gen, m, "grouped type declaration")
		}

		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)

			doc := ts.Doc
			if doc == nil && !grouped {
				doc = gen.Doc
			}

			m := b.find(doc)
			if m == nil {
				continue
			}

			if _, ok := ts.Type.(*ast.InterfaceType); ok {
				b.stray(ts, m, "interface type declaration")

				continue
			}

			impl := &Impl{TypeName: ts.Name.Name, Marker: m}
			b.types[impl.TypeName] = impl
			b.pkg.Types = append(b.pkg.Types, impl)
		}
	}
}

func (b *builder) file(f *ast.File) {
	mod := &Module{File: f, Marker: b.find(f.Doc)}
	impls := make(map[string]*Impl)

	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			fn := &Func{Decl: d, File: f, Marker: b.find(d.Doc)}
			if fn.Marker != nil && d.Body == nil {
				b.stray(d, fn.Marker, "function without body")
				fn.Marker = nil
			}

			owner := codegen.OwnerName(d.Recv)
			if owner == "" {
				mod.Items = append(mod.Items, fn)

				continue
			}

			marked := b.types[owner]

			impl, ok := impls[owner]
			if !ok {
				impl = &Impl{TypeName: owner}
				if marked != nil {
					impl.Marker = marked.Marker
				}

				impls[owner] = impl
				mod.Items = append(mod.Items, impl)
			}

			impl.Methods = append(impl.Methods, fn)

			if marked != nil {
				marked.Methods = append(marked.Methods, fn)
			}

		case *ast.GenDecl:
			if d.Tok == token.TYPE {
				continue
			}

			if m := b.find(d.Doc); m != nil {
				b.stray(d, m, d.Tok.String()+" declaration")
			}

			for _, spec := range d.Specs {
				var doc *ast.CommentGroup
				switch s := spec.(type) {
				case *ast.ValueSpec:
					doc = s.Doc

				case *ast.ImportSpec:
					doc = s.Doc
				}

				if m := b.find(doc); m != nil {
					b.stray(spec, m, d.Tok.String()+" declaration")
				}
			}
		}
	}

	for _, m := range marker.All(f) {
		if !b.claimed[m.Comment] {
			b.stray(m.Comment, m, "not attached to a declaration")
		}
	}

	b.pkg.Modules = append(b.pkg.Modules, mod)
}
