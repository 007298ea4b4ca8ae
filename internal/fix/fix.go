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

// Package fix renders instrumentation plans as source text edits.
//
// Edits are made to the original source, so comments and layout of the
// instrumented bodies survive.
package fix

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/calltrace/internal/codegen"
	"fillmore-labs.com/calltrace/internal/fold"
)

var rawcfg = &printer.Config{Mode: printer.RawFormat}

// Edits returns the text edits applying plan to file.
//
// The plan must only contain functions of file and must not be applied yet.
func Edits(fset *token.FileSet, file *ast.File, plan fold.Plan) ([]analysis.TextEdit, error) {
	if len(plan) == 0 {
		return nil, nil
	}

	var edits []analysis.TextEdit

	imp, err := importEdit(fset, file)
	if err != nil {
		return nil, err
	}

	if imp != nil {
		edits = append(edits, *imp)
	}

	for _, in := range plan {
		e, err := instrumentationEdits(fset, in)
		if err != nil {
			return nil, fmt.Errorf("can't render %s: %w", in.Display, err)
		}

		edits = append(edits, e...)
	}

	return edits, nil
}

func instrumentationEdits(fset *token.FileSet, in codegen.Instrumentation) ([]analysis.TextEdit, error) {
	var edits []analysis.TextEdit

	if in.Results != nil {
		e, err := resultsEdit(fset, in.Func.Type.Results, in.Results)
		if err != nil {
			return nil, err
		}

		edits = append(edits, e)
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, token.NewFileSet(), in.Prologue); err != nil {
		return nil, err
	}

	text := []byte{'\n'}
	for line := range strings.Lines(strings.TrimRight(buf.String(), "\n")) {
		text = append(text, '\t')
		text = append(text, line...)
	}

	text = append(text, '\n')

	edits = append(edits, analysis.TextEdit{Pos: in.Func.Body.Lbrace + 1, End: in.Func.Body.Lbrace + 1, NewText: text})

	return edits, nil
}

// resultsEdit replaces the original result list with the named one.
func resultsEdit(fset *token.FileSet, orig, named *ast.FieldList) (analysis.TextEdit, error) {
	pos, end := orig.Pos(), orig.End()
	if orig.Opening.IsValid() {
		pos, end = orig.Opening, orig.Closing+1
	}

	var buf bytes.Buffer

	buf.WriteByte('(')

	for i, field := range named.List {
		if i > 0 {
			buf.WriteString(", ")
		}

		for j, name := range field.Names {
			if j > 0 {
				buf.WriteString(", ")
			}

			buf.WriteString(name.Name)
		}

		buf.WriteByte(' ')

		if err := rawcfg.Fprint(&buf, fset, field.Type); err != nil {
			return analysis.TextEdit{}, err
		}
	}

	buf.WriteByte(')')

	return analysis.TextEdit{Pos: pos, End: end, NewText: buf.Bytes()}, nil
}

// importEdit adds the runtime import unless present.
//
// In an import block the path joins a trailing group of non-standard imports,
// or starts a new group.
func importEdit(fset *token.FileSet, file *ast.File) (*analysis.TextEdit, error) {
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil || path != codegen.Package {
			continue
		}

		if imp.Name != nil && imp.Name.Name != codegen.Name {
			return nil, fmt.Errorf("%s is imported as %s", codegen.Package, imp.Name.Name)
		}

		return nil, nil
	}

	spec := strconv.Quote(codegen.Package)

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.IMPORT {
			continue
		}

		if gen.Lparen.IsValid() {
			// a blank line before the path when ")" is on its own line
			text := "\n\t" + spec + "\n"
			if n := len(gen.Specs); n > 0 {
				last := gen.Specs[n-1].(*ast.ImportSpec)
				if thirdParty(last) && fset.Position(last.End()).Line < fset.Position(gen.Rparen).Line {
					text = "\t" + spec + "\n"
				}
			}

			return &analysis.TextEdit{Pos: gen.Rparen, End: gen.Rparen, NewText: []byte(text)}, nil
		}

		return &analysis.TextEdit{Pos: gen.End(), End: gen.End(), NewText: []byte("\n\nimport " + spec)}, nil
	}

	pos := packageClauseEnd(fset, file)

	return &analysis.TextEdit{Pos: pos, End: pos, NewText: []byte("\n\nimport " + spec)}, nil
}

// thirdParty reports whether an import path is outside the standard library.
func thirdParty(imp *ast.ImportSpec) bool {
	path, err := strconv.Unquote(imp.Path.Value)
	if err != nil {
		return false
	}

	first, _, _ := strings.Cut(path, "/")

	return strings.Contains(first, ".")
}

// packageClauseEnd returns the end of the package clause, including comments on the same line.
func packageClauseEnd(fset *token.FileSet, file *ast.File) token.Pos {
	end := file.Name.End()
	line := fset.Position(end).Line

	for _, c := range file.Comments {
		if c.Pos() < end {
			continue
		}

		if fset.Position(c.Pos()).Line != line {
			break
		}

		end = c.End()
	}

	return end
}
