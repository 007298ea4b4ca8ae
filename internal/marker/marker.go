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

// Package marker recognizes calltrace directive comments.
//
// A marker is a line comment of the form
//
//	//calltrace:trace
//	//calltrace:trace(ignore)
//
// without a space after the slashes, like other Go directives.
package marker

import (
	"go/ast"
	"go/token"
	"strings"
)

// Name is the canonical directive name.
const Name = "calltrace:trace"

// Marker is a recognized directive comment.
type Marker struct {
	Comment *ast.Comment
	Args    string // argument text between the parentheses, trimmed
}

// Pos returns the position of the directive comment.
func (m *Marker) Pos() token.Pos {
	return m.Comment.Slash
}

// Parse recognizes a single directive comment. Returns false if the comment is no marker.
//
// A marker with an opening parenthesis and no closing one is still recognized,
// with the remainder as argument text, so the configuration parser can report it.
func Parse(c *ast.Comment) (*Marker, bool) {
	rest, ok := strings.CutPrefix(c.Text, "//"+Name)
	if !ok {
		return nil, false
	}

	switch {
	case rest == "":
		return &Marker{Comment: c}, true

	case rest[0] == '(':
		args := rest[1:]
		if i := strings.LastIndexByte(args, ')'); i >= 0 {
			args = args[:i]
		}

		return &Marker{Comment: c, Args: strings.TrimSpace(args)}, true

	case rest[0] == ' ' || rest[0] == '\t':
		// trailing commentary
		return &Marker{Comment: c}, true

	default:
		// //calltrace:tracer
		return nil, false
	}
}

// Find returns the first marker in a comment group, or nil.
func Find(doc *ast.CommentGroup) *Marker {
	if doc == nil {
		return nil
	}

	for _, c := range doc.List {
		if m, ok := Parse(c); ok {
			return m
		}
	}

	return nil
}

// All returns all markers of a file in source order.
func All(f *ast.File) []*Marker {
	var markers []*Marker

	for _, g := range f.Comments {
		for _, c := range g.List {
			if m, ok := Parse(c); ok {
				markers = append(markers, m)
			}
		}
	}

	return markers
}
