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

package astutil_test

import (
	"go/ast"
	"testing"

	. "fillmore-labs.com/calltrace/internal/astutil"
	"fillmore-labs.com/calltrace/internal/testsource"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want bool
	}{
		{"//nolint:calltrace", true},
		{"// nolint:errcheck,calltrace", true},
		{"//nolint:all", true},
		{"//nolint:CallTrace", true},
		{"//nolint:errcheck", false},
		{"// calltrace", false},
	}

	for _, tt := range tests {
		if got := CommentHasNoLint(&ast.Comment{Text: tt.text}); got != tt.want {
			t.Errorf("Got CommentHasNoLint(%q) = %t, want %t", tt.text, got, tt.want)
		}
	}
}

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		src       string
		generated bool
		nolint    bool
	}{
		{"plain", "package test\n", false, false},
		{"generated", "// Code generated by test. DO NOT EDIT.\n\npackage test\n", true, false},
		{"nolint", "// Package test.\n//\n//nolint:calltrace\npackage test\n", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, f := testsource.Parse(t, tt.src)

			c := NewCurrentFile(fset, f)
			if !c.Valid() {
				t.Fatal("Invalid file")
			}

			if c.Generated() != tt.generated {
				t.Errorf("Got Generated() = %t, want %t", c.Generated(), tt.generated)
			}

			if c.NoLint() != tt.nolint {
				t.Errorf("Got NoLint() = %t, want %t", c.NoLint(), tt.nolint)
			}
		})
	}
}
