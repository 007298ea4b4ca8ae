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

package fix

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/calltrace/internal/fold"
)

// ErrOverlap is returned for conflicting edits.
var ErrOverlap = errors.New("overlapping edits")

// Source applies plan to the source of file and returns the formatted result.
func Source(fset *token.FileSet, file *ast.File, src []byte, plan fold.Plan) ([]byte, error) {
	edits, err := Edits(fset, file, plan)
	if err != nil {
		return nil, err
	}

	if len(edits) == 0 {
		return src, nil
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return nil, fmt.Errorf("no position information for %s", file.Name.Name)
	}

	out, err := Apply(handle, src, edits)
	if err != nil {
		return nil, err
	}

	return format.Source(out)
}

// Apply applies text edits to src.
func Apply(handle *token.File, src []byte, edits []analysis.TextEdit) ([]byte, error) {
	type offsetEdit struct {
		start, end int
		text       []byte
	}

	sorted := make([]offsetEdit, 0, len(edits))
	for _, e := range edits {
		sorted = append(sorted, offsetEdit{handle.Offset(e.Pos), handle.Offset(e.End), e.NewText})
	}

	slices.SortStableFunc(sorted, func(a, b offsetEdit) int { return cmp.Compare(a.start, b.start) })

	var (
		buf  bytes.Buffer
		last int
	)

	for _, e := range sorted {
		if e.start < last || e.end < e.start || e.end > len(src) {
			return nil, fmt.Errorf("%w at offset %d", ErrOverlap, e.start)
		}

		buf.Write(src[last:e.start])
		buf.Write(e.text)
		last = e.end
	}

	buf.Write(src[last:])

	return buf.Bytes(), nil
}
