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

package codegen

import "go/ast"

// OwnerName returns the base type name of a receiver, without pointer and type parameters.
func OwnerName(recv *ast.FieldList) string {
	if recv.NumFields() == 0 {
		return ""
	}

	typ := recv.List[0].Type
	for {
		switch t := typ.(type) {
		case *ast.StarExpr:
			typ = t.X

		case *ast.ParenExpr:
			typ = t.X

		case *ast.IndexExpr:
			typ = t.X

		case *ast.IndexListExpr:
			typ = t.X

		case *ast.Ident:
			return t.Name

		default:
			return ""
		}
	}
}

// DisplayName returns the traced name of a function.
func DisplayName(owner, name string) string {
	if owner == "" {
		return name
	}

	return owner + "." + name
}

// Instrumented reports whether a function body already starts with the trace prologue.
func Instrumented(fn *ast.FuncDecl) bool {
	if fn.Body == nil || len(fn.Body.List) == 0 {
		return false
	}

	assign, ok := fn.Body.List[0].(*ast.AssignStmt)
	if !ok || len(assign.Lhs) != 1 {
		return false
	}

	id, ok := assign.Lhs[0].(*ast.Ident)

	return ok && id.Name == DepthVar
}
