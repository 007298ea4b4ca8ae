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

package fold

// Scope is the breadth of the node a marker is attached to.
//
// Scopes are ordered: a marker on a node nested in a wider scope is handled by its own invocation.
type Scope uint8

//go:generate go tool stringer -type Scope -linecomment
const (
	// ScopeFunction is a marker on a function or method.
	ScopeFunction Scope = iota // function
	// ScopeImpl is a marker on a type, applying to its methods.
	ScopeImpl // impl
	// ScopeModule is a marker on a file.
	ScopeModule // module
)
