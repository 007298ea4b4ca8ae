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

// Package analyzer implements the calltrace static analysis pass.
//
// # Overview
//
// Calltrace instruments functions marked with a //calltrace:trace directive,
// so that every call emits an enter and an exit trace annotated with the call depth.
//
// # Markers
//
// A marker in the doc comment of a function or method instruments that function.
// On a type declaration it instruments all methods of the type, above the package
// clause all functions and methods of the file. Functions with their own marker
// are only instrumented by that marker, //calltrace:trace(ignore) excludes them.
//
// # Example
//
// Before:
//
//	//calltrace:trace
//	func add(a, b int) int {
//	    return a + b
//	}
//
// After applying calltrace's suggested fix:
//
//	//calltrace:trace
//	func add(a, b int) (_calltraceRet0 int) {
//	    _calltraceDepth := calltrace.Enter()
//	    calltrace.Tracef("%s %s.add(a: %v, b: %v)", calltrace.Indent(_calltraceDepth), "example.com/m", a, b)
//	    defer func() {
//	        calltrace.Tracef("%s %s.add = %v", calltrace.Outdent(calltrace.Depth()), "example.com/m", _calltraceRet0)
//	        calltrace.Exit()
//	    }()
//
//	    return a + b
//	}
//
// Misplaced markers and invalid marker options are reported as diagnostics.
package analyzer
