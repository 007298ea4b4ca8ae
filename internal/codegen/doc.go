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

// Package codegen synthesizes the instrumentation of a single function.
//
// The original body is kept and runs exactly once. A prologue increments the
// call depth, emits the enter trace and defers the exit trace, which reads the
// named results after the body returned. Unnamed results are named so the
// deferred function can see them. Printed values pass through calltrace.Value,
// so vet doesn't check them against the format:
//
//	func add(a, b int) (_calltraceRet0 int) {
//		_calltraceDepth := calltrace.Enter()
//		calltrace.Tracef("%s %s.add(a: %v, b: %v)", calltrace.Indent(_calltraceDepth), "example.com/m", calltrace.Value(a), calltrace.Value(b))
//		defer func() {
//			calltrace.Tracef("%s %s.add = %v", calltrace.Outdent(calltrace.Depth()), "example.com/m", calltrace.Value(_calltraceRet0))
//			calltrace.Exit()
//		}()
//
//		return a + b
//	}
package codegen
