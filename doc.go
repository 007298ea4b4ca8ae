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

// Package calltrace is the runtime support for code instrumented by the calltrace tool.
//
// Instrumented functions start with a prologue like
//
//	_calltraceDepth := calltrace.Enter()
//	calltrace.Tracef("%s %s.add(a: %v, b: %v)", calltrace.Indent(_calltraceDepth), "example.com/m", a, b)
//	defer func() {
//		calltrace.Tracef("%s %s.add = %v", calltrace.Outdent(calltrace.Depth()), "example.com/m", _calltraceRet0)
//		calltrace.Exit()
//	}()
//
// The functions here are meant to be called from generated code only.
//
// Trace lines are written at [zerolog.TraceLevel] to the logger set by [SetLogger],
// which defaults to the zerolog global logger.
package calltrace
