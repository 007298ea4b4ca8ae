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

package calltrace

import (
	"fmt"
	"strings"
)

// Value passes a traced value on as an interface.
//
// Tracef is a printf wrapper, and vet rejects func values for %v. Wrapping
// hides the static type, so traced functions with func parameters or results pass vet.
func Value(v any) any {
	return v
}

// Tuple holds the results of a function with zero or several return values.
type Tuple []any

// Results groups return values for the exit trace.
func Results(values ...any) Tuple {
	return Tuple(values)
}

// String formats the tuple as "(v1, v2)".
func (t Tuple) String() string {
	var b strings.Builder

	b.WriteByte('(')

	for i, v := range t {
		if i > 0 {
			b.WriteString(", ")
		}

		fmt.Fprintf(&b, "%v", v)
	}

	b.WriteByte(')')

	return b.String()
}
