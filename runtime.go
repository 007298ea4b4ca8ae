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
	"strings"

	"fillmore-labs.com/calltrace/internal/depth"
)

// markersPerLevel is the indentation width of one nesting level.
const markersPerLevel = 4

// maxMarkers caps the indentation of deeply recursive calls.
const maxMarkers = 1024

var depths depth.Registry

// Enter increments the call depth of the current goroutine and returns the new depth.
func Enter() uint32 {
	return depths.Enter()
}

// Depth returns the call depth of the current goroutine.
func Depth() uint32 {
	return depths.Depth()
}

// Exit decrements the call depth of the current goroutine.
func Exit() {
	depths.Exit()
}

// Indent returns the enter marker for depth d.
func Indent(d uint32) string {
	return markers(">", d)
}

// Outdent returns the exit marker for depth d.
func Outdent(d uint32) string {
	return markers("<", d)
}

func markers(m string, d uint32) string {
	n := maxMarkers
	if d < maxMarkers/markersPerLevel {
		n = int(d) * markersPerLevel
	}

	return strings.Repeat(m, n)
}
