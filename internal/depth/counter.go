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

package depth

import "math"

// Counter is a saturating call depth.
//
// It never wraps: incrementing at [math.MaxUint32] and decrementing at zero leave the value unchanged.
type Counter uint32

// Inc increments the counter and returns the new depth.
func (c *Counter) Inc() uint32 {
	if *c < math.MaxUint32 {
		*c++
	}

	return uint32(*c)
}

// Dec decrements the counter and returns the new depth.
func (c *Counter) Dec() uint32 {
	if *c > 0 {
		*c--
	}

	return uint32(*c)
}

// Load returns the current depth.
func (c *Counter) Load() uint32 {
	return uint32(*c)
}
