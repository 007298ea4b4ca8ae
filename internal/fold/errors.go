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

import "errors"

// ErrPlacement is matched by every [PlacementError].
var ErrPlacement = errors.New("misplaced marker")

// PlacementError is returned for markers on nodes that can't be instrumented.
type PlacementError struct {
	Reason string
}

func (e *PlacementError) Error() string {
	return "misplaced marker: " + e.Reason
}

// Is reports whether target is [ErrPlacement].
func (e *PlacementError) Is(target error) bool {
	return target == ErrPlacement
}
