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

package config

import (
	"errors"
	"fmt"
)

// ErrConfig is matched by every [Error].
var ErrConfig = errors.New("invalid marker configuration")

// Error describes an invalid marker argument list.
type Error struct {
	Key    string // offending option, empty if the list is malformed before any name
	Reason string
}

func (e *Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("invalid marker configuration: %s", e.Reason)
	}

	return fmt.Sprintf("invalid option %q: %s", e.Key, e.Reason)
}

// Is reports whether target is [ErrConfig].
func (e *Error) Is(target error) bool {
	return target == ErrConfig
}
