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

package pattern

import (
	"errors"
	"fmt"
	"go/token"
)

// ErrUnsupported is matched by every [UnsupportedError].
var ErrUnsupported = errors.New("unsupported pattern")

// UnsupportedError is returned for patterns that can't be printed.
type UnsupportedError struct {
	Kind string
	Pos  token.Pos
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported pattern: %s", e.Kind)
}

// Is reports whether target is [ErrUnsupported].
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}
