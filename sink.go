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
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logger atomic.Pointer[zerolog.Logger]

// SetLogger sets the logger receiving trace lines. A nil logger restores the zerolog global logger.
func SetLogger(l *zerolog.Logger) {
	logger.Store(l)
}

// Tracef writes a trace line.
func Tracef(format string, args ...any) {
	l := logger.Load()
	if l == nil {
		l = &log.Logger
	}

	l.Trace().Msgf(format, args...)
}
