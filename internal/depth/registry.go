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

import (
	"sync"

	"github.com/petermattis/goid"
)

// Registry holds one [Counter] per goroutine.
//
// A goroutine only ever touches its own counter, so the counters need no locking.
// A counter is created on the first [Registry.Enter] of a goroutine and released
// when its depth drops back to zero.
type Registry struct {
	counters sync.Map // goroutine id -> *Counter
}

// Enter increments the depth of the calling goroutine and returns the new value.
func (r *Registry) Enter() uint32 {
	gid := goid.Get()

	c, ok := r.counters.Load(gid)
	if !ok {
		c, _ = r.counters.LoadOrStore(gid, new(Counter))
	}

	return c.(*Counter).Inc()
}

// Depth returns the depth of the calling goroutine.
func (r *Registry) Depth() uint32 {
	c, ok := r.counters.Load(goid.Get())
	if !ok {
		return 0
	}

	return c.(*Counter).Load()
}

// Exit decrements the depth of the calling goroutine and returns the new value.
func (r *Registry) Exit() uint32 {
	gid := goid.Get()

	c, ok := r.counters.Load(gid)
	if !ok {
		return 0
	}

	d := c.(*Counter).Dec()
	if d == 0 {
		r.counters.Delete(gid)
	}

	return d
}
