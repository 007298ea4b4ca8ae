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

// Behavior represents configuration options for the analyzer.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include generated files.
	IncludeGenerated Behavior = 1 << iota

	// SuggestFixes determines whether diagnostics carry the instrumentation as suggested fix.
	SuggestFixes
)

// Config is the configuration of a single marker occurrence.
type Config struct {
	// Ignore leaves the marked node untouched.
	Ignore bool
}

// Pair is a single option of a marker argument list.
type Pair struct {
	Name  string
	Value string // literal source text, empty when absent
}

// HasValue reports whether the option was given a value.
func (p Pair) HasValue() bool {
	return p.Value != ""
}

// FromPairs builds a [Config] from parsed options.
func FromPairs(pairs []Pair) (Config, error) {
	var c Config

	for _, p := range pairs {
		switch p.Name {
		case "ignore":
			if p.HasValue() {
				return Config{}, &Error{Key: p.Name, Reason: "takes no value"}
			}

			c.Ignore = true

		default:
			return Config{}, &Error{Key: p.Name, Reason: "unknown option"}
		}
	}

	return c, nil
}

// Parse parses a marker argument list like "ignore" into a [Config].
func Parse(args string) (Config, error) {
	pairs, err := ParsePairs(args)
	if err != nil {
		return Config{}, err
	}

	return FromPairs(pairs)
}
