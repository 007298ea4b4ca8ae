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

package analyzer

import "strconv"

// flagValue is a boolean [flag.Value] toggling a single bit of a flag set.
type flagValue[F any, B bitSetter[F]] struct {
	bits B
	flag F
}

type bitSetter[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

// Set implements [flag.Value].
func (f flagValue[_, B]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.bits.Set(f.flag, b)

	return nil
}

// String implements [flag.Value].
func (f flagValue[_, B]) String() string {
	return strconv.FormatBool(f.enabled())
}

// Get implements [flag.Getter].
func (f flagValue[_, B]) Get() any {
	return f.enabled()
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f flagValue[_, _]) IsBoolFlag() bool { return true }

// enabled handles the zero value created by [flag.PrintDefaults].
func (f flagValue[_, B]) enabled() bool {
	var null B
	if f.bits == null {
		return false
	}

	return f.bits.Enabled(f.flag)
}

// parseBool accepts the values of [strconv.ParseBool] and on/off.
func parseBool(str string) (bool, error) {
	switch str {
	case "on", "On", "ON":
		return true, nil

	case "off", "Off", "OFF":
		return false, nil
	}

	return strconv.ParseBool(str)
}
