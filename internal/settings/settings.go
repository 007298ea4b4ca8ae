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

// Package settings loads the configuration file of the command line tool.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no configuration file is given.
const DefaultFile = ".calltrace.yaml"

// Settings is the content of a configuration file.
type Settings struct {
	// Generated enables instrumentation of generated files.
	Generated bool `yaml:"generated"`
	// Tests includes test files of the loaded packages.
	Tests bool `yaml:"tests"`
	// LogLevel is the level of the tool's own log output.
	LogLevel string `yaml:"log-level"`
	// Pretty enables human-readable log output.
	Pretty bool `yaml:"pretty"`
}

// Default returns the settings used without configuration file.
func Default() Settings {
	return Settings{
		LogLevel: "info",
		Pretty:   true,
	}
}

// Load reads settings from path.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("can't read configuration: %w", err)
	}

	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// LoadDefault reads [DefaultFile] in dir. A missing file yields [Default] settings.
func LoadDefault(dir string) (Settings, error) {
	path := filepath.Join(dir, DefaultFile)

	s, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	return s, err
}

// Decode reads settings in YAML format. Unknown keys are an error.
func Decode(r io.Reader) (Settings, error) {
	s := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return s, nil
}
