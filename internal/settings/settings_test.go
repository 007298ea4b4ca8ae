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

package settings_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/calltrace/internal/settings"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		want Settings
	}{
		{
			name: "empty",
			yaml: "",
			want: Default(),
		},
		{
			name: "all",
			yaml: "generated: true\ntests: true\nlog-level: debug\npretty: false\n",
			want: Settings{Generated: true, Tests: true, LogLevel: "debug", Pretty: false},
		},
		{
			name: "partial",
			yaml: "tests: true\n",
			want: Settings{Tests: true, LogLevel: "info", Pretty: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Decode(strings.NewReader(tt.yaml))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeUnknownKey(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader("verbose: true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verbose")
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "calltrace.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generated: true\n"), 0o600))

	got, err := Load(path)
	require.NoError(t, err)
	assert.True(t, got.Generated)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadDefault(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	got, err := LoadDefault(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), got)

	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("log-level: debug\n"), 0o600))

	got, err = LoadDefault(dir)
	require.NoError(t, err)
	assert.Equal(t, "debug", got.LogLevel)

	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("log-level: [\n"), 0o600))

	_, err = LoadDefault(dir)
	assert.Error(t, err)
}
