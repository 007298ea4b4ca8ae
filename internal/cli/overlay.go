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

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// OverlayFile is the name of the overlay description written to the output directory.
const OverlayFile = "overlay.json"

// overlay is the file format of go build -overlay.
type overlay struct {
	Replace map[string]string `json:"Replace"`
}

func newOverlayCmd(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "overlay -o dir [packages]",
		Short: "Write instrumented copies for go build -overlay",
		Long: `Overlay instruments the marked functions of the given packages
(default ./...) and writes the changed files to dir, together with
` + OverlayFile + `. Build the instrumented program with

	go build -overlay dir/` + OverlayFile + `

leaving the original sources untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.instrument(cmd.Context(), args)
			if err != nil {
				return err
			}

			abs, err := filepath.Abs(dir)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(abs, 0o755); err != nil {
				return err
			}

			o := overlay{Replace: make(map[string]string, len(files))}

			for i, f := range files {
				dest := filepath.Join(abs, fmt.Sprintf("%03d_%s", i, filepath.Base(f.path)))
				if err := os.WriteFile(dest, f.out, 0o644); err != nil {
					return err
				}

				o.Replace[f.path] = dest
			}

			data, err := json.MarshalIndent(o, "", "\t")
			if err != nil {
				return err
			}

			path := filepath.Join(abs, OverlayFile)
			if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
				return err
			}

			a.log.Info().Str("overlay", path).Int("files", len(files)).Msg("Overlay written")

			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "output", "o", "", "output directory")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
