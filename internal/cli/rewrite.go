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
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRewriteCmd(a *app) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "rewrite [-w] [packages]",
		Short: "Print or write instrumented source files",
		Long: `Rewrite instruments the marked functions of the given packages
(default ./...) and prints the changed files. With -w the files are
overwritten in place. Nothing is written when any marker is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.instrument(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			for _, f := range files {
				if !write {
					if _, err := fmt.Fprintf(out, "// %s\n%s", f.path, f.out); err != nil {
						return err
					}

					continue
				}

				if err := os.WriteFile(f.path, f.out, f.mode); err != nil {
					return err
				}

				a.log.Info().Str("file", f.path).Msg("Rewritten")
			}

			if len(files) == 0 {
				a.log.Info().Msg("Nothing to instrument")
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write result to source files instead of stdout")

	return cmd
}
