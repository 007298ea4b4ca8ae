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

// Package cli implements the calltrace command line tool.
package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"fillmore-labs.com/calltrace/internal/logging"
	"fillmore-labs.com/calltrace/internal/settings"
)

// app holds the state shared by all commands.
type app struct {
	flags struct {
		config    string
		dir       string
		logLevel  string
		generated bool
		tests     bool
	}

	settings settings.Settings
	log      zerolog.Logger
}

// NewRootCmd creates the calltrace command with all subcommands.
func NewRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "calltrace",
		Short: "Instrument marked Go functions with call traces",
		Long: `Calltrace rewrites functions marked with //calltrace:trace so that
every call logs an enter and an exit trace, indented by call depth.

A marker above the package clause instruments the whole file, on a type
declaration all methods of the type, on a function just the function.
Use //calltrace:trace(ignore) to exclude a function.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.flags.config, "config", "", "configuration file (default "+settings.DefaultFile+" if present)")
	pf.StringVarP(&a.flags.dir, "dir", "C", ".", "directory to load packages from")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	pf.BoolVar(&a.flags.generated, "generated", false, "instrument generated files")
	pf.BoolVar(&a.flags.tests, "tests", false, "include test files")

	cmd.AddCommand(newRewriteCmd(a))
	cmd.AddCommand(newOverlayCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup merges the configuration file with explicitly set flags and creates the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var (
		s   settings.Settings
		err error
	)

	if a.flags.config != "" {
		s, err = settings.Load(a.flags.config)
	} else {
		s, err = settings.LoadDefault(a.flags.dir)
	}

	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		s.LogLevel = a.flags.logLevel
	}

	if flags.Changed("generated") {
		s.Generated = a.flags.generated
	}

	if flags.Changed("tests") {
		s.Tests = a.flags.tests
	}

	a.settings = s
	cfg := logging.DefaultConfig()
	cfg.Pretty = s.Pretty
	cfg.Output = cmd.ErrOrStderr()

	if s.LogLevel != "" {
		cfg.Level = s.LogLevel
	}

	a.log = logging.New(cfg)

	return nil
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
