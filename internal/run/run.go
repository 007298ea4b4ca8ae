// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/calltrace/internal/astutil"
	"fillmore-labs.com/calltrace/internal/config"
	"fillmore-labs.com/calltrace/internal/fix"
	"fillmore-labs.com/calltrace/internal/weave"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the calltrace analyzer.
//
// Every failed invocation is reported at its marker. Files with functions
// to instrument get one diagnostic, carrying the instrumentation as suggested fix.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("calltrace: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "CallTrace")
	defer task.End()

	var pkgPath string
	if p.Pkg != nil {
		pkgPath = p.Pkg.Path()
		trace.Log(ctx, "package", pkgPath)
	}

	var files []*ast.File

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !o.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLint() {
			continue
		}

		files = append(files, file)
	}

	if len(files) == 0 {
		return nil, nil
	}

	result := weave.Package(pkgPath, files)

	reportInvocations(ctx, p, result)

	reportFiles(ctx, p, files, result, o.Behavior.Enabled(config.SuggestFixes))

	return nil, nil
}

func reportInvocations(ctx context.Context, p *analysis.Pass, result *weave.Result) {
	defer trace.StartRegion(ctx, "ReportInvocations").End()

	for _, inv := range result.Invocations {
		if inv.Err == nil {
			continue
		}

		p.Report(analysis.Diagnostic{
			Pos:     inv.Marker.Pos(),
			End:     inv.Marker.Comment.End(),
			Message: inv.Err.Error(),
		})
	}
}

func reportFiles(ctx context.Context, p *analysis.Pass, files []*ast.File, result *weave.Result, suggest bool) {
	defer trace.StartRegion(ctx, "ReportFiles").End()

	plans := result.ByFile()

	for _, file := range files {
		plan := plans[file]
		if len(plan) == 0 {
			continue
		}

		diagnostic := analysis.Diagnostic{
			Pos:     file.Name.Pos(),
			End:     file.Name.End(),
			Message: fmt.Sprintf("%d functions can be instrumented", len(plan)),
		}

		if suggest {
			edits, err := fix.Edits(p.Fset, file, plan)
			if err != nil {
				diagnostic.Message += ": " + err.Error()
			} else {
				diagnostic.SuggestedFixes = []analysis.SuggestedFix{{
					Message:   "Instrument functions",
					TextEdits: edits,
				}}
			}
		}

		p.Report(diagnostic)
	}
}
