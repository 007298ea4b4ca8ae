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
	"cmp"
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"os"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"fillmore-labs.com/calltrace/internal/astutil"
	"fillmore-labs.com/calltrace/internal/fix"
	"fillmore-labs.com/calltrace/internal/weave"
)

// ErrLoad is returned when packages can't be loaded.
var ErrLoad = errors.New("can't load packages")

// rewritten is an instrumented source file.
type rewritten struct {
	path string
	mode os.FileMode
	out  []byte
}

// instrument loads the packages matching patterns and returns all files that change.
//
// Any failed invocation fails the whole run.
func (a *app) instrument(ctx context.Context, patterns []string) ([]rewritten, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	fset := token.NewFileSet()
	cfg := &packages.Config{
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedSyntax,
		Context: ctx,
		Dir:     a.flags.dir,
		Fset:    fset,
		Tests:   a.settings.Tests,
	}

	a.log.Debug().Strs("patterns", patterns).Msg("Loading packages")

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	var errs []error
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			errs = append(errs, e)
		}
	})

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrLoad, errors.Join(errs...))
	}

	// Test variants see the markers of test files, so their view of shared files wins,
	// even when it leaves a file unchanged.
	slices.SortStableFunc(pkgs, func(p, q *packages.Package) int {
		return cmp.Compare(variantRank(p), variantRank(q))
	})

	outs := make([][]rewritten, len(pkgs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, pkg := range pkgs {
		if pkg.Name == "main" && strings.HasSuffix(pkg.ID, ".test") {
			continue // generated test main
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			out, err := a.instrumentPackage(fset, pkg)
			if err != nil {
				return err
			}

			outs[i] = out

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var (
		files   = make(map[string]rewritten)
		claimed = make(map[string]bool)
	)

	for i, out := range outs {
		for _, r := range out {
			if !claimed[r.path] {
				files[r.path] = r
			}
		}

		for _, path := range pkgs[i].CompiledGoFiles {
			claimed[path] = true
		}
	}

	result := make([]rewritten, 0, len(files))
	for _, r := range files {
		result = append(result, r)
	}

	slices.SortFunc(result, func(a, b rewritten) int { return strings.Compare(a.path, b.path) })

	return result, nil
}

// variantRank orders test variants before the packages they are built from.
func variantRank(p *packages.Package) int {
	if p.ForTest != "" {
		return 0
	}

	return 1
}

func (a *app) instrumentPackage(fset *token.FileSet, pkg *packages.Package) ([]rewritten, error) {
	log := a.log.With().Str("package", pkg.ID).Logger()

	var files []*ast.File

	for _, f := range pkg.Syntax {
		current := astutil.NewCurrentFile(fset, f)
		if !current.Valid() {
			continue
		}

		if current.Generated() && !a.settings.Generated {
			log.Trace().Str("file", current.Name()).Msg("Skipping generated file")

			continue
		}

		if current.NoLint() {
			log.Trace().Str("file", current.Name()).Msg("Skipping file with nolint directive")

			continue
		}

		files = append(files, f)
	}

	result := weave.Package(pkg.PkgPath, files)
	if err := result.Err(fset); err != nil {
		return nil, err
	}

	var out []rewritten

	for f, plan := range result.ByFile() {
		if len(plan) == 0 {
			continue
		}

		path := fset.File(f.FileStart).Name()

		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		instrumented, err := fix.Source(fset, f, src, plan)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		log.Debug().Str("file", path).Int("functions", len(plan)).Msg("Instrumented")

		out = append(out, rewritten{path: path, mode: info.Mode().Perm(), out: instrumented})
	}

	return out, nil
}
