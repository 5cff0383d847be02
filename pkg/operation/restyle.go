// Copyright 2025 walteh LLC
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

package operation

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/walteh/retouch/pkg/status"
	"github.com/walteh/retouch/pkg/text"
)

// 📄 FileResult captures the outcome for one file. Failures are recorded
// here instead of propagated: one broken file never aborts the run.
type FileResult struct {
	Path         string // File path as configured
	Modified     bool   // Whether the content changed
	Replacements int    // Number of replacements made
	Err          error  // Failure, if any step for this file failed
}

// 🎨 RestyleOperation rewrites each configured file in place by applying the
// rule table in order
type RestyleOperation struct {
	Files     []string               // Files to rewrite, in order
	Rules     []text.ReplacementRule // Substitution rules, in order
	Replacer  text.TextReplacer      // Replacement engine
	Formatter status.FileFormatter   // Per-file line formatter
	Console   io.Writer              // Destination for per-file lines
	Async     bool                   // Process files concurrently
}

// 📛 Name implements Operation
func (op *RestyleOperation) Name() string {
	return "restyle"
}

// 🏃 Execute processes every file and reports one line per file plus a
// closing line. It always returns nil: per-file failures are printed, not
// propagated, and the exit code stays zero regardless.
func (op *RestyleOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Int("files", len(op.Files)).Int("rules", len(op.Rules)).Bool("async", op.Async).Msg("restyling files")

	var results []FileResult
	if op.Async {
		results = op.processAsync(ctx)
	} else {
		results = op.processSync(ctx)
	}

	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintln(op.Console, op.Formatter.FormatError(res.Path, res.Err))
			continue
		}
		fmt.Fprintln(op.Console, op.Formatter.FormatFixed(res.Path))
	}
	fmt.Fprintln(op.Console, op.Formatter.FormatDone())

	return nil
}

// 🔄 processSync rewrites the files strictly sequentially, in list order
func (op *RestyleOperation) processSync(ctx context.Context) []FileResult {
	results := make([]FileResult, 0, len(op.Files))
	for _, file := range op.Files {
		results = append(results, op.processFile(ctx, file))
	}
	return results
}

// ⚡ processAsync rewrites the files concurrently. Results land in an
// index-ordered slice so the printed output is identical to sync mode.
// Workers never return errors: failures stay inside their FileResult.
func (op *RestyleOperation) processAsync(ctx context.Context) []FileResult {
	results := make([]FileResult, len(op.Files))

	g, ctx := errgroup.WithContext(ctx)
	for i, file := range op.Files {
		i, file := i, file
		g.Go(func() error {
			results[i] = op.processFile(ctx, file)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// 📝 processFile reads, rewrites and writes back a single file
func (op *RestyleOperation) processFile(ctx context.Context, path string) FileResult {
	logger := zerolog.Ctx(ctx)
	res := FileResult{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		return res
	}

	result, err := op.Replacer.ReplaceText(ctx, bytes.NewReader(content), op.rulesForFile(ctx, path))
	if err != nil {
		res.Err = err
		return res
	}

	// Overwrite in place, keeping the file's own permission bits. No backup
	// and no atomic rename: a failure mid-write can truncate the file, which
	// is accepted for this tool.
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, result.ModifiedContent, mode); err != nil {
		res.Err = err
		return res
	}

	res.Modified = result.WasModified
	res.Replacements = result.ReplacementCount
	logger.Debug().Str("file", path).Int("replacements", res.Replacements).Msg("file rewritten")

	return res
}

// 🔍 rulesForFile selects the rules whose file filter matches the path.
// Rules without a filter apply everywhere.
func (op *RestyleOperation) rulesForFile(ctx context.Context, path string) []text.ReplacementRule {
	logger := zerolog.Ctx(ctx)

	rules := make([]text.ReplacementRule, 0, len(op.Rules))
	for _, rule := range op.Rules {
		if rule.FileFilterGlob != "" {
			matched, err := doublestar.Match(rule.FileFilterGlob, path)
			if err != nil {
				logger.Debug().Str("glob", rule.FileFilterGlob).Str("path", path).Err(err).Msg("error matching file filter")
				continue
			}
			if !matched {
				continue
			}
		}
		rules = append(rules, rule)
	}
	return rules
}
