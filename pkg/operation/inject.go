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
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/retouch/pkg/inject"
	"github.com/walteh/retouch/pkg/status"
)

// 💉 InjectOperation inserts the configured field into one target file.
// Unlike restyle there is no error isolation: this is a one-shot operation
// on a single caller-named file, so the first failure aborts the run.
type InjectOperation struct {
	Path      string                // Target file
	Injector  *inject.FieldInjector // Field insertion engine
	Formatter status.FileFormatter  // Result line formatter
	Console   io.Writer             // Destination for the result line
}

// 📛 Name implements Operation
func (op *InjectOperation) Name() string {
	return "inject"
}

// 🏃 Execute reads the target file, injects the field and writes it back
func (op *InjectOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	content, err := os.ReadFile(op.Path)
	if err != nil {
		return errors.Errorf("reading %s: %w", op.Path, err)
	}

	modified, count := op.Injector.Inject(string(content))
	logger.Debug().Str("file", op.Path).Int("insertions", count).Msg("field injection applied")

	mode := os.FileMode(0o644)
	if info, err := os.Stat(op.Path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(op.Path, []byte(modified), mode); err != nil {
		return errors.Errorf("writing %s: %w", op.Path, err)
	}

	fmt.Fprintln(op.Console, op.Formatter.FormatFixed(op.Path))
	return nil
}
