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

package status

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎯 UserLogger handles user-facing banner output, separate from the plain
// per-file result lines (those are a parsing contract and stay undecorated)
type UserLogger struct {
	zlog *zerolog.Logger
}

// 🏭 NewUserLogger creates a new user logger from the context's zerolog logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		zlog: zerolog.Ctx(ctx),
	}
}

// ✅ LogValidation logs a validation result with appropriate symbol and color
func (l *UserLogger) LogValidation(success bool, description string, err error) {
	if success {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		return
	}

	pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
	if err != nil {
		pterm.Error.Println(err)
		l.zlog.Error().Err(err).Msg(description)
	}
}

// 📦 LogRunStart logs the start of a command run
func (l *UserLogger) LogRunStart(command string, targets int) {
	l.zlog.Debug().Str("command", command).Int("targets", targets).Msg("starting run")
}

// ❌ LogCommandFailed logs a fatal command failure to stderr. The inject
// command has no per-file isolation, so this is its one diagnostic line.
func (l *UserLogger) LogCommandFailed(command string, err error) {
	fmt.Fprintln(os.Stderr, color.New(color.FgRed, color.Bold).Sprintf("retouch %s failed:", command), err)
	l.zlog.Error().Err(err).Str("command", command).Msg("command failed")
}
