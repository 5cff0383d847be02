package opts

import (
	"io"

	"github.com/walteh/retouch/pkg/config"
	"github.com/walteh/retouch/pkg/status"
)

// RootOpts carries the shared dependencies built once at startup and handed
// to every command
type RootOpts struct {
	// Config is the loaded retouch configuration
	Config *config.Config

	// UserLogger prints user-facing banners
	UserLogger *status.UserLogger

	// Formatter renders the per-file result lines
	Formatter status.FileFormatter

	// Console is where result lines go (stdout outside of tests)
	Console io.Writer
}
