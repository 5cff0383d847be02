package status

import (
	"fmt"
)

// FileFormatter defines how per-file results and run completion are formatted
type FileFormatter interface {
	// FormatFixed formats the success line for a rewritten file
	FormatFixed(path string) string

	// FormatError formats the failure line for a file that could not be rewritten
	FormatError(path string, err error) string

	// FormatDone formats the end-of-run line
	FormatDone() string
}

// DefaultFileFormatter provides the default implementation of FileFormatter.
// The output lines are a compatibility contract with the scripts this tool
// replaced; callers parse them, so they carry no color or decoration.
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFixed formats the success line for a rewritten file
func (f *DefaultFileFormatter) FormatFixed(path string) string {
	return fmt.Sprintf("Fixed %s", path)
}

// FormatError formats the failure line for a file that could not be rewritten
func (f *DefaultFileFormatter) FormatError(path string, err error) string {
	return fmt.Sprintf("Error fixing %s: %v", path, err)
}

// FormatDone formats the end-of-run line
func (f *DefaultFileFormatter) FormatDone() string {
	return "Done!"
}
