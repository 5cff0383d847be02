package text

import (
	"context"
	"io"
)

// ReplacementRule defines a single regex substitution operation
type ReplacementRule struct {
	// Pattern is the regular expression to search for
	Pattern string

	// Replace is the replacement text, may reference capture groups ($1, $2, ...)
	Replace string

	// FileFilterGlob optionally restricts the rule to files matching the glob.
	// Empty means the rule applies to every file.
	FileFilterGlob string
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of replacements made
	ReplacementCount int

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText applies a set of replacement rules to the content, in order.
	// Each rule operates on the output of the previous one, so rule ordering
	// is part of the contract.
	ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules []ReplacementRule) error
}
