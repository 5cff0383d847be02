package text

import (
	"context"
	"io"
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// RegexReplacer implements TextReplacer using ordered regular-expression
// substitution. Every non-overlapping occurrence of each pattern is replaced,
// not just the first.
type RegexReplacer struct{}

// NewRegexReplacer creates a new RegexReplacer
func NewRegexReplacer() *RegexReplacer {
	return &RegexReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *RegexReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	// Apply each rule in order. Later rules see the output of earlier rules,
	// so a rule whose pattern is a substring of an earlier rule's pattern
	// never fires inside text the earlier rule already consumed.
	currentContent := string(originalContent)
	for _, rule := range rules {
		if rule.Pattern == "" {
			continue
		}

		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, errors.Errorf("compiling pattern %q: %w", rule.Pattern, err)
		}

		newContent := re.ReplaceAllString(currentContent, rule.Replace)

		if newContent != currentContent {
			result.WasModified = true
			result.ReplacementCount += len(re.FindAllStringIndex(currentContent, -1))
		}

		currentContent = newContent
	}

	result.ModifiedContent = []byte(currentContent)
	return result, nil
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *RegexReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.Pattern == "" {
			return errors.Errorf("rule %d: pattern is required", i)
		}
		if _, err := regexp.Compile(rule.Pattern); err != nil {
			return errors.Errorf("rule %d: invalid pattern %q: %w", i, rule.Pattern, err)
		}
	}
	return nil
}
