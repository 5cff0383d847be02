// Package inject inserts a missing field into object-literal text,
// immediately after a known sentinel field.
package inject

import (
	"fmt"
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// FieldInjector inserts `<field>: <value>,` after every occurrence of
// `<sentinel>: <anything>,` that is not already followed by the field.
type FieldInjector struct {
	sentinel string
	field    string
	value    string
	re       *regexp.Regexp
}

// New creates a FieldInjector for the given sentinel field, insertion field
// name and insertion value.
func New(sentinel, field, value string) (*FieldInjector, error) {
	if sentinel == "" {
		return nil, errors.Errorf("sentinel field name is required")
	}
	if field == "" {
		return nil, errors.Errorf("insertion field name is required")
	}
	if value == "" {
		return nil, errors.Errorf("insertion value is required")
	}

	// Matches the sentinel assignment up to and including its trailing comma,
	// the whitespace after it (which may span a line break), and the first
	// letter of the identifier that follows.
	re, err := regexp.Compile(fmt.Sprintf(`(%s:\s*[^,\n]+,)(\s*)([a-zA-Z])`, regexp.QuoteMeta(sentinel)))
	if err != nil {
		return nil, errors.Errorf("compiling sentinel pattern: %w", err)
	}

	return &FieldInjector{
		sentinel: sentinel,
		field:    field,
		value:    value,
		re:       re,
	}, nil
}

// Inject returns the content with the field inserted after each eligible
// sentinel, and the number of insertions made. The original whitespace that
// followed the sentinel is preserved and repeated before the next field.
//
// RE2 has no negative lookahead, so the skip condition is checked per match:
// insertion is suppressed when the identifier following the sentinel
// literally begins with the field name. This matches the original behavior,
// which only ever inspected that one literal prefix.
//
// TODO(dr.methodical): 🔍 the prefix check also suppresses insertion for
// fields that merely start with the target name (e.g. a hypothetical
// organisationalPressureLevel); an exact-identifier match would be stricter,
// but the coarse check is kept for parity.
func (inj *FieldInjector) Inject(content string) (string, int) {
	matches := inj.re.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, 0
	}

	var b strings.Builder
	b.Grow(len(content) + len(matches)*(len(inj.field)+len(inj.value)+4))

	last := 0
	count := 0
	for _, m := range matches {
		wsStart, wsEnd := m[4], m[5]
		identStart := m[6]

		// Skip sentinels already followed by the field.
		if strings.HasPrefix(content[identStart:], inj.field) {
			continue
		}

		ws := content[wsStart:wsEnd]
		b.WriteString(content[last:wsEnd])
		b.WriteString(inj.field)
		b.WriteString(": ")
		b.WriteString(inj.value)
		b.WriteString(",")
		b.WriteString(ws)
		last = identStart
		count++
	}
	b.WriteString(content[last:])

	return b.String(), count
}
