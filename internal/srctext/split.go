package srctext

import (
	"strings"
)

// SplitArgs splits argument-list text into its top-level comma-separated
// argument expressions. Commas nested in (), [], {} or inside literals are
// content, not boundaries. Every piece comes out whitespace-normalized.
//
// Empty input yields nil. A dangling trailing comma does not produce an
// empty trailing argument.
func SplitArgs(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var (
		args  []string
		st    lexState
		start int
	)
	for i := 0; i < len(text); i++ {
		if !st.step(text[i]) {
			continue
		}
		if text[i] == ',' && st.depth == 0 {
			args = append(args, Normalize(text[start:i]))
			start = i + 1
		}
	}

	if last := Normalize(text[start:]); last != "" {
		args = append(args, last)
	}

	return args
}

// Normalize trims the text and collapses internal whitespace runs,
// newlines included, into single spaces. Multi-line call text becomes one
// logical line this way.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
