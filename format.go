package show

import (
	"strings"

	"github.com/alecthomas/repr"
	"github.com/fatih/color"
)

var (
	colorEnabled bool
	labelColor   = color.New(color.FgCyan)
)

// EnableColor toggles ANSI coloring of labels. Off by default; the color
// library itself backs off when the destination is not a terminal or
// NO_COLOR is set.
func EnableColor(on bool) {
	colorEnabled = on
}

// formatPairs renders the pairs into the single printed line. Values go
// through their Go-syntax representation: strings quoted, composites as
// typed literals, numbers bare. Long or multi-line representations are
// emitted as-is, truncating debug output helps nobody.
func formatPairs(pairs []displayPair) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteString(", ")
		}
		if colorEnabled {
			b.WriteString(labelColor.Sprint(p.label))
		} else {
			b.WriteString(p.label)
		}
		b.WriteString(" = ")
		b.WriteString(repr.String(p.value))
	}

	return b.String()
}
