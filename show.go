package show

import (
	"fmt"

	"github.com/sirkon/show/internal/callsite"
)

// facadeName is what the call-site resolver looks for in the caller's
// source. Must match the exported name below.
const facadeName = "Show"

// locate is swappable to simulate resolution failures in tests.
var locate = callsite.Locate

// Show prints each argument's source text alongside its value as a single
// "label = value" line, then returns the values unchanged: the argument
// itself with exactly one, the []any of all of them with two or more.
// With no arguments it prints nothing and returns nil.
//
// Label resolution failures degrade to a placeholder label and never fail
// the call. A sink write failure panics with the wrapped error.
func Show(values ...any) any {
	if len(values) == 0 {
		return nil
	}

	var labels []string
	if cs, err := locate(facadeName, 1); err == nil {
		labels = cs.Args
	}

	line := formatPairs(pairUp(labels, values))
	if err := printer.PrintLine(line); err != nil {
		panic(fmt.Errorf("show: emit line: %w", err))
	}

	if len(values) == 1 {
		return values[0]
	}

	return values
}
