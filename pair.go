package show

// placeholder stands in for an argument whose source text could not be
// resolved.
const placeholder = "<expression>"

// displayPair is one "label = value" unit of the printed line.
type displayPair struct {
	label string
	value any
}

// pairUp aligns labels with values by position. The values dictate the
// length: missing or empty labels turn into placeholders, surplus labels
// are dropped. Mismatches come from degraded resolution or from syntax
// forms the raw scanner miscounts, and neither is worth failing over.
func pairUp(labels []string, values []any) []displayPair {
	pairs := make([]displayPair, len(values))
	for i, v := range values {
		label := placeholder
		if i < len(labels) && labels[i] != "" {
			label = labels[i]
		}
		pairs[i] = displayPair{
			label: label,
			value: v,
		}
	}

	return pairs
}
