package srctext

import (
	"strings"
)

// CallStarts finds invocations of the named function within one physical
// line and returns the byte offset of each invocation's opening
// parenthesis. An invocation is the name as a full identifier token,
// optionally preceded by a package selector dot, followed by "(" with
// nothing but spaces or tabs in between.
func CallStarts(line, name string) []int {
	var starts []int

	for i := 0; i+len(name) <= len(line); {
		j := strings.Index(line[i:], name)
		if j < 0 {
			break
		}
		j += i
		i = j + len(name)

		// Left boundary: "myShow(" is somebody else's function.
		if j > 0 && isIdentByte(line[j-1]) {
			continue
		}

		k := j + len(name)
		if k < len(line) && isIdentByte(line[k]) {
			// Right boundary: "Shower(" again is not ours.
			continue
		}
		for k < len(line) && (line[k] == ' ' || line[k] == '\t') {
			k++
		}
		if k < len(line) && line[k] == '(' {
			starts = append(starts, k)
		}
	}

	return starts
}

func isIdentByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_':
		return true
	case c >= 0x80:
		// Part of a multibyte identifier rune.
		return true
	}

	return false
}
