package srctext

// lexState tracks the minimal lexical context needed to tell structural
// characters from literal content while scanning source text left to right.
type lexState struct {
	depth   int
	quote   byte // 0 outside literals, otherwise ', " or `
	escaped bool
}

// step consumes one byte and reports whether it is structural, that is,
// seen outside any string/char literal. Bracket depth is maintained as a
// side effect. Multibyte runes are safe to feed byte by byte: UTF-8
// continuation bytes never collide with ASCII punctuation.
func (s *lexState) step(c byte) bool {
	if s.quote != 0 {
		switch {
		case s.escaped:
			s.escaped = false
		case c == '\\' && s.quote != '`':
			s.escaped = true
		case c == s.quote:
			s.quote = 0
		}
		return false
	}

	switch c {
	case '\'', '"', '`':
		s.quote = c
	case '(', '[', '{':
		s.depth++
	case ')', ']', '}':
		s.depth--
	}

	return true
}

// ArgList extracts the argument-list text of a call: the substring strictly
// between the parenthesis at text[open] and its matching closer. The text
// normally holds every physical line from the call's first line to the end
// of the file, so multi-line invocations balance naturally.
//
// Reports false when text[open] is not a parenthesis or the file ends
// before the nesting closes.
func ArgList(text string, open int) (string, bool) {
	if open < 0 || open >= len(text) || text[open] != '(' {
		return "", false
	}

	var st lexState
	for i := open; i < len(text); i++ {
		if !st.step(text[i]) {
			continue
		}
		if st.depth == 0 {
			// The closer matching text[open] itself.
			return text[open+1 : i], true
		}
	}

	return "", false
}
