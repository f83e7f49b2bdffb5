// Package srctext reconstructs call-expression structure from raw source
// text, without parsing the host file.
//
// It is the degraded-mode counterpart of the AST-based call index: when the
// caller's file cannot be parsed (edited since build, truncated, generated
// on the fly), the facade still wants the literal argument text of its own
// invocation. The package offers three primitives for that:
//
//   - CallStarts
//     Finds invocations of a named function within a single physical line,
//     honoring identifier boundaries.
//
//   - ArgList
//     Starting from an opening parenthesis, accumulates text until the
//     bracket nesting it opened closes at depth zero, skipping the content
//     of string, char and raw-string literals. The call may span any number
//     of physical lines.
//
//   - SplitArgs
//     Splits an argument-list text into its top-level comma-separated
//     argument expressions, again literal- and bracket-aware, so a comma
//     inside "f(1, 2)" or inside a string never produces a false boundary.
//
// The scanner deliberately understands just enough syntax to balance
// brackets and to stay out of literals. It is not an expression parser and
// never will be.
package srctext
