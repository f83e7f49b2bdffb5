// Package show prints expressions together with their values, the way
// Julia's @show macro does, and hands the values back unchanged so a call
// can sit inside a larger expression.
//
//	x := 42
//	y := show.Show(x + 10) // prints "x + 10 = 52", y holds 52
//
//	a, b := 1, 2
//	show.Show(a, b) // prints "a = 1, b = 2"
//
// The label on the left of "=" is the literal source text of the argument,
// recovered at run time from the caller's file. Calls spanning several
// physical lines collapse into one logical label; commas nested in strings
// or inner calls never split an argument in two.
//
// When the source text cannot be recovered — the file is gone, does not
// parse and resists raw scanning, or the line holds more than one Show
// invocation — the call still succeeds and still prints exactly one line,
// with the <expression> placeholder standing in for the label. A debugging
// call must never become the fault in the program it debugs; the only
// failure allowed out of Show is a sink refusing output, and that one
// leaves as a panic since the pass-through signature has no error slot.
//
// Output goes to stdout by default. Redirect it with SetOutput or plug any
// line sink with SetPrinter; EnableColor(true) renders labels in color.
package show
