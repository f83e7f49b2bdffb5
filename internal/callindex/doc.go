// Package callindex resolves the literal argument text of call expressions
// by line number, the primary resolution path of the show facade.
//
// A source file is read and parsed once per process and kept in a small
// cache, the Go analog of Python's linecache. For every target function
// name the package walks the file's AST, collects each matching call
// expression and attaches its [start,end] token span into a containment
// RB-tree: sibling calls are disjoint, a call written inside another call's
// argument list becomes a child span.
//
// Queries go by line because the runtime reports no column for a stack
// frame. CallsOnLine returns every indexed call whose span covers the
// line; the caller decides what more than one candidate means.
package callindex
