package callsite

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/sirkon/show/internal/callindex"
	"github.com/sirkon/show/internal/srctext"
)

var (
	// ErrSourceUnavailable means the invocation text cannot be read at all:
	// no frame, no file on disk, or a call that is nowhere to be found in it.
	ErrSourceUnavailable = errors.New("call source is unavailable")

	// ErrAmbiguousCall means more than one candidate invocation matches the
	// resolved line. Guessing between them would attach wrong labels, so
	// nobody tries.
	ErrAmbiguousCall = errors.New("ambiguous call site")
)

// CallSite is the resolved invocation: where it was written and the exact
// source text of each argument expression, in order.
type CallSite struct {
	File string
	Line int
	Args []string
}

// Locate resolves the invocation of the named function skip frames up the
// stack. Like with runtime.Caller, skip 0 identifies the caller of Locate
// itself.
func Locate(name string, skip int) (*CallSite, error) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok || file == "" {
		return nil, ErrSourceUnavailable
	}

	f, err := callindex.Load(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceUnavailable, err)
	}

	if f.Parsed() {
		calls := f.CallsOnLine(name, line)
		if len(calls) > 1 {
			return nil, ErrAmbiguousCall
		}
		if len(calls) == 1 {
			return &CallSite{File: file, Line: line, Args: calls[0].Args}, nil
		}
		// No indexed call covers the line. Unusual, yet the raw scan below
		// still has a chance, e.g. when the on-disk file drifted from the
		// built binary just a little.
	}

	return scanSource(f, name, file, line)
}

// scanSource is the degraded path: isolate the invocation in raw text with
// the bracket-aware scanner, then split its argument list.
func scanSource(f *callindex.File, name, file string, line int) (*CallSite, error) {
	lines := strings.Split(string(f.Src()), "\n")
	if line < 1 || line > len(lines) {
		return nil, ErrSourceUnavailable
	}

	starts := srctext.CallStarts(lines[line-1], name)
	switch {
	case len(starts) == 0:
		return nil, ErrSourceUnavailable
	case len(starts) > 1:
		return nil, ErrAmbiguousCall
	}

	tail := strings.Join(lines[line-1:], "\n")
	argText, ok := srctext.ArgList(tail, starts[0])
	if !ok {
		return nil, ErrSourceUnavailable
	}

	return &CallSite{
		File: file,
		Line: line,
		Args: srctext.SplitArgs(argText),
	}, nil
}
