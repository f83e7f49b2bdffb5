package callindex

import (
	"go/ast"
	"go/parser"
	"go/token"
	"sync"

	"github.com/sirkon/rbtree"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/show/internal/srctext"
)

// Call is one indexed invocation with the literal source text of its
// arguments, each one whitespace-normalized into a single logical line.
type Call struct {
	StartLine int
	EndLine   int
	Args      []string
}

// File is a parsed source file ready to answer call-by-line queries.
// Parse failure is not fatal here: the raw content stays available for the
// text-scanning fallback.
type File struct {
	src []byte

	fset *token.FileSet
	file *ast.File // nil when parsing failed

	mu    sync.Mutex
	names map[string]*rbtree.Tree[*callSpan]
}

func newFile(path string, src []byte) *File {
	f := &File{
		src:   src,
		fset:  token.NewFileSet(),
		names: make(map[string]*rbtree.Tree[*callSpan]),
	}

	parsed, err := parser.ParseFile(f.fset, path, src, 0)
	if err != nil {
		return f
	}
	f.file = parsed

	return f
}

// Src exposes the raw file content for degraded-mode scanning.
func (f *File) Src() []byte {
	return f.src
}

// Parsed reports whether AST-based resolution is available for the file.
func (f *File) Parsed() bool {
	return f.file != nil
}

// CallsOnLine returns every indexed invocation of the named function whose
// span covers the given 1-based line. Multi-line calls match on any of
// their lines. The result is empty both for a line with no such calls and
// for a file that did not parse.
func (f *File) CallsOnLine(name string, line int) []Call {
	if f.file == nil {
		return nil
	}

	tf := f.fset.File(f.file.Pos())
	if tf == nil || line < 1 || line > tf.LineCount() {
		return nil
	}

	lo := tf.LineStart(line)
	hi := tf.Pos(tf.Size())
	if line < tf.LineCount() {
		hi = tf.LineStart(line+1) - 1
	}

	var spans []*callSpan
	collectOverlapping(f.index(name), lo, hi, &spans)
	if len(spans) == 0 {
		return nil
	}

	calls := make([]Call, 0, len(spans))
	for _, s := range spans {
		calls = append(calls, f.describe(s.call))
	}

	return calls
}

// index builds the containment span tree of the named function's calls on
// first use and caches it for the rest of the process lifetime.
func (f *File) index(name string) *rbtree.Tree[*callSpan] {
	f.mu.Lock()
	defer f.mu.Unlock()

	if tree, ok := f.names[name]; ok {
		return tree
	}

	tree := rbtree.New[*callSpan]()

	pector := inspector.New([]*ast.File{f.file})
	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}
	pector.Preorder(nodeFilter, func(node ast.Node) {
		call := node.(*ast.CallExpr) // No need to assert check since we only get call exprs.

		if calleeName(call) != name {
			return
		}

		attachInto(tree, &callSpan{
			start: call.Pos(),
			end:   call.End(),
			call:  call,
		})
	})

	f.names[name] = tree

	return tree
}

// describe slices per-argument source text out of the file content by
// token offsets.
func (f *File) describe(call *ast.CallExpr) Call {
	tf := f.fset.File(call.Pos())

	res := Call{
		StartLine: tf.Line(call.Pos()),
		EndLine:   tf.Line(call.End()),
	}
	for _, arg := range call.Args {
		from := tf.Offset(arg.Pos())
		to := tf.Offset(arg.End())
		res.Args = append(res.Args, srctext.Normalize(string(f.src[from:to])))
	}

	return res
}

// calleeName extracts the function name from a call expression: the final
// identifier both for plain calls and for package-qualified ones.
func calleeName(call *ast.CallExpr) string {
	switch fn := call.Fun.(type) {
	case *ast.Ident:
		return fn.Name
	case *ast.SelectorExpr:
		return fn.Sel.Name
	}

	return ""
}
