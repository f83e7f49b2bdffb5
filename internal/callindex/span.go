package callindex

import (
	"go/ast"
	"go/token"

	"github.com/sirkon/rbtree"
)

// callSpan stores a [start,end] token span of one indexed call expression
// and, if needed, a nested RB-tree for call spans fully contained in it.
type callSpan struct {
	start token.Pos
	end   token.Pos

	call     *ast.CallExpr
	children *rbtree.Tree[*callSpan]
}

// Cmp defines ordering for the RB-tree as "disjoint by position".
// - return -1 if this span is strictly before other (ends before other's start)
// - return  1 if this span is strictly after  other (starts after other's end)
// - return  0 if spans overlap in any way (including containment).
//
// Call expressions of a single file obey the invariant the tree relies on:
// two overlapping spans are always in strict containment, partial overlaps
// cannot come out of a syntax tree. "Equal" (0) therefore means either
// superspan or subspan, and InsertReturn hands us the overlapping node so
// the containment fix-up can be done here.
func (n *callSpan) Cmp(other *callSpan) int {
	if n.end < other.start { // strictly before
		return -1
	}
	if n.start > other.end { // strictly after
		return 1
	}
	return 0 // overlapping (containment or equal boundaries)
}

func contains(a, b *callSpan) bool {
	return a.start <= b.start && a.end >= b.end
}

// attachInto inserts span s into RB-tree t, using the following containment rules:
//   - If t has no overlapping node, s is inserted as a sibling in t.
//   - If an overlapping node r exists and s contains r, mutate r in-place to become s
//     (so the pointer already present in the tree now represents s), and then re-attach
//     the old r as a child of the new s. This avoids needing a "Replace" operation.
//   - If r contains s, recursively attach s into r.children.
func attachInto(t *rbtree.Tree[*callSpan], s *callSpan) {
	r := t.InsertReturn(s)
	if r == s {
		// Disjoint: brand new top-level entry.
		return
	}

	if contains(s, r) {
		// s is the superspan, overwrite r in-place.
		old := *r
		*r = *s

		if r.children == nil {
			r.children = rbtree.New[*callSpan]()
		}
		attachInto(r.children, &old)
		return
	}

	if contains(r, s) {
		// New span is a subspan of the existing node r, descend.
		if r.children == nil {
			r.children = rbtree.New[*callSpan]()
		}

		attachInto(r.children, s)
		return
	}

	panic("attachInto: partial-overlap spans are not supported")
}

// collectOverlapping gathers every span of t, children included, that
// overlaps the [lo,hi] probe range, in no particular order. Search only
// returns one overlapping node per lookup, so the probe range is narrowed
// around each hit and both remainders are searched again.
func collectOverlapping(t *rbtree.Tree[*callSpan], lo, hi token.Pos, out *[]*callSpan) {
	if t == nil || lo > hi {
		return
	}

	probe := &callSpan{start: lo, end: hi}
	r := t.Search(probe)
	if r == nil {
		return
	}

	*out = append(*out, r)
	collectOverlapping(r.children, lo, hi, out)
	collectOverlapping(t, lo, r.start-1, out)
	collectOverlapping(t, r.end+1, hi, out)
}
