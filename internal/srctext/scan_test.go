package srctext

import (
	"reflect"
	"testing"

	"github.com/sirkon/deepequal"
)

func TestArgList(t *testing.T) {
	tests := []struct {
		name string
		text string
		open int
		want string
		ok   bool
	}{
		{
			name: "simple",
			text: "Show(x + 10)",
			open: 4,
			want: "x + 10",
			ok:   true,
		},
		{
			name: "empty-args",
			text: "Show()",
			open: 4,
			want: "",
			ok:   true,
		},
		{
			name: "nested-parens",
			text: "Show(f(g(1), 2)) + tail",
			open: 4,
			want: "f(g(1), 2)",
			ok:   true,
		},
		{
			name: "paren-in-string",
			text: `Show("a)b", x)`,
			open: 4,
			want: `"a)b", x`,
			ok:   true,
		},
		{
			name: "multi-line",
			text: "Show(\n\tx + 10,\n)\nnext()",
			open: 4,
			want: "\n\tx + 10,\n",
			ok:   true,
		},
		{
			name: "unbalanced",
			text: "Show(x + 10",
			open: 4,
			ok:   false,
		},
		{
			name: "not-a-paren",
			text: "Show(x)",
			open: 0,
			ok:   false,
		},
		{
			name: "out-of-range",
			text: "Show",
			open: 10,
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ArgList(tt.text, tt.open)
			if ok != tt.ok {
				t.Fatalf("ok = %v, expected %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if got != tt.want {
				t.Fatalf("extracted %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestArgListStringContent(t *testing.T) {
	// Closers and commas inside literals must not terminate or split
	// anything.
	text := `Show("a)b", 'c', ` + "`)`" + `)`
	got, ok := ArgList(text, 4)
	if !ok {
		t.Fatal("expected the argument list to be extracted")
	}
	want := `"a)b", 'c', ` + "`)`"
	if got != want {
		t.Fatalf("extracted %q, expected %q", got, want)
	}
}

func TestCallStarts(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []int
	}{
		{
			name: "plain",
			line: "Show(x)",
			want: []int{4},
		},
		{
			name: "selector",
			line: "v := show.Show(x + 10)",
			want: []int{14},
		},
		{
			name: "space-before-paren",
			line: "Show (x)",
			want: []int{5},
		},
		{
			name: "two-on-line",
			line: "Show(a); Show(b)",
			want: []int{4, 13},
		},
		{
			name: "other-ident-prefix",
			line: "myShow(a)",
			want: nil,
		},
		{
			name: "other-ident-suffix",
			line: "Shower(a)",
			want: nil,
		},
		{
			name: "mention-without-call",
			line: "// Show prints things",
			want: nil,
		},
		{
			name: "nested-ours",
			line: "Show(Show(x))",
			want: []int{4, 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CallStarts(tt.line, "Show")
			if !reflect.DeepEqual(tt.want, got) {
				deepequal.SideBySide(t, "call starts", tt.want, got)
			}
		})
	}
}
