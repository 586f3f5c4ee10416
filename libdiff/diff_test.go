package libdiff

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-dfe/parse"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want []Change
	}{
		{
			name: "equal modulo whitespace",
			from: "<a><b> 1 </b><c>2</c></a>",
			to:   "<a>\n  <b>1</b>\n  <c>2</c>\n</a>",
		},
		{
			name: "text",
			from: "<a><b>1</b><c>2</c></a>",
			to:   "<a><b>1</b><c>3</c></a>",
			want: []Change{{Kind: Text, Path: "/a/c[2]", From: "2", To: "3"}},
		},
		{
			name: "insert keeps siblings aligned",
			from: "<a><b>1</b><c>2</c></a>",
			to:   "<a><x>0</x><b>1</b><c>2</c></a>",
			want: []Change{{Kind: Insert, Path: "/a/x[1]", To: "<x>0</x>"}},
		},
		{
			name: "delete",
			from: "<a><b>1</b><c>2</c></a>",
			to:   "<a><b>1</b></a>",
			want: []Change{{Kind: Delete, Path: "/a/c[2]", From: "<c>2</c>"}},
		},
		{
			name: "delete then insert is replace",
			from: "<a><b>1</b><c>2</c></a>",
			to:   "<a><b>1</b><d>2</d></a>",
			want: []Change{{Kind: Replace, Path: "/a/c[2]", From: "<c>2</c>", To: "<d>2</d>"}},
		},
		{
			name: "attributes",
			from: `<a x="1" y="2"><b/></a>`,
			to:   `<a y="3" z="4"><b/></a>`,
			want: []Change{
				{Kind: Delete, Path: "/a/@x", From: "1"},
				{Kind: Attr, Path: "/a/@y", From: "2", To: "3"},
				{Kind: Insert, Path: "/a/@z", To: "4"},
			},
		},
		{
			name: "root renamed",
			from: "<a/>",
			to:   "<b/>",
			want: []Change{{Kind: Replace, Path: "/a", From: "<a/>", To: "<b/>"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, err := parse.ParseString(tt.from)
			if err != nil {
				t.Fatal(err)
			}
			to, err := parse.ParseString(tt.to)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, Diff(from, to)); diff != "" {
				t.Errorf("Diff() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	changes := []Change{
		{Kind: Delete, Path: "/a/c[2]", From: "<c/>"},
		{Kind: Insert, Path: "/a/d[2]", To: "<d/>"},
		{Kind: Text, Path: "/a/b[1]", From: "1", To: "2"},
	}
	var buf bytes.Buffer
	if err := Write(&buf, changes, false); err != nil {
		t.Fatal(err)
	}
	want := "- /a/c[2]: <c/>\n+ /a/d[2]: <d/>\n~ /a/b[1]: 1 -> 2\n"
	if got := buf.String(); got != want {
		t.Errorf("Write() = %q, want %q", got, want)
	}
	if got := Summary(changes); got != "3 changes: 1 deleted, 1 inserted, 0 replaced, 1 text, 0 attr" {
		t.Errorf("Summary() = %q", got)
	}
}
