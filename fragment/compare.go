package fragment

import (
	"cmp"
	"slices"
	"strings"
)

// Equal reports whether a and b are the same document tree, ignoring
// insignificant whitespace around character data and attribute order.
func Equal(a, b *Fragment) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Name != b.Name {
		return false
	}
	if strings.TrimSpace(a.Text) != strings.TrimSpace(b.Text) {
		return false
	}
	if !equalAttrs(a.Attrs, b.Attrs) {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

func equalAttrs(a, b []Attr) bool {
	if len(a) != len(b) {
		return false
	}
	sa := sortedAttrs(a)
	sb := sortedAttrs(b)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

func sortedAttrs(as []Attr) []Attr {
	res := slices.Clone(as)
	slices.SortFunc(res, func(x, y Attr) int {
		if c := cmp.Compare(x.Name.Space, y.Name.Space); c != 0 {
			return c
		}
		return cmp.Compare(x.Name.Local, y.Name.Local)
	})
	return res
}
