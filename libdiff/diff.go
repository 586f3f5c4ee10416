package libdiff

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/signadot/go-dfe/debug"
	"github.com/signadot/go-dfe/encode"
	"github.com/signadot/go-dfe/fragment"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Kind int

const (
	Delete Kind = iota
	Insert
	Replace
	Text
	Attr
)

func (k Kind) String() string {
	switch k {
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	case Replace:
		return "replace"
	case Text:
		return "text"
	case Attr:
		return "attr"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Change is one difference. From and To hold text or attribute values, or
// encoded elements for Delete, Insert and Replace. Path indexes are
// 1-based positions among siblings.
type Change struct {
	Kind Kind
	Path string
	From string
	To   string
}

// Diff returns the changes turning from into to, in document order.
func Diff(from, to *fragment.Fragment) []Change {
	var res []Change
	diffElement(&res, "/"+from.Name.Local, from, to)
	if debug.Diff() {
		debug.LogAny(res)
	}
	return res
}

func diffElement(res *[]Change, path string, from, to *fragment.Fragment) {
	if from.Name != to.Name {
		*res = append(*res, Change{Kind: Replace, Path: path, From: render(from), To: render(to)})
		return
	}
	diffAttrs(res, path, from.Attrs, to.Attrs)
	if ft, tt := from.TrimmedText(), to.TrimmedText(); ft != tt {
		*res = append(*res, Change{Kind: Text, Path: path, From: ft, To: tt})
	}
	diffChildren(res, path, from.Children, to.Children)
}

// diffChildren aligns the two child lists on their names and recurses
// into matching pairs.
func diffChildren(res *[]Change, path string, from, to []*fragment.Fragment) {
	names := map[fragment.Name]rune{}
	fromRunes := mapNames(names, from)
	toRunes := mapNames(names, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	var lastDelete = -1
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				*res = append(*res, Change{Kind: Delete, Path: childPath(path, from[fi], fi), From: render(from[fi])})
				lastDelete = len(*res) - 1
				fi++
			}
		case diffpatch.DiffEqual:
			lastDelete = -1
			for range n {
				diffElement(res, childPath(path, from[fi], fi), from[fi], to[ti])
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				if lastDelete >= 0 && lastDelete == len(*res)-1 {
					// insert after delete -> replace
					(*res)[lastDelete].Kind = Replace
					(*res)[lastDelete].To = render(to[ti])
				} else {
					*res = append(*res, Change{Kind: Insert, Path: childPath(path, to[ti], ti), To: render(to[ti])})
				}
				lastDelete = -1
				ti++
			}
		}
	}
}

func diffAttrs(res *[]Change, path string, from, to []fragment.Attr) {
	keys := make([]fragment.Name, 0, len(from)+len(to))
	fromVals := make(map[fragment.Name]string, len(from))
	toVals := make(map[fragment.Name]string, len(to))
	for _, a := range from {
		fromVals[a.Name] = a.Value
		keys = append(keys, a.Name)
	}
	for _, a := range to {
		toVals[a.Name] = a.Value
		if _, ok := fromVals[a.Name]; !ok {
			keys = append(keys, a.Name)
		}
	}
	slices.SortFunc(keys, func(a, b fragment.Name) int {
		return cmp.Or(cmp.Compare(a.Space, b.Space), cmp.Compare(a.Local, b.Local))
	})
	for _, k := range keys {
		fv, inFrom := fromVals[k]
		tv, inTo := toVals[k]
		switch {
		case !inTo:
			*res = append(*res, Change{Kind: Delete, Path: path + "/@" + k.Local, From: fv})
		case !inFrom:
			*res = append(*res, Change{Kind: Insert, Path: path + "/@" + k.Local, To: tv})
		case fv != tv:
			*res = append(*res, Change{Kind: Attr, Path: path + "/@" + k.Local, From: fv, To: tv})
		}
	}
}

func mapNames(m map[fragment.Name]rune, fs []*fragment.Fragment) []rune {
	rs := make([]rune, len(fs))
	for i, f := range fs {
		r, ok := m[f.Name]
		if !ok {
			r = rune(len(m))
			m[f.Name] = r
		}
		rs[i] = r
	}
	return rs
}

func childPath(parent string, f *fragment.Fragment, i int) string {
	return fmt.Sprintf("%s/%s[%d]", parent, f.Name.Local, i+1)
}

func render(f *fragment.Fragment) string {
	return encode.MustString(f)
}
