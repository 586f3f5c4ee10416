package fragment

import "strings"

// Name is a resolved element or attribute name.
type Name struct {
	Space string
	Local string
}

// String renders the name in Clark notation, {space}local.
func (n Name) String() string {
	if n.Space == "" {
		return n.Local
	}
	return "{" + n.Space + "}" + n.Local
}

type Attr struct {
	Name  Name
	Value string
}

type Fragment struct {
	Name     Name
	Attrs    []Attr
	Text     string
	Children []*Fragment
	Parent   *Fragment
}

// New returns an empty element.
func New(space, local string) *Fragment {
	return &Fragment{Name: Name{Space: space, Local: local}}
}

// Leaf returns an element holding only character data.
func Leaf(space, local, text string) *Fragment {
	return &Fragment{Name: Name{Space: space, Local: local}, Text: text}
}

// Append adds children in order and sets their parent links.
func (f *Fragment) Append(children ...*Fragment) *Fragment {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.Parent = f
		f.Children = append(f.Children, c)
	}
	return f
}

func (f *Fragment) WithAttr(space, local, value string) *Fragment {
	f.Attrs = append(f.Attrs, Attr{Name: Name{Space: space, Local: local}, Value: value})
	return f
}

func (f *Fragment) WithText(text string) *Fragment {
	f.Text = text
	return f
}

// Attr returns the value of the attribute with the given name.
func (f *Fragment) Attr(n Name, m Match) (string, bool) {
	for i := range f.Attrs {
		if f.Attrs[i].Name.Matches(n, m) {
			return f.Attrs[i].Value, true
		}
	}
	return "", false
}

// IsLeaf reports whether f has no child elements.
func (f *Fragment) IsLeaf() bool {
	return len(f.Children) == 0
}

// TrimmedText returns the character data without surrounding whitespace.
func (f *Fragment) TrimmedText() string {
	return strings.TrimSpace(f.Text)
}

// Path returns the local names from the root down to f, joined by '/'.
func (f *Fragment) Path() string {
	var parts []string
	for p := f; p != nil; p = p.Parent {
		parts = append(parts, p.Name.Local)
	}
	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(parts[i])
	}
	return b.String()
}

func (f *Fragment) Clone() *Fragment {
	return f.CloneTo(&Fragment{})
}

func (f *Fragment) CloneTo(dst *Fragment) *Fragment {
	dst.Name = f.Name
	dst.Text = f.Text
	dst.Parent = f.Parent
	dst.Attrs = append([]Attr(nil), f.Attrs...)
	dst.Children = make([]*Fragment, len(f.Children))
	for i, c := range f.Children {
		cc := c.CloneTo(&Fragment{})
		cc.Parent = dst
		dst.Children[i] = cc
	}
	return dst
}
