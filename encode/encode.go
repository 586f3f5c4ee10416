package encode

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/signadot/go-dfe/fragment"
)

const xmlDecl = `<?xml version="1.0" encoding="UTF-8"?>`

type EncState struct {
	indent    string
	decl      bool
	selfClose bool
	Color     func(ColorAttr, string) string

	w        *bufio.Writer
	prefixes map[string]string
	spaces   map[string]string
}

func Encode(f *fragment.Fragment, w io.Writer, opts ...EncodeOption) error {
	if f == nil {
		return fmt.Errorf("encode: nil fragment")
	}
	es := &EncState{selfClose: true, prefixes: map[string]string{}, spaces: map[string]string{}}
	for _, opt := range opts {
		opt(es)
	}
	es.w = bufio.NewWriter(w)
	if es.decl {
		es.punct(xmlDecl)
		if es.indent != "" {
			es.w.WriteByte('\n')
		}
	}
	if err := es.element(f, "", 0); err != nil {
		return err
	}
	if es.indent != "" {
		es.w.WriteByte('\n')
	}
	return es.w.Flush()
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

func (es *EncState) punct(s string) {
	es.w.WriteString(es.color(PunctColor, s))
}

func (es *EncState) newline(depth int) {
	if es.indent == "" {
		return
	}
	es.w.WriteByte('\n')
	es.w.WriteString(strings.Repeat(es.indent, depth))
}

func (es *EncState) element(f *fragment.Fragment, parentSpace string, depth int) error {
	if f.Name.Local == "" {
		return fmt.Errorf("encode: element with empty name under %q", parentSpace)
	}
	es.punct("<")
	es.w.WriteString(es.color(TagColor, f.Name.Local))
	if f.Name.Space != parentSpace {
		es.attr("xmlns", f.Name.Space, NamespaceColor)
	}
	var decls []string
	for _, a := range f.Attrs {
		name := a.Name.Local
		if a.Name.Space != "" {
			p := es.prefix(a.Name.Space)
			if p != "xml" && !slices.Contains(decls, p) {
				decls = append(decls, p)
			}
			name = p + ":" + name
		}
		es.attr(name, a.Value, AttrValueColor)
	}
	for _, p := range decls {
		es.attr("xmlns:"+p, es.spaces[p], NamespaceColor)
	}
	if len(f.Children) == 0 && f.Text == "" && es.selfClose {
		es.punct("/>")
		return nil
	}
	es.punct(">")
	if f.Text != "" {
		var sb strings.Builder
		if err := xml.EscapeText(&sb, []byte(f.Text)); err != nil {
			return err
		}
		es.w.WriteString(es.color(TextColor, sb.String()))
	}
	for _, c := range f.Children {
		es.newline(depth + 1)
		if err := es.element(c, f.Name.Space, depth+1); err != nil {
			return err
		}
	}
	if len(f.Children) != 0 {
		es.newline(depth)
	}
	es.punct("</")
	es.w.WriteString(es.color(TagColor, f.Name.Local))
	es.punct(">")
	return nil
}

func (es *EncState) attr(name, value string, valueColor ColorAttr) {
	var sb strings.Builder
	xml.EscapeText(&sb, []byte(value))
	es.w.WriteByte(' ')
	es.w.WriteString(es.color(AttrNameColor, name))
	es.punct(`="`)
	es.w.WriteString(es.color(valueColor, sb.String()))
	es.punct(`"`)
}

// prefix returns the prefix bound to space. Bindings are stable for the whole
// document and declared on every element that uses them.
func (es *EncState) prefix(space string) string {
	if p, ok := es.prefixes[space]; ok {
		return p
	}
	p := knownPrefix(space)
	if p == "" {
		p = fmt.Sprintf("ns%d", len(es.prefixes)+1)
	}
	es.prefixes[space] = p
	es.spaces[p] = space
	return p
}

func knownPrefix(space string) string {
	switch space {
	case "http://www.w3.org/2001/XMLSchema-instance":
		return "xsi"
	case "http://www.w3.org/2000/09/xmldsig#":
		return "ds"
	case "http://www.w3.org/XML/1998/namespace":
		return "xml"
	}
	return ""
}
