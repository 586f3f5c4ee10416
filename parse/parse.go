package parse

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/go-dfe/fragment"
)

var (
	ErrNoRoot        = errors.New("parse: no root element")
	ErrMultipleRoots = errors.New("parse: multiple root elements")
	ErrTooDeep       = errors.New("parse: maximum depth exceeded")
)

// Parse parses a single XML document into a fragment tree.
func Parse(data []byte, opts ...ParseOption) (*fragment.Fragment, error) {
	return ParseReader(bytes.NewReader(data), opts...)
}

func ParseString(s string, opts ...ParseOption) (*fragment.Fragment, error) {
	return ParseReader(strings.NewReader(s), opts...)
}

func ParseReader(r io.Reader, opts ...ParseOption) (*fragment.Fragment, error) {
	o := newParseOpts(opts...)
	dec := xml.NewDecoder(r)
	dec.Strict = o.strict

	var (
		root  *fragment.Fragment
		stack []*fragment.Fragment
		texts []*strings.Builder
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			line, col := dec.InputPos()
			return nil, fmt.Errorf("parse: %d:%d: %w", line, col, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 && root != nil {
				return nil, ErrMultipleRoots
			}
			if o.maxDepth > 0 && len(stack) >= o.maxDepth {
				return nil, fmt.Errorf("%w: %d", ErrTooDeep, o.maxDepth)
			}
			f := fragment.New(t.Name.Space, t.Name.Local)
			for _, a := range t.Attr {
				if isNamespaceDecl(a.Name) {
					continue
				}
				f.WithAttr(a.Name.Space, a.Name.Local, a.Value)
			}
			if len(stack) == 0 {
				root = f
			} else {
				stack[len(stack)-1].Append(f)
			}
			stack = append(stack, f)
			texts = append(texts, &strings.Builder{})
		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) != 0 {
					return nil, fmt.Errorf("parse: character data outside root element")
				}
				continue
			}
			texts[len(texts)-1].Write(t)
		case xml.EndElement:
			f := stack[len(stack)-1]
			text := texts[len(texts)-1].String()
			if !o.keepSpace {
				text = strings.TrimSpace(text)
			}
			f.Text = text
			stack = stack[:len(stack)-1]
			texts = texts[:len(texts)-1]
		}
	}
	if root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}

func isNamespaceDecl(n xml.Name) bool {
	return n.Space == "xmlns" || (n.Space == "" && n.Local == "xmlns")
}
