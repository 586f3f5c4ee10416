package xmlmap

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/signadot/go-dfe/fragment"
	"github.com/signadot/go-dfe/scalar"
)

// Occurrence governs whether a field must appear in a document.
type Occurrence int

const (
	// Mandatory fields are always written and must be present on read.
	Mandatory Occurrence = iota
	// Optional fields are written unless absent: a nil pointer or
	// interface, an empty collection or empty formatted text.
	Optional
	// OmitWhenZero fields are written unless absent or equal to the zero
	// value of their kind.
	OmitWhenZero
)

func (o Occurrence) String() string {
	switch o {
	case Mandatory:
		return "mandatory"
	case Optional:
		return "optional"
	case OmitWhenZero:
		return "omitzero"
	default:
		return fmt.Sprintf("Occurrence(%d)", int(o))
	}
}

// Descriptor binds a field, or one candidate type of a polymorphic field, to
// a document node. Descriptors are values; the builder methods return
// modified copies.
type Descriptor struct {
	Tag       string
	Namespace string
	// Item is the schema item identifier, such as "N11".
	Item       string
	Format     scalar.Formatter
	MinLength  int
	MaxLength  int
	Occurrence Occurrence
	Candidate  reflect.Type
	// Attribute renders the value as an attribute of the parent element.
	Attribute bool
}

// Tag starts a mandatory descriptor for the named node.
func Tag(name string) Descriptor {
	return Descriptor{Tag: name}
}

func (d Descriptor) NS(space string) Descriptor {
	d.Namespace = space
	return d
}

func (d Descriptor) Ref(item string) Descriptor {
	d.Item = item
	return d
}

func (d Descriptor) As(f scalar.Formatter) Descriptor {
	d.Format = f
	return d
}

// Len bounds the length of the formatted text. Zero means unbounded.
func (d Descriptor) Len(min, max int) Descriptor {
	d.MinLength, d.MaxLength = min, max
	return d
}

func (d Descriptor) Optional() Descriptor {
	d.Occurrence = Optional
	return d
}

func (d Descriptor) OmitZero() Descriptor {
	d.Occurrence = OmitWhenZero
	return d
}

// For marks the descriptor as the candidate for the dynamic type of sample.
// Use a typed nil pointer for candidates with pointer receivers.
func (d Descriptor) For(sample any) Descriptor {
	d.Candidate = reflect.TypeOf(sample)
	return d
}

func (d Descriptor) Attr() Descriptor {
	d.Attribute = true
	return d
}

// Name is the node name under a parent in namespace space. Elements without
// their own namespace inherit the parent's; attributes never do.
func (d Descriptor) Name(space string) fragment.Name {
	if d.Namespace != "" || d.Attribute {
		return fragment.Name{Space: d.Namespace, Local: d.Tag}
	}
	return fragment.Name{Space: space, Local: d.Tag}
}

func (d Descriptor) kind() string {
	if d.Format == nil {
		return ""
	}
	return d.Format.Kind().String()
}

func (d Descriptor) String() string {
	var b strings.Builder
	if d.Attribute {
		b.WriteByte('@')
	}
	b.WriteString(d.Tag)
	if d.Item != "" {
		fmt.Fprintf(&b, "[%s]", d.Item)
	}
	if d.Format != nil {
		fmt.Fprintf(&b, " %s", d.Format.Kind())
	}
	if d.Candidate != nil {
		fmt.Fprintf(&b, " for %s", d.Candidate)
	}
	if d.Occurrence != Mandatory {
		fmt.Fprintf(&b, " %s", d.Occurrence)
	}
	return b.String()
}
