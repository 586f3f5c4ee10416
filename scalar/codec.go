package scalar

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

// Formatter is the type-erased view of a Codec.
type Formatter interface {
	Kind() Kind
	Type() reflect.Type
	FormatAny(v any) (string, error)
	ParseAny(text string, o Options) (any, error)
	IsZeroAny(v any) bool
}

// Codec formats and parses values of type V for one Kind.
type Codec[V any] struct {
	kind   Kind
	format func(V) (string, error)
	parse  func(string, Options) (V, error)
	zero   func(V) bool
}

var _ Formatter = Codec[string]{}

// NewCodec builds a codec from its parts. zero may be nil, in which case no
// value is considered zero.
func NewCodec[V any](k Kind, format func(V) (string, error), parse func(string, Options) (V, error), zero func(V) bool) Codec[V] {
	if zero == nil {
		zero = func(V) bool { return false }
	}
	return Codec[V]{kind: k, format: format, parse: parse, zero: zero}
}

func (c Codec[V]) Kind() Kind { return c.kind }

func (c Codec[V]) Type() reflect.Type { return reflect.TypeFor[V]() }

func (c Codec[V]) Format(v V) (string, error) { return c.format(v) }

func (c Codec[V]) Parse(text string, o Options) (V, error) { return c.parse(text, o) }

func (c Codec[V]) IsZero(v V) bool { return c.zero(v) }

func (c Codec[V]) FormatAny(v any) (string, error) {
	tv, ok := v.(V)
	if !ok {
		return "", errors.Wrapf(ErrFormatMismatch, "%s: value of type %T, want %s", c.kind, v, c.Type())
	}
	return c.format(tv)
}

func (c Codec[V]) ParseAny(text string, o Options) (any, error) {
	v, err := c.parse(text, o)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (c Codec[V]) IsZeroAny(v any) bool {
	tv, ok := v.(V)
	if !ok {
		return v == nil
	}
	return c.zero(tv)
}
