package scalar

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// CodeTable is a bidirectional mapping between domain values and the short
// codes defined by an external schema.
type CodeTable[E comparable] struct {
	name    string
	codes   map[E]string
	values  map[string]E
	ordered []string
}

func NewCodeTable[E comparable](name string, codes map[E]string) (*CodeTable[E], error) {
	values := lo.Invert(codes)
	if len(values) != len(codes) {
		dups := lo.FindDuplicates(lo.Values(codes))
		return nil, fmt.Errorf("code table %s: duplicate codes %v", name, dups)
	}
	ordered := lo.Keys(values)
	slices.Sort(ordered)
	return &CodeTable[E]{
		name:    name,
		codes:   codes,
		values:  values,
		ordered: ordered,
	}, nil
}

func MustCodeTable[E comparable](name string, codes map[E]string) *CodeTable[E] {
	t, err := NewCodeTable(name, codes)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *CodeTable[E]) Name() string { return t.name }

func (t *CodeTable[E]) Code(v E) (string, bool) {
	c, ok := t.codes[v]
	return c, ok
}

func (t *CodeTable[E]) Value(code string) (E, bool) {
	v, ok := t.values[code]
	return v, ok
}

// Codes returns the known codes in lexical order.
func (t *CodeTable[E]) Codes() []string {
	return slices.Clone(t.ordered)
}

// Code is the EnumeratedCode kind backed by a code table.
func Code[E comparable](t *CodeTable[E]) Codec[E] {
	k := Kind{Class: EnumeratedCode}
	return NewCodec(k,
		func(v E) (string, error) {
			c, ok := t.codes[v]
			if !ok {
				return "", errors.Wrapf(ErrUnknownCode, "%s: no code for %v", t.name, v)
			}
			return c, nil
		},
		func(s string, _ Options) (E, error) {
			v, ok := t.values[s]
			if !ok {
				var zero E
				return zero, errors.Wrapf(ErrUnknownCode, "%s: %q not in %v", t.name, s, t.ordered)
			}
			return v, nil
		},
		func(v E) bool {
			var zero E
			return v == zero
		},
	)
}
