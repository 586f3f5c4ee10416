package xmlmap

import (
	"reflect"

	"github.com/samber/lo"
)

// Def is an unbuilt model definition. Its fields are constructed when the
// model is first used.
type Def[T any] struct {
	name   string
	root   *Descriptor
	fields func() []*Field
	newFn  func() *T
}

// Define declares model T. fields is called once per registry, when T is
// first needed.
func Define[T any](name string, fields func() []*Field) *Def[T] {
	return &Def[T]{name: name, fields: fields}
}

// Root makes T a document root with the given element.
func (d *Def[T]) Root(desc Descriptor) *Def[T] {
	d.root = &desc
	return d
}

// New sets the factory used for fresh instances on read, for models whose
// zero value is not a valid starting point.
func (d *Def[T]) New(fn func() *T) *Def[T] {
	d.newFn = fn
	return d
}

func (d *Def[T]) definition() *definition {
	newFn := func() any { return new(T) }
	if d.newFn != nil {
		newFn = func() any { return d.newFn() }
	}
	return &definition{
		name:   d.name,
		typ:    reflect.TypeFor[T](),
		root:   d.root,
		fields: d.fields,
		newFn:  newFn,
	}
}

// Definer is implemented by *Def[T].
type Definer interface {
	definition() *definition
}

type definition struct {
	name   string
	typ    reflect.Type
	root   *Descriptor
	fields func() []*Field
	newFn  func() any
}

// Model is a built definition.
type Model struct {
	Name   string
	Type   reflect.Type
	Root   *Descriptor
	Fields []*Field

	newFn func() any
}

// New returns a pointer to a fresh instance.
func (m *Model) New() any {
	return m.newFn()
}

func (m *Model) Field(name string) *Field {
	for _, f := range m.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

type tableRow struct {
	Field       string   `json:"field"`
	Class       string   `json:"class"`
	Descriptors []string `json:"descriptors"`
}

// table is the descriptor table of m, for tracing.
func (m *Model) table() []tableRow {
	return lo.Map(m.Fields, func(f *Field, _ int) tableRow {
		return tableRow{
			Field:       f.qualified(),
			Class:       f.class.String(),
			Descriptors: lo.Map(f.Descriptors, func(d Descriptor, _ int) string { return d.String() }),
		}
	})
}
