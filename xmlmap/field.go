package xmlmap

import (
	"iter"
	"reflect"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

type fieldShape int

const (
	shapeOne fieldShape = iota
	shapeSlice
	shapeArray
	shapeSeq
)

// Field is a named accessor into a model type together with the descriptors
// that map it. Fields are built with Elem, Slice, Array and Seq.
type Field struct {
	Name string
	// Declared is the Go type of the field.
	Declared reflect.Type
	// Elem is the element type of collections and Declared otherwise.
	Elem        reflect.Type
	Descriptors []Descriptor

	shape     fieldShape
	owner     reflect.Type
	model     string
	class     Class
	elemClass Class

	get    func(obj any) any
	set    func(obj, v any) error
	getAll func(obj any) []any
	setAll func(obj any, vs []any) error
}

// Elem maps a single value of type V reached through ref.
func Elem[T, V any](name string, ref func(*T) *V, descs ...Descriptor) *Field {
	vt := reflect.TypeFor[V]()
	return &Field{
		Name:        name,
		Declared:    vt,
		Elem:        vt,
		Descriptors: descs,
		shape:       shapeOne,
		owner:       reflect.TypeFor[T](),
		get:         func(obj any) any { return *ref(obj.(*T)) },
		set: func(obj, v any) error {
			x, err := coerce[V](v)
			if err != nil {
				return err
			}
			*ref(obj.(*T)) = x
			return nil
		},
	}
}

// Slice maps a repeated node onto a []E.
func Slice[T, E any](name string, ref func(*T) *[]E, descs ...Descriptor) *Field {
	return &Field{
		Name:        name,
		Declared:    reflect.TypeFor[[]E](),
		Elem:        reflect.TypeFor[E](),
		Descriptors: descs,
		shape:       shapeSlice,
		owner:       reflect.TypeFor[T](),
		getAll:      func(obj any) []any { return lo.ToAnySlice(*ref(obj.(*T))) },
		setAll: func(obj any, vs []any) error {
			es, err := coerceAll[E](vs)
			if err != nil {
				return err
			}
			*ref(obj.(*T)) = es
			return nil
		},
	}
}

// Array maps a repeated node onto a fixed-size array. ref returns the array
// as a slice, as in func(p *T) []E { return p.Arr[:] }.
func Array[T, E any](name string, ref func(*T) []E, descs ...Descriptor) *Field {
	n := len(ref(new(T)))
	return &Field{
		Name:        name,
		Declared:    reflect.ArrayOf(n, reflect.TypeFor[E]()),
		Elem:        reflect.TypeFor[E](),
		Descriptors: descs,
		shape:       shapeArray,
		owner:       reflect.TypeFor[T](),
		getAll:      func(obj any) []any { return lo.ToAnySlice(ref(obj.(*T))) },
		setAll: func(obj any, vs []any) error {
			dst := ref(obj.(*T))
			if len(vs) != len(dst) {
				return errors.Wrapf(ErrElementCount, "got %d elements, want %d", len(vs), len(dst))
			}
			es, err := coerceAll[E](vs)
			if err != nil {
				return err
			}
			copy(dst, es)
			return nil
		},
	}
}

// Seq maps a repeated node onto a lazy sequence.
func Seq[T, E any](name string, ref func(*T) *iter.Seq[E], descs ...Descriptor) *Field {
	return &Field{
		Name:        name,
		Declared:    reflect.TypeFor[iter.Seq[E]](),
		Elem:        reflect.TypeFor[E](),
		Descriptors: descs,
		shape:       shapeSeq,
		owner:       reflect.TypeFor[T](),
		getAll: func(obj any) []any {
			seq := *ref(obj.(*T))
			if seq == nil {
				return nil
			}
			return lo.ToAnySlice(slices.Collect(seq))
		},
		setAll: func(obj any, vs []any) error {
			es, err := coerceAll[E](vs)
			if err != nil {
				return err
			}
			*ref(obj.(*T)) = slices.Values(es)
			return nil
		},
	}
}

// Class is the classification computed when the owning model was built.
func (f *Field) Class() Class { return f.class }

// ElemClass is the class of each element of a collection field.
func (f *Field) ElemClass() Class { return f.elemClass }

func (f *Field) qualified() string {
	if f.model == "" {
		return f.Name
	}
	return f.model + "." + f.Name
}

func (f *Field) mandatory() bool {
	return lo.ContainsBy(f.Descriptors, func(d Descriptor) bool { return d.Occurrence == Mandatory })
}

func (f *Field) isCollection() bool {
	return f.shape != shapeOne
}

// assign stores v, a single value or a []any buffer for collections.
func (f *Field) assign(obj, v any) error {
	if f.isCollection() {
		vs, _ := v.([]any)
		return f.setAll(obj, vs)
	}
	return f.set(obj, v)
}

func coerceAll[E any](vs []any) ([]E, error) {
	es := make([]E, len(vs))
	for i, v := range vs {
		e, err := coerce[E](v)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		es[i] = e
	}
	return es, nil
}

// coerce adapts a decoded value to V, dereferencing or taking the address
// of it as needed.
func coerce[V any](x any) (V, error) {
	var zero V
	if v, ok := x.(V); ok {
		return v, nil
	}
	if x == nil {
		return zero, nil
	}
	want := reflect.TypeFor[V]()
	rv := reflect.ValueOf(x)
	switch {
	case rv.Kind() == reflect.Pointer && rv.Type().Elem().AssignableTo(want):
		if rv.IsNil() {
			return zero, nil
		}
		out := reflect.New(want).Elem()
		out.Set(rv.Elem())
		return out.Interface().(V), nil
	case want.Kind() == reflect.Pointer && rv.Type().AssignableTo(want.Elem()):
		p := reflect.New(want.Elem())
		p.Elem().Set(rv)
		return p.Interface().(V), nil
	}
	return zero, errors.Wrapf(ErrUnsupportedElementType, "cannot use %T as %s", x, want)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// addressable returns a pointer to v's value, copying structs passed by
// value so that field accessors can take their address.
func addressable(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		return v
	}
	p := reflect.New(rv.Type())
	p.Elem().Set(rv)
	return p.Interface()
}

func indirect(t reflect.Type) reflect.Type {
	if t != nil && t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}
