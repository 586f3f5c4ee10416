package xmlmap

import (
	"fmt"
	"reflect"
)

// Class is how a field maps onto the document.
type Class int

const (
	Scalar Class = iota
	ComplexObject
	PolymorphicInterface
	Collection
)

func (c Class) String() string {
	switch c {
	case Scalar:
		return "scalar"
	case ComplexObject:
		return "object"
	case PolymorphicInterface:
		return "polymorphic"
	case Collection:
		return "collection"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Classify maps a declared type to its class. impls is the number of
// registered models implementing t when t is an interface.
func Classify(t reflect.Type, descs []Descriptor, impls int) Class {
	switch {
	case t.Kind() == reflect.Slice, t.Kind() == reflect.Array, isSeq(t):
		return Collection
	case t.Kind() == reflect.Interface && (len(descs) >= 2 || impls >= 2):
		return PolymorphicInterface
	case len(descs) > 0 && descs[0].Format != nil:
		return Scalar
	}
	return ComplexObject
}

// isSeq reports whether t has the shape of iter.Seq[E].
func isSeq(t reflect.Type) bool {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	yield := t.In(0)
	return yield.Kind() == reflect.Func && yield.NumIn() == 1 &&
		yield.NumOut() == 1 && yield.Out(0).Kind() == reflect.Bool
}
