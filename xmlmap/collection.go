package xmlmap

import (
	"fmt"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/signadot/go-dfe/fragment"
)

// serializeCollection writes one element per item, in order.
func (m *Mapper) serializeCollection(dst *fragment.Fragment, f *Field, items []any, path string) error {
	d := &f.Descriptors[0]
	return m.serializeItems(dst, f, d, items, path+"/"+d.Tag, f.Elem.Kind() == reflect.Interface)
}

// serializeItems writes items as elements described by d. resolve picks each
// item's descriptor from its dynamic type.
func (m *Mapper) serializeItems(dst *fragment.Fragment, f *Field, d *Descriptor, items []any, at string, resolve bool) error {
	if len(items) == 0 {
		if d.Occurrence == Mandatory {
			return dataErr(at, f, d, errors.Wrapf(ErrMissingMandatoryField, "%s is empty", f.qualified()))
		}
		return nil
	}
	if err := homogeneous(items); err != nil {
		return dataErr(at, f, d, err)
	}
	for i, item := range items {
		ed := d
		if resolve {
			var err error
			if ed, err = resolveCandidate(f, item); err != nil {
				return dataErr(at, f, d, err)
			}
		}
		if err := m.serializeValue(dst, f, ed, item, fmt.Sprintf("%s[%d]", at, i+1), false); err != nil {
			return err
		}
	}
	return nil
}

// deserializeCollection reads every unclaimed child matching f, in document
// order, into a buffer for Field.assign.
func (m *Mapper) deserializeCollection(src *fragment.Fragment, f *Field, claimed []bool) (any, bool, error) {
	d := &f.Descriptors[0]
	idxs := lo.Filter(src.Indexes(d.Name(src.Name.Space), m.opts.match()), func(i, _ int) bool {
		return !claimed[i]
	})
	if len(idxs) == 0 {
		return m.absent(src, f)
	}
	buf := make([]any, 0, len(idxs))
	for _, i := range idxs {
		claimed[i] = true
		v, err := m.deserializeValue(src.Children[i], f, d)
		if err != nil {
			return nil, false, err
		}
		buf = append(buf, v)
	}
	return buf, true, nil
}

func homogeneous(items []any) error {
	if i := lo.IndexOf(lo.Map(items, func(v any, _ int) bool { return isNil(v) }), true); i >= 0 {
		return errors.Wrapf(ErrUnsupportedElementType, "nil element %d", i+1)
	}
	types := lo.Uniq(lo.Map(items, func(v any, _ int) reflect.Type { return reflect.TypeOf(v) }))
	if len(types) > 1 {
		return errors.Wrapf(ErrUnsupportedElementType, "mixed element types %v", types)
	}
	return nil
}
