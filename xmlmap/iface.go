package xmlmap

import (
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/signadot/go-dfe/debug"
	"github.com/signadot/go-dfe/fragment"
)

// SerializeField appends the nodes for field f of parent to dst: child
// elements, or an attribute of dst for attribute fields. Elements without a
// namespace of their own inherit dst's.
// f is resolved through the mapper's registry, so it may be the built field
// or a fresh one with the same owner and name.
func (m *Mapper) SerializeField(dst *fragment.Fragment, f *Field, parent any) error {
	bf, err := m.builtField(f)
	if err != nil {
		return err
	}
	if isNil(parent) || indirect(reflect.TypeOf(parent)) != bf.owner {
		return &Error{
			Category: Data,
			Path:     dst.Path(),
			Field:    bf.qualified(),
			Err:      errors.Wrapf(ErrUnsupportedElementType, "parent %T, want %s", parent, bf.owner),
		}
	}
	return m.serializeField(dst, bf, addressable(parent), dst.Path())
}

// DeserializeField reads field f from the children or attributes of src. It
// reports false when the field is absent, which is an error for mandatory
// fields.
func (m *Mapper) DeserializeField(src *fragment.Fragment, f *Field) (any, bool, error) {
	bf, err := m.builtField(f)
	if err != nil {
		return nil, false, err
	}
	return m.deserializeField(src, bf, make([]bool, len(src.Children)))
}

// builtField returns the registry's classified copy of f.
func (m *Mapper) builtField(f *Field) (*Field, error) {
	if f == nil || f.owner == nil {
		return nil, &Error{Category: Configuration, Err: errors.Wrap(ErrInvalidDescriptor, "field was not made by Elem, Slice, Array or Seq")}
	}
	model, err := m.reg.Model(f.owner)
	if err != nil {
		return nil, err
	}
	if bf := model.Field(f.Name); bf != nil {
		return bf, nil
	}
	return nil, configErr(model.Name, f, errors.Wrapf(ErrInvalidDescriptor, "model %s has no field %s", model.Name, f.Name))
}

func (m *Mapper) serializeField(dst *fragment.Fragment, f *Field, obj any, path string) error {
	if debug.Map() {
		debug.LogAny(map[string]string{"op": "write", "field": f.qualified(), "path": path})
	}
	if f.class == Collection {
		return m.serializeCollection(dst, f, f.getAll(obj), path)
	}
	d := &f.Descriptors[0]
	v := f.get(obj)
	if isNil(v) {
		if f.mandatory() {
			return dataErr(path+"/"+tags(f), f, d, errors.Wrapf(ErrMissingMandatoryField, "%s is nil", f.qualified()))
		}
		return nil
	}
	if f.Elem.Kind() == reflect.Interface {
		var err error
		if d, err = resolveCandidate(f, v); err != nil {
			return dataErr(path+"/"+tags(f), f, nil, err)
		}
	}
	if isList(d.Candidate) {
		return m.serializeItems(dst, f, d, listItems(v), path+"/"+d.Tag, false)
	}
	return m.serializeValue(dst, f, d, v, path+"/"+d.Tag, true)
}

func (m *Mapper) deserializeField(src *fragment.Fragment, f *Field, claimed []bool) (any, bool, error) {
	if debug.Map() {
		debug.LogAny(map[string]string{"op": "read", "field": f.qualified(), "path": src.Path()})
	}
	if f.class == Collection {
		return m.deserializeCollection(src, f, claimed)
	}
	if d := &f.Descriptors[0]; d.Attribute {
		text, ok := src.Attr(d.Name(src.Name.Space), m.opts.match())
		if !ok {
			return m.absent(src, f)
		}
		v, err := m.parseScalar(d, text)
		if err != nil {
			return nil, false, dataErr(src.Path()+"/@"+d.Tag, f, d, err)
		}
		return v, true, nil
	}
	type hit struct {
		d   *Descriptor
		idx int
	}
	var hits []hit
	for i := range f.Descriptors {
		d := &f.Descriptors[i]
		idx, ok := lo.Find(src.Indexes(d.Name(src.Name.Space), m.opts.match()), func(j int) bool { return !claimed[j] })
		if ok {
			hits = append(hits, hit{d, idx})
		}
	}
	switch len(hits) {
	case 0:
		return m.absent(src, f)
	case 1:
	default:
		return nil, false, dataErr(src.Path()+"/"+tags(f), f, nil,
			errors.Wrapf(ErrAmbiguousDescriptor, "both <%s> and <%s> present", hits[0].d.Tag, hits[1].d.Tag))
	}
	h := hits[0]
	if isList(h.d.Candidate) {
		return m.deserializeList(src, f, h.d, claimed)
	}
	claimed[h.idx] = true
	v, err := m.deserializeValue(src.Children[h.idx], f, h.d)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (m *Mapper) absent(src *fragment.Fragment, f *Field) (any, bool, error) {
	if !f.mandatory() {
		return nil, false, nil
	}
	d := &f.Descriptors[0]
	if len(f.Descriptors) > 1 {
		d = nil
	}
	return nil, false, dataErr(src.Path()+"/"+tags(f), f, d, errors.Wrapf(ErrMissingMandatoryField, "%s", f.qualified()))
}

// resolveCandidate finds the single descriptor whose candidate is the
// dynamic type of v.
func resolveCandidate(f *Field, v any) (*Descriptor, error) {
	rt := indirect(reflect.TypeOf(v))
	var hits []*Descriptor
	for i := range f.Descriptors {
		if indirect(f.Descriptors[i].Candidate) == rt {
			hits = append(hits, &f.Descriptors[i])
		}
	}
	switch len(hits) {
	case 0:
		return nil, errors.Wrapf(ErrNoMatchingDescriptor, "no candidate for %T among <%s>", v, tags(f))
	case 1:
		return hits[0], nil
	}
	return nil, errors.Wrapf(ErrAmbiguousDescriptor, "%d candidates for %T", len(hits), v)
}

func tags(f *Field) string {
	return strings.Join(lo.Map(f.Descriptors, func(d Descriptor, _ int) string { return d.Tag }), "|")
}

// isList reports whether a candidate type is a slice or array of models.
func isList(t reflect.Type) bool {
	return t != nil && (t.Kind() == reflect.Slice || t.Kind() == reflect.Array)
}

func listItems(v any) []any {
	rv := reflect.Indirect(reflect.ValueOf(v))
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items
}

// deserializeList reads every unclaimed child matching d into a value of
// d's list candidate type.
func (m *Mapper) deserializeList(src *fragment.Fragment, f *Field, d *Descriptor, claimed []bool) (any, bool, error) {
	idxs := lo.Filter(src.Indexes(d.Name(src.Name.Space), m.opts.match()), func(i, _ int) bool {
		return !claimed[i]
	})
	et := d.Candidate.Elem()
	model, err := m.reg.Model(et)
	if err != nil {
		return nil, false, err
	}
	list := reflect.New(d.Candidate).Elem()
	if d.Candidate.Kind() == reflect.Array && len(idxs) != list.Len() {
		return nil, false, dataErr(src.Path()+"/"+d.Tag, f, d,
			errors.Wrapf(ErrElementCount, "got %d elements, want %d", len(idxs), list.Len()))
	}
	for n, i := range idxs {
		claimed[i] = true
		obj, err := m.deserializeObject(src.Children[i], model, et)
		if err != nil {
			return nil, false, err
		}
		if d.Candidate.Kind() == reflect.Array {
			list.Index(n).Set(reflect.ValueOf(obj))
			continue
		}
		list = reflect.Append(list, reflect.ValueOf(obj))
	}
	return list.Interface(), true, nil
}
