package xmlmap

import (
	"reflect"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/signadot/go-dfe/fragment"
)

const (
	xsiNS = "http://www.w3.org/2001/XMLSchema-instance"
	xmlNS = "http://www.w3.org/XML/1998/namespace"
)

// serializeObject writes obj, a pointer to an instance of model, as the
// element name. Fields are written in declaration order.
func (m *Mapper) serializeObject(obj any, model *Model, name fragment.Name, path string) (*fragment.Fragment, error) {
	node := fragment.New(name.Space, name.Local)
	for _, f := range model.Fields {
		if err := m.serializeField(node, f, obj, path); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// deserializeObject reads src into a fresh instance of model. The result is
// a pointer unless want is a non-pointer type.
func (m *Mapper) deserializeObject(src *fragment.Fragment, model *Model, want reflect.Type) (any, error) {
	obj := model.New()
	claimed := make([]bool, len(src.Children))
	for _, f := range model.Fields {
		v, present, err := m.deserializeField(src, f, claimed)
		if err != nil {
			return nil, err
		}
		if !present {
			continue
		}
		if err := f.assign(obj, v); err != nil {
			return nil, dataErr(src.Path()+"/"+f.Descriptors[0].Tag, f, &f.Descriptors[0], err)
		}
	}
	for i, c := range src.Children {
		if claimed[i] {
			continue
		}
		if m.opts.TolerateUnknownNodes {
			m.logger.Debug("skipping unknown node", "path", c.Path(), "model", model.Name)
			continue
		}
		return nil, &Error{
			Category: Data,
			Path:     c.Path(),
			Tag:      c.Name.Local,
			Err:      errors.Wrapf(ErrUnknownNode, "%s in %s", c.Name, model.Name),
		}
	}
	if err := m.checkAttrs(src, model); err != nil {
		return nil, err
	}
	if want != nil && want.Kind() != reflect.Pointer {
		return reflect.ValueOf(obj).Elem().Interface(), nil
	}
	return obj, nil
}

// checkAttrs rejects attributes of src that no field of model maps. Schema
// instance and xml attributes are always allowed.
func (m *Mapper) checkAttrs(src *fragment.Fragment, model *Model) error {
	for _, a := range src.Attrs {
		if a.Name.Space == xsiNS || a.Name.Space == xmlNS {
			continue
		}
		mapped := lo.ContainsBy(model.Fields, func(f *Field) bool {
			return lo.ContainsBy(f.Descriptors, func(d Descriptor) bool {
				return d.Attribute && d.Name(src.Name.Space).Matches(a.Name, m.opts.match())
			})
		})
		if mapped {
			continue
		}
		if m.opts.TolerateUnknownNodes {
			m.logger.Debug("skipping unknown attribute", "path", src.Path(), "attr", a.Name.Local, "model", model.Name)
			continue
		}
		return &Error{
			Category: Data,
			Path:     src.Path() + "/@" + a.Name.Local,
			Tag:      a.Name.Local,
			Err:      errors.Wrapf(ErrUnknownNode, "attribute %s in %s", a.Name, model.Name),
		}
	}
	return nil
}

// serializeValue writes one non-collection value, or one collection element,
// under dst. omit applies the descriptor's occurrence policy.
func (m *Mapper) serializeValue(dst *fragment.Fragment, f *Field, d *Descriptor, v any, at string, omit bool) error {
	name := d.Name(dst.Name.Space)
	if f.elemClass == Scalar {
		text, ok, err := formatScalar(d, v, omit)
		if err != nil {
			return dataErr(at, f, d, err)
		}
		if !ok {
			return nil
		}
		if d.Attribute {
			dst.WithAttr(name.Space, name.Local, text)
			return nil
		}
		dst.Append(fragment.Leaf(name.Space, name.Local, text))
		return nil
	}
	if omit && d.Occurrence == OmitWhenZero && reflect.Indirect(reflect.ValueOf(v)).IsZero() {
		return nil
	}
	model, err := m.reg.Model(reflect.TypeOf(v))
	if err != nil {
		return err
	}
	node, err := m.serializeObject(addressable(v), model, name, at)
	if err != nil {
		return err
	}
	dst.Append(node)
	return nil
}

// deserializeValue reads one element for f using descriptor d.
func (m *Mapper) deserializeValue(node *fragment.Fragment, f *Field, d *Descriptor) (any, error) {
	if f.elemClass == Scalar {
		v, err := m.parseScalar(d, node.TrimmedText())
		if err != nil {
			return nil, dataErr(node.Path(), f, d, err)
		}
		return v, nil
	}
	target := d.Candidate
	if target == nil {
		target = f.Elem
	}
	model, err := m.reg.Model(target)
	if err != nil {
		return nil, err
	}
	return m.deserializeObject(node, model, target)
}

// formatScalar returns the text for v and whether it is written at all.
func formatScalar(d *Descriptor, v any, omit bool) (string, bool, error) {
	if isNil(v) {
		return "", false, nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.Type().Elem() == d.Format.Type() {
		v = rv.Elem().Interface()
	}
	if omit && d.Occurrence == OmitWhenZero && d.Format.IsZeroAny(v) {
		return "", false, nil
	}
	text, err := d.Format.FormatAny(v)
	if err != nil {
		return "", false, err
	}
	if omit && d.Occurrence == Optional && text == "" {
		return "", false, nil
	}
	if err := checkLength(d, text); err != nil {
		return "", false, err
	}
	return text, true, nil
}

func (m *Mapper) parseScalar(d *Descriptor, text string) (any, error) {
	if err := checkLength(d, text); err != nil {
		return nil, err
	}
	return d.Format.ParseAny(text, m.opts.scalar())
}

func checkLength(d *Descriptor, text string) error {
	n := utf8.RuneCountInString(text)
	if n < d.MinLength || (d.MaxLength > 0 && n > d.MaxLength) {
		return errors.Wrapf(ErrLengthOutOfRange, "%q has length %d, want %d..%d", text, n, d.MinLength, d.MaxLength)
	}
	return nil
}
