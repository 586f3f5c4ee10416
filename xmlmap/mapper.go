package xmlmap

import (
	"bytes"
	"log/slog"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/signadot/go-dfe/encode"
	"github.com/signadot/go-dfe/fragment"
	"github.com/signadot/go-dfe/parse"
)

// Mapper converts between registered models and fragments. A Mapper is
// immutable and safe for concurrent use.
type Mapper struct {
	reg    *Registry
	opts   Options
	logger *slog.Logger
}

// NewMapper creates a Mapper over reg, or over DefaultRegistry when reg is
// nil.
func NewMapper(reg *Registry, opts ...Option) *Mapper {
	if reg == nil {
		reg = DefaultRegistry()
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Mapper{reg: reg, opts: o, logger: logger}
}

func (m *Mapper) Registry() *Registry { return m.reg }

func (m *Mapper) Options() Options { return m.opts }

// Marshal converts v, a root model value or pointer, to its document
// element.
func (m *Mapper) Marshal(v any) (*fragment.Fragment, error) {
	model, err := m.modelFor(v)
	if err != nil {
		return nil, err
	}
	if model.Root == nil {
		return nil, configErr(model.Name, nil, errors.Wrap(ErrMissingDescriptor, "model has no root element"))
	}
	return m.MarshalElement(v, *model.Root)
}

// MarshalElement converts v to the element described by d.
func (m *Mapper) MarshalElement(v any, d Descriptor) (*fragment.Fragment, error) {
	model, err := m.modelFor(v)
	if err != nil {
		return nil, err
	}
	m.logger.Debug("marshal", "model", model.Name, "tag", d.Tag)
	return m.serializeObject(addressable(v), model, d.Name(""), "/"+d.Tag)
}

// Unmarshal reads src into dst, a non-nil pointer to a registered model.
// Root models check the element name of src.
func (m *Mapper) Unmarshal(src *fragment.Fragment, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.Newf("xmlmap: Unmarshal needs a non-nil pointer, got %T", dst)
	}
	model, err := m.reg.Model(rv.Type().Elem())
	if err != nil {
		return err
	}
	if model.Root != nil && !model.Root.Name("").Matches(src.Name, m.opts.match()) {
		return &Error{
			Category: Data,
			Path:     src.Path(),
			Tag:      src.Name.Local,
			Err:      errors.Wrapf(ErrNoMatchingDescriptor, "want <%s>, got %s", model.Root.Tag, src.Name),
		}
	}
	m.logger.Debug("unmarshal", "model", model.Name, "tag", src.Name.Local)
	obj, err := m.deserializeObject(src, model, rv.Type())
	if err != nil {
		return err
	}
	rv.Elem().Set(reflect.ValueOf(obj).Elem())
	return nil
}

// UnmarshalRoot reads src into a new instance of the root model matching
// its element name.
func (m *Mapper) UnmarshalRoot(src *fragment.Fragment) (*Model, any, error) {
	model, err := m.reg.ByRoot(src.Name, m.opts.match())
	if err != nil {
		return nil, nil, err
	}
	m.logger.Debug("unmarshal", "model", model.Name, "tag", src.Name.Local)
	obj, err := m.deserializeObject(src, model, reflect.PointerTo(model.Type))
	if err != nil {
		return nil, nil, err
	}
	return model, obj, nil
}

// Decode reads src into a new T.
func Decode[T any](m *Mapper, src *fragment.Fragment) (*T, error) {
	v := new(T)
	if err := m.Unmarshal(src, v); err != nil {
		return nil, err
	}
	return v, nil
}

// MarshalBytes marshals v and encodes the result.
func (m *Mapper) MarshalBytes(v any, opts ...encode.EncodeOption) ([]byte, error) {
	f, err := m.Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := encode.Encode(f, &buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBytes parses data and unmarshals it into dst.
func (m *Mapper) UnmarshalBytes(data []byte, dst any, opts ...parse.ParseOption) error {
	f, err := parse.Parse(data, opts...)
	if err != nil {
		return err
	}
	return m.Unmarshal(f, dst)
}

func (m *Mapper) modelFor(v any) (*Model, error) {
	if isNil(v) {
		return nil, errors.New("xmlmap: cannot marshal nil")
	}
	return m.reg.Model(reflect.TypeOf(v))
}
