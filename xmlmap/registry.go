package xmlmap

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/signadot/go-dfe/debug"
	"github.com/signadot/go-dfe/fragment"
	"golang.org/x/sync/singleflight"
)

// Registry holds model definitions and their built descriptor tables.
// Models are built on first use and kept for the registry's lifetime.
type Registry struct {
	mu     sync.RWMutex
	defs   map[reflect.Type]*definition
	names  map[string]reflect.Type
	order  []reflect.Type
	logger *slog.Logger

	models sync.Map // reflect.Type -> *Model
	group  singleflight.Group
}

func NewRegistry() *Registry {
	return &Registry{
		defs:   make(map[reflect.Type]*definition),
		names:  make(map[string]reflect.Type),
		logger: slog.Default(),
	}
}

var DefaultRegistry = sync.OnceValue(NewRegistry)

func (r *Registry) WithLogger(l *slog.Logger) *Registry {
	if l == nil {
		l = slog.Default()
	}
	r.logger = l
	return r
}

// Register adds model definitions. Models already built are not affected.
func (r *Registry) Register(defs ...Definer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range defs {
		if d == nil {
			return fmt.Errorf("cannot register nil definition")
		}
		def := d.definition()
		if def.name == "" {
			return fmt.Errorf("model %s must have a name", def.typ)
		}
		if def.typ.Kind() != reflect.Struct {
			return fmt.Errorf("model %q: %s is not a struct", def.name, def.typ)
		}
		if def.fields == nil {
			return fmt.Errorf("model %q has no fields", def.name)
		}
		if _, exists := r.defs[def.typ]; exists {
			return fmt.Errorf("model %s already registered", def.typ)
		}
		if _, exists := r.names[def.name]; exists {
			return fmt.Errorf("model %q already registered", def.name)
		}
		r.defs[def.typ] = def
		r.names[def.name] = def.typ
		r.order = append(r.order, def.typ)
	}
	return nil
}

func (r *Registry) MustRegister(defs ...Definer) *Registry {
	if err := r.Register(defs...); err != nil {
		panic(err)
	}
	return r
}

// Model returns the built model for t or *t, building it on first use.
// Concurrent first uses share a single build.
func (r *Registry) Model(t reflect.Type) (*Model, error) {
	t = indirect(t)
	if m, ok := r.models.Load(t); ok {
		return m.(*Model), nil
	}
	key := t.PkgPath() + "|" + t.String()
	v, err, _ := r.group.Do(key, func() (any, error) {
		if m, ok := r.models.Load(t); ok {
			return m, nil
		}
		m, err := r.build(t)
		if err != nil {
			return nil, err
		}
		r.models.Store(t, m)
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Model), nil
}

// ModelOf is Model for a type parameter.
func ModelOf[T any](r *Registry) (*Model, error) {
	return r.Model(reflect.TypeFor[T]())
}

// Build builds every registered model and returns all configuration errors
// found.
func (r *Registry) Build() error {
	var errs []error
	for _, t := range r.types() {
		if _, err := r.Model(t); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Names returns registered model names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Map(r.order, func(t reflect.Type, _ int) string { return r.defs[t].name })
}

func (r *Registry) ByName(name string) (*Model, error) {
	r.mu.RLock()
	t, ok := r.names[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &Error{Category: Configuration, Path: name, Err: errors.Wrapf(ErrUnregisteredType, "no model named %q", name)}
	}
	return r.Model(t)
}

// ByRoot returns the root model whose element matches n.
func (r *Registry) ByRoot(n fragment.Name, m fragment.Match) (*Model, error) {
	r.mu.RLock()
	t, ok := lo.Find(r.order, func(t reflect.Type) bool {
		root := r.defs[t].root
		return root != nil && root.Name("").Matches(n, m)
	})
	r.mu.RUnlock()
	if !ok {
		return nil, &Error{Category: Data, Path: "/" + n.Local, Tag: n.Local, Err: errors.Wrapf(ErrNoMatchingDescriptor, "no root model for %s", n)}
	}
	return r.Model(t)
}

// Implementations returns the registered model types, or pointers to them,
// that implement iface.
func (r *Registry) Implementations(iface reflect.Type) []reflect.Type {
	if iface.Kind() != reflect.Interface {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var impls []reflect.Type
	for _, t := range r.order {
		switch {
		case t.Implements(iface):
			impls = append(impls, t)
		case reflect.PointerTo(t).Implements(iface):
			impls = append(impls, reflect.PointerTo(t))
		}
	}
	return impls
}

func (r *Registry) types() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

func (r *Registry) registered(t reflect.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.defs[indirect(t)]
	return ok
}

func (r *Registry) build(t reflect.Type) (*Model, error) {
	r.mu.RLock()
	def, ok := r.defs[t]
	r.mu.RUnlock()
	if !ok {
		return nil, &Error{Category: Configuration, Path: t.String(), Err: errors.Wrapf(ErrUnregisteredType, "%s", t)}
	}
	m := &Model{
		Name:   def.name,
		Type:   def.typ,
		Root:   def.root,
		Fields: def.fields(),
		newFn:  def.newFn,
	}
	for _, f := range m.Fields {
		if err := r.classify(m, f); err != nil {
			return nil, err
		}
	}
	if err := uniqueTags(m); err != nil {
		return nil, err
	}
	r.logger.Debug("built model", "model", m.Name, "type", t, "fields", len(m.Fields))
	if debug.Build() {
		debug.LogAny(m.table())
	}
	return m, nil
}

// classify validates f's descriptors and records its class.
func (r *Registry) classify(m *Model, f *Field) error {
	if f == nil {
		return configErr(m.Name, nil, errors.Wrap(ErrMissingDescriptor, "nil field"))
	}
	f.model = m.Name
	if f.owner != m.Type {
		return configErr(m.Name, f, errors.Wrapf(ErrInvalidDescriptor, "field belongs to %s", f.owner))
	}
	if len(f.Descriptors) == 0 {
		return configErr(m.Name, f, ErrMissingDescriptor)
	}
	impls := len(r.Implementations(f.Elem))
	f.class = Classify(f.Declared, f.Descriptors, impls)
	f.elemClass = f.class
	if f.class == Collection {
		f.elemClass = Classify(f.Elem, f.Descriptors, 0)
	}
	if len(f.Descriptors) > 1 && f.class != PolymorphicInterface {
		return configErr(m.Name, f, errors.Wrapf(ErrAmbiguousDescriptor, "%d descriptors on a %s field", len(f.Descriptors), f.class))
	}
	switch f.elemClass {
	case Collection:
		return configErr(m.Name, f, errors.Wrap(ErrInvalidDescriptor, "nested collections"))
	case PolymorphicInterface:
		return r.checkCandidates(m, f)
	case Scalar:
		return checkFormat(m, f)
	}
	d := f.Descriptors[0]
	if d.Attribute {
		return configErr(m.Name, f, errors.Wrap(ErrInvalidDescriptor, "attribute without a format"))
	}
	target := d.Candidate
	if target == nil {
		if f.Elem.Kind() == reflect.Interface {
			return configErr(m.Name, f, errors.Wrap(ErrMissingDescriptor, "interface field needs a candidate type"))
		}
		target = f.Elem
	} else if !target.AssignableTo(f.Elem) {
		return configErr(m.Name, f, errors.Wrapf(ErrInvalidDescriptor, "candidate %s is not assignable to %s", target, f.Elem))
	}
	if !r.registered(target) {
		return configErr(m.Name, f, errors.Wrapf(ErrUnregisteredType, "%s", indirect(target)))
	}
	return nil
}

func (r *Registry) checkCandidates(m *Model, f *Field) error {
	seen := make(map[reflect.Type]string)
	tags := make(map[string]bool)
	for _, d := range f.Descriptors {
		if d.Candidate == nil {
			return configErr(m.Name, f, errors.Wrapf(ErrMissingDescriptor, "<%s> has no candidate type", d.Tag))
		}
		if !d.Candidate.Implements(f.Elem) {
			return configErr(m.Name, f, errors.Wrapf(ErrInvalidDescriptor, "candidate %s does not implement %s", d.Candidate, f.Elem))
		}
		if d.Format != nil || d.Attribute {
			return configErr(m.Name, f, errors.Wrapf(ErrInvalidDescriptor, "candidate <%s> must be an element", d.Tag))
		}
		key := indirect(d.Candidate)
		if prev, dup := seen[key]; dup {
			return configErr(m.Name, f, errors.Wrapf(ErrAmbiguousDescriptor, "<%s> and <%s> both claim %s", prev, d.Tag, key))
		}
		seen[key] = d.Tag
		if tags[d.Tag] {
			return configErr(m.Name, f, errors.Wrapf(ErrAmbiguousDescriptor, "tag <%s> used by two candidates", d.Tag))
		}
		tags[d.Tag] = true
		target := d.Candidate
		if isList(target) {
			target = target.Elem()
			if target.Kind() == reflect.Interface || isList(indirect(target)) {
				return configErr(m.Name, f, errors.Wrapf(ErrInvalidDescriptor, "candidate %s must list a model type", d.Candidate))
			}
		}
		if !r.registered(target) {
			return configErr(m.Name, f, errors.Wrapf(ErrUnregisteredType, "%s", indirect(target)))
		}
	}
	return nil
}

func checkFormat(m *Model, f *Field) error {
	d := f.Descriptors[0]
	want := d.Format.Type()
	if f.Elem != want && indirect(f.Elem) != want {
		return configErr(m.Name, f, errors.Wrapf(ErrInvalidDescriptor, "%s formats %s, field is %s", d.Format.Kind(), want, f.Elem))
	}
	if d.Attribute && f.class == Collection {
		return configErr(m.Name, f, errors.Wrap(ErrInvalidDescriptor, "repeated attribute"))
	}
	if d.MaxLength > 0 && d.MinLength > d.MaxLength {
		return configErr(m.Name, f, errors.Wrapf(ErrInvalidDescriptor, "length bounds %d > %d", d.MinLength, d.MaxLength))
	}
	return nil
}

// uniqueTags rejects two fields reading the same node.
func uniqueTags(m *Model) error {
	type nodeKey struct {
		attr bool
		name fragment.Name
	}
	owner := make(map[nodeKey]*Field)
	for _, f := range m.Fields {
		for _, d := range f.Descriptors {
			key := nodeKey{attr: d.Attribute, name: d.Name("")}
			if prev, dup := owner[key]; dup && prev != f {
				return configErr(m.Name, f, errors.Wrapf(ErrAmbiguousDescriptor, "<%s> also mapped by %s", d.Tag, prev.Name))
			}
			owner[key] = f
		}
	}
	return nil
}
