package xmlmap

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/signadot/go-dfe/scalar"
)

// Category separates metadata defects from bad input.
type Category int

const (
	// Configuration errors are defects in registered metadata. They are
	// reported when a model is built and never recovered.
	Configuration Category = iota
	// Data errors are problems with a particular value or document.
	Data
)

func (c Category) String() string {
	if c == Configuration {
		return "configuration"
	}
	return "data"
}

// Configuration sentinels.
var (
	ErrMissingDescriptor   = errors.New("missing descriptor")
	ErrAmbiguousDescriptor = errors.New("ambiguous descriptor")
	ErrUnregisteredType    = errors.New("unregistered type")
	ErrInvalidDescriptor   = errors.New("invalid descriptor")
)

// Data sentinels.
var (
	ErrFormatMismatch         = scalar.ErrFormatMismatch
	ErrUnknownCode            = scalar.ErrUnknownCode
	ErrMissingMandatoryField  = errors.New("missing mandatory field")
	ErrUnsupportedElementType = errors.New("unsupported element type")
	ErrNoMatchingDescriptor   = errors.New("no matching descriptor")
	ErrUnknownNode            = errors.New("unknown node")
	ErrLengthOutOfRange       = errors.New("length out of range")
	ErrElementCount           = errors.New("element count mismatch")
)

// Error reports where in a model or document a mapping failed.
type Error struct {
	Category Category
	Path     string // document path, e.g. /NFe/infNFe/det/prod
	Field    string // Model.Field
	Tag      string
	Kind     string // expected value format, for scalars
	Err      error
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s error", e.Category)
	if e.Path != "" {
		fmt.Fprintf(&b, " at %s", e.Path)
	}
	var ctx []string
	if e.Field != "" {
		ctx = append(ctx, e.Field)
	}
	if e.Tag != "" {
		ctx = append(ctx, "<"+e.Tag+">")
	}
	if e.Kind != "" {
		ctx = append(ctx, e.Kind)
	}
	if len(ctx) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(ctx, " "))
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsConfiguration reports whether err is a metadata defect.
func IsConfiguration(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Category == Configuration
}

// IsData reports whether err is a problem with a value or document.
func IsData(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Category == Data
}

func configErr(model string, f *Field, err error) error {
	e := &Error{Category: Configuration, Path: model, Err: err}
	if f != nil {
		e.Field = model + "." + f.Name
		if len(f.Descriptors) == 1 {
			e.Tag = f.Descriptors[0].Tag
		}
	}
	return e
}

// dataErr decorates err with its location unless an inner call already did.
func dataErr(path string, f *Field, d *Descriptor, err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	e = &Error{Category: Data, Path: path, Err: err}
	if f != nil {
		e.Field = f.qualified()
	}
	if d != nil {
		e.Tag = d.Tag
		e.Kind = d.kind()
	}
	return e
}
