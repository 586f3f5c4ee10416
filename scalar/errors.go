package scalar

import "github.com/cockroachdb/errors"

var (
	// ErrFormatMismatch is returned when text or a value does not fit the
	// declared kind.
	ErrFormatMismatch = errors.New("format mismatch")
	// ErrUnknownCode is returned when a value or code is absent from its
	// code table.
	ErrUnknownCode = errors.New("unknown code")
)

func mismatch(k Kind, format string, args ...any) error {
	return errors.Wrapf(ErrFormatMismatch, "%s: "+format, append([]any{k}, args...)...)
}
