package xmlmap

import (
	"fmt"
	"log/slog"

	"github.com/signadot/go-dfe/fragment"
	"github.com/signadot/go-dfe/scalar"
)

// NamespaceMode selects how element names are matched on read.
type NamespaceMode int

const (
	// Strict matches namespace and local name.
	Strict NamespaceMode = iota
	// IgnoreOnRead matches local names only.
	IgnoreOnRead
)

func (m NamespaceMode) String() string {
	switch m {
	case Strict:
		return "strict"
	case IgnoreOnRead:
		return "ignore"
	default:
		return fmt.Sprintf("NamespaceMode(%d)", int(m))
	}
}

func ParseNamespaceMode(s string) (NamespaceMode, error) {
	switch s {
	case "", "strict":
		return Strict, nil
	case "ignore", "ignore-on-read":
		return IgnoreOnRead, nil
	}
	return Strict, fmt.Errorf("unknown namespace mode %q", s)
}

// Options controls a Mapper.
type Options struct {
	NamespaceMode NamespaceMode
	// InvariantNumerics restricts decimals to '.' on read. When false a
	// single ',' separator is also accepted. Output is always invariant.
	InvariantNumerics    bool
	TolerateUnknownNodes bool
	Logger               *slog.Logger
}

type Option func(*Options)

func WithNamespaceMode(m NamespaceMode) Option {
	return func(o *Options) { o.NamespaceMode = m }
}

func WithInvariantNumerics(v bool) Option {
	return func(o *Options) { o.InvariantNumerics = v }
}

func WithTolerateUnknownNodes(v bool) Option {
	return func(o *Options) { o.TolerateUnknownNodes = v }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func DefaultOptions() Options {
	return Options{InvariantNumerics: true}
}

func (o Options) match() fragment.Match {
	if o.NamespaceMode == IgnoreOnRead {
		return fragment.MatchLocal
	}
	return fragment.MatchExact
}

func (o Options) scalar() scalar.Options {
	return scalar.Options{DecimalComma: !o.InvariantNumerics}
}
