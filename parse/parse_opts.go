package parse

type parseOpts struct {
	keepSpace bool
	strict    bool
	maxDepth  int
}

type ParseOption func(*parseOpts)

// KeepWhitespace keeps character data untrimmed.
func KeepWhitespace(v bool) ParseOption {
	return func(o *parseOpts) { o.keepSpace = v }
}

// Strict controls encoding/xml strict mode. It defaults to true.
func Strict(v bool) ParseOption {
	return func(o *parseOpts) { o.strict = v }
}

// MaxDepth bounds element nesting; 0 means unbounded.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

func newParseOpts(opts ...ParseOption) *parseOpts {
	o := &parseOpts{strict: true}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
