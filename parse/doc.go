// Package parse parses XML text into fragment trees.
//
// # Usage
//
//	f, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// keep character data exactly as written
//	f, err = parse.Parse(data, parse.KeepWhitespace(true))
//
// Namespace prefixes are resolved while parsing; fragments only carry
// namespace URIs. Comments, processing instructions and directives are
// dropped.
//
// # Related Packages
//
//   - github.com/signadot/go-dfe/fragment - fragment representation
//   - github.com/signadot/go-dfe/encode - encode fragments to text
package parse
