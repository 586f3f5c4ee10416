// Package encode encodes fragment trees to XML text.
//
// # Usage
//
//	// compact, as required before signing
//	err := encode.Encode(f, w)
//
//	// indented with an XML declaration
//	err := encode.Encode(f, w, encode.EncodeIndent("  "), encode.EncodeDecl(true))
//
//	// colored for terminals
//	err := encode.Encode(f, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Namespaces are written as default namespace declarations whenever an
// element's namespace differs from its parent's. Namespaced attributes get
// generated prefixes.
//
// # Related Packages
//
//   - github.com/signadot/go-dfe/fragment - fragment representation
//   - github.com/signadot/go-dfe/parse - parse text to fragments
package encode
