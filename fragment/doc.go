// Package fragment provides the namespace-aware element tree exchanged between
// the mapping engine and the document layer.
//
// # Overview
//
// A Fragment is one XML element: a resolved name (namespace URI plus local
// name), attributes, character data and ordered child elements. Fragments carry
// no position information and no namespace prefixes; prefixes are an encoding
// concern handled by the encode package.
//
// # Creating Fragments
//
//	det := fragment.New(ns, "det").
//	    WithAttr("", "nItem", "1").
//	    Append(
//	        fragment.Leaf(ns, "cProd", "001"),
//	        fragment.Leaf(ns, "vProd", "10.00"),
//	    )
//
// # Lookup
//
// Children are located by name with a Match mode: MatchExact compares both the
// namespace and the local name, MatchLocal compares the local name only.
//
// # Related Packages
//
//   - github.com/signadot/go-dfe/parse - XML text to fragments
//   - github.com/signadot/go-dfe/encode - fragments to XML text
//   - github.com/signadot/go-dfe/xmlmap - typed objects to fragments
package fragment
