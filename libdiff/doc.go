// Package libdiff computes differences between fragment trees.
//
// # Usage
//
//	changes := libdiff.Diff(original, reencoded)
//	libdiff.Write(os.Stdout, changes, true)
//
// Children are aligned by element name, so an inserted or removed element
// is reported once instead of shifting every following sibling. Text is
// compared after trimming insignificant whitespace.
//
// # Related Packages
//
//   - github.com/signadot/go-dfe/fragment - boundary tree
//   - github.com/signadot/go-dfe/encode - rendering of changed elements
package libdiff
