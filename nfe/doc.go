// Package nfe registers a subset of the NF-e 4.00 layout (nota fiscal
// eletrônica) with xmlmap: the document envelope, identification, issuer,
// items with their ICMS groups, totals and additional information.
//
//	reg := xmlmap.NewRegistry()
//	if err := nfe.Register(reg); err != nil { ... }
//	doc, err := xmlmap.Decode[nfe.NFe](xmlmap.NewMapper(reg), frag)
package nfe
