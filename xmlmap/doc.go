// Package xmlmap maps registered Go models to and from fragment trees using
// explicit per-field descriptors.
//
// # Usage
//
//	type Prod struct {
//	    CProd string
//	    VProd decimal.Decimal
//	}
//
//	var prodDef = xmlmap.Define[Prod]("Prod", func() []*xmlmap.Field {
//	    return []*xmlmap.Field{
//	        xmlmap.Elem("CProd", func(p *Prod) *string { return &p.CProd },
//	            xmlmap.Tag("cProd").Ref("I02").As(scalar.Text()).Len(1, 60)),
//	        xmlmap.Elem("VProd", func(p *Prod) *decimal.Decimal { return &p.VProd },
//	            xmlmap.Tag("vProd").Ref("I11").As(scalar.Decimal(2))),
//	    }
//	}).Root(xmlmap.Tag("prod").NS(nfeNS))
//
//	reg := xmlmap.NewRegistry().MustRegister(prodDef)
//	m := xmlmap.NewMapper(reg)
//	frag, err := m.Marshal(&Prod{CProd: "001", VProd: decimal.NewFromInt(10)})
//
// Every field is classified once, when its model is first used, as a scalar,
// a complex object, a polymorphic interface or a collection. Polymorphic
// fields carry one descriptor per candidate type, each with its own tag.
//
// Errors are *Error values wrapping one of the package sentinels; use
// IsConfiguration and IsData to tell metadata defects from bad documents.
//
// # Related Packages
//
//   - github.com/signadot/go-dfe/fragment - boundary tree
//   - github.com/signadot/go-dfe/scalar - leaf value formats
package xmlmap
