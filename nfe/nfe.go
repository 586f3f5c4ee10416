package nfe

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/signadot/go-dfe/scalar"
	"github.com/signadot/go-dfe/xmlmap"
)

// Namespace is the XML namespace of NF-e documents.
const Namespace = "http://www.portalfiscal.inf.br/nfe"

// Versao is the layout version written in infNFe/@versao.
const Versao = "4.00"

type NFe struct {
	InfNFe InfNFe
}

type InfNFe struct {
	Versao  string
	ID      string
	Ide     Ide
	Emit    Emit
	Det     []Det
	Total   Total
	InfAdic *InfAdic
}

type Ide struct {
	CUF    int
	CNF    string
	NatOp  string
	Mod    int
	Serie  int
	NNF    int
	DhEmi  time.Time
	TpNF   TipoNF
	CMunFG string
	TpAmb  int
}

type Emit struct {
	CNPJ  string
	XNome string
	XFant string
	IE    string
	CRT   CRT
}

type Det struct {
	NItem   int
	Prod    Prod
	Imposto Imposto
	// InfAdProd is free text about the item.
	InfAdProd string
}

type Prod struct {
	CProd  string
	CEAN   string
	XProd  string
	NCM    string
	CFOP   int
	UCom   string
	QCom   float64
	VUnCom decimal.Decimal
	VProd  decimal.Decimal
	VDesc  decimal.Decimal
}

type Imposto struct {
	VTotTrib decimal.Decimal
	ICMS     GrupoICMS
}

type Total struct {
	ICMSTot ICMSTot
}

type ICMSTot struct {
	VBC   decimal.Decimal
	VICMS decimal.Decimal
	VProd decimal.Decimal
	VDesc decimal.Decimal
	VNF   decimal.Decimal
}

type InfAdic struct {
	InfAdFisco string
	InfCpl     string
}

func text(tag, ref string, min, max int) xmlmap.Descriptor {
	return xmlmap.Tag(tag).Ref(ref).As(scalar.Text()).Len(min, max)
}

var nfeDef = xmlmap.Define[NFe]("NFe", func() []*xmlmap.Field {
	return []*xmlmap.Field{
		xmlmap.Elem("InfNFe", func(n *NFe) *InfNFe { return &n.InfNFe }, xmlmap.Tag("infNFe").Ref("A01")),
	}
}).Root(xmlmap.Tag("NFe").NS(Namespace))

var infNFeDef = xmlmap.Define[InfNFe]("infNFe", func() []*xmlmap.Field {
	return []*xmlmap.Field{
		xmlmap.Elem("Versao", func(i *InfNFe) *string { return &i.Versao }, text("versao", "A02", 4, 4).Attr()),
		xmlmap.Elem("ID", func(i *InfNFe) *string { return &i.ID }, text("Id", "A03", 47, 47).Attr()),
		xmlmap.Elem("Ide", func(i *InfNFe) *Ide { return &i.Ide }, xmlmap.Tag("ide").Ref("B01")),
		xmlmap.Elem("Emit", func(i *InfNFe) *Emit { return &i.Emit }, xmlmap.Tag("emit").Ref("C01")),
		xmlmap.Slice("Det", func(i *InfNFe) *[]Det { return &i.Det }, xmlmap.Tag("det").Ref("H01")),
		xmlmap.Elem("Total", func(i *InfNFe) *Total { return &i.Total }, xmlmap.Tag("total").Ref("W01")),
		xmlmap.Elem("InfAdic", func(i *InfNFe) **InfAdic { return &i.InfAdic }, xmlmap.Tag("infAdic").Ref("Z01").Optional()),
	}
}).New(func() *InfNFe { return &InfNFe{Versao: Versao} })

var ideDef = xmlmap.Define[Ide]("ide", func() []*xmlmap.Field {
	return []*xmlmap.Field{
		xmlmap.Elem("CUF", func(i *Ide) *int { return &i.CUF }, xmlmap.Tag("cUF").Ref("B02").As(scalar.Padded[int](2))),
		xmlmap.Elem("CNF", func(i *Ide) *string { return &i.CNF }, xmlmap.Tag("cNF").Ref("B03").As(scalar.PaddedDigits(8))),
		xmlmap.Elem("NatOp", func(i *Ide) *string { return &i.NatOp }, text("natOp", "B04", 1, 60)),
		xmlmap.Elem("Mod", func(i *Ide) *int { return &i.Mod }, xmlmap.Tag("mod").Ref("B06").As(scalar.Padded[int](2))),
		xmlmap.Elem("Serie", func(i *Ide) *int { return &i.Serie }, xmlmap.Tag("serie").Ref("B07").As(scalar.Int[int]()).Len(1, 3)),
		xmlmap.Elem("NNF", func(i *Ide) *int { return &i.NNF }, xmlmap.Tag("nNF").Ref("B08").As(scalar.Int[int]()).Len(1, 9)),
		xmlmap.Elem("DhEmi", func(i *Ide) *time.Time { return &i.DhEmi }, xmlmap.Tag("dhEmi").Ref("B09").As(scalar.Timestamp())),
		xmlmap.Elem("TpNF", func(i *Ide) *TipoNF { return &i.TpNF }, xmlmap.Tag("tpNF").Ref("B11").As(scalar.Code(TiposNF))),
		xmlmap.Elem("CMunFG", func(i *Ide) *string { return &i.CMunFG }, xmlmap.Tag("cMunFG").Ref("B12").As(scalar.PaddedDigits(7))),
		xmlmap.Elem("TpAmb", func(i *Ide) *int { return &i.TpAmb }, xmlmap.Tag("tpAmb").Ref("B24").As(scalar.Int[int]()).Len(1, 1)),
	}
}).New(func() *Ide { return &Ide{Mod: 55} })

var emitDef = xmlmap.Define[Emit]("emit", func() []*xmlmap.Field {
	return []*xmlmap.Field{
		xmlmap.Elem("CNPJ", func(e *Emit) *string { return &e.CNPJ }, xmlmap.Tag("CNPJ").Ref("C02").As(scalar.PaddedDigits(14))),
		xmlmap.Elem("XNome", func(e *Emit) *string { return &e.XNome }, text("xNome", "C03", 2, 60)),
		xmlmap.Elem("XFant", func(e *Emit) *string { return &e.XFant }, text("xFant", "C04", 1, 60).Optional()),
		xmlmap.Elem("IE", func(e *Emit) *string { return &e.IE }, text("IE", "C17", 2, 14)),
		xmlmap.Elem("CRT", func(e *Emit) *CRT { return &e.CRT }, xmlmap.Tag("CRT").Ref("C21").As(scalar.Code(CRTs))),
	}
})

var detDef = xmlmap.Define[Det]("det", func() []*xmlmap.Field {
	return []*xmlmap.Field{
		xmlmap.Elem("NItem", func(d *Det) *int { return &d.NItem }, xmlmap.Tag("nItem").Ref("H02").As(scalar.Int[int]()).Len(1, 3).Attr()),
		xmlmap.Elem("Prod", func(d *Det) *Prod { return &d.Prod }, xmlmap.Tag("prod").Ref("I01")),
		xmlmap.Elem("Imposto", func(d *Det) *Imposto { return &d.Imposto }, xmlmap.Tag("imposto").Ref("M01")),
		xmlmap.Elem("InfAdProd", func(d *Det) *string { return &d.InfAdProd }, text("infAdProd", "V01", 1, 500).Optional()),
	}
})

var prodDef = xmlmap.Define[Prod]("prod", func() []*xmlmap.Field {
	return []*xmlmap.Field{
		xmlmap.Elem("CProd", func(p *Prod) *string { return &p.CProd }, text("cProd", "I02", 1, 60)),
		xmlmap.Elem("CEAN", func(p *Prod) *string { return &p.CEAN }, text("cEAN", "I03", 0, 14)),
		xmlmap.Elem("XProd", func(p *Prod) *string { return &p.XProd }, text("xProd", "I04", 1, 120)),
		xmlmap.Elem("NCM", func(p *Prod) *string { return &p.NCM }, xmlmap.Tag("NCM").Ref("I05").As(scalar.PaddedDigits(8))),
		xmlmap.Elem("CFOP", func(p *Prod) *int { return &p.CFOP }, xmlmap.Tag("CFOP").Ref("I08").As(scalar.Padded[int](4))),
		xmlmap.Elem("UCom", func(p *Prod) *string { return &p.UCom }, text("uCom", "I09", 1, 6)),
		xmlmap.Elem("QCom", func(p *Prod) *float64 { return &p.QCom }, xmlmap.Tag("qCom").Ref("I10").As(scalar.Float(4)).Len(1, 15)),
		xmlmap.Elem("VUnCom", func(p *Prod) *decimal.Decimal { return &p.VUnCom }, xmlmap.Tag("vUnCom").Ref("I10a").As(scalar.Decimal(4)).Len(1, 21)),
		xmlmap.Elem("VProd", func(p *Prod) *decimal.Decimal { return &p.VProd }, de2("vProd", "I11")),
		xmlmap.Elem("VDesc", func(p *Prod) *decimal.Decimal { return &p.VDesc }, de2("vDesc", "I17").OmitZero()),
	}
})

var impostoDef = xmlmap.Define[Imposto]("imposto", func() []*xmlmap.Field {
	return []*xmlmap.Field{
		xmlmap.Elem("VTotTrib", func(i *Imposto) *decimal.Decimal { return &i.VTotTrib }, de2("vTotTrib", "M02").OmitZero()),
		xmlmap.Elem("ICMS", func(i *Imposto) *GrupoICMS { return &i.ICMS }, xmlmap.Tag("ICMS").Ref("N01")),
	}
})

var totalDef = xmlmap.Define[Total]("total", func() []*xmlmap.Field {
	return []*xmlmap.Field{
		xmlmap.Elem("ICMSTot", func(t *Total) *ICMSTot { return &t.ICMSTot }, xmlmap.Tag("ICMSTot").Ref("W02")),
	}
})

var icmsTotDef = xmlmap.Define[ICMSTot]("ICMSTot", func() []*xmlmap.Field {
	return []*xmlmap.Field{
		xmlmap.Elem("VBC", func(t *ICMSTot) *decimal.Decimal { return &t.VBC }, de2("vBC", "W03")),
		xmlmap.Elem("VICMS", func(t *ICMSTot) *decimal.Decimal { return &t.VICMS }, de2("vICMS", "W04")),
		xmlmap.Elem("VProd", func(t *ICMSTot) *decimal.Decimal { return &t.VProd }, de2("vProd", "W07")),
		xmlmap.Elem("VDesc", func(t *ICMSTot) *decimal.Decimal { return &t.VDesc }, de2("vDesc", "W10")),
		xmlmap.Elem("VNF", func(t *ICMSTot) *decimal.Decimal { return &t.VNF }, de2("vNF", "W16")),
	}
})

var infAdicDef = xmlmap.Define[InfAdic]("infAdic", func() []*xmlmap.Field {
	return []*xmlmap.Field{
		xmlmap.Elem("InfAdFisco", func(i *InfAdic) *string { return &i.InfAdFisco }, text("infAdFisco", "Z02", 1, 2000).Optional()),
		xmlmap.Elem("InfCpl", func(i *InfAdic) *string { return &i.InfCpl }, text("infCpl", "Z03", 1, 5000).Optional()),
	}
})

// Register adds the NF-e models to reg and builds them.
func Register(reg *xmlmap.Registry) error {
	err := reg.Register(
		nfeDef, infNFeDef, ideDef, emitDef, detDef, prodDef, impostoDef,
		grupoICMSDef, icms00Def, icms40Def, icmsSN102Def, icmsSN202Def,
		totalDef, icmsTotDef, infAdicDef,
	)
	if err != nil {
		return err
	}
	return reg.Build()
}

// NewRegistry returns a registry holding only the NF-e models.
func NewRegistry() (*xmlmap.Registry, error) {
	reg := xmlmap.NewRegistry()
	if err := Register(reg); err != nil {
		return nil, err
	}
	return reg, nil
}
