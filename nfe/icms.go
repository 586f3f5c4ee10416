package nfe

import (
	"github.com/shopspring/decimal"
	"github.com/signadot/go-dfe/scalar"
	"github.com/signadot/go-dfe/xmlmap"
)

// ICMS is one of the mutually exclusive ICMS groups of an item.
type ICMS interface {
	icms()
}

// ICMS00 is the fully taxed group (CST 00).
type ICMS00 struct {
	Orig  OrigemMercadoria
	CST   string
	ModBC ModalidadeBC
	VBC   decimal.Decimal
	PICMS decimal.Decimal
	VICMS decimal.Decimal
	PFCP  decimal.Decimal
	VFCP  decimal.Decimal
}

// ICMS40 covers exempt, untaxed and suspended operations (CST 40, 41, 50).
type ICMS40 struct {
	Orig       OrigemMercadoria
	CST        string
	VICMSDeson decimal.Decimal
	MotDesICMS *int
}

// ICMSSN102 is the Simples Nacional group without credit (CSOSN 102 to 400).
type ICMSSN102 struct {
	Orig  OrigemMercadoria
	CSOSN string
}

// ICMSSN202 is the Simples Nacional group with ST and no credit (CSOSN 202,
// 203).
type ICMSSN202 struct {
	Orig     OrigemMercadoria
	CSOSN    string
	ModBCST  ModalidadeBCST
	PMVAST   decimal.Decimal
	PRedBCST decimal.Decimal
	VBCST    decimal.Decimal
	PICMSST  decimal.Decimal
	VICMSST  decimal.Decimal
	VBCFCPST decimal.Decimal
	PFCPST   decimal.Decimal
	VFCPST   decimal.Decimal
}

func (ICMS00) icms()    {}
func (ICMS40) icms()    {}
func (ICMSSN102) icms() {}
func (ICMSSN202) icms() {}

// GrupoICMS is the <ICMS> wrapper holding exactly one ICMS group.
type GrupoICMS struct {
	Value ICMS
}

func origem(ref string) xmlmap.Descriptor {
	return xmlmap.Tag("orig").Ref(ref).As(scalar.Code(Origens)).Len(1, 1)
}

func de2(tag, ref string) xmlmap.Descriptor {
	return xmlmap.Tag(tag).Ref(ref).As(scalar.Decimal(2)).Len(3, 15)
}

func de4(tag, ref string) xmlmap.Descriptor {
	return xmlmap.Tag(tag).Ref(ref).As(scalar.Decimal(4)).Len(5, 7)
}

var icms00Def = xmlmap.Define[ICMS00]("ICMS00", func() []*xmlmap.Field {
	return []*xmlmap.Field{
		xmlmap.Elem("Orig", func(g *ICMS00) *OrigemMercadoria { return &g.Orig }, origem("N11")),
		xmlmap.Elem("CST", func(g *ICMS00) *string { return &g.CST },
			xmlmap.Tag("CST").Ref("N12").As(scalar.PaddedDigits(2)).Len(2, 2)),
		xmlmap.Elem("ModBC", func(g *ICMS00) *ModalidadeBC { return &g.ModBC },
			xmlmap.Tag("modBC").Ref("N13").As(scalar.Code(ModalidadesBC)).Len(1, 1)),
		xmlmap.Elem("VBC", func(g *ICMS00) *decimal.Decimal { return &g.VBC }, de2("vBC", "N15")),
		xmlmap.Elem("PICMS", func(g *ICMS00) *decimal.Decimal { return &g.PICMS }, de4("pICMS", "N16")),
		xmlmap.Elem("VICMS", func(g *ICMS00) *decimal.Decimal { return &g.VICMS }, de2("vICMS", "N17")),
		xmlmap.Elem("PFCP", func(g *ICMS00) *decimal.Decimal { return &g.PFCP }, de4("pFCP", "N17b").OmitZero()),
		xmlmap.Elem("VFCP", func(g *ICMS00) *decimal.Decimal { return &g.VFCP }, de2("vFCP", "N17c").OmitZero()),
	}
}).New(func() *ICMS00 { return &ICMS00{CST: "00"} })

var icms40Def = xmlmap.Define[ICMS40]("ICMS40", func() []*xmlmap.Field {
	return []*xmlmap.Field{
		xmlmap.Elem("Orig", func(g *ICMS40) *OrigemMercadoria { return &g.Orig }, origem("N11")),
		xmlmap.Elem("CST", func(g *ICMS40) *string { return &g.CST },
			xmlmap.Tag("CST").Ref("N12").As(scalar.PaddedDigits(2)).Len(2, 2)),
		xmlmap.Elem("VICMSDeson", func(g *ICMS40) *decimal.Decimal { return &g.VICMSDeson }, de2("vICMSDeson", "N28a").OmitZero()),
		xmlmap.Elem("MotDesICMS", func(g *ICMS40) **int { return &g.MotDesICMS },
			xmlmap.Tag("motDesICMS").Ref("N28").As(scalar.Int[int]()).Len(1, 2).Optional()),
	}
}).New(func() *ICMS40 { return &ICMS40{CST: "40"} })

var icmsSN102Def = xmlmap.Define[ICMSSN102]("ICMSSN102", func() []*xmlmap.Field {
	return []*xmlmap.Field{
		xmlmap.Elem("Orig", func(g *ICMSSN102) *OrigemMercadoria { return &g.Orig }, origem("N11")),
		xmlmap.Elem("CSOSN", func(g *ICMSSN102) *string { return &g.CSOSN },
			xmlmap.Tag("CSOSN").Ref("N12a").As(scalar.PaddedDigits(3)).Len(3, 3)),
	}
}).New(func() *ICMSSN102 { return &ICMSSN102{CSOSN: "102"} })

var icmsSN202Def = xmlmap.Define[ICMSSN202]("ICMSSN202", func() []*xmlmap.Field {
	return []*xmlmap.Field{
		xmlmap.Elem("Orig", func(g *ICMSSN202) *OrigemMercadoria { return &g.Orig }, origem("N11")),
		xmlmap.Elem("CSOSN", func(g *ICMSSN202) *string { return &g.CSOSN },
			xmlmap.Tag("CSOSN").Ref("N12a").As(scalar.PaddedDigits(3)).Len(3, 3)),
		xmlmap.Elem("ModBCST", func(g *ICMSSN202) *ModalidadeBCST { return &g.ModBCST },
			xmlmap.Tag("modBCST").Ref("N18").As(scalar.Code(ModalidadesBCST)).Len(1, 1)),
		xmlmap.Elem("PMVAST", func(g *ICMSSN202) *decimal.Decimal { return &g.PMVAST }, de4("pMVAST", "N19").OmitZero()),
		xmlmap.Elem("PRedBCST", func(g *ICMSSN202) *decimal.Decimal { return &g.PRedBCST }, de4("pRedBCST", "N20").OmitZero()),
		xmlmap.Elem("VBCST", func(g *ICMSSN202) *decimal.Decimal { return &g.VBCST }, de2("vBCST", "N21")),
		xmlmap.Elem("PICMSST", func(g *ICMSSN202) *decimal.Decimal { return &g.PICMSST }, de4("pICMSST", "N22")),
		xmlmap.Elem("VICMSST", func(g *ICMSSN202) *decimal.Decimal { return &g.VICMSST }, de2("vICMSST", "N23")),
		xmlmap.Elem("VBCFCPST", func(g *ICMSSN202) *decimal.Decimal { return &g.VBCFCPST }, de2("vBCFCPST", "N23a").OmitZero()),
		xmlmap.Elem("PFCPST", func(g *ICMSSN202) *decimal.Decimal { return &g.PFCPST }, de4("pFCPST", "N23b").OmitZero()),
		xmlmap.Elem("VFCPST", func(g *ICMSSN202) *decimal.Decimal { return &g.VFCPST }, de2("vFCPST", "N23d").OmitZero()),
	}
}).New(func() *ICMSSN202 { return &ICMSSN202{CSOSN: "202"} })

var grupoICMSDef = xmlmap.Define[GrupoICMS]("ICMS", func() []*xmlmap.Field {
	return []*xmlmap.Field{
		xmlmap.Elem("Value", func(g *GrupoICMS) *ICMS { return &g.Value },
			xmlmap.Tag("ICMS00").Ref("N02").For(ICMS00{}),
			xmlmap.Tag("ICMS40").Ref("N06").For(ICMS40{}),
			xmlmap.Tag("ICMSSN102").Ref("N10c").For(ICMSSN102{}),
			xmlmap.Tag("ICMSSN202").Ref("N10e").For(ICMSSN202{}),
		),
	}
})
