package nfe

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/signadot/go-dfe/encode"
	"github.com/signadot/go-dfe/libdiff"
	"github.com/signadot/go-dfe/parse"
	"github.com/signadot/go-dfe/xmlmap"
)

func testMapper(t *testing.T, opts ...xmlmap.Option) *xmlmap.Mapper {
	t.Helper()
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return xmlmap.NewMapper(reg, opts...)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDecodeSample(t *testing.T) {
	data, err := os.ReadFile("testdata/nfe-sample.xml")
	if err != nil {
		t.Fatal(err)
	}
	src, err := parse.Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	m := testMapper(t)
	doc, err := xmlmap.Decode[NFe](m, src)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	inf := doc.InfNFe
	if inf.Versao != "4.00" || !strings.HasPrefix(inf.ID, "NFe3524") {
		t.Errorf("attributes = %q, %q", inf.Versao, inf.ID)
	}
	wantEmi := time.Date(2024, 3, 9, 16, 4, 5, 0, time.UTC)
	if !inf.Ide.DhEmi.Equal(wantEmi) || inf.Ide.TpNF != Saida || inf.Ide.Mod != 55 {
		t.Errorf("ide = %+v", inf.Ide)
	}
	if len(inf.Det) != 3 {
		t.Fatalf("got %d items", len(inf.Det))
	}
	for i, d := range inf.Det {
		if d.NItem != i+1 {
			t.Errorf("det[%d].NItem = %d", i, d.NItem)
		}
	}
	want := ICMSSN202{
		Orig:    OrigemEstrangeiraMercadoInterno,
		CSOSN:   "202",
		ModBCST: ModBCSTMargemValorAgregado,
		PMVAST:  dec("40"),
		VBCST:   dec("126"),
		PICMSST: dec("18"),
		VICMSST: dec("5.58"),
	}
	if diff := cmp.Diff(ICMS(want), inf.Det[1].Imposto.ICMS.Value); diff != "" {
		t.Errorf("det[1] ICMS mismatch (-want +got):\n%s", diff)
	}
	if _, ok := inf.Det[0].Imposto.ICMS.Value.(ICMSSN102); !ok {
		t.Errorf("det[0] ICMS = %T", inf.Det[0].Imposto.ICMS.Value)
	}
	if _, ok := inf.Det[2].Imposto.ICMS.Value.(ICMS00); !ok {
		t.Errorf("det[2] ICMS = %T", inf.Det[2].Imposto.ICMS.Value)
	}
	if inf.InfAdic == nil || !strings.HasPrefix(inf.InfAdic.InfCpl, "DOCUMENTO") {
		t.Errorf("infAdic = %+v", inf.InfAdic)
	}

	out, err := m.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if changes := libdiff.Diff(src, out); len(changes) != 0 {
		t.Errorf("re-encoded document differs: %v", changes)
	}
}

func sampleDoc() *NFe {
	return &NFe{InfNFe: InfNFe{
		Versao: Versao,
		ID:     "NFe35240312345678000195550010000001231000001234",
		Ide: Ide{
			CUF: 35, CNF: "123", NatOp: "VENDA", Mod: 55, Serie: 1, NNF: 123,
			DhEmi:  time.Date(2024, 3, 9, 13, 4, 5, 0, time.FixedZone("", -3*3600)),
			TpNF:   Saida,
			CMunFG: "3550308",
			TpAmb:  2,
		},
		Emit: Emit{CNPJ: "12345678000195", XNome: "EMPRESA TESTE LTDA", IE: "123456789012", CRT: CRTRegimeNormal},
		Det: []Det{{
			NItem: 1,
			Prod: Prod{
				CProd: "001", CEAN: "SEM GTIN", XProd: "CANETA", NCM: "96081000", CFOP: 5102,
				UCom: "UN", QCom: 2, VUnCom: dec("1.5"), VProd: dec("3"),
			},
			Imposto: Imposto{ICMS: GrupoICMS{Value: ICMS40{Orig: OrigemNacional, CST: "41", MotDesICMS: new(int)}}},
		}},
		Total: Total{ICMSTot: ICMSTot{VProd: dec("3"), VNF: dec("3")}},
	}}
}

func TestRoundTrip(t *testing.T) {
	m := testMapper(t)
	in := sampleDoc()
	*in.InfNFe.Det[0].Imposto.ICMS.Value.(ICMS40).MotDesICMS = 9
	data, err := m.MarshalBytes(in, encode.EncodeIndent("  "), encode.EncodeDecl(true))
	if err != nil {
		t.Fatalf("MarshalBytes() error = %v", err)
	}
	s := string(data)
	for _, part := range []string{
		`<NFe xmlns="http://www.portalfiscal.inf.br/nfe">`,
		`<cNF>00000123</cNF>`,
		`<ICMS40>`,
		`<CST>41</CST>`,
		`<motDesICMS>9</motDesICMS>`,
		`<vBC>0.00</vBC>`,
	} {
		if !strings.Contains(s, part) {
			t.Errorf("output lacks %s:\n%s", part, s)
		}
	}
	for _, part := range []string{"<infAdic", "<vICMSDeson>", "<xFant>", "<vTotTrib>"} {
		if strings.Contains(s, part) {
			t.Errorf("output has omitted field %s", part)
		}
	}
	var out NFe
	if err := m.UnmarshalBytes(data, &out); err != nil {
		t.Fatalf("UnmarshalBytes() error = %v", err)
	}
	in.InfNFe.Ide.CNF = "00000123"
	if diff := cmp.Diff(in, &out, cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) })); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestICMSDefaults(t *testing.T) {
	m := testMapper(t)
	model, err := m.Registry().ByName("ICMSSN202")
	if err != nil {
		t.Fatal(err)
	}
	if g := model.New().(*ICMSSN202); g.CSOSN != "202" {
		t.Errorf("CSOSN default = %q", g.CSOSN)
	}

	f, err := m.MarshalElement(ICMSSN202{CSOSN: "202", ModBCST: ModBCSTPauta}, xmlmap.Tag("ICMSSN202"))
	if err != nil {
		t.Fatal(err)
	}
	got := encode.MustString(f)
	want := "<ICMSSN202><orig>0</orig><CSOSN>202</CSOSN><modBCST>5</modBCST>" +
		"<vBCST>0.00</vBCST><pICMSST>0.0000</pICMSST><vICMSST>0.00</vICMSST></ICMSSN202>"
	if got != want {
		t.Errorf("MarshalElement() =\n%s\nwant\n%s", got, want)
	}
}

func TestDataErrors(t *testing.T) {
	data, err := os.ReadFile("testdata/nfe-sample.xml")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		from string
		to   string
		want error
	}{
		{name: "unknown origin", from: "<orig>2</orig>", to: "<orig>9</orig>", want: xmlmap.ErrUnknownCode},
		{name: "short cnpj", from: "<CNPJ>12345678000195</CNPJ>", to: "<CNPJ>1234</CNPJ>", want: xmlmap.ErrFormatMismatch},
		{name: "missing vBCST", from: "<vBCST>126.00</vBCST>", to: "", want: xmlmap.ErrMissingMandatoryField},
		{name: "unknown ICMS group", from: "ICMSSN102>", to: "ICMS60>", want: xmlmap.ErrMissingMandatoryField},
		{name: "three fraction digits", from: "<vProd>3.00</vProd>", to: "<vProd>3.001</vProd>", want: xmlmap.ErrFormatMismatch},
	}
	m := testMapper(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := strings.ReplaceAll(string(data), tt.from, tt.to)
			var out NFe
			err := m.UnmarshalBytes([]byte(doc), &out)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}
