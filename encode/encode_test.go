package encode

import (
	"strings"
	"testing"

	"github.com/signadot/go-dfe/fragment"
)

const ns = "http://www.portalfiscal.inf.br/nfe"

func TestEncodeCompact(t *testing.T) {
	f := fragment.New(ns, "prod").Append(
		fragment.Leaf(ns, "cProd", "001"),
		fragment.Leaf(ns, "xProd", "Parafuso & porca <M6>"),
		fragment.New(ns, "vazio"),
	)
	got := MustString(f)
	want := `<prod xmlns="` + ns + `"><cProd>001</cProd><xProd>Parafuso &amp; porca &lt;M6&gt;</xProd><vazio/></prod>`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeIndentDecl(t *testing.T) {
	f := fragment.New(ns, "ICMS").Append(
		fragment.New(ns, "ICMS00").Append(fragment.Leaf(ns, "orig", "0")),
	)
	got := MustString(f, EncodeIndent("  "), EncodeDecl(true))
	want := strings.Join([]string{
		xmlDecl,
		`<ICMS xmlns="` + ns + `">`,
		`  <ICMS00>`,
		`    <orig>0</orig>`,
		`  </ICMS00>`,
		`</ICMS>`,
		``,
	}, "\n")
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeNamespaces(t *testing.T) {
	const xsi = "http://www.w3.org/2001/XMLSchema-instance"
	f := fragment.New(ns, "NFe").
		WithAttr(xsi, "schemaLocation", "nfe.xsd").
		Append(fragment.Leaf("", "semNS", "x"))
	got := MustString(f, EncodeSelfClose(false))
	want := `<NFe xmlns="` + ns + `" xsi:schemaLocation="nfe.xsd" xmlns:xsi="` + xsi + `"><semNS xmlns="">x</semNS></NFe>`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeColorsKeepsText(t *testing.T) {
	f := fragment.Leaf("", "pICMS", "18.00%")
	c := &Colors{Default: colorDefault, Map: nil}
	got := MustString(f, EncodeColors(c))
	if got != `<pICMS>18.00%</pICMS>` {
		t.Errorf("got %s", got)
	}
}

func TestEncodeEmptyName(t *testing.T) {
	var sb strings.Builder
	if err := Encode(fragment.New(ns, ""), &sb); err == nil {
		t.Fatal("expected error for empty element name")
	}
}
