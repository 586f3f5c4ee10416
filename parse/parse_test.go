package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/signadot/go-dfe/encode"
	"github.com/signadot/go-dfe/fragment"
)

const ns = "http://www.portalfiscal.inf.br/nfe"

func TestParse(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?>
<!-- nota -->
<NFe xmlns="` + ns + `" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <infNFe Id="NFe123" versao="4.00">
    <det nItem="1">
      <prod><cProd> 001 </cProd></prod>
    </det>
    <x:extra xmlns:x="urn:x">y</x:extra>
  </infNFe>
</NFe>`
	got, err := ParseString(src)
	if err != nil {
		t.Fatal(err)
	}
	want := fragment.New(ns, "NFe").Append(
		fragment.New(ns, "infNFe").
			WithAttr("", "Id", "NFe123").
			WithAttr("", "versao", "4.00").
			Append(
				fragment.New(ns, "det").WithAttr("", "nItem", "1").Append(
					fragment.New(ns, "prod").Append(fragment.Leaf(ns, "cProd", "001")),
				),
				fragment.Leaf("urn:x", "extra", "y"),
			),
	)
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(fragment.Fragment{}, "Parent")); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
	if got.Children[0].Parent != got {
		t.Errorf("parent link not set")
	}
}

func TestParseKeepWhitespace(t *testing.T) {
	got, err := ParseString(`<a> x </a>`, KeepWhitespace(true))
	if err != nil {
		t.Fatal(err)
	}
	if got.Text != " x " {
		t.Errorf("Text = %q", got.Text)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opts []ParseOption
		want error
	}{
		{name: "empty", src: ``, want: ErrNoRoot},
		{name: "only comment", src: `<!-- x -->`, want: ErrNoRoot},
		{name: "two roots", src: `<a/><b/>`, want: ErrMultipleRoots},
		{name: "too deep", src: `<a><b><c/></b></a>`, opts: []ParseOption{MaxDepth(2)}, want: ErrTooDeep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.src, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if _, err := ParseString(`<a><b></a>`); err == nil {
		t.Errorf("expected syntax error")
	}
}

func TestParseEncodeRoundTrip(t *testing.T) {
	src := `<NFe xmlns="` + ns + `"><infNFe Id="NFe1"><det nItem="1"><prod><xProd>A &amp; B</xProd></prod></det></infNFe></NFe>`
	f, err := ParseString(src)
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(f); got != src {
		t.Errorf("round trip\n got %s\nwant %s", got, src)
	}
}
