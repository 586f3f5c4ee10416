package fragment

import "testing"

const ns = "http://www.portalfiscal.inf.br/nfe"

func sample() *Fragment {
	return New(ns, "det").
		WithAttr("", "nItem", "1").
		Append(
			Leaf(ns, "cProd", "001"),
			Leaf(ns, "vProd", "10.00"),
			Leaf("", "vProd", "11.00"),
		)
}

func TestFind(t *testing.T) {
	f := sample()
	tests := []struct {
		name string
		find Name
		m    Match
		want string
	}{
		{name: "exact", find: Name{Space: ns, Local: "vProd"}, m: MatchExact, want: "10.00"},
		{name: "exact no namespace", find: Name{Local: "vProd"}, m: MatchExact, want: "11.00"},
		{name: "local", find: Name{Space: "urn:other", Local: "cProd"}, m: MatchLocal, want: "001"},
		{name: "missing", find: Name{Space: "urn:other", Local: "cProd"}, m: MatchExact, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Find(tt.find, tt.m)
			if tt.want == "" {
				if got != nil {
					t.Fatalf("Find() = %v, want nil", got.Name)
				}
				return
			}
			if got == nil {
				t.Fatalf("Find() = nil, want %q", tt.want)
			}
			if got.Text != tt.want {
				t.Errorf("Find().Text = %q, want %q", got.Text, tt.want)
			}
		})
	}
}

func TestFindAllOrder(t *testing.T) {
	f := sample()
	all := f.FindAll(Name{Local: "vProd"}, MatchLocal)
	if len(all) != 2 {
		t.Fatalf("got %d matches, want 2", len(all))
	}
	if all[0].Text != "10.00" || all[1].Text != "11.00" {
		t.Errorf("matches out of document order: %q, %q", all[0].Text, all[1].Text)
	}
	if got := f.Indexes(Name{Local: "vProd"}, MatchLocal); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Indexes() = %v, want [1 2]", got)
	}
}

func TestAttr(t *testing.T) {
	f := sample()
	v, ok := f.Attr(Name{Local: "nItem"}, MatchExact)
	if !ok || v != "1" {
		t.Errorf("Attr(nItem) = %q, %v", v, ok)
	}
	if _, ok := f.Attr(Name{Local: "Id"}, MatchLocal); ok {
		t.Errorf("Attr(Id) unexpectedly found")
	}
}

func TestEqual(t *testing.T) {
	a := sample()
	b := sample()
	b.Children[0].Text = "  001\n"
	if !Equal(a, b) {
		t.Errorf("Equal() = false for whitespace-only difference")
	}
	b.Attrs = nil
	b.WithAttr("", "nItem", "1")
	if !Equal(a, b) {
		t.Errorf("Equal() = false after rebuilding attrs")
	}
	b.Children[1].Text = "10.01"
	if Equal(a, b) {
		t.Errorf("Equal() = true for different text")
	}
	c := sample()
	c.Children = c.Children[:2]
	if Equal(a, c) {
		t.Errorf("Equal() = true for different child count")
	}
}

func TestCloneAndPath(t *testing.T) {
	a := sample()
	c := a.Clone()
	if !Equal(a, c) {
		t.Fatalf("clone differs")
	}
	c.Children[0].Text = "999"
	if a.Children[0].Text != "001" {
		t.Errorf("clone shares children with original")
	}
	if c.Children[0].Parent != c {
		t.Errorf("clone child parent not reset")
	}
	if got := a.Children[1].Path(); got != "/det/vProd" {
		t.Errorf("Path() = %q", got)
	}
}

func TestNameString(t *testing.T) {
	if got := (Name{Space: ns, Local: "NFe"}).String(); got != "{"+ns+"}NFe" {
		t.Errorf("String() = %q", got)
	}
	if got := (Name{Local: "NFe"}).String(); got != "NFe" {
		t.Errorf("String() = %q", got)
	}
}
