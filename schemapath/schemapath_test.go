package schemapath

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolve(t *testing.T) {
	r := NewDirResolver("schemas")
	tests := []struct {
		schema  Schema
		version string
		want    string
	}{
		{schema: NFe, version: "4.00", want: "schemas/nfe_v4.00.xsd"},
		{schema: ProcNFe, version: "", want: "schemas/procNFe_v4.00.xsd"},
		{schema: ConsStatServ, version: "3.10", want: "schemas/consStatServ_v3.10.xsd"},
		{schema: EnvEventoCancNFe, version: "4.00", want: "schemas/envEventoCancNFe_v1.00.xsd"},
		{schema: EnvCCe, version: "4.00", want: "schemas/envCCe_v1.00.xsd"},
	}
	for _, tt := range tests {
		t.Run(tt.schema.String(), func(t *testing.T) {
			got, err := r.Resolve(tt.schema, tt.version)
			if err != nil {
				t.Fatal(err)
			}
			if got != filepath.FromSlash(tt.want) {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
	if _, err := r.Resolve(Schema(99), "4.00"); !errors.Is(err, ErrSchemaNotFound) {
		t.Errorf("unknown schema error = %v", err)
	}
}

func TestResolveCheckExists(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "nfe_v4.00.xsd"), []byte("<xs:schema/>"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := NewDirResolver(dir, CheckExists(true))
	if _, err := r.Resolve(NFe, "4.00"); err != nil {
		t.Errorf("Resolve(nfe) error = %v", err)
	}
	if _, err := r.Resolve(InutNFe, "4.00"); !errors.Is(err, ErrSchemaNotFound) {
		t.Errorf("Resolve(inutNFe) error = %v", err)
	}
	// cached answers survive removal of the file
	if err := os.Remove(filepath.Join(dir, "nfe_v4.00.xsd")); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Resolve(NFe, "4.00"); err != nil {
		t.Errorf("cached Resolve(nfe) error = %v", err)
	}
}

func TestParse(t *testing.T) {
	for _, s := range All() {
		got, err := Parse(s.String())
		if err != nil || got != s {
			t.Errorf("Parse(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := Parse("cte"); !errors.Is(err, ErrSchemaNotFound) {
		t.Errorf("Parse(cte) error = %v", err)
	}
	if len(All()) != 10 {
		t.Errorf("All() = %v", All())
	}
}
