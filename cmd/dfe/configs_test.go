package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/go-dfe/xmlmap"
)

func TestLoadFileConfig(t *testing.T) {
	p := filepath.Join(t.TempDir(), "dfe.yaml")
	data := "schemaDir: /srv/xsd\nversion: \"4.00\"\nnamespaceMode: ignore\ninvariantNumerics: false\nmaxDepth: 64\n"
	if err := os.WriteFile(p, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := loadFileConfig(p)
	if err != nil {
		t.Fatal(err)
	}
	f := false
	want := FileConfig{
		SchemaDir:         "/srv/xsd",
		Version:           "4.00",
		NamespaceMode:     "ignore",
		InvariantNumerics: &f,
		MaxDepth:          64,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("loadFileConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestMapperOpts(t *testing.T) {
	no := false
	tests := []struct {
		name    string
		cfg     MainConfig
		want    xmlmap.Options
		wantErr bool
	}{
		{
			name: "defaults",
			want: xmlmap.Options{NamespaceMode: xmlmap.Strict, InvariantNumerics: true},
		},
		{
			name: "file",
			cfg: MainConfig{File: FileConfig{
				NamespaceMode:        "ignore-on-read",
				TolerateUnknownNodes: true,
				InvariantNumerics:    &no,
			}},
			want: xmlmap.Options{NamespaceMode: xmlmap.IgnoreOnRead, TolerateUnknownNodes: true},
		},
		{
			name: "flags override file",
			cfg: MainConfig{
				NS:    "strict",
				Comma: true,
				File:  FileConfig{NamespaceMode: "ignore"},
			},
			want: xmlmap.Options{NamespaceMode: xmlmap.Strict},
		},
		{
			name:    "bad mode",
			cfg:     MainConfig{NS: "loose"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := tt.cfg.mapperOpts()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			got := xmlmap.DefaultOptions()
			for _, opt := range opts {
				opt(&got)
			}
			got.Logger = nil
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("options mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
