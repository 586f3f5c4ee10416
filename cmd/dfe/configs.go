package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/go-dfe/encode"
	"github.com/signadot/go-dfe/nfe"
	"github.com/signadot/go-dfe/parse"
	"github.com/signadot/go-dfe/schemapath"
	"github.com/signadot/go-dfe/xmlmap"
)

type MainConfig struct {
	V        bool   `cli:"name=v desc='log debug messages'"`
	Config   string `cli:"name=config desc='yaml configuration file'"`
	NS       string `cli:"name=ns desc='namespace mode: strict or ignore'"`
	Tolerate bool   `cli:"name=tolerate desc='skip unknown elements on read'"`
	Comma    bool   `cli:"name=comma desc='accept a decimal comma on read'"`
	Color    bool   `cli:"name=color desc='encode with color'"`

	File FileConfig

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// FileConfig is the yaml configuration file layout. Flags given on the
// command line take precedence.
type FileConfig struct {
	SchemaDir            string `yaml:"schemaDir"`
	Version              string `yaml:"version"`
	NamespaceMode        string `yaml:"namespaceMode"`
	TolerateUnknownNodes bool   `yaml:"tolerateUnknownNodes"`
	InvariantNumerics    *bool  `yaml:"invariantNumerics"`
	MaxDepth             int    `yaml:"maxDepth"`
}

func loadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return fc, nil
}

func (cfg *MainConfig) mapperOpts() ([]xmlmap.Option, error) {
	mode := cfg.File.NamespaceMode
	if cfg.NS != "" {
		mode = cfg.NS
	}
	res := []xmlmap.Option{
		xmlmap.WithLogger(theLog),
		xmlmap.WithTolerateUnknownNodes(cfg.Tolerate || cfg.File.TolerateUnknownNodes),
	}
	if mode != "" {
		m, err := xmlmap.ParseNamespaceMode(mode)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		res = append(res, xmlmap.WithNamespaceMode(m))
	}
	invariant := true
	if cfg.File.InvariantNumerics != nil {
		invariant = *cfg.File.InvariantNumerics
	}
	if cfg.Comma {
		invariant = false
	}
	return append(res, xmlmap.WithInvariantNumerics(invariant)), nil
}

func (cfg *MainConfig) mapper() (*xmlmap.Mapper, error) {
	opts, err := cfg.mapperOpts()
	if err != nil {
		return nil, err
	}
	reg, err := nfe.NewRegistry()
	if err != nil {
		return nil, err
	}
	return xmlmap.NewMapper(reg.WithLogger(theLog), opts...), nil
}

func (cfg *MainConfig) resolver(stat bool) *schemapath.DirResolver {
	dir := cfg.File.SchemaDir
	if dir == "" {
		dir = "schemas"
	}
	return schemapath.NewDirResolver(dir,
		schemapath.CheckExists(stat),
		schemapath.WithLogger(theLog))
}

func (cfg *MainConfig) version() string {
	if cfg.File.Version != "" {
		return cfg.File.Version
	}
	return schemapath.DefaultVersion
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.MaxDepth(cfg.File.MaxDepth)}
}

func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer, indent string) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeIndent(indent),
		encode.EncodeDecl(true),
	}
	if cfg.colored(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type TypesConfig struct {
	*MainConfig

	Types *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only report whether documents differ'"`

	Check *cli.Command
}

type DumpConfig struct {
	*MainConfig
	J bool `cli:"name=j aliases=json desc='dump as json'"`
	Y bool `cli:"name=y aliases=yaml desc='dump as yaml (default)'"`

	Dump *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Indent  string `cli:"name=indent desc='indentation string'"`
	Compact bool   `cli:"name=compact desc='no indentation'"`

	Fmt *cli.Command
}

type SchemaConfig struct {
	*MainConfig
	List bool `cli:"name=l aliases=list desc='list schema ids'"`
	Stat bool `cli:"name=stat desc='fail if the schema file does not exist'"`

	Schema *cli.Command
}
