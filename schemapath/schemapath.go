// Package schemapath locates the XSD files that validate fiscal documents.
package schemapath

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Schema identifies a document schema.
type Schema int

const (
	NFe Schema = iota
	ProcNFe
	InutNFe
	ProcInutNFe
	ConsSitNFe
	ConsStatServ
	EnviNFe
	ConsReciNFe
	EnvEventoCancNFe
	EnvCCe
)

// DefaultVersion is the layout version of the current NF-e schemas.
const DefaultVersion = "4.00"

type schemaInfo struct {
	name string
	// fixed is set for schemas published under a single version.
	fixed string
}

var schemas = map[Schema]schemaInfo{
	NFe:              {name: "nfe"},
	ProcNFe:          {name: "procNFe"},
	InutNFe:          {name: "inutNFe"},
	ProcInutNFe:      {name: "procInutNFe"},
	ConsSitNFe:       {name: "consSitNFe"},
	ConsStatServ:     {name: "consStatServ"},
	EnviNFe:          {name: "enviNFe"},
	ConsReciNFe:      {name: "consReciNFe"},
	EnvEventoCancNFe: {name: "envEventoCancNFe", fixed: "1.00"},
	EnvCCe:           {name: "envCCe", fixed: "1.00"},
}

var ErrSchemaNotFound = errors.New("schema not found")

func (s Schema) String() string {
	if info, ok := schemas[s]; ok {
		return info.name
	}
	return fmt.Sprintf("Schema(%d)", int(s))
}

// Parse returns the schema with the given file stem, such as "procNFe".
func Parse(name string) (Schema, error) {
	s, ok := lo.FindKeyBy(schemas, func(_ Schema, info schemaInfo) bool { return info.name == name })
	if !ok {
		return 0, errors.Wrapf(ErrSchemaNotFound, "unknown schema %q", name)
	}
	return s, nil
}

// All returns every known schema.
func All() []Schema {
	all := lo.Keys(schemas)
	slices.Sort(all)
	return all
}

// FileName is the schema file for version, "<name>_v<version>.xsd". Schemas
// with a fixed version ignore version.
func (s Schema) FileName(version string) (string, error) {
	info, ok := schemas[s]
	if !ok {
		return "", errors.Wrapf(ErrSchemaNotFound, "%s", s)
	}
	if info.fixed != "" {
		version = info.fixed
	}
	if version == "" {
		version = DefaultVersion
	}
	return fmt.Sprintf("%s_v%s.xsd", info.name, version), nil
}

// Resolver maps a schema and layout version to a file location.
type Resolver interface {
	Resolve(s Schema, version string) (string, error)
}

// DirResolver resolves schemas inside a directory and remembers each
// answer.
type DirResolver struct {
	dir    string
	stat   bool
	logger *slog.Logger
	cache  sync.Map // key -> string
}

var _ Resolver = (*DirResolver)(nil)

type key struct {
	schema  Schema
	version string
}

type Option func(*DirResolver)

// CheckExists makes Resolve fail with ErrSchemaNotFound for missing files.
func CheckExists(v bool) Option {
	return func(r *DirResolver) { r.stat = v }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *DirResolver) { r.logger = l }
}

func NewDirResolver(dir string, opts ...Option) *DirResolver {
	r := &DirResolver{dir: dir}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

func (r *DirResolver) Dir() string { return r.dir }

func (r *DirResolver) Resolve(s Schema, version string) (string, error) {
	k := key{schema: s, version: version}
	if p, ok := r.cache.Load(k); ok {
		return p.(string), nil
	}
	name, err := s.FileName(version)
	if err != nil {
		return "", err
	}
	p := filepath.Join(r.dir, name)
	if r.stat {
		if _, err := os.Stat(p); err != nil {
			return "", errors.Wrapf(ErrSchemaNotFound, "%s: %v", p, err)
		}
	}
	r.logger.Debug("resolved schema", "schema", s, "version", version, "path", p)
	r.cache.Store(k, p)
	return p, nil
}
