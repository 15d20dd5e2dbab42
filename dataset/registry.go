package dataset

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data
var embeddedData embed.FS

// DomainConfig describes one registered domain: where its dataset lives,
// which columns are indexed and rendered, and the keywords that pull
// auto-detection toward it.
type DomainConfig struct {
	// Name is the domain's registered name, e.g. "oauth2-flows".
	Name string `yaml:"name"`

	// File is the dataset path, relative to the data filesystem root.
	File string `yaml:"file"`

	// SearchColumns are the columns whose values form each record's
	// searchable text, in this order.
	SearchColumns []string `yaml:"search_columns"`

	// OutputColumns are the columns rendered in results, in this order.
	OutputColumns []string `yaml:"output_columns"`

	// StackColumn optionally names the column holding a technology
	// stack value. Empty means the domain has no stack-bearing field
	// and every stack filter matches nothing.
	StackColumn string `yaml:"stack_column,omitempty"`

	// Keywords are the curated terms that associate a free-text query
	// with this domain during auto-detection.
	Keywords []string `yaml:"keywords"`
}

type registryFile struct {
	Domains []DomainConfig `yaml:"domains"`
}

// Registry is the immutable configuration table mapping domain names to
// dataset schemas and detection keywords. Domain order is registration
// order, which auto-detection uses as its tie-break priority.
type Registry struct {
	domains []DomainConfig
	byName  map[string]int
}

// NewRegistry builds a registry from an ordered list of domain configs.
func NewRegistry(domains []DomainConfig) (*Registry, error) {
	if len(domains) == 0 {
		return nil, fmt.Errorf("%w: no domains registered", ErrInvalidRegistry)
	}

	byName := make(map[string]int, len(domains))
	for i, d := range domains {
		if d.Name == "" {
			return nil, fmt.Errorf("%w: domain %d has no name", ErrInvalidRegistry, i)
		}
		if d.File == "" {
			return nil, fmt.Errorf("%w: domain %q has no dataset file", ErrInvalidRegistry, d.Name)
		}
		if len(d.SearchColumns) == 0 {
			return nil, fmt.Errorf("%w: domain %q has no search columns", ErrInvalidRegistry, d.Name)
		}
		if len(d.OutputColumns) == 0 {
			return nil, fmt.Errorf("%w: domain %q has no output columns", ErrInvalidRegistry, d.Name)
		}
		if _, exists := byName[d.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate domain %q", ErrInvalidRegistry, d.Name)
		}
		byName[d.Name] = i
	}

	return &Registry{domains: domains, byName: byName}, nil
}

// LoadRegistry parses a YAML registry from r.
func LoadRegistry(r io.Reader) (*Registry, error) {
	var file registryFile
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegistry, err)
	}
	return NewRegistry(file.Domains)
}

// LoadRegistryFile parses a YAML registry from a file on disk.
func LoadRegistryFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegistry, err)
	}
	defer f.Close()
	return LoadRegistry(f)
}

// DefaultRegistry returns the registry for the embedded curated datasets.
func DefaultRegistry() (*Registry, error) {
	f, err := embeddedData.Open("data/registry.yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegistry, err)
	}
	defer f.Close()
	return LoadRegistry(f)
}

// DefaultFS returns the filesystem holding the embedded curated datasets.
func DefaultFS() fs.FS {
	sub, err := fs.Sub(embeddedData, "data")
	if err != nil {
		// The data directory is compiled in; fs.Sub on it cannot fail.
		panic(err)
	}
	return sub
}

// Lookup returns the config for the named domain.
func (r *Registry) Lookup(name string) (*DomainConfig, bool) {
	i, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return &r.domains[i], true
}

// Domains returns the registered domain configs in registration order.
// The returned slice must not be modified.
func (r *Registry) Domains() []DomainConfig {
	return r.domains
}

// Names returns the registered domain names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.domains))
	for i, d := range r.domains {
		names[i] = d.Name
	}
	return names
}

// Len returns the number of registered domains.
func (r *Registry) Len() int {
	return len(r.domains)
}
