package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"slices"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed components.yaml
var embeddedComponents []byte

var componentName = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Component is one catalog entry.
type Component struct {
	Name         string   `yaml:"name" json:"name"`
	Default      bool     `yaml:"default" json:"default"`
	Dependencies []string `yaml:"dependencies" json:"dependencies"`
	Files        []string `yaml:"files" json:"files"`
}

// DialogValues is the per-component triple used to drive the selection UI.
type DialogValues struct {
	Default      bool     `json:"default"`
	Dependencies []string `json:"dependencies"`
	Files        []string `json:"files"`
}

// Catalog is an immutable, ordered set of components.
type Catalog struct {
	components []Component
	index      map[string]int
}

type document struct {
	Components []Component `yaml:"components"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog embedded in the binary. It is parsed once.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(embeddedComponents)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("loading embedded catalog: %w", defaultErr)
		}
	})
	return defaultCatalog, defaultErr
}

// LoadFile reads a catalog from a YAML file with the same layout as the
// embedded components.yaml.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse builds a catalog from YAML. Component names must be unique.
// Dependencies naming unknown components are rejected, but they are never
// resolved or enforced beyond that.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshaling YAML: %w", err)
	}
	return New(doc.Components)
}

// New builds a catalog from an in-memory table. The slice is copied.
func New(components []Component) (*Catalog, error) {
	c := &Catalog{
		components: make([]Component, 0, len(components)),
		index:      make(map[string]int, len(components)),
	}

	for _, comp := range components {
		if !componentName.MatchString(comp.Name) {
			return nil, fmt.Errorf("invalid component name %q", comp.Name)
		}
		if _, dup := c.index[comp.Name]; dup {
			return nil, fmt.Errorf("duplicate component %q", comp.Name)
		}
		for _, f := range comp.Files {
			if f == "" {
				return nil, fmt.Errorf("component %q declares an empty file name", comp.Name)
			}
		}
		c.index[comp.Name] = len(c.components)
		c.components = append(c.components, clone(comp))
	}

	for _, comp := range c.components {
		for _, dep := range comp.Dependencies {
			if _, ok := c.index[dep]; !ok {
				return nil, fmt.Errorf("component %q depends on unknown component %q", comp.Name, dep)
			}
		}
	}

	return c, nil
}

// List returns every component in declaration order. The result is a copy.
func (c *Catalog) List() []Component {
	out := make([]Component, len(c.components))
	for i, comp := range c.components {
		out[i] = clone(comp)
	}
	return out
}

// Names returns the component names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.components))
	for i, comp := range c.components {
		names[i] = comp.Name
	}
	return names
}

// Get returns the named component.
func (c *Catalog) Get(name string) (Component, bool) {
	i, ok := c.index[name]
	if !ok {
		return Component{}, false
	}
	return clone(c.components[i]), true
}

// Has reports whether name is a registered component.
func (c *Catalog) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}

// DialogValues returns the default/dependencies/files triple of every
// component, keyed by name.
func (c *Catalog) DialogValues() map[string]DialogValues {
	values := make(map[string]DialogValues, len(c.components))
	for _, comp := range c.components {
		values[comp.Name] = DialogValues{
			Default:      comp.Default,
			Dependencies: slices.Clone(comp.Dependencies),
			Files:        slices.Clone(comp.Files),
		}
	}
	return values
}

// Defaults returns a selection map with every component set to its default.
func (c *Catalog) Defaults() map[string]bool {
	sel := make(map[string]bool, len(c.components))
	for _, comp := range c.components {
		sel[comp.Name] = comp.Default
	}
	return sel
}

func clone(comp Component) Component {
	comp.Dependencies = slices.Clone(comp.Dependencies)
	comp.Files = slices.Clone(comp.Files)
	return comp
}
