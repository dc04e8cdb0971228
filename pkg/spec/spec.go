package spec

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// ProjectFile is the catalog file name looked up by LoadProject.
const ProjectFile = "solaris.yaml"

//go:embed defaults/solaris.yaml
var defaultCatalog []byte

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Parse(data)
}

// LoadProject loads a catalog from a project directory.
// It looks for solaris.yaml in the given directory.
func LoadProject(projectDir string) (*Catalog, error) {
	return Load(filepath.Join(projectDir, ProjectFile))
}

// Parse decodes catalog YAML and fills omitted settings with defaults.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}
	if err := c.ApplyDefaults(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns the built-in Imperium Solaris catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// LoadOrDefault loads the project catalog, or the built-in one when
// projectDir is empty.
func LoadOrDefault(projectDir string) (*Catalog, error) {
	if projectDir == "" {
		return Default(), nil
	}
	return LoadProject(projectDir)
}

// ApplyDefaults fills zero-valued canvas, population, layout and viewport
// settings from the default tags on the catalog types. Region definitions are
// left as authored.
func (c *Catalog) ApplyDefaults() error {
	if err := defaults.Set(c); err != nil {
		return fmt.Errorf("applying catalog defaults: %w", err)
	}
	return nil
}
