package config

import "gopkg.in/yaml.v3"

// Projectfile represents the structure of the anvil.yaml project file.
type Projectfile struct {
	Project     string            `yaml:"project"`
	Description string            `yaml:"description"`
	Default     string            `yaml:"default"`
	BaseDir     string            `yaml:"basedir"`
	Libraries   []LibraryDTO      `yaml:"libraries"`
	References  map[string]string `yaml:"references"`
	// Setup is the implicit target: elements run before any target.
	Setup []yaml.Node `yaml:"setup"`
	// Targets is kept as a node so declaration order survives decoding.
	Targets yaml.Node `yaml:"targets"`
}

// LibraryDTO represents a type library import.
type LibraryDTO struct {
	Location string            `yaml:"location"`
	Policy   string            `yaml:"policy"`
	Role     string            `yaml:"role"`
	Name     string            `yaml:"name"`
	Aliases  map[string]string `yaml:"aliases"`
}

// TargetDTO represents a target definition.
type TargetDTO struct {
	Description string      `yaml:"description"`
	Depends     []string    `yaml:"depends"`
	If          string      `yaml:"if"`
	Unless      string      `yaml:"unless"`
	Tasks       []yaml.Node `yaml:"tasks"`
}
