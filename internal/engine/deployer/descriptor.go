package deployer

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Descriptor is the parsed anvil-lib.yaml of a library package.
type Descriptor struct {
	Module      string            `yaml:"module"`
	Version     string            `yaml:"version"`
	Requires    string            `yaml:"requires"`
	Roles       []RoleEntry       `yaml:"roles"`
	Definitions []DefinitionEntry `yaml:"definitions"`
}

// RoleEntry declares a role. Implementation names a contract check symbol.
type RoleEntry struct {
	Name           string `yaml:"name"`
	Implementation string `yaml:"implementation"`
	Adapter        string `yaml:"adapter"`
}

// DefinitionEntry binds a name in a role to an implementation symbol.
type DefinitionEntry struct {
	Role           string `yaml:"role"`
	Name           string `yaml:"name"`
	Implementation string `yaml:"implementation"`
}

// ParseDescriptor decodes and validates a descriptor. Unknown keys are rejected.
func ParseDescriptor(data []byte) (*Descriptor, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var desc Descriptor
	if err := dec.Decode(&desc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", domain.ErrDescriptorInvalid, err)
	}

	if err := desc.validate(); err != nil {
		return nil, err
	}
	return &desc, nil
}

// Declares reports whether the descriptor defines key.
func (d *Descriptor) Declares(key domain.TypeKey) bool {
	for _, def := range d.Definitions {
		if def.Role == key.Role && def.Name == key.Name {
			return true
		}
	}
	return false
}

func (d *Descriptor) validate() error {
	if d.Module == "" {
		return missing("module", -1)
	}
	for i, r := range d.Roles {
		if r.Name == "" {
			return missing("roles.name", i)
		}
		if r.Implementation == "" {
			return missing("roles.implementation", i)
		}
	}
	for i := range d.Definitions {
		def := &d.Definitions[i]
		if def.Role == "" {
			def.Role = domain.RoleTask
		}
		if def.Name == "" {
			return missing("definitions.name", i)
		}
		if def.Implementation == "" {
			return missing("definitions.implementation", i)
		}
	}
	return nil
}

func missing(field string, index int) error {
	err := zerr.With(zerr.Wrap(domain.ErrDescriptorInvalid, "missing required field"), "field", field)
	if index >= 0 {
		err = zerr.With(err, "index", index)
	}
	return err
}
