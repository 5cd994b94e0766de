// Package builtin is the library of tasks and actions every anvil binary ships with.
package builtin

import (
	_ "embed"

	"go.trai.ch/anvil/internal/core/ports"
)

// ModuleID is the symbol table id the embedded descriptor refers to.
const ModuleID = "anvil.builtin"

// Source names the embedded descriptor in log messages.
const Source = "builtin"

//go:embed anvil-lib.yaml
var descriptor []byte

// Descriptor returns the library descriptor of the built-in module.
func Descriptor() []byte {
	return descriptor
}

// Symbols returns the implementation references of the built-in module.
func Symbols() ports.SymbolTable {
	return ports.SymbolTable{
		"Echo":           ports.Factory(func() (ports.Component, error) { return &Echo{}, nil }),
		"Property":       ports.Factory(func() (ports.Component, error) { return &Property{}, nil }),
		"Fail":           ports.Factory(func() (ports.Component, error) { return &Fail{}, nil }),
		"Exec":           ports.Factory(func() (ports.Component, error) { return &Exec{}, nil }),
		"ActionContract": ports.Contract(ActionContract),
		"ActionAdapter":  ports.Adapter(ActionAdapter),
		"Mkdir":          Action(Mkdir),
		"Delete":         Action(Delete),
	}
}
