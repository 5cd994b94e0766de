package deployer

import (
	"sync"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
)

// Modules is the catalog of compiled-in library modules.
// Each module owns its symbol table, so packages resolve implementation references
// only against their own module and may reuse symbol names freely.
type Modules struct {
	mu     sync.RWMutex
	tables map[string]ports.SymbolTable
}

// NewModules creates an empty catalog.
func NewModules() *Modules {
	return &Modules{tables: make(map[string]ports.SymbolTable)}
}

// Register adds a module. Registering the same id again replaces its table.
func (m *Modules) Register(id string, table ports.SymbolTable) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[id] = table
}

// Scope returns the loader scope of module id.
func (m *Modules) Scope(id string) (*Scope, error) {
	m.mu.RLock()
	table, ok := m.tables[id]
	m.mu.RUnlock()
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrModuleNotFound, "failed to open module"), "module", id)
	}
	return &Scope{module: id, table: table}, nil
}

// Scope resolves implementation references within a single module.
type Scope struct {
	module string
	table  ports.SymbolTable
}

// Symbol returns the value bound to name in the scope's module.
func (s *Scope) Symbol(name string) (any, error) {
	v, ok := s.table[name]
	if !ok {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrSymbolNotFound, "failed to resolve implementation"),
			"module", s.module), "symbol", name)
	}
	return v, nil
}
