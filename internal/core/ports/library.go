package ports

import "iter"

// SymbolTable maps implementation references of a compiled-in library module to values.
// A value is a Factory, a func() Component, or any value the owning role's Adapter accepts.
type SymbolTable map[string]any

// LibraryLocator finds library packages and reads their descriptors.
//
//go:generate mockgen -source=library.go -destination=mocks/mock_library.go -package=mocks
type LibraryLocator interface {
	// Packages yields the directories below root that hold a library descriptor.
	Packages(root string) iter.Seq[string]

	// ReadDescriptor returns the descriptor bytes of the package at location.
	ReadDescriptor(location string) ([]byte, error)
}
