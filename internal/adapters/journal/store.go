// Package journal records the last outcome of every target in a JSON file.
package journal

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.RunJournal using a flat JSON file.
type Store struct {
	path    string
	mu      sync.RWMutex
	records map[string]domain.TargetRecord
}

var _ ports.RunJournal = (*Store)(nil)

// NewStore creates a journal backed by the file at path. A missing file is an empty journal.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:    filepath.Clean(path),
		records: make(map[string]domain.TargetRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func key(project, target string) string {
	return project + "/" + target
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrJournalReadFailed, err), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.records); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrJournalReadFailed, err), "path", s.path)
	}
	return nil
}

// save must be called with s.mu held.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrJournalWriteFailed, err), "path", s.path)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrJournalWriteFailed, err), "path", s.path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrJournalWriteFailed, err), "path", s.path)
	}
	return nil
}

// Get returns the last record for project and target, or nil if none exists.
func (s *Store) Get(project, target string) (*domain.TargetRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[key(project, target)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// Put stores rec and writes the journal to disk.
func (s *Store) Put(rec domain.TargetRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key(rec.Project, rec.Target)] = rec
	return s.save()
}

// List returns every record ordered by project, then target.
func (s *Store) List() ([]domain.TargetRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.SortedFunc(maps.Values(s.records), func(a, b domain.TargetRecord) int {
		return cmp.Or(cmp.Compare(a.Project, b.Project), cmp.Compare(a.Target, b.Target))
	}), nil
}
