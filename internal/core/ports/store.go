package ports

import "go.trai.ch/anvil/internal/core/domain"

// RunJournal records the last outcome of every target.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RunJournal interface {
	// Get returns the last record for project and target. It returns nil, nil if none exists.
	Get(project, target string) (*domain.TargetRecord, error)

	// Put stores a record, replacing any previous one for the same target.
	Put(record domain.TargetRecord) error

	// List returns every record, ordered by project then target.
	List() ([]domain.TargetRecord, error)
}
