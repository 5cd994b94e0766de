package scheduler

import (
	"maps"

	"go.trai.ch/anvil/internal/core/domain"
)

// GetTargetStateMap returns a copy of the target states recorded by the last run.
// This is exported for testing purposes only.
func (e *Engine) GetTargetStateMap() map[domain.InternedString]domain.TargetState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return maps.Clone(e.targetState)
}
