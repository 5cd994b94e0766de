package scheduler

import (
	"errors"

	"go.trai.ch/anvil/internal/core/ports"
)

// multicast fans a notification out to every listener.
type multicast []ports.Listener

// each calls fn for every listener in order, even after one fails, and joins the failures.
func (m multicast) each(fn func(ports.Listener) error) error {
	var errs []error
	for _, l := range m {
		if err := fn(l); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
