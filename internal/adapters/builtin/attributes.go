package builtin

import (
	"path/filepath"
	"slices"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/zerr"
)

// base binds a component to its context and declared name.
type base struct {
	ctx  *domain.Context
	name string
}

func (b *base) Init(ctx *domain.Context, name string) error {
	b.ctx = ctx
	b.name = name
	return nil
}

// attributes returns the expanded attributes of el, rejecting names outside allowed.
// A nil allowed accepts every attribute.
func attributes(el *domain.Element, ctx *domain.Context, allowed ...string) (map[string]string, error) {
	out := make(map[string]string, len(el.AttributeNames()))
	for _, name := range el.AttributeNames() {
		if allowed != nil && !slices.Contains(allowed, name) {
			return nil, unsupported(el, name)
		}
		v, _ := el.Attribute(name)
		out[name] = ctx.Expand(v)
	}
	return out, nil
}

func unsupported(el *domain.Element, attribute string) error {
	return zerr.With(zerr.With(zerr.Wrap(domain.ErrUnsupportedAttribute, "failed to configure task"),
		"element", el.Name()), "attribute", attribute)
}

func missing(element, attribute string) error {
	return zerr.With(zerr.With(zerr.Wrap(domain.ErrMissingAttribute, "failed to validate task"),
		"element", element), "attribute", attribute)
}

func noChildren(el *domain.Element) error {
	if len(el.Children()) > 0 {
		return unsupported(el, el.Children()[0].Name())
	}
	return nil
}

// resolvePath makes path absolute against the project base directory in ctx.
func resolvePath(ctx *domain.Context, path string) string {
	return join(ctx.Property(domain.KeyBaseDir), path)
}

func join(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
