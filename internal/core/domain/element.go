package domain

import (
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// Element is a declaratively configured unit of work: a tag name, attributes,
// optional text content and nested child elements.
// Elements form a tree; an element has at most one parent.
type Element struct {
	name       string
	location   string
	attrs      map[string]string
	attrOrder  []string
	content    string
	children   []*Element
	namespaces map[string]map[string]string
	nsOrder    []string
	parented   bool
}

// NewElement creates an element with the given tag name.
func NewElement(name string) *Element {
	return &Element{
		name:  name,
		attrs: make(map[string]string),
	}
}

// Name returns the tag name.
func (e *Element) Name() string {
	return e.name
}

// Location returns where the element was declared, e.g. "anvil.yaml:12".
func (e *Element) Location() string {
	return e.location
}

// SetLocation records where the element was declared.
func (e *Element) SetLocation(loc string) {
	e.location = loc
}

// SetAttribute sets a plain attribute. Re-setting keeps the original position.
func (e *Element) SetAttribute(name, value string) {
	if _, exists := e.attrs[name]; !exists {
		e.attrOrder = append(e.attrOrder, name)
	}
	e.attrs[name] = value
}

// Attribute returns a plain attribute value.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// AttributeNames returns the plain attribute names in insertion order.
func (e *Element) AttributeNames() []string {
	return slices.Clone(e.attrOrder)
}

// Content returns the text content.
func (e *Element) Content() string {
	return e.content
}

// SetContent sets the text content.
func (e *Element) SetContent(content string) {
	e.content = content
}

// AddChild appends a nested element.
func (e *Element) AddChild(child *Element) error {
	if child.parented {
		return zerr.With(zerr.Wrap(ErrElementShared, "failed to add child"), "element", child.name)
	}
	child.parented = true
	e.children = append(e.children, child)
	return nil
}

// Children returns the nested elements in declared order.
func (e *Element) Children() []*Element {
	return e.children
}

// SetNamespaceAttribute sets an attribute bound to a namespace, e.g. "trace:label".
func (e *Element) SetNamespaceAttribute(ns, name, value string) {
	if e.namespaces == nil {
		e.namespaces = make(map[string]map[string]string)
	}
	group, ok := e.namespaces[ns]
	if !ok {
		group = make(map[string]string)
		e.namespaces[ns] = group
		e.nsOrder = append(e.nsOrder, ns)
	}
	group[name] = value
}

// NamespaceAttributes returns a copy of the attributes bound to ns.
// The result is nil when the element declares none.
func (e *Element) NamespaceAttributes(ns string) map[string]string {
	group, ok := e.namespaces[ns]
	if !ok {
		return nil
	}
	return maps.Clone(group)
}

// Namespaces returns the namespaces the element declares attributes for, in insertion order.
func (e *Element) Namespaces() []string {
	return slices.Clone(e.nsOrder)
}
