package config

import (
	"fmt"
	"strings"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// contentKey is the body key holding an element's text content.
const contentKey = "text"

// decodeElement turns a single-key mapping `tag: body` into a build element.
//
// A scalar body is the element's content. In a mapping body, scalar values are attributes,
// keys written ns:attr are attributes of namespace ns, and mappings or sequences of
// mappings are nested elements.
func decodeElement(path string, node *yaml.Node) (*domain.Element, error) {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return nil, invalid(path, node, "expected a mapping with a single key")
	}
	tag, body := node.Content[0], node.Content[1]
	if tag.Kind != yaml.ScalarNode || tag.Value == "" {
		return nil, invalid(path, tag, "element name must be a string")
	}
	return buildElement(path, tag.Value, tag, body)
}

func buildElement(path, name string, at, body *yaml.Node) (*domain.Element, error) {
	el := domain.NewElement(name)
	el.SetLocation(fmt.Sprintf("%s:%d", path, at.Line))

	switch body.Kind {
	case yaml.ScalarNode:
		if body.Tag != "!!null" {
			el.SetContent(body.Value)
		}
		return el, nil
	case yaml.MappingNode:
	default:
		return nil, invalid(path, body, "element body must be a scalar or a mapping")
	}

	for i := 0; i+1 < len(body.Content); i += 2 {
		key, value := body.Content[i], body.Content[i+1]
		if err := addEntry(path, el, key, value); err != nil {
			return nil, err
		}
	}
	return el, nil
}

func addEntry(path string, el *domain.Element, key, value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		switch ns, attr, ok := strings.Cut(key.Value, ":"); {
		case ok && ns != "" && attr != "":
			el.SetNamespaceAttribute(ns, attr, value.Value)
		case key.Value == contentKey:
			el.SetContent(value.Value)
		default:
			el.SetAttribute(key.Value, value.Value)
		}
		return nil
	case yaml.MappingNode:
		return addChild(path, el, key, value)
	case yaml.SequenceNode:
		for _, item := range value.Content {
			if err := addChild(path, el, key, item); err != nil {
				return err
			}
		}
		return nil
	default:
		return invalid(path, value, "unsupported value for "+key.Value)
	}
}

func addChild(path string, parent *domain.Element, key, body *yaml.Node) error {
	child, err := buildElement(path, key.Value, body, body)
	if err != nil {
		return err
	}
	return parent.AddChild(child)
}

func invalid(path string, node *yaml.Node, reason string) error {
	return zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidElement, reason),
		"file", path), "line", node.Line)
}
