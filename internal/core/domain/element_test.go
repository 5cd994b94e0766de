package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anvil/internal/core/domain"
)

func TestElement_Attributes(t *testing.T) {
	el := domain.NewElement("exec")
	el.SetAttribute("command", "go")
	el.SetAttribute("dir", "src")
	el.SetAttribute("command", "make")

	v, ok := el.Attribute("command")
	require.True(t, ok)
	assert.Equal(t, "make", v)
	assert.Equal(t, []string{"command", "dir"}, el.AttributeNames())

	_, ok = el.Attribute("missing")
	assert.False(t, ok)
}

func TestElement_AddChild_RejectsSharing(t *testing.T) {
	a := domain.NewElement("exec")
	b := domain.NewElement("exec")
	arg := domain.NewElement("arg")

	require.NoError(t, a.AddChild(arg))
	err := b.AddChild(arg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrElementShared))
	assert.Len(t, a.Children(), 1)
	assert.Empty(t, b.Children())
}

func TestElement_Namespaces(t *testing.T) {
	el := domain.NewElement("echo")
	el.SetNamespaceAttribute("trace", "label", "c")
	el.SetNamespaceAttribute("audit", "owner", "ci")
	el.SetNamespaceAttribute("trace", "kind", "step")

	assert.Equal(t, []string{"trace", "audit"}, el.Namespaces())
	assert.Equal(t, map[string]string{"label": "c", "kind": "step"}, el.NamespaceAttributes("trace"))
	assert.Nil(t, el.NamespaceAttributes("none"))

	attrs := el.NamespaceAttributes("trace")
	attrs["label"] = "mutated"
	assert.Equal(t, "c", el.NamespaceAttributes("trace")["label"])
}
