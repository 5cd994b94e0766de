package deployer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/engine/deployer"
)

func TestParseDescriptor(t *testing.T) {
	desc, err := deployer.ParseDescriptor([]byte(`
module: anvil.builtin
version: 1.0.0
requires: ">= 0.1.0"
roles:
  - name: action
    implementation: ActionContract
    adapter: ActionAdapter
definitions:
  - name: echo
    implementation: Echo
  - role: action
    name: mkdir
    implementation: Mkdir
`))
	require.NoError(t, err)

	assert.Equal(t, "anvil.builtin", desc.Module)
	assert.Equal(t, ">= 0.1.0", desc.Requires)
	require.Len(t, desc.Definitions, 2)
	assert.Equal(t, domain.RoleTask, desc.Definitions[0].Role)
	assert.True(t, desc.Declares(domain.TypeKey{Role: domain.RoleAction, Name: "mkdir"}))
	assert.False(t, desc.Declares(domain.TypeKey{Role: domain.RoleTask, Name: "mkdir"}))
}

func TestParseDescriptor_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "unknown field", data: "module: x\nextra: true\n", want: "extra"},
		{name: "missing module", data: "definitions: []\n", want: "missing required field"},
		{name: "empty document", data: "", want: "missing required field"},
		{name: "definition without name", data: "module: x\ndefinitions:\n  - implementation: Echo\n", want: "missing required field"},
		{name: "role without implementation", data: "module: x\nroles:\n  - name: widget\n", want: "missing required field"},
		{name: "not yaml", data: "module: [\n", want: "invalid library descriptor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := deployer.ParseDescriptor([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrDescriptorInvalid))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
