package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anvil/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	a := domain.NewInternedString("compile")
	b := domain.NewInternedString("compile")

	assert.Equal(t, a, b)
	assert.Equal(t, "compile", a.String())
	assert.False(t, a.IsZero())
}

func TestInternedString_Zero(t *testing.T) {
	var zero domain.InternedString
	assert.True(t, zero.IsZero())
	assert.Empty(t, zero.String())
}

func TestInternedString_JSON(t *testing.T) {
	type record struct {
		Target domain.InternedString `json:"target"`
	}

	data, err := json.Marshal(record{Target: domain.NewInternedString("test")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"target":"test"}`, string(data))

	var decoded record
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, domain.NewInternedString("test"), decoded.Target)
}

func TestNewInternedStrings(t *testing.T) {
	got := domain.NewInternedStrings([]string{"a", "b"})
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].String())
	assert.Equal(t, "b", got[1].String())
}
