package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anvil/internal/app"
	_ "go.trai.ch/anvil/internal/wiring"
)

// TestGraftDependencies ensures that the dependency injection graph is valid
// at compile/test time. It checks that every node declaring a dependency
// actually uses it, and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// graft.AssertDepsValid infers the dependency ID from the package name of the
	// type used in Dep[T]. Nodes providing ports.Logger and ports.ProjectLoader
	// would both be expected to be named "ports".
	t.Skip("Skipping Graft validation due to static analysis limitation with shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}

func TestGraftResolvesComponents(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](t.Context())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
