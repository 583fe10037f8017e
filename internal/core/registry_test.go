package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multijdk/internal/types"
)

func newTestRegistry(versions ...types.Version) *Registry {
	return NewRegistry(sampleProject(), NewUnitDeriver(newStubToolchains(versions...)))
}

// ---------------------------------------------------------------------------
// Registry.SetBase
// ---------------------------------------------------------------------------

func TestRegistrySetBaseCreatesBaseUnit(t *testing.T) {
	registry := newTestRegistry(8)

	unit, err := registry.SetBase(t.Context(), 8)
	require.NoError(t, err)
	assert.True(t, unit.Base)
	assert.Equal(t, "java8", unit.Name)
	assert.Same(t, unit, registry.Base())
	assert.Same(t, registry.Sources(), unit.Sources)
	assert.Len(t, registry.UnitsByVersion(), 1)
}

func TestRegistrySetBaseTwiceKeepsFirstBase(t *testing.T) {
	registry := newTestRegistry(8, 11)
	first, err := registry.SetBase(t.Context(), 8)
	require.NoError(t, err)

	_, err = registry.SetBase(t.Context(), 11)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), MsgBaseAlreadySet)
	assert.Same(t, first, registry.Base())
	assert.Len(t, registry.UnitsByVersion(), 1)
}

func TestRegistrySetBaseUnsupportedVersion(t *testing.T) {
	registry := newTestRegistry(8)

	_, err := registry.SetBase(t.Context(), 21)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	assert.Nil(t, registry.Base())
	assert.Empty(t, registry.UnitsByVersion())
}

// ---------------------------------------------------------------------------
// Registry.AddTarget / GetOrCreate
// ---------------------------------------------------------------------------

func TestRegistryAddTargetBeforeBase(t *testing.T) {
	registry := newTestRegistry(8, 11)

	_, err := registry.AddTarget(t.Context(), 11)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "base version must be set before adding target java11")
	assert.Empty(t, registry.UnitsByVersion())
}

func TestRegistryGetOrCreateBeforeBase(t *testing.T) {
	registry := newTestRegistry(11)

	_, err := registry.GetOrCreate(t.Context(), 11)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestRegistryGetOrCreateIsIdempotent(t *testing.T) {
	toolchains := newStubToolchains(8, 17)
	registry := NewRegistry(sampleProject(), NewUnitDeriver(toolchains))
	_, err := registry.SetBase(t.Context(), 8)
	require.NoError(t, err)

	first, err := registry.GetOrCreate(t.Context(), 17)
	require.NoError(t, err)
	second, err := registry.GetOrCreate(t.Context(), 17)
	require.NoError(t, err)
	again, err := registry.AddTarget(t.Context(), 17)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Same(t, first, again)
	assert.Len(t, registry.UnitsByVersion(), 2)
	if diff := cmp.Diff([]types.Version{8, 17}, toolchains.calls); diff != "" {
		t.Fatalf("unexpected toolchain lookups (-want +got):\n%s", diff)
	}
}

func TestRegistryEdgesAddedBetweenTargets(t *testing.T) {
	registry := newTestRegistry(8, 11, 17)
	base, err := registry.SetBase(t.Context(), 8)
	require.NoError(t, err)
	java11, err := registry.AddTarget(t.Context(), 11)
	require.NoError(t, err)

	api := base.Configuration(types.BucketAPI)
	api.Dependencies = append(api.Dependencies, types.Dependency{Notation: "org.example:late:1.0"})

	java17, err := registry.AddTarget(t.Context(), 17)
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"org.slf4j:slf4j-api:2.0.9"}, notations(java11.Configuration(types.BucketAPI).Dependencies)); diff != "" {
		t.Fatalf("unexpected java11 api edges (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{
		"org.slf4j:slf4j-api:2.0.9",
		"org.example:late:1.0",
	}, notations(java17.Configuration(types.BucketAPI).Dependencies)); diff != "" {
		t.Fatalf("unexpected java17 api edges (-want +got):\n%s", diff)
	}
	assert.Same(t, base.Sources, java11.Sources)
	assert.Same(t, base.Sources, java17.Sources)
}

func TestRegistryAddTargetEqualToBaseReturnsBase(t *testing.T) {
	registry := newTestRegistry(8)
	base, err := registry.SetBase(t.Context(), 8)
	require.NoError(t, err)

	unit, err := registry.AddTarget(t.Context(), 8)
	require.NoError(t, err)
	assert.Same(t, base, unit)
	assert.Len(t, registry.UnitsByVersion(), 1)
}

func TestRegistryAddTargetMissingToolchain(t *testing.T) {
	registry := newTestRegistry(8)
	_, err := registry.SetBase(t.Context(), 8)
	require.NoError(t, err)

	_, err = registry.AddTarget(t.Context(), 21)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), MsgNoToolchain+" java21")
	assert.NotContains(t, registry.UnitsByVersion(), types.Version(21))
}

// ---------------------------------------------------------------------------
// Registry views
// ---------------------------------------------------------------------------

func TestRegistryUnitsOrderedByVersion(t *testing.T) {
	registry := newTestRegistry(8, 11, 17)
	_, err := registry.SetBase(t.Context(), 11)
	require.NoError(t, err)
	for _, version := range []types.Version{17, 8} {
		_, err := registry.AddTarget(t.Context(), version)
		require.NoError(t, err)
	}

	var names []string
	for _, unit := range registry.Units() {
		names = append(names, unit.Name)
	}
	if diff := cmp.Diff([]string{"java8", "java11", "java17"}, names); diff != "" {
		t.Fatalf("unexpected unit order (-want +got):\n%s", diff)
	}
}

func TestRegistryUnitsByVersionIsACopy(t *testing.T) {
	registry := newTestRegistry(8)
	_, err := registry.SetBase(t.Context(), 8)
	require.NoError(t, err)

	view := registry.UnitsByVersion()
	delete(view, 8)
	assert.Len(t, registry.UnitsByVersion(), 1)
}

func TestRegistryRejectsChangesAfterClose(t *testing.T) {
	registry := newTestRegistry(8, 11, 17)
	_, err := registry.SetBase(t.Context(), 8)
	require.NoError(t, err)
	existing, err := registry.AddTarget(t.Context(), 11)
	require.NoError(t, err)
	registry.close()

	assert.True(t, registry.Closed())
	assert.True(t, existing.Finalized)
	assert.True(t, registry.Base().Finalized)

	_, err = registry.AddTarget(t.Context(), 17)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))

	unit, err := registry.GetOrCreate(t.Context(), 11)
	require.NoError(t, err)
	assert.Same(t, existing, unit)
}
