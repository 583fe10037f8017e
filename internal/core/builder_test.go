package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multijdk/internal/types"
)

func TestBuilderComposesBaseAndTargets(t *testing.T) {
	builder := NewBuilder(sampleProject(), newStubToolchains(8, 11, 17))
	require.NoError(t, builder.SetBase(8))
	require.NoError(t, builder.AddTarget(11))
	require.NoError(t, builder.AddTarget(17))

	composition, err := builder.Finalize(t.Context())
	require.NoError(t, err)

	assert.Len(t, composition.Units, 3)
	assert.Len(t, composition.Component.Variants, 7)
	assert.Equal(t, "tracing-core", composition.Component.Name)
	assert.Equal(t, "com.example", composition.Component.Group)
	for _, unit := range composition.Units {
		assert.True(t, unit.Finalized, unit.Name)
	}
}

func TestBuilderAddTargetBeforeBase(t *testing.T) {
	builder := NewBuilder(sampleProject(), newStubToolchains(8, 11))

	err := builder.AddTarget(11)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))

	require.NoError(t, builder.SetBase(8))
	composition, err := builder.Finalize(t.Context())
	require.NoError(t, err)
	assert.Len(t, composition.Units, 1)
}

func TestBuilderSetBaseTwice(t *testing.T) {
	builder := NewBuilder(sampleProject(), newStubToolchains(8, 11))
	require.NoError(t, builder.SetBase(8))

	err := builder.SetBase(11)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

	composition, err := builder.Finalize(t.Context())
	require.NoError(t, err)
	require.Len(t, composition.Units, 1)
	assert.Equal(t, types.Version(8), composition.Units[0].Version)
}

func TestBuilderRejectsOutOfRangeVersions(t *testing.T) {
	builder := NewBuilder(sampleProject(), newStubToolchains())
	require.Error(t, builder.SetBase(0))
	require.NoError(t, builder.SetBase(17))
	require.Error(t, builder.AddTarget(120))
}

func TestBuilderDuplicateTargetsCollapse(t *testing.T) {
	builder := NewBuilder(sampleProject(), newStubToolchains(8, 17))
	require.NoError(t, builder.SetBase(8))
	require.NoError(t, builder.AddTarget(17))
	require.NoError(t, builder.AddTarget(17))
	require.NoError(t, builder.AddTarget(8))

	composition, err := builder.Finalize(t.Context())
	require.NoError(t, err)
	assert.Len(t, composition.Units, 2)
	assert.Len(t, composition.Component.Variants, 5)
}

func TestBuilderFinalizeOnce(t *testing.T) {
	builder := NewBuilder(sampleProject(), newStubToolchains(8))
	require.NoError(t, builder.SetBase(8))
	_, err := builder.Finalize(t.Context())
	require.NoError(t, err)

	_, err = builder.Finalize(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), MsgBuilderFinalized)
	require.Error(t, builder.AddTarget(11))
	require.Error(t, builder.SetBase(11))
}

func TestBuilderFinalizeWithoutBase(t *testing.T) {
	builder := NewBuilder(sampleProject(), newStubToolchains(8))
	_, err := builder.Finalize(t.Context())
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestBuilderMissingToolchain(t *testing.T) {
	builder := NewBuilder(sampleProject(), newStubToolchains(8))
	require.NoError(t, builder.SetBase(8))
	require.NoError(t, builder.AddTarget(21))

	_, err := builder.Finalize(t.Context())
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestWireConsumers(t *testing.T) {
	project := sampleProject()
	project.Sources.Roots.Kotlin = []string{"src/main/kotlin"}
	deriver := NewUnitDeriver(newStubToolchains(11))
	base := newBase(t, deriver, project, 11)

	wiring := WireConsumers(base)

	expectedMain := []string{
		"com.google.code.findbugs:jsr305:3.0.2",
		"com.google.guava:guava:32.1.3-jre",
		"org.slf4j:slf4j-api:2.0.9",
	}
	if diff := cmp.Diff(expectedMain, notations(wiring.MainCompileClasspath)); diff != "" {
		t.Fatalf("unexpected main classpath (-want +got):\n%s", diff)
	}
	expectedDirs := []string{"build/classes/java/java11", "build/classes/kotlin/java11"}
	assert.Equal(t, expectedDirs, wiring.TestCompileClasspath)
	assert.Equal(t, expectedDirs, wiring.TestRuntimeClasspath)
}
