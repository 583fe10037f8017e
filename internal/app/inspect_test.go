package app

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multijdk/internal/types"
)

func TestInspectComposedOutput(t *testing.T) {
	outDir := t.TempDir()
	service := NewService()
	_, err := service.Compose(t.Context(), ComposeRequest{
		ProjectPath: fixturePath(t, "project-sample.yaml"),
		OutputDir:   outDir,
	})
	require.NoError(t, err)

	result, err := service.Inspect(InspectRequest{OutputDir: outDir})
	require.NoError(t, err)

	assert.Equal(t, "com.example.tracing:tracing-core:2.4.0", result.Component)
	assert.Equal(t, []types.Version{8, 11, 17}, result.Versions)
	require.Len(t, result.Variants, 7)
	assert.Len(t, result.SuppressedWarnings, 9)

	byName := map[string]InspectVariantSummary{}
	for _, variant := range result.Variants {
		byName[variant.Name] = variant
	}
	api := byName["apiElementsJava11"]
	assert.Equal(t, types.MavenScopeCompile, api.Scope)
	assert.Equal(t, 1, api.Dependencies)
	assert.Equal(t, []string{"tracing-core-2.4.0-java11.jar"}, api.Files)
	assert.Equal(t, 3, byName["runtimeElementsJava17"].Dependencies)
	assert.Equal(t, types.Version(0), byName["sourcesElements"].Version)
}

func TestInspectEmptyOutput(t *testing.T) {
	_, err := NewService().Inspect(InspectRequest{OutputDir: t.TempDir()})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
