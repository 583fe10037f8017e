package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"multijdk/internal/ports"
	"multijdk/internal/shared"
	"multijdk/internal/types"
)

type SpecFileAdapter struct{}

func NewSpecFileAdapter() SpecFileAdapter {
	return SpecFileAdapter{}
}

func (a SpecFileAdapter) LoadProject(path string) (types.ProjectSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ProjectSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("project spec file not found").
			WithCause(err)
	}
	var spec types.ProjectSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return types.ProjectSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse project spec yaml").
			WithCause(err)
	}
	spec.Toolchains.Directories = resolveRelative(filepath.Dir(path), spec.Toolchains.Directories)
	return spec, nil
}

// resolveRelative anchors relative directories at the spec file's own
// directory so a project resolves the same from any working directory.
func resolveRelative(base string, dirs []string) []string {
	if len(dirs) == 0 {
		return dirs
	}
	out := make([]string, 0, len(dirs))
	for _, dir := range shared.UniqueStrings(dirs) {
		dir = shared.ExpandHome(dir)
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(base, dir)
		}
		out = append(out, dir)
	}
	return out
}

var _ ports.ProjectSpecPort = SpecFileAdapter{}
