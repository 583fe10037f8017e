package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"multijdk/internal/ports"
	"multijdk/internal/types"
)

type ComponentReaderAdapter struct{}

func NewComponentReaderAdapter() ComponentReaderAdapter {
	return ComponentReaderAdapter{}
}

func (a ComponentReaderAdapter) ReadModuleMetadata(path string) (types.Component, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Component{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("module metadata not found").
			WithCause(err)
	}
	var metadata moduleMetadata
	if err := json.Unmarshal(data, &metadata); err != nil {
		return types.Component{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse module metadata").
			WithCause(err)
	}
	component := types.Component{
		Name:               metadata.Component.Module,
		Group:              metadata.Component.Group,
		Version:            metadata.Component.Version,
		SuppressedWarnings: metadata.SuppressedPomWarnings,
	}
	seenArchives := map[string]struct{}{}
	for _, entry := range metadata.Variants {
		attributes := decodeAttributes(entry.Attributes)
		variant := types.Variant{
			Name:  entry.Name,
			Scope: entry.Scope,
			Configuration: types.Configuration{
				Name:       entry.Name,
				Attributes: attributes,
			},
		}
		if value, ok := attributes[types.TargetJvmVersionAttribute]; ok {
			if version, err := strconv.Atoi(value.Value); err == nil {
				variant.Version = types.Version(version)
			}
		}
		for _, dep := range entry.Dependencies {
			variant.Configuration.Dependencies = append(variant.Configuration.Dependencies, types.Dependency{
				Notation: joinNotation(dep),
			})
		}
		for _, file := range entry.Files {
			variant.Configuration.Artifacts = append(variant.Configuration.Artifacts, types.Artifact{
				Name:       file.Name,
				Classifier: file.Classifier,
			})
			if _, ok := seenArchives[file.Name]; !ok {
				seenArchives[file.Name] = struct{}{}
				component.Archives = append(component.Archives, types.Artifact{Name: file.Name, Classifier: file.Classifier})
			}
		}
		component.Variants = append(component.Variants, variant)
	}
	return component, nil
}

// FindModuleMetadata returns the single module metadata file in dir.
func FindModuleMetadata(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+moduleFileSuffix))
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid output directory").
			WithCause(err)
	}
	sort.Strings(matches)
	switch len(matches) {
	case 0:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no module metadata in output directory")
	case 1:
		return matches[0], nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("multiple module metadata files in output directory")
	}
}

var _ ports.ComponentReaderPort = ComponentReaderAdapter{}
