package app

import (
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"multijdk/internal/adapters"
	"multijdk/internal/types"
)

func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	path, err := adapters.FindModuleMetadata(outputDir)
	if err != nil {
		return InspectResult{}, err
	}
	component, err := s.ComponentReader.ReadModuleMetadata(path)
	if err != nil {
		return InspectResult{}, err
	}

	result := InspectResult{
		Component:          componentCoordinates(component),
		SuppressedWarnings: component.SuppressedWarnings,
	}
	versions := map[types.Version]struct{}{}
	for _, variant := range component.Variants {
		summary := InspectVariantSummary{
			Name:         variant.Name,
			Scope:        variant.Scope,
			Version:      variant.Version,
			Dependencies: len(variant.Configuration.Dependencies),
		}
		for _, artifact := range variant.Configuration.Artifacts {
			summary.Files = append(summary.Files, artifact.Name)
		}
		result.Variants = append(result.Variants, summary)
		if variant.Version != 0 {
			versions[variant.Version] = struct{}{}
		}
	}
	for version := range versions {
		result.Versions = append(result.Versions, version)
	}
	sort.Slice(result.Versions, func(i, j int) bool {
		return result.Versions[i] < result.Versions[j]
	})
	return result, nil
}

func componentCoordinates(component types.Component) string {
	return strings.Join([]string{component.Group, component.Name, component.Version}, ":")
}
