package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"multijdk/internal/types"
)

// Toolchains reports which installed toolchain each of the project's
// versions would compile with.
func (s Service) Toolchains(ctx context.Context, req ToolchainsRequest) (ToolchainsResult, error) {
	projectPath := strings.TrimSpace(req.ProjectPath)
	if projectPath == "" {
		return ToolchainsResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project spec path is required")
	}
	project, err := s.ProjectLoader.LoadProject(projectPath)
	if err != nil {
		return ToolchainsResult{}, err
	}
	project = applyOverrides(project, ComposeRequest{ToolchainDirs: req.ToolchainDirs})
	resolver := s.toolchainPort(project.Toolchains)
	available, err := resolver.Available(ctx)
	if err != nil {
		return ToolchainsResult{}, err
	}
	result := ToolchainsResult{
		Available: available,
		Selected:  map[types.Version]types.Toolchain{},
	}
	versions := append([]types.Version{project.Targets.Base}, project.Targets.Additional...)
	seen := map[types.Version]struct{}{}
	for _, version := range versions {
		if _, done := seen[version]; done {
			continue
		}
		seen[version] = struct{}{}
		toolchain, err := resolver.Resolve(ctx, version)
		if err != nil {
			if errbuilder.CodeOf(err) == errbuilder.CodeNotFound {
				result.Missing = append(result.Missing, version)
				continue
			}
			return ToolchainsResult{}, err
		}
		result.Selected[version] = toolchain
	}
	return result, nil
}
