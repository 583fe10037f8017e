package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"multijdk/internal/core"
	"multijdk/internal/types"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	projectPath := strings.TrimSpace(req.ProjectPath)
	if projectPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project spec path is required")
	}
	project, err := s.ProjectLoader.LoadProject(projectPath)
	if err != nil {
		return ValidateResult{}, err
	}
	if err := core.NewSpecCompiler().ValidateProject(ctx, project); err != nil {
		return ValidateResult{}, err
	}
	result := ValidateResult{
		ProjectName: project.Metadata.Name,
		Base:        project.Targets.Base,
		Targets:     project.Targets.Additional,
	}
	if s.Workspace == nil {
		return result, nil
	}
	if err := s.scanSources(ctx, filepath.Dir(projectPath), project.Sources.Roots, &result); err != nil {
		return ValidateResult{}, err
	}
	return result, nil
}

// scanSources counts the files under each code root. Missing roots are
// reported, not fatal: a project may declare roots it has not created yet.
func (s Service) scanSources(ctx context.Context, projectDir string, roots types.SourceRoots, result *ValidateResult) error {
	for _, root := range append(append([]string(nil), roots.Java...), roots.Kotlin...) {
		path := root
		if !filepath.IsAbs(path) {
			path = filepath.Join(projectDir, path)
		}
		files, err := s.Workspace.FindSources(path)
		if err != nil {
			if errbuilder.CodeOf(err) == errbuilder.CodeNotFound {
				log.Ctx(ctx).Warn().Str("root", root).Msg("source root does not exist")
				result.MissingRoots = append(result.MissingRoots, root)
				continue
			}
			return err
		}
		result.SourceFiles += len(files)
	}
	return nil
}
