package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"multijdk/internal/adapters"
	"multijdk/internal/core"
	"multijdk/internal/types"
)

func (s Service) Compose(ctx context.Context, req ComposeRequest) (ComposeResult, error) {
	projectPath := strings.TrimSpace(req.ProjectPath)
	if projectPath == "" {
		return ComposeResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project spec path is required")
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return ComposeResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	project, err := s.ProjectLoader.LoadProject(projectPath)
	if err != nil {
		return ComposeResult{}, err
	}
	project = applyOverrides(project, req)
	if err := core.NewSpecCompiler().ValidateProject(ctx, project); err != nil {
		return ComposeResult{}, err
	}

	builder := core.NewBuilder(project, s.toolchainPort(project.Toolchains))
	if err := builder.SetBase(project.Targets.Base); err != nil {
		return ComposeResult{}, err
	}
	for _, version := range project.Targets.Additional {
		if err := builder.AddTarget(version); err != nil {
			return ComposeResult{}, err
		}
	}
	composition, err := builder.Finalize(ctx)
	if err != nil {
		return ComposeResult{}, err
	}

	files, err := s.writeOutputs(ctx, outputDir, req, project, composition)
	if err != nil {
		return ComposeResult{}, err
	}
	log.Ctx(ctx).Info().
		Str("project", project.Metadata.Name).
		Int("units", len(composition.Units)).
		Int("variants", len(composition.Component.Variants)).
		Msg("component written")
	return ComposeResult{
		ProjectName: project.Metadata.Name,
		OutputDir:   outputDir,
		Units:       len(composition.Units),
		Variants:    len(composition.Component.Variants),
		Files:       files,
		Composition: composition,
	}, nil
}

type outputStep struct {
	name  string
	write func() error
}

// writeOutputs writes the component files in order. When a write fails the
// files already written are removed, along with the output directory if
// this call created it, so a failed compose never leaves a readable
// component behind.
func (s Service) writeOutputs(ctx context.Context, outputDir string, req ComposeRequest, project types.ProjectSpec, composition types.Composition) ([]string, error) {
	_, statErr := os.Stat(outputDir)
	createdDir := os.IsNotExist(statErr)

	var files []string
	rollback := func(cause error) ([]string, error) {
		for _, name := range files {
			if err := os.Remove(filepath.Join(outputDir, name)); err != nil && !os.IsNotExist(err) {
				log.Ctx(ctx).Warn().Err(err).Str("file", name).Msg("failed to remove partial output")
			}
		}
		if createdDir {
			_ = os.Remove(outputDir)
		}
		return nil, cause
	}

	writer := adapters.NewComponentFileAdapter(outputDir, s.ToolVersion)
	steps := []outputStep{
		{adapters.ModuleFileName(composition.Component), func() error {
			return writer.WriteModuleMetadata(composition.Component)
		}},
		{adapters.POMFileName(composition.Component), func() error {
			return writer.WritePOM(composition.Component, project.Targets.Base)
		}},
		{adapters.UnitsReportName, func() error {
			return writer.WriteUnitsReport(composition.Units)
		}},
	}
	if req.SBOM {
		steps = append(steps, outputStep{adapters.SBOMFileName(composition.Component), func() error {
			return s.sbomPort(outputDir).WriteSBOM(composition.Component, req.SBOMCreatedAt)
		}})
	}
	for _, step := range steps {
		if err := step.write(); err != nil {
			return rollback(err)
		}
		files = append(files, step.name)
	}
	return files, nil
}

// applyOverrides layers request values over the project spec: a base
// override replaces targets.base, extra targets and toolchain directories
// are appended. Targets equal to the base are dropped.
func applyOverrides(project types.ProjectSpec, req ComposeRequest) types.ProjectSpec {
	if req.Base != 0 {
		project.Targets.Base = req.Base
	}
	targets := append(append([]types.Version(nil), project.Targets.Additional...), req.Targets...)
	project.Targets.Additional = nil
	for _, version := range targets {
		if version == project.Targets.Base {
			continue
		}
		project.Targets.Additional = append(project.Targets.Additional, version)
	}
	if len(req.ToolchainDirs) > 0 {
		project.Toolchains.Directories = append(
			append([]string(nil), project.Toolchains.Directories...),
			req.ToolchainDirs...,
		)
	}
	return project
}
