package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"multijdk/internal/ports"
	"multijdk/internal/types"
)

const archiveExtension = "jar"

type UnitDeriver struct {
	Toolchains ports.ToolchainPort
}

func NewUnitDeriver(toolchains ports.ToolchainPort) UnitDeriver {
	return UnitDeriver{Toolchains: toolchains}
}

// NewBaseUnit builds the unit every other unit derives from. Its buckets
// hold the project's declared edges and its compile steps carry the
// project's compile options, retargeted to version.
func (d UnitDeriver) NewBaseUnit(ctx context.Context, project types.ProjectSpec, sources *types.SourceRoots, version types.Version) (*types.BuildUnit, error) {
	toolchain, err := d.resolveToolchain(ctx, version)
	if err != nil {
		return nil, err
	}
	unit := newUnit(version, sources, project.Metadata)
	unit.Base = true
	for _, bucket := range bucketNames(project.Configurations) {
		cfg := unit.ensureBucket(bucket)
		for _, notation := range project.Configurations[bucket] {
			cfg.Dependencies = append(cfg.Dependencies, types.Dependency{Notation: notation})
		}
	}
	unit.Compile = compileSteps(sources, project.Compile, toolchain, version)
	attachArchive(unit.BuildUnit)
	log.Ctx(ctx).Debug().Str("unit", unit.Name).Str("toolchain", toolchain.Release).Msg("base unit created")
	return unit.BuildUnit, nil
}

// Derive creates the unit for version from base. Sources are shared by
// reference; dependency edges are copied once, so edges added to base
// afterwards stay on base. Compile options are copied verbatim except for
// the target level settings, which follow version.
func (d UnitDeriver) Derive(ctx context.Context, base *types.BuildUnit, version types.Version, existing map[types.Version]*types.BuildUnit) (*types.BuildUnit, error) {
	assert.NotEmpty(ctx, base.Name, "base unit must be named")
	if _, found := existing[version]; found {
		return nil, duplicateVersionError(version)
	}
	toolchain, err := d.resolveToolchain(ctx, version)
	if err != nil {
		return nil, err
	}
	unit := newUnit(version, base.Sources, types.Metadata{
		Name:    base.Archive.Name,
		Version: base.Archive.Version,
	})
	for _, bucket := range sortedBuckets(base.Configurations) {
		source := base.Configurations[bucket]
		cfg := unit.ensureBucket(bucket)
		cfg.Dependencies = make([]types.Dependency, 0, len(source.Dependencies))
		for _, dep := range source.Dependencies {
			if dep.Origin == "" {
				dep.Origin = base.Name
			}
			cfg.Dependencies = append(cfg.Dependencies, dep)
		}
	}
	for _, step := range base.Compile {
		unit.Compile = append(unit.Compile, types.CompileStep{
			Language:  step.Language,
			Toolchain: toolchain,
			Options:   retarget(cloneOptions(step.Options), version),
		})
	}
	attachArchive(unit.BuildUnit)
	log.Ctx(ctx).Debug().
		Str("unit", unit.Name).
		Str("base", base.Name).
		Str("toolchain", toolchain.Release).
		Msg("unit derived")
	return unit.BuildUnit, nil
}

func (d UnitDeriver) resolveToolchain(ctx context.Context, version types.Version) (types.Toolchain, error) {
	if d.Toolchains == nil {
		return types.Toolchain{}, unsupportedVersionError(version, nil)
	}
	toolchain, err := d.Toolchains.Resolve(ctx, version)
	if err != nil {
		return types.Toolchain{}, unsupportedVersionError(version, err)
	}
	return toolchain, nil
}

type unitBuilder struct {
	*types.BuildUnit
}

func newUnit(version types.Version, sources *types.SourceRoots, metadata types.Metadata) unitBuilder {
	unit := unitBuilder{&types.BuildUnit{
		Name:           version.JavaName(),
		Version:        version,
		Sources:        sources,
		Configurations: map[string]*types.Configuration{},
		Archive: types.Artifact{
			Name:       metadata.Name,
			Version:    metadata.Version,
			Classifier: version.JavaName(),
			Extension:  archiveExtension,
		},
	}}
	for _, bucket := range types.StandardBuckets {
		unit.ensureBucket(bucket)
	}
	return unit
}

func (u unitBuilder) ensureBucket(bucket string) *types.Configuration {
	if cfg, ok := u.Configurations[bucket]; ok {
		return cfg
	}
	cfg := &types.Configuration{
		Name:       types.ConfigurationName(u.Name, bucket),
		Bucket:     bucket,
		Attributes: types.Attributes{},
	}
	u.Configurations[bucket] = cfg
	return cfg
}

// attachArchive makes the unit's outgoing elements carry its own archive.
func attachArchive(unit *types.BuildUnit) {
	for _, bucket := range []string{types.BucketAPIElements, types.BucketRuntimeElements} {
		if cfg := unit.Configuration(bucket); cfg != nil {
			cfg.Artifacts = []types.Artifact{unit.Archive}
		}
	}
}

func compileSteps(sources *types.SourceRoots, options types.CompileOptions, toolchain types.Toolchain, version types.Version) []types.CompileStep {
	steps := []types.CompileStep{{
		Language:  types.CompileLanguageJava,
		Toolchain: toolchain,
		Options:   retarget(cloneOptions(options), version),
	}}
	if sources != nil && len(sources.Kotlin) > 0 {
		steps = append(steps, types.CompileStep{
			Language:  types.CompileLanguageKotlin,
			Toolchain: toolchain,
			Options:   retarget(cloneOptions(options), version),
		})
	}
	return steps
}

func retarget(options types.CompileOptions, version types.Version) types.CompileOptions {
	level := version.FullJavaVersion()
	options.Java.SourceCompatibility = level
	options.Java.TargetCompatibility = level
	options.Kotlin.JvmTarget = level
	return options
}

func cloneOptions(options types.CompileOptions) types.CompileOptions {
	out := options
	out.Java.CompilerArgs = append([]string(nil), options.Java.CompilerArgs...)
	out.Kotlin.FreeCompilerArgs = append([]string(nil), options.Kotlin.FreeCompilerArgs...)
	return out
}
