package core

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"multijdk/internal/policies"
	"multijdk/internal/ports"
	"multijdk/internal/types"
)

// Builder separates declaring versions from wiring them. SetBase and
// AddTarget only record intents; Finalize runs once, after every intent is
// known, and performs derivation, consumer wiring and the variant merge.
type Builder struct {
	project   types.ProjectSpec
	deriver   UnitDeriver
	base      *types.Version
	targets   []types.Version
	finalized bool
}

func NewBuilder(project types.ProjectSpec, toolchains ports.ToolchainPort) *Builder {
	return &Builder{
		project: project,
		deriver: NewUnitDeriver(toolchains),
	}
}

func (b *Builder) SetBase(version types.Version) error {
	if b.finalized {
		return finalizedError(MsgBuilderFinalized)
	}
	if b.base != nil {
		return configurationError(*b.base, version)
	}
	if err := CheckVersionRange(version); err != nil {
		return err
	}
	b.base = &version
	return nil
}

func (b *Builder) AddTarget(version types.Version) error {
	if b.finalized {
		return finalizedError(MsgBuilderFinalized)
	}
	if b.base == nil {
		return orderingError("adding target", version)
	}
	if err := CheckVersionRange(version); err != nil {
		return err
	}
	b.targets = append(b.targets, version)
	return nil
}

// Finalize composes the recorded versions. It may be called once.
func (b *Builder) Finalize(ctx context.Context) (types.Composition, error) {
	if b.finalized {
		return types.Composition{}, finalizedError(MsgBuilderFinalized)
	}
	b.finalized = true
	if b.base == nil {
		return types.Composition{}, finalizedError(fmt.Sprintf("%s before finalize", MsgBaseNotSet))
	}

	registry := NewRegistry(b.project, b.deriver)
	base, err := registry.SetBase(ctx, *b.base)
	if err != nil {
		return types.Composition{}, err
	}
	for _, version := range b.targets {
		if _, err := registry.AddTarget(ctx, version); err != nil {
			return types.Composition{}, err
		}
	}
	wiring := WireConsumers(base)
	component, err := NewVariantMerger(b.project).Finalize(ctx, registry)
	if err != nil {
		return types.Composition{}, err
	}
	log.Ctx(ctx).Debug().
		Str("component", component.Name).
		Str("base", base.Name).
		Int("targets", len(b.targets)).
		Msg("composition finalized")
	return types.Composition{
		Component: component,
		Units:     registry.Units(),
		Wiring:    wiring,
	}, nil
}

// WireConsumers computes what the project's own main and test compilations
// take from the base unit: its compile classpath for main, its class
// output for tests. These are back-references, the base is not owned.
func WireConsumers(base *types.BuildUnit) types.ConsumerWiring {
	wiring := types.ConsumerWiring{
		MainCompileClasspath: policies.ResolveEdges(base, types.BucketCompileClasspath),
	}
	for _, step := range base.Compile {
		dir := ClassesDir(base, step.Language)
		wiring.TestCompileClasspath = append(wiring.TestCompileClasspath, dir)
		wiring.TestRuntimeClasspath = append(wiring.TestRuntimeClasspath, dir)
	}
	return wiring
}

// ClassesDir is where a unit's compile step writes classes.
func ClassesDir(unit *types.BuildUnit, language types.CompileLanguage) string {
	return fmt.Sprintf("build/classes/%s/%s", language, unit.Name)
}
