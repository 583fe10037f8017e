package core

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"multijdk/internal/types"
)

// Registry holds exactly one unit per language version. The caller owns it
// and passes it to every operation; there is no package-level instance.
type Registry struct {
	project types.ProjectSpec
	deriver UnitDeriver
	sources *types.SourceRoots
	units   map[types.Version]*types.BuildUnit
	base    *types.BuildUnit
	closed  bool
}

func NewRegistry(project types.ProjectSpec, deriver UnitDeriver) *Registry {
	roots := project.Sources.Roots
	return &Registry{
		project: project,
		deriver: deriver,
		sources: &roots,
		units:   map[types.Version]*types.BuildUnit{},
	}
}

// SetBase creates the base unit for version. It may be called once.
func (r *Registry) SetBase(ctx context.Context, version types.Version) (*types.BuildUnit, error) {
	if r.closed {
		return nil, finalizedError(MsgRegistryFinalized)
	}
	if r.base != nil {
		return nil, configurationError(r.base.Version, version)
	}
	unit, err := r.deriver.NewBaseUnit(ctx, r.project, r.sources, version)
	if err != nil {
		return nil, err
	}
	r.base = unit
	r.units[version] = unit
	log.Ctx(ctx).Debug().Str("base", unit.Name).Msg("base version set")
	return unit, nil
}

// AddTarget registers an additional version derived from the base.
// Registering a known version returns the existing unit.
func (r *Registry) AddTarget(ctx context.Context, version types.Version) (*types.BuildUnit, error) {
	if r.closed {
		return nil, finalizedError(MsgRegistryFinalized)
	}
	if r.base == nil {
		return nil, orderingError("adding target", version)
	}
	return r.GetOrCreate(ctx, version)
}

// GetOrCreate returns the unit for version, deriving it from the base on
// first reference.
func (r *Registry) GetOrCreate(ctx context.Context, version types.Version) (*types.BuildUnit, error) {
	if unit, ok := r.units[version]; ok {
		return unit, nil
	}
	if r.closed {
		return nil, finalizedError(MsgRegistryFinalized)
	}
	if r.base == nil {
		return nil, orderingError("deriving", version)
	}
	unit, err := r.deriver.Derive(ctx, r.base, version, r.units)
	if err != nil {
		return nil, err
	}
	r.units[version] = unit
	return unit, nil
}

func (r *Registry) Base() *types.BuildUnit {
	return r.base
}

// Sources is the root set every unit of the registry shares.
func (r *Registry) Sources() *types.SourceRoots {
	return r.sources
}

// UnitsByVersion returns a copy of the index; the units are shared.
func (r *Registry) UnitsByVersion() map[types.Version]*types.BuildUnit {
	out := make(map[types.Version]*types.BuildUnit, len(r.units))
	for version, unit := range r.units {
		out[version] = unit
	}
	return out
}

// Units returns every unit ordered by version.
func (r *Registry) Units() []*types.BuildUnit {
	units := make([]*types.BuildUnit, 0, len(r.units))
	for _, unit := range r.units {
		units = append(units, unit)
	}
	sort.Slice(units, func(i, j int) bool {
		return units[i].Version < units[j].Version
	})
	return units
}

func (r *Registry) Closed() bool {
	return r.closed
}

func (r *Registry) close() {
	r.closed = true
	for _, unit := range r.units {
		unit.Finalized = true
	}
}
