package policies

import "multijdk/internal/types"

// bucketParents mirrors the extends-from relationships of a JVM source
// set's configurations. A bucket sees its own edges plus every parent's.
var bucketParents = map[string][]string{
	types.BucketCompileClasspath: {types.BucketCompileOnly, types.BucketImplementation},
	types.BucketCompileOnly:      {types.BucketCompileOnlyAPI},
	types.BucketImplementation:   {types.BucketAPI},
	types.BucketAPIElements:      {types.BucketAPI, types.BucketCompileOnlyAPI},
	types.BucketRuntimeClasspath: {types.BucketRuntimeOnly, types.BucketImplementation},
	types.BucketRuntimeElements:  {types.BucketRuntimeOnly, types.BucketImplementation},
}

// ResolveEdges returns the edges visible through a unit's bucket: its own
// followed by those inherited from parent buckets, first notation wins.
func ResolveEdges(unit *types.BuildUnit, bucket string) []types.Dependency {
	var out []types.Dependency
	seen := map[string]struct{}{}
	visited := map[string]struct{}{}
	var walk func(name string)
	walk = func(name string) {
		if _, ok := visited[name]; ok {
			return
		}
		visited[name] = struct{}{}
		if cfg := unit.Configuration(name); cfg != nil {
			for _, dep := range cfg.Dependencies {
				if _, dup := seen[dep.Notation]; dup {
					continue
				}
				seen[dep.Notation] = struct{}{}
				out = append(out, dep)
			}
		}
		for _, parent := range bucketParents[name] {
			walk(parent)
		}
	}
	walk(bucket)
	return out
}
