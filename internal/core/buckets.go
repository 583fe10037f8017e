package core

import (
	"sort"

	"multijdk/internal/types"
)

func bucketNames(declared map[string][]string) []string {
	names := make([]string, 0, len(declared))
	for name := range declared {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedBuckets(configs map[string]*types.Configuration) []string {
	names := make([]string, 0, len(configs))
	for name := range configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
