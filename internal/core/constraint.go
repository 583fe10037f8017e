package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"multijdk/internal/types"
)

// SelectToolchain picks the highest release among candidates that
// implements version and satisfies constraint. An empty constraint accepts
// any release. The boolean is false when nothing qualifies.
func SelectToolchain(version types.Version, candidates []types.Toolchain, constraint string) (types.Toolchain, bool, error) {
	var check *semver.Constraints
	if raw := strings.TrimSpace(constraint); raw != "" {
		parsed, err := ParseReleaseConstraint(raw)
		if err != nil {
			return types.Toolchain{}, false, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid toolchain constraint for %s: %s", version.JavaName(), raw)).
				WithCause(err)
		}
		check = parsed
	}

	type candidate struct {
		toolchain types.Toolchain
		release   *semver.Version
	}
	var matches []candidate
	for _, toolchain := range candidates {
		if toolchain.LanguageVersion != version {
			continue
		}
		release, err := ParseRelease(toolchain.Release)
		if err != nil {
			return types.Toolchain{}, false, err
		}
		if check != nil && !check.Check(release) {
			continue
		}
		matches = append(matches, candidate{toolchain: toolchain, release: release})
	}
	if len(matches) == 0 {
		return types.Toolchain{}, false, nil
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].release.GreaterThan(matches[j].release)
	})
	return matches[0].toolchain, true, nil
}
