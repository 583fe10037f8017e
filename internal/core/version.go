package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"multijdk/internal/types"
)

const (
	minLanguageVersion = 1
	maxLanguageVersion = 99
)

// ParseVersion accepts "17", "java17" and the legacy "1.8" form.
func ParseVersion(raw string) (types.Version, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	value = strings.TrimPrefix(value, "java")
	value = strings.TrimPrefix(value, "jdk")
	if strings.HasPrefix(value, "1.") {
		value = strings.TrimPrefix(value, "1.")
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid language version: %s", raw)).
			WithCause(err)
	}
	version := types.Version(parsed)
	if err := CheckVersionRange(version); err != nil {
		return 0, err
	}
	return version, nil
}

// CheckVersionRange rejects language levels no toolchain can provide.
func CheckVersionRange(version types.Version) error {
	if version < minLanguageVersion || version > maxLanguageVersion {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("language version out of range: %d", version.Int()))
	}
	return nil
}

// releasePatchScale leaves room inside the semver patch for the component
// JDK releases carry after it: the legacy update number (1.8.0_392) or a
// fourth version part (11.0.20.1).
const releasePatchScale = 1000

// ParseRelease parses a toolchain release string such as "17.0.9+9",
// "1.8.0_392" or "11.0.20.1" into a comparable semantic version. Legacy
// "1.x" releases drop the leading 1 and the trailing update or fourth part
// is folded into the patch, so 1.8.0_392 orders as 8.0.392 and 11.0.20.1 as
// 11.0.20001.
func ParseRelease(raw string) (*semver.Version, error) {
	normalized := normalizeRelease(raw)
	parsed, err := semver.NewVersion(normalized)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid toolchain release: %s", raw)).
			WithCause(err)
	}
	return parsed, nil
}

// ParseReleaseConstraint parses a constraint over toolchain releases. Every
// version inside it is normalized the way ParseRelease normalizes releases.
func ParseReleaseConstraint(raw string) (*semver.Constraints, error) {
	normalized := releaseToken.ReplaceAllStringFunc(strings.TrimSpace(raw), normalizeRelease)
	parsed, err := semver.NewConstraint(normalized)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid toolchain constraint: %s", raw)).
			WithCause(err)
	}
	return parsed, nil
}

// LanguageLevel reports the language version a parsed release implements:
// 8.0.392 -> 8, 17.0.9000 -> 17.
func LanguageLevel(release *semver.Version) types.Version {
	return types.Version(release.Major())
}

var releaseToken = regexp.MustCompile(`\d+(?:\.(?:\d+|[xX*]))*(?:_\d+)?`)

func normalizeRelease(raw string) string {
	value := strings.Trim(strings.TrimSpace(raw), `"`)
	core, suffix := value, ""
	if idx := strings.IndexAny(value, "+-"); idx >= 0 {
		core, suffix = value[:idx], value[idx:]
	}
	core, update, _ := strings.Cut(core, "_")
	parts := strings.Split(core, ".")
	if len(parts) >= 2 && parts[0] == "1" {
		parts = parts[1:]
	}
	if update != "" {
		for len(parts) < 3 {
			parts = append(parts, "0")
		}
		parts = append(parts[:3:3], update)
	}
	if len(parts) < 3 {
		return strings.Join(parts, ".") + suffix
	}
	patch, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return strings.Join(parts, ".") + suffix
	}
	patch *= releasePatchScale
	if len(parts) > 3 {
		extra, err := strconv.ParseUint(parts[3], 10, 64)
		if err != nil {
			return strings.Join(parts, ".") + suffix
		}
		patch += extra
		if len(parts) > 4 {
			rest := strings.Join(parts[4:], ".")
			if strings.Contains(suffix, "+") {
				suffix += "." + rest
			} else {
				suffix += "+" + rest
			}
		}
	}
	return fmt.Sprintf("%s.%s.%d%s", parts[0], parts[1], patch, suffix)
}
