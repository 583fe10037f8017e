package adapters

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"multijdk/internal/core"
	"multijdk/internal/ports"
	"multijdk/internal/shared"
	"multijdk/internal/types"
)

const releaseFileName = "release"

// ToolchainResolverAdapter resolves language levels against declared
// toolchains and JDK homes found under the configured directories. A JDK
// home is any directory holding a "release" file with JAVA_VERSION set.
type ToolchainResolverAdapter struct {
	Declared    []types.Toolchain
	Directories []string
	Constraints map[types.Version]string
}

func NewToolchainResolverAdapter(settings types.ToolchainSettings) ToolchainResolverAdapter {
	return ToolchainResolverAdapter{
		Declared:    settings.Declared,
		Directories: shared.UniqueStrings(settings.Directories),
		Constraints: settings.Constraints,
	}
}

func (a ToolchainResolverAdapter) Resolve(ctx context.Context, version types.Version) (types.Toolchain, error) {
	available, err := a.Available(ctx)
	if err != nil {
		return types.Toolchain{}, err
	}
	constraint := a.Constraints[version]
	toolchain, ok, err := core.SelectToolchain(version, available, constraint)
	if err != nil {
		return types.Toolchain{}, err
	}
	if !ok {
		msg := fmt.Sprintf("%s implements %s", core.MsgNoInstalledToolchain, version.JavaName())
		if constraint != "" {
			msg = fmt.Sprintf("%s within %s", msg, constraint)
		}
		return types.Toolchain{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(msg)
	}
	log.Ctx(ctx).Debug().
		Str("version", version.JavaName()).
		Str("release", toolchain.Release).
		Str("home", toolchain.Home).
		Msg("toolchain resolved")
	return toolchain, nil
}

func (a ToolchainResolverAdapter) Available(ctx context.Context) ([]types.Toolchain, error) {
	all := append([]types.Toolchain(nil), a.Declared...)
	for _, dir := range a.Directories {
		found, err := discoverToolchains(ctx, shared.ExpandHome(dir))
		if err != nil {
			return nil, err
		}
		all = append(all, found...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].LanguageVersion != all[j].LanguageVersion {
			return all[i].LanguageVersion < all[j].LanguageVersion
		}
		return releaseLess(all[i].Release, all[j].Release)
	})
	return all, nil
}

// releaseLess orders releases numerically, 1.8.0_99 before 1.8.0_100.
// Unparseable releases fall back to string order.
func releaseLess(a, b string) bool {
	left, errA := core.ParseRelease(a)
	right, errB := core.ParseRelease(b)
	if errA != nil || errB != nil {
		return a < b
	}
	return left.LessThan(right)
}

func discoverToolchains(ctx context.Context, dir string) ([]types.Toolchain, error) {
	if toolchain, ok := readJDKHome(ctx, dir); ok {
		return []types.Toolchain{toolchain}, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Ctx(ctx).Debug().Str("dir", dir).Msg("toolchain directory missing")
			return nil, nil
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan toolchain directory").
			WithCause(err)
	}
	var out []types.Toolchain
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if toolchain, ok := readJDKHome(ctx, filepath.Join(dir, entry.Name())); ok {
			out = append(out, toolchain)
		}
	}
	return out, nil
}

// readJDKHome reads home/release. Homes whose release cannot be parsed
// are skipped.
func readJDKHome(ctx context.Context, home string) (types.Toolchain, bool) {
	file, err := os.Open(filepath.Join(home, releaseFileName))
	if err != nil {
		return types.Toolchain{}, false
	}
	defer file.Close()

	values := map[string]string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), "=")
		if !found {
			continue
		}
		values[strings.TrimSpace(key)] = strings.Trim(strings.TrimSpace(value), `"`)
	}
	release := values["JAVA_VERSION"]
	if release == "" {
		return types.Toolchain{}, false
	}
	parsed, err := core.ParseRelease(release)
	if err != nil {
		log.Ctx(ctx).Debug().Str("home", home).Str("release", release).Msg("skipping unparseable toolchain")
		return types.Toolchain{}, false
	}
	return types.Toolchain{
		LanguageVersion: core.LanguageLevel(parsed),
		Release:         release,
		Home:            home,
		Vendor:          values["IMPLEMENTOR"],
	}, true
}

var _ ports.ToolchainPort = ToolchainResolverAdapter{}
