package adapters

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"multijdk/internal/ports"
)

var sourceExtensions = map[string]struct{}{
	".java": {},
	".kt":   {},
	".kts":  {},
}

type WorkspaceAdapter struct{}

func NewWorkspaceAdapter() WorkspaceAdapter {
	return WorkspaceAdapter{}
}

// FindSources lists the Java and Kotlin source files under root, sorted.
// A missing root yields a NotFound error.
func (a WorkspaceAdapter) FindSources(root string) ([]string, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("source root is empty")
	}
	if _, err := os.Stat(root); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("source root not found: " + root).
			WithCause(err)
	}
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && shouldSkipWorkspaceDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := sourceExtensions[filepath.Ext(path)]; ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan source root").
			WithCause(err)
	}
	sort.Strings(paths)
	return paths, nil
}

func shouldSkipWorkspaceDir(name string) bool {
	switch name {
	case "build", "out", "target", ".git", ".gradle", ".idea", "node_modules":
		return true
	default:
		return false
	}
}

var _ ports.WorkspacePort = WorkspaceAdapter{}
