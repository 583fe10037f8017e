// Package shared provides common utility functions used across multiple
// packages in the multijdk codebase.
package shared

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome replaces a leading "~" with the current user's home
// directory. The path is returned unchanged when the home directory
// cannot be determined.
func ExpandHome(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed != "~" && !strings.HasPrefix(trimmed, "~/") {
		return trimmed
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return trimmed
	}
	return filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
}

// UniqueStrings drops blanks and repeats, keeping first occurrences.
func UniqueStrings(values []string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
