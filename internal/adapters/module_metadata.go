package adapters

import (
	"strconv"
	"strings"

	"multijdk/internal/types"
)

const moduleFormatVersion = "1.1"

// moduleMetadata is the JSON shape of a published component: one entry per
// variant with typed attributes, dependencies and files.
type moduleMetadata struct {
	FormatVersion         string            `json:"formatVersion"`
	Component             moduleComponent   `json:"component"`
	CreatedBy             map[string]string `json:"createdBy"`
	Variants              []moduleVariant   `json:"variants"`
	SuppressedPomWarnings []string          `json:"suppressedPomWarnings,omitempty"`
}

type moduleComponent struct {
	Group   string `json:"group"`
	Module  string `json:"module"`
	Version string `json:"version"`
}

type moduleVariant struct {
	Name         string             `json:"name"`
	Scope        types.MavenScope   `json:"scope"`
	Attributes   map[string]any     `json:"attributes"`
	Dependencies []moduleDependency `json:"dependencies,omitempty"`
	Files        []moduleFile       `json:"files,omitempty"`
}

type moduleDependency struct {
	Group   string `json:"group,omitempty"`
	Module  string `json:"module"`
	Version string `json:"version,omitempty"`
}

type moduleFile struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	Classifier string `json:"classifier,omitempty"`
}

func encodeAttributes(attributes types.Attributes) map[string]any {
	out := make(map[string]any, len(attributes))
	for key, value := range attributes {
		switch value.Type {
		case types.AttributeTypeInt:
			if parsed, err := strconv.Atoi(value.Value); err == nil {
				out[key] = parsed
				continue
			}
		case types.AttributeTypeBool:
			if parsed, err := strconv.ParseBool(value.Value); err == nil {
				out[key] = parsed
				continue
			}
		}
		out[key] = value.Value
	}
	return out
}

func decodeAttributes(raw map[string]any) types.Attributes {
	out := make(types.Attributes, len(raw))
	for key, value := range raw {
		switch typed := value.(type) {
		case float64:
			out[key] = types.AttributeValue{Type: types.AttributeTypeInt, Value: strconv.FormatInt(int64(typed), 10)}
		case bool:
			out[key] = types.AttributeValue{Type: types.AttributeTypeBool, Value: strconv.FormatBool(typed)}
		case string:
			out[key] = types.AttributeValue{Type: types.AttributeTypeString, Value: typed}
		}
	}
	return out
}

// splitNotation breaks "group:module:version" apart. Notations that do not
// have that shape are kept whole as the module.
func splitNotation(notation string) moduleDependency {
	parts := strings.Split(notation, ":")
	switch len(parts) {
	case 2:
		return moduleDependency{Group: parts[0], Module: parts[1]}
	case 3:
		return moduleDependency{Group: parts[0], Module: parts[1], Version: parts[2]}
	default:
		return moduleDependency{Module: notation}
	}
}

func joinNotation(dep moduleDependency) string {
	if dep.Group == "" {
		return dep.Module
	}
	if dep.Version == "" {
		return dep.Group + ":" + dep.Module
	}
	return dep.Group + ":" + dep.Module + ":" + dep.Version
}
