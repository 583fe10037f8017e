package adapters

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"multijdk/internal/policies"
	"multijdk/internal/ports"
	"multijdk/internal/types"
)

// UnitsReportName is the file listing one line per build unit.
const UnitsReportName = "units.report"

const (
	toolName         = "multijdk"
	moduleFileSuffix = ".module"
	pomFileSuffix    = ".pom"
	pomMarker        = " do_not_remove: published-with-gradle-metadata "
)

// ComponentFileAdapter writes component metadata into Dir.
type ComponentFileAdapter struct {
	Dir         string
	ToolVersion string
}

func NewComponentFileAdapter(dir string, toolVersion string) ComponentFileAdapter {
	return ComponentFileAdapter{Dir: dir, ToolVersion: toolVersion}
}

// ModuleFileName is the metadata file name for a component.
func ModuleFileName(component types.Component) string {
	return fmt.Sprintf("%s-%s%s", component.Name, component.Version, moduleFileSuffix)
}

func POMFileName(component types.Component) string {
	return fmt.Sprintf("%s-%s%s", component.Name, component.Version, pomFileSuffix)
}

func (a ComponentFileAdapter) WriteModuleMetadata(component types.Component) error {
	path, err := a.ensurePath(ModuleFileName(component))
	if err != nil {
		return err
	}
	metadata := moduleMetadata{
		FormatVersion: moduleFormatVersion,
		Component: moduleComponent{
			Group:   component.Group,
			Module:  component.Name,
			Version: component.Version,
		},
		CreatedBy:             map[string]string{toolName: a.toolVersion()},
		SuppressedPomWarnings: append([]string(nil), component.SuppressedWarnings...),
	}
	sort.Strings(metadata.SuppressedPomWarnings)
	for _, variant := range component.Variants {
		entry := moduleVariant{
			Name:       variant.Name,
			Scope:      variant.Scope,
			Attributes: encodeAttributes(variant.Configuration.Attributes),
		}
		for _, dep := range variant.Configuration.Dependencies {
			entry.Dependencies = append(entry.Dependencies, splitNotation(dep.Notation))
		}
		for _, artifact := range variant.Configuration.Artifacts {
			entry.Files = append(entry.Files, moduleFile{
				Name:       artifact.FileName(),
				URL:        artifact.FileName(),
				Classifier: artifact.Classifier,
			})
		}
		metadata.Variants = append(metadata.Variants, entry)
	}
	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal module metadata").
			WithCause(err)
	}
	return a.write(path, data)
}

type pomProject struct {
	XMLName      xml.Name        `xml:"project"`
	Xmlns        string          `xml:"xmlns,attr"`
	Marker       xml.Comment     `xml:",comment"`
	ModelVersion string          `xml:"modelVersion"`
	GroupID      string          `xml:"groupId"`
	ArtifactID   string          `xml:"artifactId"`
	Version      string          `xml:"version"`
	Dependencies []pomDependency `xml:"dependencies>dependency,omitempty"`
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version,omitempty"`
	Scope      string `xml:"scope"`
}

// WritePOM renders the base version's variants as a Maven POM. The POM
// cannot express the other versions' variants; those are the suppressed
// warnings recorded on the component.
func (a ComponentFileAdapter) WritePOM(component types.Component, base types.Version) error {
	path, err := a.ensurePath(POMFileName(component))
	if err != nil {
		return err
	}
	project := pomProject{
		Xmlns:        "http://maven.apache.org/POM/4.0.0",
		Marker:       xml.Comment(pomMarker),
		ModelVersion: "4.0.0",
		GroupID:      component.Group,
		ArtifactID:   component.Name,
		Version:      component.Version,
	}
	seen := map[string]struct{}{}
	for _, bucket := range []string{types.BucketAPIElements, types.BucketRuntimeElements} {
		name := policies.VariantName(bucket, base)
		for _, variant := range component.Variants {
			if variant.Name != name {
				continue
			}
			for _, dep := range variant.Configuration.Dependencies {
				if _, dup := seen[dep.Notation]; dup {
					continue
				}
				seen[dep.Notation] = struct{}{}
				parts := splitNotation(dep.Notation)
				project.Dependencies = append(project.Dependencies, pomDependency{
					GroupID:    parts.Group,
					ArtifactID: parts.Module,
					Version:    parts.Version,
					Scope:      string(variant.Scope),
				})
			}
		}
	}
	data, err := xml.MarshalIndent(project, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal pom").
			WithCause(err)
	}
	return a.write(path, append([]byte(xml.Header), data...))
}

func (a ComponentFileAdapter) WriteUnitsReport(units []*types.BuildUnit) error {
	path, err := a.ensurePath(UnitsReportName)
	if err != nil {
		return err
	}
	ordered := append([]*types.BuildUnit(nil), units...)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Version < ordered[j].Version
	})
	var lines []string
	for _, unit := range ordered {
		role := "derived"
		if unit.Base {
			role = "base"
		}
		release := ""
		if len(unit.Compile) > 0 {
			release = unit.Compile[0].Toolchain.Release
		}
		lines = append(lines, fmt.Sprintf("%s,%d,%s,%s,%s", unit.Name, unit.Version.Int(), role, unit.Archive.FileName(), release))
	}
	return a.write(path, []byte(strings.Join(lines, "\n")))
}

func (a ComponentFileAdapter) toolVersion() string {
	if a.ToolVersion == "" {
		return "dev"
	}
	return a.ToolVersion
}

func (a ComponentFileAdapter) write(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to write %s", filepath.Base(path))).
			WithCause(err)
	}
	return nil
}

func (a ComponentFileAdapter) ensurePath(filename string) (string, error) {
	if a.Dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, filename), nil
}

var _ ports.ComponentWriterPort = ComponentFileAdapter{}
