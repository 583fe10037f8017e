package adapters

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"multijdk/internal/ports"
	"multijdk/internal/types"
)

const (
	sbomFileSuffix       = ".spdx.json"
	DefaultSBOMNamespace = "https://spdx.org/spdxdocs"
)

type spdxCreationInfo struct {
	Created  string   `json:"created"`
	Creators []string `json:"creators"`
}

type spdxExternalRef struct {
	ReferenceCategory string `json:"referenceCategory"`
	ReferenceType     string `json:"referenceType"`
	ReferenceLocator  string `json:"referenceLocator"`
}

type spdxPackage struct {
	SPDXID           string            `json:"SPDXID"`
	Name             string            `json:"name"`
	VersionInfo      string            `json:"versionInfo,omitempty"`
	DownloadLocation string            `json:"downloadLocation"`
	LicenseConcluded string            `json:"licenseConcluded"`
	LicenseDeclared  string            `json:"licenseDeclared"`
	Supplier         string            `json:"supplier"`
	ExternalRefs     []spdxExternalRef `json:"externalRefs,omitempty"`
}

type spdxRelationship struct {
	SpdxElementID      string `json:"spdxElementId"`
	RelationshipType   string `json:"relationshipType"`
	RelatedSpdxElement string `json:"relatedSpdxElement"`
}

type spdxDocument struct {
	SPDXVersion       string             `json:"SPDXVersion"`
	DataLicense       string             `json:"DataLicense"`
	SPDXID            string             `json:"SPDXID"`
	Name              string             `json:"name"`
	DocumentNamespace string             `json:"documentNamespace"`
	CreationInfo      spdxCreationInfo   `json:"creationInfo"`
	Packages          []spdxPackage      `json:"packages"`
	Relationships     []spdxRelationship `json:"relationships"`
	DocumentDescribes []string           `json:"documentDescribes"`
}

// SBOMWriterAdapter writes an SPDX document describing a component and
// every external module its variants depend on.
type SBOMWriterAdapter struct {
	Dir           string
	NamespaceBase string
}

func NewSBOMWriterAdapter(dir string) SBOMWriterAdapter {
	return SBOMWriterAdapter{Dir: dir, NamespaceBase: DefaultSBOMNamespace}
}

// SBOMFileName is the SPDX file name for a component.
func SBOMFileName(component types.Component) string {
	return fmt.Sprintf("%s-%s%s", component.Name, component.Version, sbomFileSuffix)
}

func (a SBOMWriterAdapter) WriteSBOM(component types.Component, createdAt string) error {
	if strings.TrimSpace(component.Name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("component name is empty")
	}
	writer := ComponentFileAdapter{Dir: a.Dir}
	path, err := writer.ensurePath(SBOMFileName(component))
	if err != nil {
		return err
	}

	created := time.Now().UTC()
	if parsed := parseTimeFlexible(createdAt); !parsed.IsZero() {
		created = parsed
	}
	rootID := spdxPackageID(component.Group+":"+component.Name, component.Version)
	doc := spdxDocument{
		SPDXVersion:       "SPDX-2.3",
		DataLicense:       "CC0-1.0",
		SPDXID:            "SPDXRef-DOCUMENT",
		Name:              fmt.Sprintf("%s %s", component.Name, component.Version),
		DocumentNamespace: fmt.Sprintf("%s/%s/%s-%s", a.namespaceBase(), component.Group, component.Name, component.Version),
		CreationInfo: spdxCreationInfo{
			Created:  created.Format(time.RFC3339),
			Creators: []string{"Tool: " + toolName},
		},
		Packages: []spdxPackage{
			mavenPackage(rootID, component.Group, component.Name, component.Version),
		},
		DocumentDescribes: []string{rootID},
		Relationships: []spdxRelationship{{
			SpdxElementID:      "SPDXRef-DOCUMENT",
			RelationshipType:   "DESCRIBES",
			RelatedSpdxElement: rootID,
		}},
	}
	for _, dep := range componentModules(component) {
		id := spdxPackageID(dep.Group+":"+dep.Module, dep.Version)
		doc.Packages = append(doc.Packages, mavenPackage(id, dep.Group, dep.Module, dep.Version))
		doc.Relationships = append(doc.Relationships, spdxRelationship{
			SpdxElementID:      rootID,
			RelationshipType:   "DEPENDS_ON",
			RelatedSpdxElement: id,
		})
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal sbom payload").
			WithCause(err)
	}
	return writer.write(path, data)
}

func (a SBOMWriterAdapter) namespaceBase() string {
	base := strings.TrimRight(strings.TrimSpace(a.NamespaceBase), "/")
	if base == "" {
		return DefaultSBOMNamespace
	}
	return base
}

// componentModules lists the distinct external modules across all variants,
// sorted by notation.
func componentModules(component types.Component) []moduleDependency {
	seen := map[string]moduleDependency{}
	for _, variant := range component.Variants {
		for _, dep := range variant.Configuration.Dependencies {
			seen[dep.Notation] = splitNotation(dep.Notation)
		}
	}
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]moduleDependency, 0, len(keys))
	for _, key := range keys {
		out = append(out, seen[key])
	}
	return out
}

func mavenPackage(id string, group string, module string, version string) spdxPackage {
	pkg := spdxPackage{
		SPDXID:           id,
		Name:             module,
		VersionInfo:      version,
		DownloadLocation: "NOASSERTION",
		LicenseConcluded: "NOASSERTION",
		LicenseDeclared:  "NOASSERTION",
		Supplier:         "NOASSERTION",
	}
	if group != "" {
		locator := fmt.Sprintf("pkg:maven/%s/%s", group, module)
		if version != "" {
			locator += "@" + version
		}
		pkg.ExternalRefs = []spdxExternalRef{{
			ReferenceCategory: "PACKAGE-MANAGER",
			ReferenceType:     "purl",
			ReferenceLocator:  locator,
		}}
	}
	return pkg
}

func spdxPackageID(name string, version string) string {
	seed := fmt.Sprintf("%s@%s", name, version)
	hash := sha256.Sum256([]byte(seed))
	return "SPDXRef-Package-" + hex.EncodeToString(hash[:8])
}

var _ ports.SBOMPort = SBOMWriterAdapter{}
