package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"multijdk/internal/policies"
	"multijdk/internal/types"
)

const sourcesClassifier = "sources"

// sourcesAttributes describe the version independent sources archive.
var sourcesAttributes = types.Attributes{
	"org.gradle.category":            {Type: types.AttributeTypeString, Value: "documentation"},
	"org.gradle.docstype":            {Type: types.AttributeTypeString, Value: "sources"},
	"org.gradle.usage":               {Type: types.AttributeTypeString, Value: "java-runtime"},
	"org.gradle.dependency.bundling": {Type: types.AttributeTypeString, Value: "external"},
}

type VariantMerger struct {
	Propagator     AttributePropagator
	Templates      types.AttributeTemplates
	Metadata       types.Metadata
	PublishSources bool
}

func NewVariantMerger(project types.ProjectSpec) VariantMerger {
	return VariantMerger{
		Propagator:     NewAttributePropagator(),
		Templates:      project.Attributes,
		Metadata:       project.Metadata,
		PublishSources: project.Sources.Publish,
	}
}

// Finalize merges every unit of the registry into one component and closes
// the registry. Each unit contributes a compile and a runtime variant; the
// sources archive is contributed once.
func (m VariantMerger) Finalize(ctx context.Context, registry *Registry) (types.Component, error) {
	if registry.Closed() {
		return types.Component{}, finalizedError(MsgRegistryFinalized)
	}
	if registry.Base() == nil {
		return types.Component{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("%s before finalize", MsgBaseNotSet))
	}

	component := types.Component{
		Name:    m.Metadata.Name,
		Group:   m.Metadata.Group,
		Version: m.Metadata.Version,
	}
	for _, unit := range registry.Units() {
		for _, bucket := range []string{types.BucketAPIElements, types.BucketRuntimeElements} {
			variant, err := m.unitVariant(unit, bucket)
			if err != nil {
				return types.Component{}, err
			}
			component.Variants = append(component.Variants, variant)
		}
		component.SuppressedWarnings = append(component.SuppressedWarnings, policies.SuppressedWarnings(unit.Version)...)
		component.Archives = append(component.Archives, unit.Archive)
	}
	if m.PublishSources {
		variant := m.sourcesVariant(registry.Base())
		component.Variants = append(component.Variants, variant)
		component.Archives = append(component.Archives, variant.Configuration.Artifacts...)
	}
	if err := checkAmbiguity(component.Variants); err != nil {
		return types.Component{}, err
	}

	registry.close()
	for _, name := range component.SuppressedWarnings {
		log.Ctx(ctx).Debug().Str("variant", name).Msg("pom metadata warning suppressed")
	}
	log.Ctx(ctx).Debug().
		Int("units", len(component.Archives)).
		Int("variants", len(component.Variants)).
		Msg("component finalized")
	return component, nil
}

// unitVariant stamps the unit's own elements bucket and builds the
// published view of it.
func (m VariantMerger) unitVariant(unit *types.BuildUnit, bucket string) (types.Variant, error) {
	scope, err := policies.ElementsScope(bucket)
	if err != nil {
		return types.Variant{}, err
	}
	template := m.Templates.APIElements
	if bucket == types.BucketRuntimeElements {
		template = m.Templates.RuntimeElements
	}
	versionAttr := VersionAttribute(unit.Version)
	m.Propagator.Propagate(template, unit.Configuration(bucket), types.TargetJvmVersionAttribute, versionAttr)

	view := types.Configuration{
		Name:         policies.VariantName(bucket, unit.Version),
		Bucket:       bucket,
		Dependencies: policies.ResolveEdges(unit, bucket),
		Artifacts:    []types.Artifact{unit.Archive},
	}
	m.Propagator.Propagate(template, &view, types.TargetJvmVersionAttribute, versionAttr)
	return types.Variant{
		Name:          view.Name,
		Version:       unit.Version,
		Configuration: view,
		Scope:         scope,
	}, nil
}

func (m VariantMerger) sourcesVariant(base *types.BuildUnit) types.Variant {
	archive := types.Artifact{
		Name:       base.Archive.Name,
		Version:    base.Archive.Version,
		Classifier: sourcesClassifier,
		Extension:  archiveExtension,
	}
	attributes := sourcesAttributes.Clone()
	if cfg := base.Configuration(types.BucketSourcesElements); cfg != nil {
		for key, value := range cfg.Attributes {
			attributes[key] = value
		}
		cfg.Artifacts = []types.Artifact{archive}
	}
	return types.Variant{
		Name: types.BucketSourcesElements,
		Configuration: types.Configuration{
			Name:       types.BucketSourcesElements,
			Bucket:     types.BucketSourcesElements,
			Artifacts:  []types.Artifact{archive},
			Attributes: attributes,
		},
		Scope: types.MavenScopeRuntime,
	}
}

// checkAmbiguity rejects two variants a consumer could not tell apart.
func checkAmbiguity(variants []types.Variant) error {
	seen := map[string]string{}
	for _, variant := range variants {
		key := string(variant.Scope) + "|" + attributeKey(variant.Configuration.Attributes)
		if other, found := seen[key]; found {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("%s: %s and %s", MsgAmbiguousVariants, other, variant.Name))
		}
		seen[key] = variant.Name
	}
	return nil
}

func attributeKey(attributes types.Attributes) string {
	keys := make([]string, 0, len(attributes))
	for key := range attributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var builder strings.Builder
	for _, key := range keys {
		value := attributes[key]
		builder.WriteString(key)
		builder.WriteString("=")
		builder.WriteString(string(value.Type))
		builder.WriteString(":")
		builder.WriteString(value.Value)
		builder.WriteString(";")
	}
	return builder.String()
}
