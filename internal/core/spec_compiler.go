package core

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"multijdk/internal/types"
)

type SpecCompiler struct{}

var supportedAPIVersions = map[string]struct{}{
	"v1": {},
}

var validAttributeTypes = map[types.AttributeType]struct{}{
	types.AttributeTypeString: {},
	types.AttributeTypeInt:    {},
	types.AttributeTypeBool:   {},
}

func NewSpecCompiler() SpecCompiler {
	return SpecCompiler{}
}

func (c SpecCompiler) ValidateProject(ctx context.Context, spec types.ProjectSpec) error {
	if strings.TrimSpace(spec.APIVersion) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("api_version must be set")
	}
	if _, ok := supportedAPIVersions[spec.APIVersion]; !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported api_version: %s", spec.APIVersion))
	}
	if strings.TrimSpace(spec.Metadata.Name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("metadata.name must not be empty")
	}
	if strings.TrimSpace(spec.Metadata.Group) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("metadata.group must not be empty")
	}
	if strings.TrimSpace(spec.Metadata.Version) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("metadata.version must not be empty")
	}
	if err := validateTargets(spec.Targets); err != nil {
		return err
	}
	if len(spec.Sources.Roots.Java) == 0 && len(spec.Sources.Roots.Kotlin) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("sources.roots must list java or kotlin roots")
	}
	for bucket, notations := range spec.Configurations {
		if strings.TrimSpace(bucket) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("configuration bucket name must not be empty")
		}
		for _, notation := range notations {
			if strings.TrimSpace(notation) == "" {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("configuration %s has an empty dependency", bucket))
			}
		}
	}
	if err := validateAttributes("attributes.api_elements", spec.Attributes.APIElements); err != nil {
		return err
	}
	if err := validateAttributes("attributes.runtime_elements", spec.Attributes.RuntimeElements); err != nil {
		return err
	}
	if err := validateToolchains(spec.Toolchains); err != nil {
		return err
	}
	log.Ctx(ctx).Debug().Str("project", spec.Metadata.Name).Msg("project validated")
	return nil
}

func validateTargets(targets types.Targets) error {
	if targets.Base == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("targets.base must be set")
	}
	if err := CheckVersionRange(targets.Base); err != nil {
		return err
	}
	for _, version := range targets.Additional {
		if err := CheckVersionRange(version); err != nil {
			return err
		}
		if version == targets.Base {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("targets.additional repeats the base version %s", version.JavaName()))
		}
	}
	return nil
}

func validateAttributes(field string, attributes types.Attributes) error {
	for name, value := range attributes {
		if strings.TrimSpace(name) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("%s has an unnamed attribute", field))
		}
		if _, ok := validAttributeTypes[value.Type]; !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("%s.%s has invalid type %s", field, name, value.Type))
		}
		switch value.Type {
		case types.AttributeTypeInt:
			if _, err := strconv.Atoi(value.Value); err != nil {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("%s.%s is not an int: %s", field, name, value.Value))
			}
		case types.AttributeTypeBool:
			if _, err := strconv.ParseBool(value.Value); err != nil {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("%s.%s is not a bool: %s", field, name, value.Value))
			}
		}
	}
	return nil
}

func validateToolchains(settings types.ToolchainSettings) error {
	for _, toolchain := range settings.Declared {
		if err := CheckVersionRange(toolchain.LanguageVersion); err != nil {
			return err
		}
		release, err := ParseRelease(toolchain.Release)
		if err != nil {
			return err
		}
		if level := LanguageLevel(release); level != toolchain.LanguageVersion {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("toolchain release %s does not implement %s", toolchain.Release, toolchain.LanguageVersion.JavaName()))
		}
	}
	for version, constraint := range settings.Constraints {
		if err := CheckVersionRange(version); err != nil {
			return err
		}
		if strings.TrimSpace(constraint) == "" {
			continue
		}
		if _, err := ParseReleaseConstraint(constraint); err != nil {
			return err
		}
	}
	return nil
}
