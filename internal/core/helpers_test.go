package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"multijdk/internal/types"
)

// stubToolchains resolves every version listed in releases and reports
// the rest as missing.
type stubToolchains struct {
	releases map[types.Version]string
	calls    []types.Version
}

func newStubToolchains(versions ...types.Version) *stubToolchains {
	releases := map[types.Version]string{}
	for _, version := range versions {
		releases[version] = fmt.Sprintf("%s.0.1", version.String())
		if version <= 8 {
			releases[version] = fmt.Sprintf("1.%d.0_392", version.Int())
		}
	}
	return &stubToolchains{releases: releases}
}

func (s *stubToolchains) Resolve(_ context.Context, version types.Version) (types.Toolchain, error) {
	s.calls = append(s.calls, version)
	release, ok := s.releases[version]
	if !ok {
		return types.Toolchain{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no installed toolchain implements %s", version.JavaName()))
	}
	return types.Toolchain{
		LanguageVersion: version,
		Release:         release,
		Home:            "/opt/jdk/" + version.JavaName(),
	}, nil
}

func (s *stubToolchains) Available(context.Context) ([]types.Toolchain, error) {
	var out []types.Toolchain
	for version, release := range s.releases {
		out = append(out, types.Toolchain{LanguageVersion: version, Release: release})
	}
	return out, nil
}

func sampleProject() types.ProjectSpec {
	return types.ProjectSpec{
		APIVersion: "v1",
		Metadata: types.Metadata{
			Name:    "tracing-core",
			Group:   "com.example",
			Version: "2.4.0",
		},
		Targets: types.Targets{Base: 8, Additional: []types.Version{11, 17}},
		Sources: types.SourcesInput{
			Roots:   types.SourceRoots{Java: []string{"src/main/java"}},
			Publish: true,
		},
		Configurations: map[string][]string{
			types.BucketAPI:            {"org.slf4j:slf4j-api:2.0.9"},
			types.BucketImplementation: {"com.google.guava:guava:32.1.3-jre"},
			types.BucketCompileOnly:    {"com.google.code.findbugs:jsr305:3.0.2"},
			types.BucketRuntimeOnly:    {"ch.qos.logback:logback-classic:1.4.11"},
		},
		Attributes: types.AttributeTemplates{
			APIElements: types.Attributes{
				"org.gradle.usage":    {Type: types.AttributeTypeString, Value: "java-api"},
				"org.gradle.category": {Type: types.AttributeTypeString, Value: "library"},
			},
			RuntimeElements: types.Attributes{
				"org.gradle.usage":    {Type: types.AttributeTypeString, Value: "java-runtime"},
				"org.gradle.category": {Type: types.AttributeTypeString, Value: "library"},
			},
		},
		Compile: types.CompileOptions{
			Java: types.JavaCompileOptions{
				Encoding:     "UTF-8",
				CompilerArgs: []string{"-Xlint:all"},
				Incremental:  true,
			},
		},
	}
}

func notations(deps []types.Dependency) []string {
	out := make([]string, 0, len(deps))
	for _, dep := range deps {
		out = append(out, dep.Notation)
	}
	return out
}
