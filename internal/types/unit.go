package types

import (
	"fmt"
	"strings"
)

type Dependency struct {
	Notation string `json:"notation"`
	// Origin names the unit an edge was forwarded from; empty when declared.
	Origin string `json:"origin,omitempty"`
}

type Artifact struct {
	Name       string `json:"name"`
	Version    string `json:"version,omitempty"`
	Classifier string `json:"classifier,omitempty"`
	Extension  string `json:"extension"`
}

// FileName renders name-version-classifier.extension, skipping empty parts.
func (a Artifact) FileName() string {
	base := a.Name
	if a.Version != "" {
		base = fmt.Sprintf("%s-%s", base, a.Version)
	}
	if a.Classifier != "" {
		base = fmt.Sprintf("%s-%s", base, a.Classifier)
	}
	return fmt.Sprintf("%s.%s", base, a.Extension)
}

type Configuration struct {
	Name         string
	Bucket       string
	Dependencies []Dependency
	Artifacts    []Artifact
	Attributes   Attributes
}

// SourceRoots is shared by pointer between every unit of a registry.
type SourceRoots struct {
	Java      []string `yaml:"java"`
	Kotlin    []string `yaml:"kotlin,omitempty"`
	Resources []string `yaml:"resources,omitempty"`
}

type Toolchain struct {
	LanguageVersion Version `yaml:"version"`
	Release         string  `yaml:"release"`
	Home            string  `yaml:"home,omitempty"`
	Vendor          string  `yaml:"vendor,omitempty"`
}

type JavaCompileOptions struct {
	Encoding            string   `yaml:"encoding,omitempty"`
	CompilerArgs        []string `yaml:"compiler_args,omitempty"`
	Incremental         bool     `yaml:"incremental,omitempty"`
	Deprecation         bool     `yaml:"deprecation,omitempty"`
	Warnings            bool     `yaml:"warnings,omitempty"`
	Debug               bool     `yaml:"debug,omitempty"`
	ListFiles           bool     `yaml:"list_files,omitempty"`
	FailOnError         bool     `yaml:"fail_on_error,omitempty"`
	SourceCompatibility string   `yaml:"-"`
	TargetCompatibility string   `yaml:"-"`
}

type KotlinCompileOptions struct {
	AllWarningsAsErrors bool     `yaml:"all_warnings_as_errors,omitempty"`
	APIVersion          string   `yaml:"api_version,omitempty"`
	LanguageVersion     string   `yaml:"language_version,omitempty"`
	FreeCompilerArgs    []string `yaml:"free_compiler_args,omitempty"`
	JavaParameters      bool     `yaml:"java_parameters,omitempty"`
	ModuleName          string   `yaml:"module_name,omitempty"`
	NoJdk               bool     `yaml:"no_jdk,omitempty"`
	SuppressWarnings    bool     `yaml:"suppress_warnings,omitempty"`
	UseK2               bool     `yaml:"use_k2,omitempty"`
	Verbose             bool     `yaml:"verbose,omitempty"`
	JvmTarget           string   `yaml:"-"`
}

type CompileOptions struct {
	Java   JavaCompileOptions   `yaml:"java"`
	Kotlin KotlinCompileOptions `yaml:"kotlin"`
}

type CompileStep struct {
	Language  CompileLanguage
	Toolchain Toolchain
	Options   CompileOptions
}

// BuildUnit is one compilation target for a single Version.
type BuildUnit struct {
	Name           string
	Version        Version
	Base           bool
	Sources        *SourceRoots
	Configurations map[string]*Configuration
	Compile        []CompileStep
	Archive        Artifact
	Finalized      bool
}

// Configuration returns the unit's bucket, or nil when it has none.
func (u *BuildUnit) Configuration(bucket string) *Configuration {
	if u == nil {
		return nil
	}
	return u.Configurations[bucket]
}

// ConfigurationName prefixes a bucket with the unit name the way a
// source set names its configurations: java17 + apiElements ->
// java17ApiElements.
func ConfigurationName(unitName string, bucket string) string {
	if unitName == "" || bucket == "" {
		return bucket
	}
	return unitName + strings.ToUpper(bucket[:1]) + bucket[1:]
}
