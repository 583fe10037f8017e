package types

type Metadata struct {
	Name        string `yaml:"name"`
	Group       string `yaml:"group"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
}

// Targets declares the base language level and the extra levels derived
// from it.
type Targets struct {
	Base       Version   `yaml:"base"`
	Additional []Version `yaml:"additional,omitempty"`
}

type SourcesInput struct {
	Roots   SourceRoots `yaml:"roots"`
	Publish bool        `yaml:"publish"`
}

// AttributeTemplates hold the resolution attributes copied onto every
// unit's outgoing elements, keyed by the bucket they describe.
type AttributeTemplates struct {
	APIElements     Attributes `yaml:"api_elements"`
	RuntimeElements Attributes `yaml:"runtime_elements"`
}

// ToolchainSettings lists installed toolchains, directories to scan for
// more, and optional release constraints per language level.
type ToolchainSettings struct {
	Declared    []Toolchain        `yaml:"declared,omitempty"`
	Directories []string           `yaml:"directories,omitempty"`
	Constraints map[Version]string `yaml:"constraints,omitempty"`
}

type ProjectSpec struct {
	APIVersion     string              `yaml:"api_version"`
	Metadata       Metadata            `yaml:"metadata"`
	Targets        Targets             `yaml:"targets"`
	Sources        SourcesInput        `yaml:"sources"`
	Configurations map[string][]string `yaml:"configurations,omitempty"`
	Attributes     AttributeTemplates  `yaml:"attributes"`
	Compile        CompileOptions      `yaml:"compile"`
	Toolchains     ToolchainSettings   `yaml:"toolchains,omitempty"`
}
