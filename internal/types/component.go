package types

type Variant struct {
	Name string
	// Version is zero for version-independent variants such as sources.
	Version       Version
	Configuration Configuration
	Scope         MavenScope
}

// Component is the published aggregate of every unit's variants. It has no
// version attribute of its own.
type Component struct {
	Name               string
	Group              string
	Version            string
	Variants           []Variant
	SuppressedWarnings []string
	Archives           []Artifact
}

// ConsumerWiring records the edges the project's own main and test
// compilations take from the base unit.
type ConsumerWiring struct {
	MainCompileClasspath []Dependency
	TestCompileClasspath []string
	TestRuntimeClasspath []string
}

type Composition struct {
	Component Component
	Units     []*BuildUnit
	Wiring    ConsumerWiring
}
