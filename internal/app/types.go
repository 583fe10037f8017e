package app

import "multijdk/internal/types"

type ValidateRequest struct {
	ProjectPath string
}

type ValidateResult struct {
	ProjectName string
	Base        types.Version
	Targets     []types.Version
	// SourceFiles counts Java and Kotlin files under the existing roots.
	SourceFiles  int
	MissingRoots []string
}

type ComposeRequest struct {
	ProjectPath string
	OutputDir   string
	// Base overrides targets.base when non-zero.
	Base types.Version
	// Targets are added after the project's own additional targets.
	Targets       []types.Version
	ToolchainDirs []string
	// SBOM also writes an SPDX document of the component's dependencies.
	SBOM          bool
	SBOMCreatedAt string
}

type ComposeResult struct {
	ProjectName string
	OutputDir   string
	Units       int
	Variants    int
	Files       []string
	Composition types.Composition
}

type InspectRequest struct {
	OutputDir string
}

type InspectVariantSummary struct {
	Name         string
	Scope        types.MavenScope
	Version      types.Version
	Dependencies int
	Files        []string
}

type InspectResult struct {
	Component          string
	Versions           []types.Version
	Variants           []InspectVariantSummary
	SuppressedWarnings []string
}

type ToolchainsRequest struct {
	ProjectPath   string
	ToolchainDirs []string
}

type ToolchainsResult struct {
	Available []types.Toolchain
	Selected  map[types.Version]types.Toolchain
	Missing   []types.Version
}
