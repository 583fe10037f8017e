package app

import (
	"multijdk/internal/adapters"
	"multijdk/internal/ports"
	"multijdk/internal/types"
)

type Service struct {
	ProjectLoader   ports.ProjectSpecPort
	ComponentReader ports.ComponentReaderPort
	Workspace       ports.WorkspacePort
	// ToolchainResolver overrides the resolver built from the project's
	// toolchain settings when set.
	ToolchainResolver ports.ToolchainPort
	// SBOMWriter overrides the SPDX writer for the output directory.
	SBOMWriter  ports.SBOMPort
	ToolVersion string
}

func NewService() Service {
	return Service{
		ProjectLoader:   adapters.NewSpecFileAdapter(),
		ComponentReader: adapters.NewComponentReaderAdapter(),
		Workspace:       adapters.NewWorkspaceAdapter(),
	}
}

func (s Service) toolchainPort(settings types.ToolchainSettings) ports.ToolchainPort {
	if s.ToolchainResolver != nil {
		return s.ToolchainResolver
	}
	return adapters.NewToolchainResolverAdapter(settings)
}

func (s Service) sbomPort(outputDir string) ports.SBOMPort {
	if s.SBOMWriter != nil {
		return s.SBOMWriter
	}
	return adapters.NewSBOMWriterAdapter(outputDir)
}
