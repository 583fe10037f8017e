package ports

import "multijdk/internal/types"

// ComponentWriterPort publishes a composed component's metadata.
type ComponentWriterPort interface {
	WriteModuleMetadata(component types.Component) error
	WritePOM(component types.Component, base types.Version) error
	WriteUnitsReport(units []*types.BuildUnit) error
}

type ComponentReaderPort interface {
	ReadModuleMetadata(path string) (types.Component, error)
}
