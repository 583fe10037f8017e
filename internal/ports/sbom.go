package ports

import "multijdk/internal/types"

type SBOMPort interface {
	WriteSBOM(component types.Component, createdAt string) error
}
