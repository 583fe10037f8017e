package ports

import "multijdk/internal/types"

type ProjectSpecPort interface {
	LoadProject(path string) (types.ProjectSpec, error)
}
