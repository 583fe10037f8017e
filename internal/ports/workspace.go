package ports

// WorkspacePort discovers source files under a unit's source roots.
type WorkspacePort interface {
	FindSources(root string) ([]string, error)
}
