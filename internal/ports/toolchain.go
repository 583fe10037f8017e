package ports

import (
	"context"

	"multijdk/internal/types"
)

// ToolchainPort maps a language level to an installed toolchain.
type ToolchainPort interface {
	// Resolve returns the toolchain for exactly the given version, or an
	// error coded NotFound when none is installed.
	Resolve(ctx context.Context, version types.Version) (types.Toolchain, error)

	// Available lists every toolchain the resolver knows about, sorted by
	// language level then release.
	Available(ctx context.Context) ([]types.Toolchain, error)
}
