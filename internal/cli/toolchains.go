package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"multijdk/internal/app"
	"multijdk/internal/core"
	"multijdk/internal/types"
)

type toolchainsOptions struct {
	Project       string
	ToolchainDirs []string
}

func newToolchainsCommand() *cobra.Command {
	opts := toolchainsOptions{}
	cmd := &cobra.Command{
		Use:   "toolchains",
		Short: "List installed toolchains and the one chosen per target",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runToolchains(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Project, "project", "", "Project spec path")
	cmd.Flags().StringSliceVar(&opts.ToolchainDirs, "toolchain-dir", nil, "Directories to search for installed JDKs")
	_ = viper.BindPFlag("project", cmd.Flags().Lookup("project"))
	_ = viper.BindPFlag("toolchain_dirs", cmd.Flags().Lookup("toolchain-dir"))
	return cmd
}

func runToolchains(ctx context.Context, cmd *cobra.Command, opts toolchainsOptions) error {
	service := newAppService()
	result, err := service.Toolchains(ctx, app.ToolchainsRequest{
		ProjectPath:   resolveString(cmd, opts.Project, "project", "project"),
		ToolchainDirs: resolveStrings(cmd, opts.ToolchainDirs, "toolchain_dirs", "toolchain-dir"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("available toolchains: %d\n", len(result.Available))
	for _, toolchain := range result.Available {
		printStep("%s %s (%s) %s", toolchain.LanguageVersion.JavaName(), toolchain.Release, toolchain.Vendor, toolchain.Home)
	}
	selected := make([]types.Version, 0, len(result.Selected))
	for version := range result.Selected {
		selected = append(selected, version)
	}
	slices.Sort(selected)
	for _, version := range selected {
		printSuccess("%s -> %s", version.JavaName(), result.Selected[version].Release)
	}
	for _, version := range result.Missing {
		printError(fmt.Sprintf("%s: %s", version.JavaName(), core.MsgNoInstalledToolchain))
	}
	return nil
}
