package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"multijdk/internal/app"
)

type composeOptions struct {
	Project       string
	OutputDir     string
	Base          string
	Targets       []string
	ToolchainDirs []string
	SBOM          bool
	SBOMCreatedAt string
}

func newComposeCommand() *cobra.Command {
	opts := composeOptions{}
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Build the unit graph and write the multi-version component",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompose(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Project, "project", "", "Project spec path")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "build/publications", "Output directory")
	cmd.Flags().StringVar(&opts.Base, "base", "", "Override the base language version")
	cmd.Flags().StringSliceVar(&opts.Targets, "target", nil, "Additional language versions")
	cmd.Flags().StringSliceVar(&opts.ToolchainDirs, "toolchain-dir", nil, "Directories to search for installed JDKs")
	cmd.Flags().BoolVar(&opts.SBOM, "sbom", false, "Also write an SPDX SBOM of the component")
	cmd.Flags().StringVar(&opts.SBOMCreatedAt, "sbom-created", "", "SBOM creation time (RFC 3339 or epoch seconds)")
	_ = viper.BindPFlag("project", cmd.Flags().Lookup("project"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("base", cmd.Flags().Lookup("base"))
	_ = viper.BindPFlag("targets", cmd.Flags().Lookup("target"))
	_ = viper.BindPFlag("toolchain_dirs", cmd.Flags().Lookup("toolchain-dir"))
	_ = viper.BindPFlag("sbom", cmd.Flags().Lookup("sbom"))
	_ = viper.BindPFlag("sbom_created", cmd.Flags().Lookup("sbom-created"))
	return cmd
}

func runCompose(ctx context.Context, cmd *cobra.Command, opts composeOptions) error {
	base, err := resolveVersion(cmd, opts.Base, "base", "base")
	if err != nil {
		return err
	}
	targets, err := resolveVersions(cmd, opts.Targets, "targets", "target")
	if err != nil {
		return err
	}
	service := newAppService()
	result, err := service.Compose(ctx, app.ComposeRequest{
		ProjectPath:   resolveString(cmd, opts.Project, "project", "project"),
		OutputDir:     resolveString(cmd, opts.OutputDir, "output", "output"),
		Base:          base,
		Targets:       targets,
		ToolchainDirs: resolveStrings(cmd, opts.ToolchainDirs, "toolchain_dirs", "toolchain-dir"),
		SBOM:          resolveBool(cmd, opts.SBOM, "sbom", "sbom"),
		SBOMCreatedAt: resolveString(cmd, opts.SBOMCreatedAt, "sbom_created", "sbom-created"),
	})
	if err != nil {
		return err
	}
	printSuccess("composed: %s", result.ProjectName)
	printInfo("units: %d, variants: %d", result.Units, result.Variants)
	for _, unit := range result.Composition.Units {
		printStep("%s (%s)", unit.Name, unit.Archive.FileName())
	}
	printInfo("output: %s", result.OutputDir)
	for _, file := range result.Files {
		printStep("%s", file)
	}
	return nil
}
