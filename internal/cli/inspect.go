package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"multijdk/internal/app"
)

type inspectOptions struct {
	OutputDir string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect a composed component's published variants",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.OutputDir, "output", "build/publications", "Output directory")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(app.InspectRequest{
		OutputDir: resolveString(cmd, opts.OutputDir, "output", "output"),
	})
	if err != nil {
		return err
	}

	printSuccess("component: %s", result.Component)
	versions := make([]string, 0, len(result.Versions))
	for _, version := range result.Versions {
		versions = append(versions, version.JavaName())
	}
	printInfo("versions: %v", versions)
	fmt.Println("variants:")
	for _, variant := range result.Variants {
		fmt.Printf("- %s (scope=%s, jvm=%d): %d dependencies\n",
			variant.Name, variant.Scope, variant.Version.Int(), variant.Dependencies)
		for _, file := range variant.Files {
			printStep("%s", file)
		}
	}
	if len(result.SuppressedWarnings) > 0 {
		fmt.Printf("suppressed warnings: %d\n", len(result.SuppressedWarnings))
	}
	return nil
}
