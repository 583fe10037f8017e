package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"multijdk/internal/app"
	"multijdk/internal/core"
	"multijdk/internal/types"
)

type validateOptions struct {
	Project string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a project spec",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Project, "project", "", "Project spec path")
	_ = viper.BindPFlag("project", cmd.Flags().Lookup("project"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{
		ProjectPath: resolveString(cmd, opts.Project, "project", "project"),
	})
	if err != nil {
		return err
	}
	printSuccess("validated: %s", result.ProjectName)
	printStep("base: %s", result.Base.JavaName())
	for _, target := range result.Targets {
		printStep("target: %s", target.JavaName())
	}
	printInfo("source files: %d", result.SourceFiles)
	for _, root := range result.MissingRoots {
		printStep("missing root: %s", root)
	}
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func resolveVersion(cmd *cobra.Command, value string, key string, flagName string) (types.Version, error) {
	raw := resolveString(cmd, value, key, flagName)
	if strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	return core.ParseVersion(raw)
}

func resolveVersions(cmd *cobra.Command, values []string, key string, flagName string) ([]types.Version, error) {
	raw := resolveStrings(cmd, values, key, flagName)
	versions := make([]types.Version, 0, len(raw))
	for _, value := range raw {
		if strings.TrimSpace(value) == "" {
			continue
		}
		version, err := core.ParseVersion(value)
		if err != nil {
			return nil, err
		}
		versions = append(versions, version)
	}
	return versions, nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
