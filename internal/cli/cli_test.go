package cli

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multijdk/internal/types"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	expected := []string{"validate", "compose", "inspect", "toolchains"}
	for _, name := range expected {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("log-level"))
}

func TestComposeCommandFlags(t *testing.T) {
	cmd := newComposeCommand()
	flags := []string{"project", "output", "base", "target", "toolchain-dir", "sbom", "sbom-created"}
	for _, name := range flags {
		flag := cmd.Flags().Lookup(name)
		assert.NotNil(t, flag, "missing flag: %s", name)
	}
}

func TestToolchainsCommandFlags(t *testing.T) {
	cmd := newToolchainsCommand()
	assert.NotNil(t, cmd.Flags().Lookup("project"))
	assert.NotNil(t, cmd.Flags().Lookup("toolchain-dir"))
}

func TestValidateCommandFlags(t *testing.T) {
	cmd := newValidateCommand()
	assert.NotNil(t, cmd.Flags().Lookup("project"))
}

func TestInspectCommandFlags(t *testing.T) {
	cmd := newInspectCommand()
	flag := cmd.Flags().Lookup("output")
	require.NotNil(t, flag)
	assert.Equal(t, "build/publications", flag.DefValue)
}

// ---------- Helper function tests ----------

func TestResolveString(t *testing.T) {
	tests := []struct {
		name     string
		cmd      *cobra.Command
		value    string
		expected string
	}{
		{
			name:     "nil cmd with value returns value",
			cmd:      nil,
			value:    "explicit",
			expected: "explicit",
		},
		{
			name:     "nil cmd empty value returns empty",
			cmd:      nil,
			value:    "",
			expected: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveString(tt.cmd, tt.value, "test_key", "test-flag")
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveStrings(t *testing.T) {
	tests := []struct {
		name     string
		cmd      *cobra.Command
		values   []string
		expected []string
	}{
		{
			name:     "nil cmd with values returns values",
			cmd:      nil,
			values:   []string{"a", "b"},
			expected: []string{"a", "b"},
		},
		{
			name:     "nil cmd empty returns nil",
			cmd:      nil,
			values:   nil,
			expected: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveStrings(tt.cmd, tt.values, "test_key", "test-flag")
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveBool(t *testing.T) {
	got := resolveBool(nil, true, "test_key", "test-flag")
	assert.True(t, got)

	got = resolveBool(nil, false, "test_key", "test-flag")
	assert.False(t, got)
}

func TestResolveVersion(t *testing.T) {
	got, err := resolveVersion(nil, "java17", "test_version_key", "test-flag")
	require.NoError(t, err)
	assert.Equal(t, types.Version(17), got)

	got, err = resolveVersion(nil, "", "test_version_key", "test-flag")
	require.NoError(t, err)
	assert.Equal(t, types.Version(0), got)

	_, err = resolveVersion(nil, "seventeen", "test_version_key", "test-flag")
	require.Error(t, err)
}

func TestResolveVersions(t *testing.T) {
	got, err := resolveVersions(nil, []string{"11", " ", "1.8"}, "test_versions_key", "test-flag")
	require.NoError(t, err)
	assert.Equal(t, []types.Version{11, 8}, got)

	_, err = resolveVersions(nil, []string{"200"}, "test_versions_key", "test-flag")
	require.Error(t, err)
}

func TestFlagChanged(t *testing.T) {
	assert.False(t, flagChanged(nil, "anything"), "nil cmd should return false")
	assert.False(t, flagChanged(nil, ""), "nil cmd with empty name")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	assert.False(t, flagChanged(cmd, "myflag"), "unchanged flag")
	assert.False(t, flagChanged(cmd, "nonexistent"), "nonexistent flag")
}

func TestFlagChangedAfterSet(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	require.NoError(t, cmd.Flags().Set("myflag", "val"))
	assert.True(t, flagChanged(cmd, "myflag"))
}

// ---------- Exit code tests ----------

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name: "invalid argument",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("bad input"),
			expected: 2,
		},
		{
			name: "already exists",
			err: errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg("dup"),
			expected: 2,
		},
		{
			name: "ordering violation",
			err: errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("base version must be set before adding target java11"),
			expected: 3,
		},
		{
			name: "builder finalized",
			err: errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("builder already finalized"),
			expected: 3,
		},
		{
			name: "unsupported version",
			err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("no toolchain for java21"),
			expected: 4,
		},
		{
			name: "no installed toolchain",
			err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("no installed toolchain implements java25"),
			expected: 4,
		},
		{
			name: "not found generic",
			err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("project spec file not found"),
			expected: 5,
		},
		{
			name: "permission denied",
			err: errbuilder.New().
				WithCode(errbuilder.CodePermissionDenied).
				WithMsg("nope"),
			expected: 1,
		},
		{
			name: "internal error",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("boom"),
			expected: 5,
		},
		{
			name:     "unknown error",
			err:      assert.AnError,
			expected: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exitCodeForError(tt.err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name: "errbuilder with msg",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("something broke"),
			expected: "something broke",
		},
		{
			name:     "plain error",
			err:      assert.AnError,
			expected: assert.AnError.Error(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errorMessage(tt.err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
