package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multijdk/tests/testutil"
)

func TestComposeCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	outDir := t.TempDir()

	cmd := exec.Command("go", "run", "./cmd/multijdk", "compose",
		"--project", "fixtures/project-sample.yaml",
		"--output", outDir,
		"--target", "21",
		"--toolchain-dir", "fixtures/jdks",
		"--sbom",
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	require.FileExists(t, filepath.Join(outDir, "tracing-core-2.4.0.module"))
	require.FileExists(t, filepath.Join(outDir, "tracing-core-2.4.0.pom"))
	require.FileExists(t, filepath.Join(outDir, "units.report"))
	require.FileExists(t, filepath.Join(outDir, "tracing-core-2.4.0.spdx.json"))

	inspect := exec.Command("go", "run", "./cmd/multijdk", "inspect", "--output", outDir)
	inspect.Dir = root
	inspect.Env = append(os.Environ(), "GO111MODULE=on")
	out, err = inspect.CombinedOutput()
	require.NoError(t, err, string(out))
	assert.Contains(t, string(out), "apiElementsJava21")
}

func TestComposeCommandMissingToolchain(t *testing.T) {
	root := testutil.RepoRoot(t)

	cmd := exec.Command("go", "run", "./cmd/multijdk", "compose",
		"--project", "fixtures/project-sample.yaml",
		"--output", t.TempDir(),
		"--target", "25",
	)
	cmd.Dir = root
	out, err := cmd.CombinedOutput()
	require.Error(t, err, string(out))
	assert.Contains(t, string(out), "no toolchain for java25")
}
