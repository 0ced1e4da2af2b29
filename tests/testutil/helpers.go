// Package testutil provides shared test helpers used across integration
// and unit test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WritePackageManifest writes a package.json with the given content under dir.
func WritePackageManifest(t *testing.T, dir string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0644))
}

// InstallPackage materializes node_modules/<name> under root with the given
// relative-path -> content files.
func InstallPackage(t *testing.T, root string, name string, files map[string]string) {
	t.Helper()
	dir := filepath.Join(root, "node_modules", filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(dir, 0755))
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}
