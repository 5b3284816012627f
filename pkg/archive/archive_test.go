package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibiology/itol/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func archiveNames(t *testing.T, path string) []string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}

func archiveContent(t *testing.T, path, name string) string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatalf("archive %s has no member %s", path, name)
	return ""
}

func TestNormalizedTreeName(t *testing.T) {
	assert.Equal(t, "iTOL.tree.txt", NormalizedTreeName("my.tree"))
	assert.Equal(t, "iTOL.tree.txt", NormalizedTreeName("newick.txt"))
	assert.Equal(t, "tree.jplace", NormalizedTreeName("placement.jplace"))
}

func TestBuildTree(t *testing.T) {
	dir := t.TempDir()
	tree := writeFile(t, dir, "species.tree", "((A,B),C);")
	dest := filepath.Join(dir, "out.zip")

	require.NoError(t, BuildTree(tree, dest, false))

	assert.Equal(t, []string{"iTOL.tree.txt"}, archiveNames(t, dest))
	assert.Equal(t, "((A,B),C);", archiveContent(t, dest, "iTOL.tree.txt"))
}

func TestBuildTreeWithSiblings(t *testing.T) {
	dir := t.TempDir()
	tree := writeFile(t, dir, "species.tree", "((A,B),C);")
	writeFile(t, dir, "zeta.txt", "LABELS")
	writeFile(t, dir, "alpha.txt", "TREE_COLORS")
	writeFile(t, dir, "notes.md", "ignored")
	dest := filepath.Join(dir, "out.zip")

	require.NoError(t, BuildTree(tree, dest, true))

	// Sorted member order, tree under its normalized name, unrelated
	// files excluded.
	assert.Equal(t, []string{"alpha.txt", "iTOL.tree.txt", "zeta.txt"}, archiveNames(t, dest))
}

func TestBuildTreeExcludesArchiveItself(t *testing.T) {
	dir := t.TempDir()
	tree := writeFile(t, dir, "species.tree", "((A,B),C);")
	// Destination with the sibling suffix must still be excluded
	dest := filepath.Join(dir, "bundle.txt")

	require.NoError(t, BuildTree(tree, dest, true))
	for _, name := range archiveNames(t, dest) {
		assert.NotEqual(t, "bundle.txt", name)
	}
}

func TestBuildTreeMissingFile(t *testing.T) {
	dir := t.TempDir()
	err := BuildTree(filepath.Join(dir, "ghost.tree"), filepath.Join(dir, "out.zip"), false)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
}

func TestBuildWorkspace(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "iTOL.tree.txt", "((A,B),C);")
	writeFile(t, dir, "color.txt", "TREE_COLORS")
	writeFile(t, dir, "placement.jplace", "{}")
	writeFile(t, dir, "readme.md", "ignored")
	dest := filepath.Join(dir, "iTOL.tree.zip")

	require.NoError(t, BuildWorkspace(dir, dest))

	assert.Equal(t, []string{"color.txt", "iTOL.tree.txt", "placement.jplace"}, archiveNames(t, dest))
}

func TestBuildWorkspaceEmpty(t *testing.T) {
	dir := t.TempDir()
	err := BuildWorkspace(dir, filepath.Join(dir, "out.zip"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
}

func TestIsZip(t *testing.T) {
	dir := t.TempDir()
	tree := writeFile(t, dir, "species.tree", "((A,B),C);")
	dest := filepath.Join(dir, "out.zip")
	require.NoError(t, BuildTree(tree, dest, false))

	assert.True(t, IsZip(dest))
	assert.False(t, IsZip(tree))
	assert.False(t, IsZip(filepath.Join(dir, "missing")))
}
