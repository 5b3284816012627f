package itol

import (
	"archive/zip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibiology/itol/pkg/annotate"
	"github.com/ibiology/itol/pkg/errors"
)

func writeTree(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "species.tree")
	require.NoError(t, os.WriteFile(path, []byte("((A,B),C);"), 0644))
	return path
}

func TestNewProjectCopiesTree(t *testing.T) {
	tree := writeTree(t)
	dir := filepath.Join(t.TempDir(), "wd")

	p, err := NewProject(tree, dir, nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(p.Dir, "iTOL.tree.txt"), p.Tree)
	assert.FileExists(t, p.Tree)

	content, err := os.ReadFile(p.Tree)
	require.NoError(t, err)
	assert.Equal(t, "((A,B),C);", string(content))
}

func TestNewProjectJplace(t *testing.T) {
	dir := t.TempDir()
	jplace := filepath.Join(dir, "placement.jplace")
	require.NoError(t, os.WriteFile(jplace, []byte("{}"), 0644))

	p, err := NewProject(jplace, filepath.Join(t.TempDir(), "wd"), nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(p.Dir, "tree.jplace"), p.Tree)
}

func TestNewProjectTreeAlreadyInDir(t *testing.T) {
	dir := t.TempDir()
	tree := filepath.Join(dir, "species.tree")
	require.NoError(t, os.WriteFile(tree, []byte("((A,B),C);"), 0644))

	p, err := NewProject(tree, dir, nil)
	require.NoError(t, err)
	// No copy when the tree already lives in the working directory
	assert.Equal(t, tree, p.Tree)
}

func TestNewProjectMissingTree(t *testing.T) {
	_, err := NewProject(filepath.Join(t.TempDir(), "ghost.tree"), "", nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
}

func TestProjectWrite(t *testing.T) {
	p, err := NewProject(writeTree(t), filepath.Join(t.TempDir(), "wd"), nil)
	require.NoError(t, err)

	path, err := p.Write(annotate.Labels([]annotate.Row{{9606, "Homo sapiens"}}, annotate.BaseOptions{}))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(p.Dir, "label.txt"), path)
}

func TestProjectUploadAndDownload(t *testing.T) {
	var gotMembers []string
	mux := http.NewServeMux()
	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile("zipFile")
		require.NoError(t, err)
		defer f.Close()

		zr, err := zip.NewReader(f, hdr.Size)
		require.NoError(t, err)
		gotMembers = nil
		for _, m := range zr.File {
			gotMembers = append(gotMembers, m.Name)
		}
		_, _ = w.Write([]byte("SUCCESS: 31337"))
	})
	mux.HandleFunc("/download", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "31337", r.URL.Query().Get("tree"))
		_, _ = w.Write([]byte("(A,B);"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := testClient(srv.URL+"/upload", srv.URL+"/download")
	p, err := NewProject(writeTree(t), filepath.Join(t.TempDir(), "wd"), client)
	require.NoError(t, err)

	_, err = p.Write(annotate.Labels([]annotate.Row{{9606, "Homo sapiens"}}, annotate.BaseOptions{}))
	require.NoError(t, err)

	result, err := p.Upload(context.Background(), UploadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "31337", result.TreeID)
	assert.Equal(t, "31337", p.TreeID())
	assert.Equal(t, []string{"iTOL.tree.txt", "label.txt"}, gotMembers)

	// Download falls back to the remembered tree ID and lands in the
	// project directory.
	path, err := p.Download(context.Background(), "", "", DownloadOptions{Format: "newick"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(p.Dir, "iTOL.download.newick"), path)
	assert.FileExists(t, path)
}

func TestProjectDownloadWithoutID(t *testing.T) {
	p, err := NewProject(writeTree(t), filepath.Join(t.TempDir(), "wd"), nil)
	require.NoError(t, err)

	_, err = p.Download(context.Background(), "", "", DownloadOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestProjectAddPlacement(t *testing.T) {
	p, err := NewProject(writeTree(t), filepath.Join(t.TempDir(), "wd"), nil)
	require.NoError(t, err)

	src := filepath.Join(t.TempDir(), "run1.jplace")
	require.NoError(t, os.WriteFile(src, []byte("{}"), 0644))

	dst, err := p.AddPlacement(src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(p.Dir, "run1.jplace"), dst)
	assert.FileExists(t, dst)

	_, err = p.AddPlacement(filepath.Join(t.TempDir(), "ghost.jplace"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
}
