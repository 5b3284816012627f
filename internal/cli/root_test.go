package cli

import (
	"archive/zip"
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with the given arguments and returns
// the combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// writeConfig points the CLI at a test server.
func writeConfig(t *testing.T, uploadURL, downloadURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	content := fmt.Sprintf("upload_url = %q\ndownload_url = %q\n", uploadURL, downloadURL)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func writeTreeFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "species.tree")
	require.NoError(t, os.WriteFile(path, []byte("((A,B),C);"), 0644))
	return path
}

func uploadServer(t *testing.T, members *[]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile("zipFile")
		require.NoError(t, err)
		defer f.Close()

		zr, err := zip.NewReader(f, hdr.Size)
		require.NoError(t, err)
		*members = nil
		for _, m := range zr.File {
			*members = append(*members, m.Name)
		}
		_, _ = w.Write([]byte("SUCCESS: 12345"))
	}))
}

func TestRootInfersUploadFromTreeFile(t *testing.T) {
	var members []string
	srv := uploadServer(t, &members)
	defer srv.Close()

	cfg := writeConfig(t, srv.URL, "")
	out, err := execute(t, writeTreeFile(t), "--config", cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"iTOL.tree.txt"}, members)
	assert.Contains(t, out, "12345")
	assert.Contains(t, out, "https://itol.embl.de/tree/12345")
	// Anonymous upload warns about the 30 day retention
	assert.Contains(t, out, "30 days")
}

func TestRootInfersUploadFromZip(t *testing.T) {
	var members []string
	srv := uploadServer(t, &members)
	defer srv.Close()

	// Prepare an archive by hand; it must be shipped untouched.
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "prepared.zip")
	out, err := os.Create(zipPath)
	require.NoError(t, err)
	zw := zip.NewWriter(out)
	w, err := zw.Create("custom.tree.txt")
	require.NoError(t, err)
	_, _ = w.Write([]byte("(A,B);"))
	require.NoError(t, zw.Close())
	require.NoError(t, out.Close())

	cfg := writeConfig(t, srv.URL, "")
	_, err = execute(t, zipPath, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"custom.tree.txt"}, members)
}

func TestRootUploadSweepsSiblings(t *testing.T) {
	var members []string
	srv := uploadServer(t, &members)
	defer srv.Close()

	tree := writeTreeFile(t)
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(tree), "label.txt"), []byte("LABELS"), 0644))

	cfg := writeConfig(t, srv.URL, "")
	_, err := execute(t, tree, "--all", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"iTOL.tree.txt", "label.txt"}, members)
}

func TestRootInfersDownloadFromID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "12345", r.URL.Query().Get("tree"))
		assert.Equal(t, "newick", r.URL.Query().Get("format"))
		assert.Equal(t, "2", r.URL.Query().Get("display_mode"))
		_, _ = w.Write([]byte("(A,B);"))
	}))
	defer srv.Close()

	outfile := filepath.Join(t.TempDir(), "tree.newick")
	cfg := writeConfig(t, "", srv.URL)
	out, err := execute(t, "12345",
		"-f", "newick", "-o", outfile, "--param", "display_mode=2", "--config", cfg)
	require.NoError(t, err)

	assert.Contains(t, out, outfile)
	data, err := os.ReadFile(outfile)
	require.NoError(t, err)
	assert.Equal(t, "(A,B);", string(data))
}

func TestRootRejectsGarbage(t *testing.T) {
	_, err := execute(t, "not-a-file-nor-an-id", "--config", filepath.Join(t.TempDir(), "none.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid data")
}

func TestRootWithoutArgsShowsHelp(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestUploadSubcommandUsesConfigDefaults(t *testing.T) {
	var gotUploadID, gotProject string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotUploadID = r.FormValue("uploadID")
		gotProject = r.FormValue("projectName")
		_, _ = w.Write([]byte("SUCCESS: 777"))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "config.toml")
	content := fmt.Sprintf("upload_url = %q\nupload_id = \"batch-abc\"\nproject_name = \"phylo\"\n", srv.URL)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, err := execute(t, "upload", writeTreeFile(t), "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "batch-abc", gotUploadID)
	assert.Equal(t, "phylo", gotProject)
	assert.NotContains(t, out, "30 days")
}

func TestDownloadSubcommandRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ERROR: bad id"))
	}))
	defer srv.Close()

	cfg := writeConfig(t, "", srv.URL)
	_, err := execute(t, "download", "12345", "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ERROR: bad id")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "itol version")
}
