package itol

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ibiology/itol/pkg/annotate"
	"github.com/ibiology/itol/pkg/archive"
	"github.com/ibiology/itol/pkg/errors"
	"github.com/ibiology/itol/pkg/logging"
)

// WorkspaceArchiveName is the archive a project (re)builds in its
// working directory on every upload.
const WorkspaceArchiveName = "iTOL.tree.zip"

// Project binds a tree file to a working directory. The tree is copied
// into the directory under its normalized name, dataset builders write
// their annotation files next to it, and Upload ships the whole
// directory as one archive. After a successful upload the project
// remembers the assigned tree ID so exports can omit it.
type Project struct {
	// Dir is the absolute path of the working directory.
	Dir string

	// Tree is the absolute path of the tree file inside Dir.
	Tree string

	client *Client
	treeID string
}

// NewProject prepares a working directory for the given tree file,
// creating the directory when missing and copying the tree into it
// under the normalized name (unless a copy is already there). A nil
// client falls back to the public iTOL endpoints.
func NewProject(treefile, dir string, client *Client) (*Project, error) {
	info, err := os.Stat(treefile)
	if err != nil || info.IsDir() {
		return nil, errors.Newf(errors.ErrFileNotFound, "tree file %s does not exist or is not a file", treefile)
	}
	tree, err := filepath.Abs(treefile)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve tree file %s", treefile)
	}

	if dir == "" {
		dir = filepath.Join(".", "iTOL")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "cannot create working directory %s", dir)
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve working directory %s", dir)
	}

	if filepath.Dir(tree) != dir {
		name := filepath.Join(dir, archive.NormalizedTreeName(tree))
		if _, err := os.Stat(name); err != nil {
			if err := copyFile(tree, name); err != nil {
				return nil, err
			}
		}
		tree = name
	}

	if client == nil {
		client = NewClient()
	}
	return &Project{Dir: dir, Tree: tree, client: client}, nil
}

// Write materializes a dataset into the project directory.
func (p *Project) Write(ds *annotate.Dataset) (string, error) {
	return ds.WriteFile(p.Dir)
}

// AddPlacement copies a phylogenetic placement file (.jplace, as
// produced by pplacer or RAxML) into the project directory so it rides
// along on the next upload. It returns the in-project path.
func (p *Project) AddPlacement(jplace string) (string, error) {
	if !strings.HasSuffix(jplace, ".jplace") {
		jplace += ".jplace"
	}
	if _, err := os.Stat(jplace); err != nil {
		return "", errors.Newf(errors.ErrFileNotFound, "jplace file %s does not exist", jplace)
	}

	dst := filepath.Join(p.Dir, filepath.Base(jplace))
	src, err := filepath.Abs(jplace)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve jplace file %s", jplace)
	}
	if src != dst {
		if err := copyFile(src, dst); err != nil {
			return "", err
		}
	}
	return dst, nil
}

// Upload packs every tree, annotation and placement file in the
// project directory into the workspace archive and ships it. The
// archive is rebuilt on every call.
func (p *Project) Upload(ctx context.Context, opts UploadOptions) (*UploadResult, error) {
	logger := logging.GetLogger("itol.project")

	zipPath := filepath.Join(p.Dir, WorkspaceArchiveName)
	if err := archive.BuildWorkspace(p.Dir, zipPath); err != nil {
		return nil, err
	}

	if opts.TreeName == "" {
		opts.TreeName = filepath.Base(p.Tree)
	}

	result, err := p.client.Upload(ctx, zipPath, opts)
	if err != nil {
		return nil, err
	}
	p.treeID = result.TreeID
	logger.Debug().Str("treeID", result.TreeID).Msg("Project bound to uploaded tree")
	return result, nil
}

// TreeID returns the identifier assigned by the last successful
// upload, or the empty string before any upload.
func (p *Project) TreeID() string { return p.treeID }

// Download exports the project's uploaded tree. treeID may be left
// empty after a successful Upload; the outfile defaults to
// iTOL.download.<format> inside the project directory.
func (p *Project) Download(ctx context.Context, treeID, outfile string, opts DownloadOptions) (string, error) {
	if treeID == "" {
		treeID = p.treeID
	}
	if treeID == "" {
		return "", errors.New(errors.ErrInvalidInput, "no tree ID: upload a tree first or pass an ID")
	}

	if outfile == "" {
		format, err := ParseFormat(orString(opts.Format, "pdf"))
		if err != nil {
			return "", err
		}
		outfile = filepath.Join(p.Dir, "iTOL.download."+format)
	}
	return p.client.DownloadToFile(ctx, treeID, outfile, opts)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", src)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", dst)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", dst)
	}
	return nil
}
