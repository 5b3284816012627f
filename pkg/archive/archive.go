// Package archive packs tree and annotation files into the ZIP layout
// the iTOL batch uploader expects: the tree under a normalized name
// plus any sibling annotation files under their original names.
package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ibiology/itol/pkg/errors"
	"github.com/ibiology/itol/pkg/logging"
)

// TreeArchiveName is the normalized name the tree file carries inside
// the archive. The batch uploader identifies the tree by this suffix.
const TreeArchiveName = "iTOL.tree.txt"

// JplaceArchiveName is used instead when the tree is a phylogenetic
// placement file.
const JplaceArchiveName = "tree.jplace"

// workspaceSuffixes are the file kinds swept up by BuildWorkspace.
var workspaceSuffixes = []string{".txt", ".tree", ".jplace"}

// NormalizedTreeName returns the archive name for a tree file path.
func NormalizedTreeName(treefile string) string {
	if strings.HasSuffix(treefile, ".jplace") {
		return JplaceArchiveName
	}
	return TreeArchiveName
}

// BuildTree zips a tree file into dest. The tree is stored under its
// normalized archive name. With siblings set, every .txt file next to
// the tree file is included under its original name, in lexicographic
// order so archive contents are deterministic. The destination archive
// itself is never included.
func BuildTree(treefile, dest string, siblings bool) error {
	logger := logging.GetLogger("archive")

	info, err := os.Stat(treefile)
	if err != nil || info.IsDir() {
		return errors.Newf(errors.ErrFileNotFound, "tree file %s does not exist or is not a file", treefile)
	}

	members := []member{{path: treefile, name: NormalizedTreeName(treefile)}}

	if siblings {
		dir := filepath.Dir(treefile)
		entries, err := os.ReadDir(dir)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileRead, "cannot list directory %s", dir)
		}
		base := filepath.Base(treefile)
		absDest, _ := filepath.Abs(dest)
		for _, e := range entries {
			if e.IsDir() || e.Name() == base || !strings.HasSuffix(e.Name(), ".txt") {
				continue
			}
			p := filepath.Join(dir, e.Name())
			if abs, _ := filepath.Abs(p); abs == absDest {
				continue
			}
			members = append(members, member{path: p, name: e.Name()})
		}
		logger.Debug().Int("siblings", len(members)-1).Str("dir", dir).Msg("Collected sibling annotation files")
	}

	return writeZip(dest, members)
}

// BuildWorkspace zips every annotation, tree and placement file found
// in dir (.txt, .tree, .jplace) into dest, each under its original
// name and in lexicographic order. The destination archive itself is
// never included. This mirrors the upload behavior of a project
// working directory.
func BuildWorkspace(dir, dest string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "cannot list working directory %s", dir)
	}

	absDest, _ := filepath.Abs(dest)
	var members []member
	for _, e := range entries {
		if e.IsDir() || !hasWorkspaceSuffix(e.Name()) {
			continue
		}
		p := filepath.Join(dir, e.Name())
		if abs, _ := filepath.Abs(p); abs == absDest {
			continue
		}
		members = append(members, member{path: p, name: e.Name()})
	}

	if len(members) == 0 {
		return errors.Newf(errors.ErrFileNotFound, "working directory %s contains no tree or annotation files", dir)
	}

	return writeZip(dest, members)
}

// IsZip reports whether the file at path starts with the ZIP local
// file header magic.
func IsZip(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	var magic [4]byte
	if _, err := io.ReadFull(f, magic[:]); err != nil {
		return false
	}
	return magic[0] == 'P' && magic[1] == 'K' && magic[2] == 0x03 && magic[3] == 0x04
}

type member struct {
	path string
	name string
}

func writeZip(dest string, members []member) error {
	sort.Slice(members, func(i, j int) bool { return members[i].name < members[j].name })

	out, err := os.Create(dest)
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchiveCreate, "cannot create archive %s", dest)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, m := range members {
		if err := addFile(zw, m); err != nil {
			zw.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrArchiveCreate, "cannot finalize archive %s", dest)
	}
	return nil
}

func addFile(zw *zip.Writer, m member) error {
	in, err := os.Open(m.path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", m.path)
	}
	defer in.Close()

	w, err := zw.Create(m.name)
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchiveCreate, "cannot add %s to archive", m.name)
	}
	if _, err := io.Copy(w, in); err != nil {
		return errors.Wrapf(err, errors.ErrArchiveCreate, "cannot add %s to archive", m.name)
	}
	return nil
}

func hasWorkspaceSuffix(name string) bool {
	for _, s := range workspaceSuffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}
