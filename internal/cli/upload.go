package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ibiology/itol/pkg/archive"
	"github.com/ibiology/itol/pkg/config"
	"github.com/ibiology/itol/pkg/errors"
	"github.com/ibiology/itol/pkg/itol"
	"github.com/ibiology/itol/pkg/logging"
	"github.com/ibiology/itol/pkg/style"
)

type uploadFlags struct {
	uploadID    string
	treeName    string
	project     string
	description string
	all         bool
}

func addUploadFlags(cmd *cobra.Command, f *uploadFlags) {
	cmd.Flags().StringVarP(&f.uploadID, "upload-id", "i", "", "Your upload ID (ID for batch uploading)")
	cmd.Flags().StringVarP(&f.treeName, "name", "n", "", "The name you assign to the tree")
	cmd.Flags().StringVarP(&f.project, "project", "p", "", "Project name, required if an upload ID is set")
	cmd.Flags().StringVarP(&f.description, "description", "d", "", "Description of your tree")
	cmd.Flags().BoolVarP(&f.all, "all", "a", false, "Zip all annotation files (*.txt) next to the tree file")
}

func newUploadCmd(configPath *string) *cobra.Command {
	var flags uploadFlags

	cmd := &cobra.Command{
		Use:     "upload FILE",
		Short:   MsgUploadShort,
		Long:    MsgUploadLong,
		Example: MsgUploadExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			return runUpload(cmd, cfg, args[0], flags)
		},
	}
	addUploadFlags(cmd, &flags)
	return cmd
}

// runUpload ships a tree file or a prepared archive. Plain tree files
// are zipped into a temporary archive that is removed afterwards; ZIP
// files are uploaded untouched.
func runUpload(cmd *cobra.Command, cfg *config.Config, data string, flags uploadFlags) error {
	logger := logging.GetLogger("cli.upload")
	out := cmd.OutOrStdout()

	zipPath := data
	if !archive.IsZip(data) {
		tmp, err := os.MkdirTemp("", "itol-upload-")
		if err != nil {
			return errors.Wrap(err, errors.ErrArchiveCreate, "cannot create temporary directory")
		}
		defer func() { _ = os.RemoveAll(tmp) }()

		zipPath = filepath.Join(tmp, itol.WorkspaceArchiveName)
		if err := archive.BuildTree(data, zipPath, flags.all); err != nil {
			return err
		}
		logger.Debug().Str("tree", data).Bool("siblings", flags.all).Msg("Tree file zipped for upload")
	}

	opts := itol.UploadOptions{
		TreeName:        orString(flags.treeName, filepath.Base(data)),
		UploadID:        orString(flags.uploadID, cfg.UploadID),
		ProjectName:     orString(flags.project, cfg.ProjectName),
		TreeDescription: flags.description,
	}
	if opts.UploadID == "" {
		fmt.Fprintln(out, style.Warning("No upload ID provided: the tree will not be associated with any account and will be deleted after 30 days"))
	}

	result, err := cfg.NewClient().Upload(cmd.Context(), zipPath, opts)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintln(out, style.Warning(w))
	}
	fmt.Fprintln(out, style.Success("Tree uploaded, iTOL tree ID: "+result.TreeID))
	fmt.Fprintln(out, "View it in a browser at "+style.URL(result.URL))
	return nil
}

func orString(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
