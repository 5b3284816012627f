package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ibiology/itol/pkg/annotate"
	"github.com/ibiology/itol/pkg/style"
)

func newAnnotateCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "annotate LAYERS",
		Short:   MsgAnnotateShort,
		Long:    MsgAnnotateLong,
		Example: MsgAnnotateExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lf, err := annotate.LoadLayerFile(args[0])
			if err != nil {
				return err
			}

			paths, err := lf.WriteAll(dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range paths {
				fmt.Fprintln(out, style.SuccessIndicator+" "+style.Path(p))
			}
			fmt.Fprintln(out, style.Success(fmt.Sprintf("Wrote %d annotation file(s)", len(paths))))
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory the annotation files are written to")
	return cmd
}
