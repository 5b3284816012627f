package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ibiology/itol/pkg/config"
	"github.com/ibiology/itol/pkg/errors"
	"github.com/ibiology/itol/pkg/itol"
	"github.com/ibiology/itol/pkg/style"
)

type downloadFlags struct {
	format  string
	outfile string
	params  []string
}

func addDownloadFlags(cmd *cobra.Command, f *downloadFlags) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Output format: "+strings.Join(itol.ExportFormats, ", ")+" (default pdf)")
	cmd.Flags().StringVarP(&f.outfile, "outfile", "o", "", "Path of the output file (default iTOL.download.<format>)")
	cmd.Flags().StringArrayVar(&f.params, "param", nil, "Extra export parameter as key=value, repeatable")
}

func newDownloadCmd(configPath *string) *cobra.Command {
	var flags downloadFlags

	cmd := &cobra.Command{
		Use:     "download ID",
		Short:   MsgDownloadShort,
		Long:    MsgDownloadLong,
		Example: MsgDownloadExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			return runDownload(cmd, cfg, args[0], flags)
		},
	}
	addDownloadFlags(cmd, &flags)
	return cmd
}

// runDownload exports a rendered tree into a local file.
func runDownload(cmd *cobra.Command, cfg *config.Config, data string, flags downloadFlags) error {
	format, err := itol.ParseFormat(orString(flags.format, cfg.Format))
	if err != nil {
		return err
	}

	params, err := parseParams(flags.params)
	if err != nil {
		return err
	}

	outfile := orString(flags.outfile, "iTOL.download."+format)
	path, err := cfg.NewClient().DownloadToFile(cmd.Context(), data, outfile, itol.DownloadOptions{
		Format: format,
		Params: params,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), style.Success("Tree downloaded to "+style.Path(path)))
	return nil
}

// parseParams splits repeated key=value flags into a parameter map.
func parseParams(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	params := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "invalid parameter %q: expected key=value", pair)
		}
		params[key] = value
	}
	return params, nil
}
