// Package cli wires the itol command tree: a root command that infers
// upload versus download from its single DATA argument, plus explicit
// subcommands for each operation.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ibiology/itol/internal/version"
	"github.com/ibiology/itol/pkg/config"
	"github.com/ibiology/itol/pkg/errors"
	"github.com/ibiology/itol/pkg/itol"
	"github.com/ibiology/itol/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		configPath string
		upFlags    uploadFlags
		downFlags  downloadFlags
	)

	rootCmd := &cobra.Command{
		Use:     "itol DATA",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			data := args[0]
			if info, err := os.Stat(data); err == nil && !info.IsDir() {
				return runUpload(cmd, cfg, data, upFlags)
			}
			if _, err := itol.ParseTreeID(data); err == nil {
				return runDownload(cmd, cfg, data, downFlags)
			}
			return errors.Newf(errors.ErrInvalidInput,
				"invalid data %s: expected a tree file, a ZIP file, a tree ID or a tree URL", data)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is $XDG_CONFIG_HOME/itol/config.toml)")

	// The root command carries both flag sets so the inferred operation
	// finds its options in place.
	addUploadFlags(rootCmd, &upFlags)
	addDownloadFlags(rootCmd, &downFlags)

	rootCmd.AddCommand(newUploadCmd(&configPath))
	rootCmd.AddCommand(newDownloadCmd(&configPath))
	rootCmd.AddCommand(newAnnotateCmd())
	rootCmd.AddCommand(newDocsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "itol version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, "Built:  %s\n", version.Date)
			}
		},
	}
}
