package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/mdcover/internal/config"
	"github.com/mouse-blink/mdcover/internal/domain"
)

// restoreCmd represents the restore command.
var restoreCmd = newRestoreCmd()

func newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "restore",
		Short:        "Put .bak copies back over their documents",
		Long:         "Copy every <document>.bak found under --dir back over its document and delete the backup.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags(), configFileFlag)
			if err != nil {
				return err
			}

			_, err = resolveWorkflow(cmd, cfg).Restore(domain.RestoreArgs{ScanArgs: scanArgs(cfg)})

			return err
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}
