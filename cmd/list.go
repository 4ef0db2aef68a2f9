package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/mdcover/internal/config"
	"github.com/mouse-blink/mdcover/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

const listLongDescription = `List every Markdown document under --dir and whether it would get a
cover. Nothing is written. Documents are inspected with --parallel workers
and reported in path order, together with the title from their front matter.`

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List documents and whether they need a cover",
		Long:         listLongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags(), configFileFlag)
			if err != nil {
				return err
			}

			_, err = resolveWorkflow(cmd, cfg).Estimate(domain.EstimateArgs{
				ScanArgs: scanArgs(cfg),
				Threads:  cfg.Parallel,
			})

			return err
		},
	}
	cmd.Flags().IntP(config.KeyParallel, "p", 1, "number of documents inspected in parallel")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
