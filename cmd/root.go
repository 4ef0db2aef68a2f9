// Package cmd provides the root command and CLI setup for mdcover.
package cmd

import (
	"os"

	"github.com/mouse-blink/mdcover/internal/adapter"
	"github.com/mouse-blink/mdcover/internal/config"
	"github.com/mouse-blink/mdcover/internal/controller"
	"github.com/mouse-blink/mdcover/internal/domain"
	m "github.com/mouse-blink/mdcover/internal/model"
	"github.com/spf13/cobra"
)

// workflow overrides the per-run workflow when set; tests inject a mock here.
var workflow domain.Workflow

var configFileFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

const rootLongDescription = `mdcover walks a directory tree and gives every Markdown document
(.md, .markdown) without a cover a "cover:" entry in its front matter.

The URL is picked at random from a list file with one URL per line;
blank lines and lines starting with # are ignored. Documents without
front matter get a new header. Documents that already declare a cover
(cover:, cover :, cover-image:) are left untouched.

Before a document is rewritten its original bytes are copied to
<name>.bak next to it, unless --no-backup is given. Use "mdcover restore"
to put the backups back.

Every flag can also be set through MDCOVER_<FLAG> environment variables
or a .mdcover.yaml file in the working directory or $HOME.`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "mdcover",
		Short:        "Add a random cover image to Markdown front matter",
		Long:         rootLongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags(), configFileFlag)
			if err != nil {
				return err
			}

			_, err = resolveWorkflow(cmd, cfg).Apply(domain.ApplyArgs{
				ScanArgs:    scanArgs(cfg),
				URLs:        m.Path(cfg.URLs),
				FallbackURL: m.CoverURL(cfg.FallbackURL),
				NoBackup:    cfg.NoBackup,
				Spacer:      cfg.Spacer,
			})

			return err
		},
	}

	persistent := cmd.PersistentFlags()
	persistent.String(config.KeyDir, ".", "directory to scan recursively")
	persistent.StringArrayP(config.KeyExclude, "x", nil, "skip paths matching a doublestar glob relative to --dir (can be repeated)")
	persistent.Bool(config.KeyRespectGitignore, false, "skip paths ignored by .gitignore files under --dir")
	persistent.String(config.KeyLogLevel, "warn", "diagnostic log level: debug, info, warn or error")
	persistent.StringVar(&configFileFlag, "config", "", "config file (default .mdcover.yaml in the working directory or $HOME)")

	cmd.Flags().String(config.KeyURLs, "urlspic.txt", "file with one cover URL per line")
	cmd.Flags().Bool(config.KeyNoBackup, false, "do not write a .bak copy before editing a document")
	cmd.Flags().Uint64(config.KeySeed, 0, "seed for the random URL choice (0 picks a random seed)")
	cmd.Flags().Bool(config.KeySpacer, false, "insert a blank line before the cover entry when the header has content")
	cmd.Flags().String(config.KeyFallbackURL, config.DefaultFallbackURL, "cover URL used when the URL list has no usable entry")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// resolveWorkflow wires the adapters for one run.
func resolveWorkflow(cmd *cobra.Command, cfg config.Config) domain.Workflow {
	if workflow != nil {
		return workflow
	}

	logger := config.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	fsAdapter := adapter.NewLocalDocumentFSAdapter()
	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
	orchestrator := domain.NewOrchestrator(fsAdapter, domain.NewRandomPicker(cfg.Seed), logger)

	return domain.NewWorkflow(
		fsAdapter,
		adapter.NewLocalURLListAdapter(logger),
		ui,
		orchestrator,
		logger,
	)
}

func scanArgs(cfg config.Config) domain.ScanArgs {
	return domain.ScanArgs{
		Root:             m.Path(cfg.Dir),
		Exclude:          cfg.Exclude,
		RespectGitignore: cfg.RespectGitignore,
	}
}
