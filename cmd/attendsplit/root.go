package main

import (
	"github.com/spf13/cobra"
	"github.com/ukaji3/attendsplit/internal/config"
	applog "github.com/ukaji3/attendsplit/internal/log"
	"go.uber.org/zap"
)

// app carries state shared by all subcommands.
type app struct {
	configPath string
	verbose    bool

	newLogger func(verbose bool) (*zap.Logger, error)
	logger    *zap.Logger
	cfg       *config.Config
}

func newApp() *app {
	return &app{newLogger: applog.New}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "attendsplit",
		Short: "Split attendance sheets into per-group documents",
		Long: `attendsplit reads an attendance workbook, splits the sheet into groups at
every row whose first cell contains "נוכחות", and writes each group as a
right-to-left formatted PDF or DOCX page.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: ./.attendsplit.yaml or XDG config dir)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		a.newExportCmd(),
		a.newSheetsCmd(),
		a.newGuideCmd(),
		a.newUICmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	logger, err := a.newLogger(a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}
