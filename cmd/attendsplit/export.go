package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/attendsplit/pkg/attendsplit"
	"github.com/ukaji3/attendsplit/pkg/attendsplit/output"
	"github.com/ukaji3/attendsplit/pkg/attendsplit/render"
	"go.uber.org/zap"
)

// watchDebounce is how long the input must stay quiet before a rerun.
const watchDebounce = 500 * time.Millisecond

type exportFlags struct {
	outputDir    string
	sheet        string
	combine      bool
	combinedName string
	format       string
	font         string
	noHeader     bool
	cellRange    string
	printArea    bool
	mirror       bool
	jobs         int
	summary      string
	watch        bool
}

func (a *app) newExportCmd() *cobra.Command {
	var f exportFlags

	cmd := &cobra.Command{
		Use:   "export <input.xlsx>",
		Short: "Split a sheet and write one document per group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.exportOptions(cmd, f)
			if err != nil {
				return err
			}
			input := args[0]

			once := func() error {
				return a.export(cmd.Context(), cmd.OutOrStdout(), input, opts, f.summary)
			}
			if f.watch {
				return watchFile(cmd.Context(), input, watchDebounce, a.logger, once)
			}
			return once()
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.outputDir, "output", "o", "", "Output directory (default: config output_dir or .)")
	flags.StringVar(&f.sheet, "sheet", "", "Sheet to split (default: first sheet)")
	flags.BoolVar(&f.combine, "combine", false, "Write all groups into one document")
	flags.StringVar(&f.combinedName, "combined-name", "", "Combined document name (default: input file name)")
	flags.StringVar(&f.format, "format", "", "Output format: pdf or docx")
	flags.StringVar(&f.font, "font", "", "TrueType font for PDF output")
	flags.BoolVar(&f.noHeader, "no-header", false, "Do not treat the first row as a header")
	flags.StringVar(&f.cellRange, "range", "", "Only read this cell range, e.g. A1:AF60")
	flags.BoolVar(&f.printArea, "print-area", false, "Only read the sheet's print area")
	flags.BoolVar(&f.mirror, "mirror-columns", false, "Lay columns out right to left")
	flags.IntVar(&f.jobs, "jobs", 0, "Documents rendered in parallel (default: config jobs or 1)")
	flags.StringVar(&f.summary, "summary", "", "Write a run summary (.md for markdown, otherwise JSON)")
	flags.BoolVar(&f.watch, "watch", false, "Re-run whenever the input file changes")

	return cmd
}

// exportOptions merges config file values with flags; flags win when set.
func (a *app) exportOptions(cmd *cobra.Command, f exportFlags) (attendsplit.Options, error) {
	cfg := a.cfg
	opts := attendsplit.DefaultOptions()
	opts.Logger = a.logger

	opts.OutputDir = cfg.OutputDir
	opts.Combine = cfg.Combine
	opts.MirrorColumns = cfg.MirrorColumns
	opts.Jobs = cfg.Jobs
	header := cfg.IncludeHeader()
	formatName := cfg.Format
	fontPath := cfg.Font

	changed := cmd.Flags().Changed
	if changed("output") {
		opts.OutputDir = f.outputDir
	}
	if changed("combine") {
		opts.Combine = f.combine
	}
	if changed("mirror-columns") {
		opts.MirrorColumns = f.mirror
	}
	if changed("jobs") {
		if f.jobs < 1 {
			return opts, fmt.Errorf("invalid --jobs %d: must be positive", f.jobs)
		}
		opts.Jobs = f.jobs
	}
	if changed("no-header") {
		header = !f.noHeader
	}
	if changed("format") {
		formatName = f.format
	}
	if changed("font") {
		fontPath = f.font
	}

	format, err := render.ParseFormat(formatName)
	if err != nil {
		return opts, err
	}
	opts.Format = format
	opts.IncludeHeader = &header
	opts.SheetName = f.sheet
	opts.CombinedName = f.combinedName
	opts.Range = f.cellRange
	opts.UsePrintArea = f.printArea

	opts.FontPath = render.ResolveFont(fontPath)
	if opts.FontPath == "" && format == render.FormatPDF {
		a.logger.Warn("no font found, PDF output falls back to a Latin-only core font",
			zap.String("font", render.DefaultFontFile))
	}
	return opts, nil
}

func (a *app) export(ctx context.Context, out io.Writer, input string, opts attendsplit.Options, summary string) error {
	m, err := attendsplit.Run(ctx, input, opts)
	if err != nil {
		return err
	}

	for _, f := range m.Files {
		fmt.Fprintln(out, f.Path)
	}
	if summary != "" {
		if err := output.WriteSummary(summary, m); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
		a.logger.Debug("summary written", zap.String("path", summary))
	}
	return nil
}
