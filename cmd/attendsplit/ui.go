package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/ukaji3/attendsplit/cmd/attendsplit/ui"
	"github.com/ukaji3/attendsplit/pkg/attendsplit"
	"go.uber.org/zap"
)

func (a *app) newUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui [dir]",
		Short: "Pick a workbook and export it interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				dir = args[0]
			}

			opts, err := a.exportOptions(cmd, exportFlags{})
			if err != nil {
				return err
			}
			// Log lines would tear the form.
			opts.Logger = zap.NewNop()

			m := ui.New(cmd.Context(), opts, dir, attendsplit.Run, attendsplit.SheetNames)
			final, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			if fm, ok := final.(ui.Model); ok && fm.Err() != nil {
				return fm.Err()
			}
			return nil
		},
	}
}
