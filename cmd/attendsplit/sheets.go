package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/attendsplit/pkg/attendsplit"
)

func (a *app) newSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets <input.xlsx>",
		Short: "List the sheets of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := attendsplit.SheetNames(args[0])
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
