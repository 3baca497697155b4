package main

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/nao1215/markdown"
	"github.com/spf13/cobra"
	"github.com/ukaji3/attendsplit/cmd/attendsplit/ui"
	"github.com/ukaji3/attendsplit/pkg/attendsplit"
	"github.com/ukaji3/attendsplit/pkg/attendsplit/render"
)

func (a *app) newGuideCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Show how attendance sheets are split",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := guideMarkdown()
			if err != nil {
				return err
			}
			if !plain {
				r, err := glamour.NewTermRenderer(
					glamour.WithAutoStyle(),
					glamour.WithWordWrap(80),
				)
				if err != nil {
					return err
				}
				if text, err = r.Render(text); err != nil {
					return err
				}
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print raw markdown")
	return cmd
}

func guideMarkdown() (string, error) {
	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)

	md.H1("attendsplit guide")
	md.PlainText("")
	md.PlainText(ui.HelpText)
	md.PlainText("")

	md.H2("How sheets are split")
	md.PlainText("")
	md.BulletList(
		fmt.Sprintf("A group starts at every row whose first cell contains %q.", attendsplit.DefaultMarker),
		"Rows above the first such row form a group of their own.",
		"The sheet's first row is a header repeated on every page (disable with --no-header).",
		fmt.Sprintf("The title is the first cell of row %d of the group, counting the header; otherwise Table_<n>.", attendsplit.TitleRow+1),
		`Characters \ / * ? : " < > | in titles become _ in file names.`,
	)
	md.PlainText("")

	md.H2("Examples")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightShell, `attendsplit sheets roster.xlsx
attendsplit export roster.xlsx -o out --sheet March
attendsplit export roster.xlsx --combine --format docx
attendsplit export roster.xlsx --watch --summary out/summary.md`)
	md.PlainText("")

	md.H2("Fonts")
	md.PlainText("")
	md.PlainTextf("PDF output needs a Hebrew TrueType font. Pass --font, set `font` in the config file, or place %s in a fonts directory next to the binary, in ./fonts, or in the XDG data directory under attendsplit/fonts.", render.DefaultFontFile)
	md.PlainText("")

	md.H2("Configuration")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightYAML, `font: /usr/share/fonts/NotoSansHebrew-Regular.ttf
format: pdf
output_dir: out
combine: false
header: true
mirror_columns: false
jobs: 4`)

	if err := md.Build(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
