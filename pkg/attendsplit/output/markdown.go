package output

import (
	"io"
	"path/filepath"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/ukaji3/attendsplit/pkg/attendsplit/models"
)

// ToMarkdown writes a manifest as a markdown report: run details followed
// by a table of groups.
func ToMarkdown(w io.Writer, m *models.Manifest) error {
	md := markdown.NewMarkdown(w)

	md.H1("Attendance export: " + m.Source)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Sheet", m.Sheet},
			{"Format", m.Format},
			{"Combined", strconv.FormatBool(m.Combined)},
			{"Files", strconv.Itoa(len(m.Files))},
		},
	})
	md.PlainText("")

	md.H2("Groups")
	md.PlainText("")
	if len(m.Groups) == 0 {
		md.PlainText("No groups were exported.")
		return md.Build()
	}

	rows := make([][]string, 0, len(m.Groups))
	for _, g := range m.Groups {
		rows = append(rows, []string{
			strconv.Itoa(g.Index),
			g.Title,
			strconv.Itoa(g.Rows),
			"`" + filepath.Base(g.File) + "`",
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", "Title", "Rows", "File"},
		Rows:   rows,
	})

	return md.Build()
}
