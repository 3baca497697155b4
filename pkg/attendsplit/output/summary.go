package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/attendsplit/pkg/attendsplit/models"
)

// WriteSummary writes the manifest to path as markdown when the extension
// is .md or .markdown, and as indented JSON otherwise.
func WriteSummary(path string, m *models.Manifest) error {
	var data []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		var buf bytes.Buffer
		if err := ToMarkdown(&buf, m); err != nil {
			return err
		}
		data = buf.Bytes()
	default:
		b, err := ToJSON(m, true)
		if err != nil {
			return err
		}
		data = append(b, '\n')
	}
	return os.WriteFile(path, data, 0644)
}
