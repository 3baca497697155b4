package attendsplit

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/attendsplit/pkg/attendsplit/models"
	"github.com/ukaji3/attendsplit/pkg/attendsplit/render"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// document is one output file and the groups rendered into it.
type document struct {
	path   string
	groups []models.Group
}

// Export renders groups to documents under opts.OutputDir: one document per
// group named after its title, or a single document holding every group
// when opts.Combine is set. source is the input workbook path. Export stops
// at the first failure; documents already written are left in place.
func Export(ctx context.Context, source string, groups []models.Group, opts Options) (*models.Manifest, error) {
	if len(groups) == 0 {
		return nil, ErrNoGroups
	}

	format := opts.Format
	if format == "" {
		format = render.FormatPDF
	}
	// Resolve the extension and validate the format up front.
	renderer, err := render.New(format, opts.layout())
	if err != nil {
		return nil, err
	}
	ext := renderer.Ext()

	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	docs := plan(source, groups, dir, ext, opts)
	log := opts.logger()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs())
	for _, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := render.New(format, opts.layout())
			if err != nil {
				return err
			}
			if err := writeDocument(doc.path, func(w io.Writer) error {
				return r.Render(w, doc.groups)
			}); err != nil {
				return &ExportError{Group: doc.groups[0].Index, Path: doc.path, Err: err}
			}
			log.Info("file written", zap.String("path", doc.path), zap.Int("groups", len(doc.groups)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return manifest(source, string(format), opts.Combine, docs), nil
}

// Run loads the sheet at path, splits it on DefaultMarker and exports the
// groups.
func Run(ctx context.Context, path string, opts Options) (*models.Manifest, error) {
	sheet, err := Extract(path, opts)
	if err != nil {
		return nil, err
	}

	groups := Split(sheet.Table, DefaultMarker)
	opts.logger().Info("groups split", zap.String("sheet", sheet.SheetName), zap.Int("groups", len(groups)))

	m, err := Export(ctx, path, groups, opts)
	if err != nil {
		return nil, err
	}
	m.Sheet = sheet.SheetName
	return m, nil
}

func plan(source string, groups []models.Group, dir, ext string, opts Options) []document {
	if opts.Combine {
		name := opts.CombinedName
		if name == "" {
			base := filepath.Base(source)
			name = strings.TrimSuffix(base, filepath.Ext(base))
		}
		return []document{{
			path:   filepath.Join(dir, SanitizeFilename(name)+ext),
			groups: groups,
		}}
	}

	docs := make([]document, len(groups))
	for i, g := range groups {
		docs[i] = document{
			path:   filepath.Join(dir, SanitizeFilename(g.Title)+ext),
			groups: groups[i : i+1],
		}
	}
	return docs
}

// writeDocument renders into a temporary file beside path and renames it
// into place, so a failed render never leaves a truncated document.
func writeDocument(path string, write func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".attendsplit-*"+filepath.Ext(path))
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func manifest(source, format string, combined bool, docs []document) *models.Manifest {
	m := &models.Manifest{
		Source:   filepath.Base(source),
		Format:   format,
		Combined: combined,
	}
	for _, doc := range docs {
		file := models.OutputFile{Path: doc.path}
		for _, g := range doc.groups {
			rows := len(g.Table.Rows)
			file.Groups = append(file.Groups, g.Index)
			file.Rows += rows
			m.Groups = append(m.Groups, models.GroupSummary{
				Index: g.Index,
				Title: g.Title,
				Rows:  rows,
				File:  doc.path,
			})
		}
		m.Files = append(m.Files, file)
	}
	return m
}
