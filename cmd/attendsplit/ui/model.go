package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ukaji3/attendsplit/pkg/attendsplit"
	"github.com/ukaji3/attendsplit/pkg/attendsplit/models"
	"github.com/ukaji3/attendsplit/pkg/attendsplit/render"
)

// Runner executes one export.
type Runner func(ctx context.Context, path string, opts attendsplit.Options) (*models.Manifest, error)

// SheetLister lists a workbook's sheets.
type SheetLister func(path string) ([]string, error)

type step int

const (
	stepPickFile step = iota
	stepPickSheet
	stepOptions
	stepRunning
	stepDone
)

type sheetsMsg struct {
	names []string
	err   error
}

type doneMsg struct {
	manifest *models.Manifest
	err      error
}

// HelpText is shown by the help panel.
const HelpText = `1. Pick an attendance workbook (.xlsx or .xls).
2. Pick the sheet to split.
3. Enter the output folder.
4. ctrl+k toggles one combined file, ctrl+f switches PDF/DOCX.
5. Press enter to start.

A new group starts at every row whose first cell contains "נוכחות".
Each file is named after the group's title row.`

// Model is the interactive export form.
type Model struct {
	ctx        context.Context
	run        Runner
	listSheets SheetLister
	base       attendsplit.Options
	styles     Styles

	step    step
	picker  filepicker.Model
	output  textinput.Model
	spinner spinner.Model

	input    string
	sheets   []string
	sheet    int
	combine  bool
	format   render.Format
	showHelp bool

	manifest *models.Manifest
	err      error
}

// New returns a form whose defaults come from base. dir is the directory
// the file picker opens in.
func New(ctx context.Context, base attendsplit.Options, dir string, run Runner, list SheetLister) Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".xlsx", ".xlsm", ".xls"}
	fp.CurrentDirectory = dir
	fp.SetHeight(12)

	ti := textinput.New()
	ti.Placeholder = "output folder"
	ti.Prompt = "> "
	ti.CharLimit = 1024
	ti.Width = 60
	ti.SetValue(base.OutputDir)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	format := base.Format
	if format == "" {
		format = render.FormatPDF
	}

	return Model{
		ctx:        ctx,
		run:        run,
		listSheets: list,
		base:       base,
		styles:     DefaultStyles(),
		picker:     fp,
		output:     ti,
		spinner:    sp,
		combine:    base.Combine,
		format:     format,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.picker.Init()
}

// Err returns the export error, if the last run failed.
func (m Model) Err() error {
	return m.err
}

// Manifest returns the result of the last successful run.
func (m Model) Manifest() *models.Manifest {
	return m.manifest
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// In the file picker esc goes up a directory.
			if m.step != stepRunning && m.step != stepPickFile {
				return m, tea.Quit
			}
		case "f1":
			m.showHelp = !m.showHelp
			return m, nil
		case "?":
			if m.step != stepOptions {
				m.showHelp = !m.showHelp
				return m, nil
			}
		}

	case sheetsMsg:
		if msg.err != nil {
			m.err = msg.err
			m.step = stepDone
			return m, nil
		}
		m.sheets = msg.names
		m.sheet = 0
		m.step = stepPickSheet
		return m, nil

	case doneMsg:
		m.manifest, m.err = msg.manifest, msg.err
		m.step = stepDone
		return m, nil
	}

	switch m.step {
	case stepPickFile:
		return m.updatePicker(msg)
	case stepPickSheet:
		return m.updateSheet(msg)
	case stepOptions:
		return m.updateOptions(msg)
	case stepRunning:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case stepDone:
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "r":
				m.step = stepPickFile
				m.err = nil
				m.manifest = nil
				return m, m.picker.Init()
			case "q", "enter":
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		next, load := m.chooseFile(path)
		return next, tea.Batch(cmd, load)
	}
	return m, cmd
}

// chooseFile records the input workbook and loads its sheet names.
func (m Model) chooseFile(path string) (Model, tea.Cmd) {
	m.input = path
	list := m.listSheets
	return m, func() tea.Msg {
		names, err := list(path)
		return sheetsMsg{names: names, err: err}
	}
}

func (m Model) updateSheet(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.sheet > 0 {
			m.sheet--
		}
	case "down", "j":
		if m.sheet < len(m.sheets)-1 {
			m.sheet++
		}
	case "enter":
		m.step = stepOptions
		return m, m.output.Focus()
	}
	return m, nil
}

func (m Model) updateOptions(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+k":
			m.combine = !m.combine
			return m, nil
		case "ctrl+f":
			if m.format == render.FormatPDF {
				m.format = render.FormatDOCX
			} else {
				m.format = render.FormatPDF
			}
			return m, nil
		case "enter":
			if !m.canStart() {
				return m, nil
			}
			return m.start()
		}
	}

	var cmd tea.Cmd
	m.output, cmd = m.output.Update(msg)
	return m, cmd
}

// canStart reports whether both an input file and an output folder are set.
func (m Model) canStart() bool {
	return m.input != "" && strings.TrimSpace(m.output.Value()) != ""
}

func (m Model) start() (Model, tea.Cmd) {
	opts := m.base
	opts.OutputDir = strings.TrimSpace(m.output.Value())
	opts.Combine = m.combine
	opts.Format = m.format
	if len(m.sheets) > 0 {
		opts.SheetName = m.sheets[m.sheet]
	}

	m.output.Blur()
	m.step = stepRunning
	ctx, run, input := m.ctx, m.run, m.input
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		manifest, err := run(ctx, input, opts)
		return doneMsg{manifest: manifest, err: err}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Attendance splitter"))
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(m.styles.Help.Render(HelpText))
		b.WriteString("\n\n")
	}

	switch m.step {
	case stepPickFile:
		b.WriteString(m.styles.Label.Render("Select workbook"))
		b.WriteString("\n")
		b.WriteString(m.picker.View())
	case stepPickSheet:
		b.WriteString(m.field("File", m.input))
		b.WriteString(m.styles.Label.Render("Select sheet"))
		b.WriteString("\n")
		for i, name := range m.sheets {
			if i == m.sheet {
				b.WriteString(m.styles.Selected.Render("> " + name))
			} else {
				b.WriteString("  " + name)
			}
			b.WriteString("\n")
		}
	case stepOptions:
		b.WriteString(m.field("File", m.input))
		b.WriteString(m.field("Sheet", m.sheetName()))
		b.WriteString(m.styles.Label.Render("Output folder"))
		b.WriteString("\n")
		b.WriteString(m.output.View())
		b.WriteString("\n\n")
		b.WriteString(m.field("One combined file", yesNo(m.combine)))
		b.WriteString(m.field("Format", strings.ToUpper(string(m.format))))
		if !m.canStart() {
			b.WriteString(m.styles.Hint.Render("Enter an output folder to start."))
			b.WriteString("\n")
		}
	case stepRunning:
		b.WriteString(m.spinner.View() + " Creating files...")
		b.WriteString("\n")
	case stepDone:
		if m.err != nil {
			b.WriteString(m.styles.Error.Render(fmt.Sprintf("An error occurred: %v", m.err)))
		} else {
			b.WriteString(m.styles.Success.Render(m.successText()))
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Hint.Render("r: start over • q: quit"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("\n")
	if m.step == stepPickFile {
		b.WriteString(m.styles.Hint.Render("?/f1: help • esc: up • ctrl+c: quit"))
	} else {
		b.WriteString(m.styles.Hint.Render("?/f1: help • esc: quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) sheetName() string {
	if len(m.sheets) == 0 {
		return ""
	}
	return m.sheets[m.sheet]
}

func (m Model) successText() string {
	var b strings.Builder
	b.WriteString("Files created successfully!")
	if m.manifest != nil {
		for _, f := range m.manifest.Files {
			b.WriteString("\n  " + f.Path)
		}
	}
	return b.String()
}

func (m Model) field(label, value string) string {
	return m.styles.Label.Render(label+": ") + m.styles.Value.Render(value) + "\n"
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
