package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lvanderveer/tally/internal/cli/formatter"
	"github.com/lvanderveer/tally/internal/domain"
)

// editMode is what the keyboard currently drives.
type editMode int

const (
	modeMove editMode = iota
	modeHours
	modeNote
)

var (
	styleCursor   = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Bold(true)
	styleCellDim  = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	styleEditHint = lipgloss.NewStyle().Foreground(formatter.ColorDim)
)

// weekEditModel is the interactive grid editor. It edits a working copy
// of the sheet; nothing is persisted until the user saves.
type weekEditModel struct {
	ts    *domain.Timesheet
	names domain.NameIndex
	save  func(*domain.Timesheet) error

	rows   []*domain.AssignmentRow
	curRow int
	curDay int

	mode  editMode
	input textinput.Model

	dirty    bool
	saved    bool
	errMsg   string
	quitting bool
}

func newWeekEditModel(ts *domain.Timesheet, names domain.NameIndex, save func(*domain.Timesheet) error) weekEditModel {
	working := ts.Clone()
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 24
	return weekEditModel{
		ts:    working,
		names: names,
		save:  save,
		rows:  displayRows(working),
		input: ti,
	}
}

func (m weekEditModel) Init() tea.Cmd {
	return nil
}

func (m weekEditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.mode != modeMove {
		return m.updateEditing(keyMsg)
	}
	return m.updateMoving(keyMsg)
}

func (m weekEditModel) updateMoving(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.curRow > 0 {
			m.curRow--
		}
	case "down", "j":
		if m.curRow < len(m.rows)-1 {
			m.curRow++
		}
	case "left", "h":
		if m.curDay > 0 {
			m.curDay--
		}
	case "right", "l", "tab":
		if m.curDay < domain.DaysPerWeek-1 {
			m.curDay++
		}

	case "+", "=":
		m.stepHours(0.5)
	case "-", "_":
		m.stepHours(-0.5)

	case "enter":
		if len(m.rows) == 0 {
			break
		}
		m.mode = modeHours
		m.errMsg = ""
		entry := m.rows[m.curRow].Entries[m.curDay]
		m.input.SetValue(domain.FormatHours(entry.Hours))
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink

	case "n":
		if len(m.rows) == 0 {
			break
		}
		m.mode = modeNote
		m.errMsg = ""
		m.input.SetValue(m.rows[m.curRow].Entries[m.curDay].Notes)
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink

	case "s", "ctrl+s":
		if err := m.save(m.ts); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.saved = true
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m weekEditModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeMove
		m.input.Blur()
		return m, nil

	case "enter":
		row := m.rows[m.curRow]
		var err error
		if m.mode == modeHours {
			err = m.ts.SetHours(row.RowID, m.curDay, m.input.Value())
		} else {
			err = m.ts.SetNote(row.RowID, m.curDay, m.input.Value())
		}
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.dirty = true
		m.errMsg = ""
		m.mode = modeMove
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// stepHours nudges the current cell by half an hour, staying on the grid.
func (m *weekEditModel) stepHours(delta float64) {
	if len(m.rows) == 0 {
		return
	}
	row := m.rows[m.curRow]
	next := row.Entries[m.curDay].Hours + delta
	if next < 0 {
		next = 0
	}
	if err := m.ts.SetHours(row.RowID, m.curDay, domain.FormatHours(next)); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.dirty = true
	m.errMsg = ""
}

func (m weekEditModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Header(fmt.Sprintf("Edit week %s", m.ts.WeekKey())))
	b.WriteString("\n")
	b.WriteString(formatter.StatusBadge(m.ts.Status))
	if m.dirty {
		b.WriteString(" " + formatter.StyleYellow.Render("(unsaved)"))
	}
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(formatter.Dim("No assignments. Add rows with 'week add-row' first.") + "\n")
	} else {
		b.WriteString(m.renderGrid())
	}

	b.WriteString("\n")
	switch m.mode {
	case modeHours:
		b.WriteString(fmt.Sprintf("Hours for %s: %s\n", m.cellLabel(), m.input.View()))
	case modeNote:
		b.WriteString(fmt.Sprintf("Note for %s: %s\n", m.cellLabel(), m.input.View()))
	default:
		b.WriteString(styleEditHint.Render("arrows move · enter edit · n note · +/- step · s save · q quit") + "\n")
	}

	if m.errMsg != "" {
		b.WriteString(formatter.StyleRed.Render(m.errMsg) + "\n")
	}
	return b.String()
}

func (m weekEditModel) cellLabel() string {
	row := m.rows[m.curRow]
	return fmt.Sprintf("%s / %s",
		m.names.SubProjectName(row.SubProjectID),
		domain.DayNames[m.curDay])
}

const taskColWidth = 22

func (m weekEditModel) renderGrid() string {
	var b strings.Builder

	b.WriteString(padRight("", taskColWidth))
	for _, day := range domain.DayNames {
		b.WriteString(formatter.StyleHeader.Render(fmt.Sprintf("%6s", day)))
	}
	b.WriteString(formatter.StyleHeader.Render(fmt.Sprintf("%8s", "TOTAL")))
	b.WriteString("\n")

	for i, row := range m.rows {
		name := m.names.SubProjectName(row.SubProjectID)
		b.WriteString(padRight(name, taskColWidth))
		for day := 0; day < domain.DaysPerWeek; day++ {
			cell := fmt.Sprintf("%6s", domain.FormatHours(row.Entries[day].Hours))
			switch {
			case i == m.curRow && day == m.curDay:
				b.WriteString(styleCursor.Render(cell))
			case row.Entries[day].Hours == 0:
				b.WriteString(styleCellDim.Render(cell))
			default:
				b.WriteString(cell)
			}
		}
		b.WriteString(formatter.StyleBold.Render(fmt.Sprintf("%8s", domain.FormatHours(domain.RowTotal(row)))))
		b.WriteString("\n")
	}

	b.WriteString(padRight(formatter.Bold("TOTAL"), taskColWidth))
	for day := 0; day < domain.DaysPerWeek; day++ {
		b.WriteString(fmt.Sprintf("%6s", domain.FormatHours(domain.DayTotal(m.ts, day))))
	}
	b.WriteString(formatter.StyleHeader.Render(fmt.Sprintf("%8s", domain.FormatHours(domain.WeekTotal(m.ts)))))
	b.WriteString("\n")

	return b.String()
}

func padRight(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// runWeekEditor launches the grid editor and persists the result when the
// user saves.
func runWeekEditor(ctx context.Context, app *App, ts *domain.Timesheet, names domain.NameIndex) error {
	if !ts.Editable() {
		return fmt.Errorf("week %s is %s and cannot be edited: %w", ts.WeekKey(), ts.Status, domain.ErrLocked)
	}

	model := newWeekEditModel(ts, names, func(edited *domain.Timesheet) error {
		_, err := app.Timesheets.Save(ctx, edited)
		return err
	})

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return err
	}

	if m, ok := final.(weekEditModel); ok && m.saved {
		fmt.Printf("Saved week %s (%s h)\n", m.ts.WeekKey(), domain.FormatHours(domain.WeekTotal(m.ts)))
	} else {
		fmt.Println("Discarded changes.")
	}
	return nil
}
