package dashboard

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/campusops/univserv/internal/table"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dataMsg:
		m.loading = false
		m.overview = msg.overview
		m.costs = msg.costs
		m.popularity = msg.popularity
		m.history = msg.history
		m.students = msg.students
		m.services = msg.services
		if msg.err != nil {
			m.errMsg = "Error: " + msg.err.Error()
		}
		if m.history != nil && m.selectedRow >= m.history.NumRows() {
			m.selectedRow = 0
		}
		return m, nil

	case opDoneMsg:
		if msg.err != nil {
			// Operation abandoned; the form stays open so the input can
			// be fixed and resubmitted.
			m.errMsg = "Error: " + msg.err.Error()
			return m, nil
		}
		m.toast = "✓ " + msg.note
		m.errMsg = ""
		if f := m.form(m.activeForm); f != nil {
			f.reset()
		}
		m.activeForm = ""
		m.loading = true
		return m, m.refresh()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.filterFocus {
		return m.updateFilter(msg)
	}
	if m.activeForm != "" {
		return m.updateForm(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "tab", "l", "right":
		m.tab = (m.tab + 1) % m.numTabs()
	case "shift+tab", "h", "left":
		m.tab = (m.tab - 1 + m.numTabs()) % m.numTabs()
	case "1", "2", "3", "4":
		m.tab = int(msg.String()[0] - '1')

	case "r":
		m.loading = true
		m.toast = ""
		return m, m.refresh()

	case "/":
		if m.tab == tabDashboard {
			m.filterFocus = true
			return m, m.filter.Focus()
		}

	case "j", "down":
		if m.tab == tabDashboard && m.history != nil && m.selectedRow < m.history.NumRows()-1 {
			m.selectedRow++
		}
	case "k", "up":
		if m.tab == tabDashboard && m.selectedRow > 0 {
			m.selectedRow--
		}

	case "y":
		if m.tab == tabDashboard && m.history != nil && !m.history.Empty() {
			if err := table.CopyRow(m.history, m.selectedRow); err != nil {
				m.errMsg = "Error: " + err.Error()
			} else {
				m.toast = "✓ Row copied"
			}
		}

	case "a", "enter":
		if name := m.formForTab(); name != "" {
			m.activeForm = name
			m.toast = ""
			f := m.form(name)
			if name == formAssign {
				f.setValue(2, defaultAssignDate())
			}
			return m, f.focusField(0)
		}

	case "d":
		if m.tab == tabStudents {
			m.activeForm = formDeleteStudent
			m.toast = ""
			return m, m.deleteForm.focusField(0)
		}
	}

	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filterFocus = false
		m.filter.Blur()
		return m, nil
	case "enter":
		m.filterFocus = false
		m.filter.Blur()
		m.loading = true
		m.selectedRow = 0
		return m, m.refresh()
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form(m.activeForm)
	if msg.String() == "esc" {
		f.reset()
		m.activeForm = ""
		m.errMsg = ""
		return m, nil
	}

	cmd, submitted := f.update(msg)
	if !submitted {
		return m, cmd
	}
	return m, m.submitActiveForm()
}

// submitActiveForm turns the form values into one store write and reports
// the outcome as an opDoneMsg.
func (m Model) submitActiveForm() tea.Cmd {
	s := m.store
	name := m.activeForm
	values := m.form(name).values()
	services := m.services

	return func() tea.Msg {
		switch name {
		case formAddStudent:
			err := s.AddStudent(values[0], values[1], values[2], values[3])
			return opDoneMsg{err: err, note: "Student saved"}

		case formDeleteStudent:
			err := s.RemoveStudent(values[0])
			return opDoneMsg{err: err, note: "Student deleted"}

		case formAddService:
			cost, err := strconv.ParseFloat(values[1], 64)
			if err != nil {
				return opDoneMsg{err: fmt.Errorf("base cost must be a number: %w", err)}
			}
			return opDoneMsg{err: s.AddService(values[0], cost), note: "Service saved"}

		case formAssign:
			serviceID, err := strconv.Atoi(values[1])
			if err != nil {
				return opDoneMsg{err: fmt.Errorf("service id must be a number: %w", err)}
			}
			date := values[2]
			if date == "" {
				date = defaultAssignDate()
			}
			rawCost := values[3]
			if rawCost == "" {
				rawCost = baseCostFor(services, values[1])
			}
			cost, err := strconv.ParseFloat(rawCost, 64)
			if err != nil {
				return opDoneMsg{err: fmt.Errorf("final cost must be a number: %w", err)}
			}
			return opDoneMsg{err: s.AssignService(values[0], serviceID, date, cost), note: "Service record created"}
		}
		return opDoneMsg{err: fmt.Errorf("unknown form: %s", name)}
	}
}
