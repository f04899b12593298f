// Package dashboard is the interactive terminal UI: a tabbed view with the
// metrics page, the two management pages and the assignment page.
package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/campusops/univserv/internal/db"
	"github.com/campusops/univserv/internal/store"
)

const (
	tabDashboard = iota
	tabStudents
	tabServices
	tabAssign
)

var tabNames = []string{"Dashboard", "Manage Students", "Manage Services", "Assign Services"}

type Model struct {
	store *store.Store

	tab     int
	width   int
	height  int
	loading bool

	overview   store.Overview
	costs      *db.Table
	popularity *db.Table
	history    *db.Table
	students   *db.Table
	services   *db.Table

	filter      textinput.Model
	filterFocus bool
	selectedRow int

	studentForm form
	deleteForm  form
	serviceForm form
	assignForm  form

	// activeForm names the form being edited, empty while browsing. The
	// model is copied on every update, so forms are addressed by name and
	// resolved against the current copy rather than held by pointer.
	activeForm string

	toast  string
	errMsg string
}

// dataMsg carries one full reload of everything the tabs show.
type dataMsg struct {
	overview   store.Overview
	costs      *db.Table
	popularity *db.Table
	history    *db.Table
	students   *db.Table
	services   *db.Table
	err        error
}

// opDoneMsg reports the outcome of one write operation.
type opDoneMsg struct {
	err  error
	note string
}

func New(s *store.Store) Model {
	filter := textinput.New()
	filter.Placeholder = "Type a name..."
	filter.Prompt = "Filter by Student Name: "
	filter.CharLimit = 64

	return Model{
		store:       s,
		tab:         tabDashboard,
		loading:     true,
		filter:      filter,
		studentForm: newForm(formAddStudent, "Add Student", "Student ID (e.g., S104)", "First Name", "Last Name", "Email"),
		deleteForm:  newForm(formDeleteStudent, "Delete Student", "ID to Delete"),
		serviceForm: newForm(formAddService, "Add Service", "Service Name", "Base Cost"),
		assignForm:  newForm(formAssign, "Create New Service Record", "Student ID", "Service ID", "Date (YYYY-MM-DD)", "Final Cost"),
	}
}

func (m Model) Init() tea.Cmd {
	return m.refresh()
}

// Run starts the dashboard and blocks until the user quits.
func Run(s *store.Store) error {
	p := tea.NewProgram(New(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// refresh reloads every table in one command. Each store call is its own
// connection cycle; the first failure is surfaced alongside whatever loaded
// before it.
func (m Model) refresh() tea.Cmd {
	s := m.store
	filter := m.filter.Value()
	return func() tea.Msg {
		var msg dataMsg
		var err error

		if msg.overview, err = s.Overview(); err != nil {
			msg.err = err
			return msg
		}
		if msg.costs, err = s.TotalCostPerStudent(); err != nil {
			msg.err = err
			return msg
		}
		if msg.popularity, err = s.ServicePopularity(); err != nil {
			msg.err = err
			return msg
		}
		if msg.history, err = s.ServiceHistory(filter); err != nil {
			msg.err = err
			return msg
		}
		if msg.students, err = s.ListStudents(); err != nil {
			msg.err = err
			return msg
		}
		msg.services, err = s.ListServices()
		msg.err = err
		return msg
	}
}

func (m Model) numTabs() int {
	return len(tabNames)
}

// formForTab names the form the add key opens on the current tab.
func (m *Model) formForTab() string {
	switch m.tab {
	case tabStudents:
		return formAddStudent
	case tabServices:
		return formAddService
	case tabAssign:
		return formAssign
	}
	return ""
}

// form resolves a form name against this copy of the model.
func (m *Model) form(name string) *form {
	switch name {
	case formAddStudent:
		return &m.studentForm
	case formDeleteStudent:
		return &m.deleteForm
	case formAddService:
		return &m.serviceForm
	case formAssign:
		return &m.assignForm
	}
	return nil
}

// defaultAssignDate pre-fills the assignment form with today, like the old
// date picker did.
func defaultAssignDate() string {
	return time.Now().Format("2006-01-02")
}

// baseCostFor finds the base cost of a service so the final-cost field can
// default to it.
func baseCostFor(services *db.Table, serviceID string) string {
	if services == nil || serviceID == "" {
		return ""
	}
	for i := range services.Rows {
		if services.Value(i, "service_id") == serviceID {
			return services.Value(i, "base_cost")
		}
	}
	return ""
}
