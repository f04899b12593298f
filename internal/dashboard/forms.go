package dashboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/campusops/univserv/internal/styles"
)

// Form identifiers, one per submit action.
const (
	formAddStudent    = "add-student"
	formDeleteStudent = "delete-student"
	formAddService    = "add-service"
	formAssign        = "assign"
)

type field struct {
	label string
	input textinput.Model
}

// form is a vertical run of labeled text inputs. Enter on the last field
// submits; tab/down and shift+tab/up move focus.
type form struct {
	name   string
	title  string
	fields []field
	focus  int
}

func newForm(name, title string, labels ...string) form {
	fields := make([]field, len(labels))
	for i, label := range labels {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 64
		fields[i] = field{label: label, input: ti}
	}
	return form{name: name, title: title, fields: fields}
}

func (f *form) focusField(index int) tea.Cmd {
	if index < 0 {
		index = 0
	}
	if index >= len(f.fields) {
		index = len(f.fields) - 1
	}
	f.focus = index
	var cmd tea.Cmd
	for i := range f.fields {
		if i == index {
			cmd = f.fields[i].input.Focus()
		} else {
			f.fields[i].input.Blur()
		}
	}
	return cmd
}

// update routes one key to the focused field and reports whether the form
// was submitted.
func (f *form) update(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "enter":
		if f.focus == len(f.fields)-1 {
			return nil, true
		}
		return f.focusField(f.focus + 1), false
	case "tab", "down":
		return f.focusField((f.focus + 1) % len(f.fields)), false
	case "shift+tab", "up":
		return f.focusField((f.focus - 1 + len(f.fields)) % len(f.fields)), false
	}

	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd, false
}

func (f *form) values() []string {
	vals := make([]string, len(f.fields))
	for i := range f.fields {
		vals[i] = strings.TrimSpace(f.fields[i].input.Value())
	}
	return vals
}

func (f *form) setValue(index int, value string) {
	if index >= 0 && index < len(f.fields) {
		f.fields[index].input.SetValue(value)
	}
}

func (f *form) reset() {
	for i := range f.fields {
		f.fields[i].input.SetValue("")
		f.fields[i].input.Blur()
	}
	f.focus = 0
}

func (f *form) view() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render(f.title))
	for i := range f.fields {
		b.WriteString("\n")
		b.WriteString(styles.Faint.Render(f.fields[i].label))
		b.WriteString("\n")
		b.WriteString(f.fields[i].input.View())
	}
	b.WriteString("\n")
	b.WriteString(styles.Faint.Render("enter submit · esc cancel"))
	return styles.FormBox.Render(b.String())
}
