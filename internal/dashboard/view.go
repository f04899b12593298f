package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/campusops/univserv/internal/charts"
	"github.com/campusops/univserv/internal/db"
	"github.com/campusops/univserv/internal/styles"
	"github.com/campusops/univserv/internal/table"
)

func (m Model) View() string {
	if m.loading && m.history == nil {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("University Services System"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.tab {
	case tabDashboard:
		b.WriteString(m.viewDashboard())
	case tabStudents:
		b.WriteString(m.viewStudents())
	case tabServices:
		b.WriteString(m.viewServices())
	case tabAssign:
		b.WriteString(m.viewAssign())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m Model) renderTabs() string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if i == m.tab {
			parts[i] = styles.TabActive.Render(label)
		} else {
			parts[i] = styles.TabInactive.Render(label)
		}
	}
	return strings.Join(parts, styles.Separator.Render("  ·  "))
}

func (m Model) viewDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderMetrics())
	b.WriteString("\n\n")

	b.WriteString(styles.Title.Render("Total Cost per Student"))
	b.WriteString("\n")
	b.WriteString(m.renderChart(m.costs, "student_id", "total_cost"))
	b.WriteString("\n\n")

	b.WriteString(styles.Title.Render("Service Popularity"))
	b.WriteString("\n")
	b.WriteString(m.renderChart(m.popularity, "service_name", "usage_count"))
	b.WriteString("\n\n")

	b.WriteString(styles.Title.Render("Recent Service History"))
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n")
	b.WriteString(table.Render(m.history))
	if m.history != nil && !m.history.Empty() {
		b.WriteString("\n")
		b.WriteString(styles.Faint.Render(fmt.Sprintf("[%d/%d]", m.selectedRow+1, m.history.NumRows())))
	}
	return b.String()
}

func (m Model) renderMetrics() string {
	cards := []string{
		metricCard("Total Students", fmt.Sprintf("%d", m.overview.TotalStudents)),
		metricCard("Total Services", fmt.Sprintf("%d", m.overview.TotalAssignments)),
		metricCard("Avg. Service Cost", fmt.Sprintf("$%.2f", m.overview.AverageCost)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func metricCard(label, value string) string {
	content := styles.MetricLabel.Render(label) + "\n" + styles.MetricValue.Render(value)
	return styles.MetricCard.Render(content)
}

func (m Model) renderChart(t *db.Table, labelCol, valueCol string) string {
	out, err := charts.BarChart(t, labelCol, valueCol, chartWidth(m.width))
	if err != nil {
		return styles.Faint.Render("No data available.")
	}
	return out
}

func (m Model) viewStudents() string {
	var b strings.Builder
	b.WriteString(table.RenderWithTitle("Current Students", m.students))
	b.WriteString("\n\n")

	switch m.activeForm {
	case formAddStudent:
		b.WriteString(m.studentForm.view())
	case formDeleteStudent:
		b.WriteString(m.deleteForm.view())
	default:
		b.WriteString(styles.Faint.Render("a add student · d delete student"))
	}
	return b.String()
}

func (m Model) viewServices() string {
	var b strings.Builder
	b.WriteString(table.RenderWithTitle("Available Services", m.services))
	b.WriteString("\n\n")

	if m.activeForm == formAddService {
		b.WriteString(m.serviceForm.view())
	} else {
		b.WriteString(styles.Faint.Render("a add service"))
	}
	return b.String()
}

func (m Model) viewAssign() string {
	var b strings.Builder

	if m.students == nil || m.students.Empty() || m.services == nil || m.services.Empty() {
		b.WriteString(styles.Error.Render("Add students and services first."))
		return b.String()
	}

	b.WriteString(table.RenderWithTitle("Students", m.students))
	b.WriteString("\n\n")
	b.WriteString(table.RenderWithTitle("Services", m.services))
	b.WriteString("\n\n")

	if m.activeForm == formAssign {
		b.WriteString(m.assignForm.view())
	} else {
		b.WriteString(styles.Faint.Render("a create service record"))
	}
	return b.String()
}

func (m Model) renderStatus() string {
	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString(styles.Error.Render(m.errMsg))
		b.WriteString("\n")
	}
	if m.toast != "" {
		b.WriteString(styles.Success.Render(m.toast))
		b.WriteString("\n")
	}
	help := "tab switch · r refresh · q quit"
	if m.tab == tabDashboard {
		help = "/ filter · j/k select · y copy row · " + help
	}
	b.WriteString(styles.Faint.Render(help))
	return b.String()
}

func chartWidth(totalWidth int) int {
	if totalWidth <= 0 {
		return 0 // let the chart pick its default
	}
	w := totalWidth / 2
	if w > 60 {
		w = 60
	}
	return w
}
