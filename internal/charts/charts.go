// Package charts draws the dashboard's bar charts as text.
package charts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/campusops/univserv/internal/db"
	"github.com/campusops/univserv/internal/styles"
)

const defaultBarWidth = 40

// BarChart renders one horizontal bar per row of the table, labeled from
// labelCol and scaled so the largest valueCol value fills the full width.
func BarChart(t *db.Table, labelCol, valueCol string, width int) (string, error) {
	if width <= 0 {
		width = defaultBarWidth
	}
	if t == nil || t.ColumnIndex(labelCol) == -1 || t.ColumnIndex(valueCol) == -1 {
		return "", fmt.Errorf("chart needs columns %s and %s", labelCol, valueCol)
	}
	if t.Empty() {
		return styles.Faint.Render("No data available."), nil
	}

	values := make([]float64, t.NumRows())
	max := 0.0
	labelWidth := 0
	for i := range t.Rows {
		raw := t.Value(i, valueCol)
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", fmt.Errorf("chart value %q is not numeric: %w", raw, err)
		}
		if v < 0 {
			return "", fmt.Errorf("chart value %v is negative", v)
		}
		values[i] = v
		if v > max {
			max = v
		}
		if w := runewidth.StringWidth(t.Value(i, labelCol)); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteString("\n")
		}
		label := runewidth.FillRight(t.Value(i, labelCol), labelWidth)
		b.WriteString(styles.ChartLabel.Render(label))
		b.WriteString(" ")
		b.WriteString(styles.ChartBar.Render(bar(v, max, width)))
		b.WriteString(" ")
		b.WriteString(styles.Faint.Render(t.Value(i, valueCol)))
	}
	return b.String(), nil
}

// bar scales a value against the chart maximum. Any nonzero value gets at
// least one cell so small entries stay visible.
func bar(value, max float64, width int) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	cells := int(value / max * float64(width))
	if cells < 1 {
		cells = 1
	}
	if cells > width {
		cells = width
	}
	return strings.Repeat("█", cells)
}
