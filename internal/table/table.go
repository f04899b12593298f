// Package table renders a materialized result set as a styled text table.
package table

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-runewidth"

	"github.com/campusops/univserv/internal/db"
	"github.com/campusops/univserv/internal/styles"
)

const (
	minCellWidth = 4
	maxCellWidth = 32
)

// Render lays the table out with one column per result column, sized to the
// widest cell and capped at maxCellWidth. Wide cells are truncated with an
// ellipsis.
func Render(t *db.Table) string {
	if t == nil || len(t.Columns) == 0 {
		return styles.Faint.Render("Nothing to show here...")
	}

	widths := columnWidths(t)

	var b strings.Builder
	b.WriteString(renderRow(t.Columns, widths, styles.TableHeader))
	b.WriteString("\n")
	b.WriteString(renderSeparator(widths))

	for _, row := range t.Rows {
		b.WriteString("\n")
		b.WriteString(renderRow(row, widths, styles.TableCell))
	}
	if t.Empty() {
		b.WriteString("\n")
		b.WriteString(styles.Faint.Render("Nothing to show here..."))
	}
	return b.String()
}

// RenderWithTitle prepends a styled title line and a row count footer.
func RenderWithTitle(title string, t *db.Table) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("◆ " + title))
	b.WriteString("\n")
	b.WriteString(Render(t))
	if t != nil {
		b.WriteString("\n")
		b.WriteString(styles.Faint.Render(fmt.Sprintf("%d rows", t.NumRows())))
	}
	return b.String()
}

// CopyRow puts one row on the system clipboard as tab-separated values.
func CopyRow(t *db.Table, row int) error {
	if t == nil || row < 0 || row >= t.NumRows() {
		return fmt.Errorf("no row %d to copy", row)
	}
	return clipboard.WriteAll(strings.Join(t.Rows[row], "\t"))
}

func columnWidths(t *db.Table) []int {
	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = runewidth.StringWidth(col)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i >= len(widths) {
				continue
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] < minCellWidth {
			widths[i] = minCellWidth
		}
		if widths[i] > maxCellWidth {
			widths[i] = maxCellWidth
		}
	}
	return widths
}

func renderRow(cells []string, widths []int, style interface{ Render(...string) string }) string {
	parts := make([]string, 0, len(cells))
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		parts = append(parts, style.Render(formatCell(cell, widths[i])))
	}
	return strings.Join(parts, styles.TableBorder.Render("│"))
}

func renderSeparator(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w)
	}
	return styles.TableBorder.Render(strings.Join(parts, "┼"))
}

func formatCell(content string, width int) string {
	if runewidth.StringWidth(content) > width {
		return runewidth.Truncate(content, width, "…")
	}
	return runewidth.FillRight(content, width)
}
