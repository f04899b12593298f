package table

import (
	"strings"
	"testing"

	"github.com/campusops/univserv/internal/db"
)

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name    string
		content string
		width   int
		want    string
	}{
		{name: "pads short content", content: "id", width: 4, want: "id  "},
		{name: "exact width untouched", content: "name", width: 4, want: "name"},
		{name: "truncates with ellipsis", content: "averylongvalue", width: 6, want: "avery…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatCell(tt.content, tt.width); got != tt.want {
				t.Errorf("formatCell(%q, %d) = %q, want %q", tt.content, tt.width, got, tt.want)
			}
		})
	}
}

func TestColumnWidths(t *testing.T) {
	tbl := &db.Table{
		Columns: []string{"id", "student_name", "note"},
		Rows: [][]string{
			{"S104", "Ada Lovelace", strings.Repeat("x", 100)},
		},
	}

	widths := columnWidths(tbl)

	if widths[0] != minCellWidth {
		t.Errorf("narrow column width = %d, want min %d", widths[0], minCellWidth)
	}
	if widths[1] != len("student_name") {
		t.Errorf("width = %d, want header width %d", widths[1], len("student_name"))
	}
	if widths[2] != maxCellWidth {
		t.Errorf("wide column width = %d, want cap %d", widths[2], maxCellWidth)
	}
}

func TestRenderContainsData(t *testing.T) {
	tbl := &db.Table{
		Columns: []string{"student_id", "first_name"},
		Rows:    [][]string{{"S104", "Ada"}},
	}

	out := Render(tbl)
	for _, want := range []string{"student_id", "first_name", "S104", "Ada"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q in output:\n%s", want, out)
		}
	}
}

func TestRenderEmptyTable(t *testing.T) {
	tbl := &db.Table{Columns: []string{"student_id", "first_name"}}

	out := Render(tbl)
	if !strings.Contains(out, "student_id") {
		t.Error("Render() of empty table should still show the header")
	}
	if !strings.Contains(out, "Nothing to show here") {
		t.Error("Render() of empty table should say there is nothing to show")
	}
}

func TestRenderNilTable(t *testing.T) {
	if out := Render(nil); !strings.Contains(out, "Nothing to show here") {
		t.Errorf("Render(nil) = %q", out)
	}
}

func TestCopyRowOutOfRange(t *testing.T) {
	tbl := &db.Table{Columns: []string{"a"}, Rows: [][]string{{"1"}}}
	if err := CopyRow(tbl, 5); err == nil {
		t.Error("CopyRow() out of range should fail")
	}
	if err := CopyRow(nil, 0); err == nil {
		t.Error("CopyRow(nil) should fail")
	}
}
