package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Table is a fully materialized result set: an ordered row sequence whose
// cells are addressable by column name. NULLs are rendered as the literal
// string "NULL".
type Table struct {
	Columns []string
	Rows    [][]string
}

func (t *Table) NumRows() int {
	return len(t.Rows)
}

func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// ColumnIndex returns the position of a column, or -1 when the table has no
// such column.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Value returns the cell at (row, column name). Missing columns and
// out-of-range rows come back as the empty string.
func (t *Table) Value(row int, column string) string {
	col := t.ColumnIndex(column)
	if col == -1 || row < 0 || row >= len(t.Rows) {
		return ""
	}
	return t.Rows[row][col]
}

// Fetch runs a read-only statement and materializes the whole result set.
// Failures are returned to the caller, never converted into an empty table;
// a query that legitimately matches nothing yields a zero-row table with
// the full column set.
func (p *Provider) Fetch(query string, args ...any) (*Table, error) {
	if err := checkArity(query, args); err != nil {
		return nil, err
	}

	handle, err := p.Open()
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	bound := Rebind(p.Driver(), query)
	rows, err := handle.Query(bound, args...)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	return scanTable(rows)
}

func scanTable(rows *sql.Rows) (*Table, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}

	table := &Table{Columns: columns}

	values := make([]interface{}, len(columns))
	valuePtrs := make([]interface{}, len(columns))
	for i := range columns {
		valuePtrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		rowData := make([]string, len(columns))
		for i, val := range values {
			rowData[i] = renderValue(val)
		}
		table.Rows = append(table.Rows, rowData)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return table, nil
}

func renderValue(val interface{}) string {
	if val == nil {
		return "NULL"
	}
	switch v := val.(type) {
	case []byte:
		return string(v)
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 {
			return v.Format("2006-01-02")
		}
		return v.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprintf("%v", v)
	}
}
