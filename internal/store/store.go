// Package store binds the university services statements to the data-access
// layer. Every read goes through Provider.Fetch and every write through
// Provider.Exec; there is no domain state held here.
package store

import (
	"fmt"
	"strconv"

	"github.com/campusops/univserv/internal/db"
)

type Store struct {
	provider *db.Provider
}

func New(provider *db.Provider) *Store {
	return &Store{provider: provider}
}

// Run executes a catalog query by selector.
func (s *Store) Run(selector string) (*db.Table, error) {
	q, ok := FindQuery(selector)
	if !ok {
		return nil, fmt.Errorf("no saved query with name/id: %s", selector)
	}
	return s.provider.Fetch(q.SQL)
}

// Overview is the dashboard's metric row.
type Overview struct {
	TotalStudents    int
	TotalAssignments int
	AverageCost      float64
}

func (s *Store) Overview() (Overview, error) {
	students, err := s.fetchInt(sqlCountStudents)
	if err != nil {
		return Overview{}, err
	}
	assignments, err := s.fetchInt(sqlCountAssignments)
	if err != nil {
		return Overview{}, err
	}
	avg, err := s.AverageServiceCost()
	if err != nil {
		return Overview{}, err
	}
	return Overview{
		TotalStudents:    students,
		TotalAssignments: assignments,
		AverageCost:      avg,
	}, nil
}

func (s *Store) CountStudents() (int, error) {
	return s.fetchInt(sqlCountStudents)
}

func (s *Store) CountAssignments() (int, error) {
	return s.fetchInt(sqlCountAssignments)
}

// AverageServiceCost is the mean final cost across all assignments, rounded
// to two decimals. An empty StudentServices table averages to zero.
func (s *Store) AverageServiceCost() (float64, error) {
	table, err := s.provider.Fetch(sqlAverageCost)
	if err != nil {
		return 0, err
	}
	if table.Empty() {
		return 0, nil
	}
	raw := table.Value(0, "avg_cost")
	if raw == "" || raw == "NULL" {
		return 0, nil
	}
	avg, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing average cost %q: %w", raw, err)
	}
	return avg, nil
}

// fetchInt runs a single-value count query and parses its only cell.
func (s *Store) fetchInt(query string) (int, error) {
	table, err := s.provider.Fetch(query)
	if err != nil {
		return 0, err
	}
	if table.Empty() || len(table.Columns) == 0 {
		return 0, nil
	}
	raw := table.Rows[0][0]
	if raw == "NULL" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parsing count %q: %w", raw, err)
	}
	return n, nil
}
