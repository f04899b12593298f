package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/campusops/univserv/internal/db"
)

// AssignService records that a student received a service on a date for a
// final cost, which may differ from the service's base cost. Referential
// integrity is the store's job; this layer only checks the inputs it can
// see locally.
func (s *Store) AssignService(studentID string, serviceID int, serviceDate string, finalCost float64) error {
	if studentID == "" {
		return errors.New("student id is required")
	}
	if finalCost < 0 {
		return errors.New("service cost cannot be negative")
	}
	if _, err := time.Parse("2006-01-02", serviceDate); err != nil {
		return fmt.Errorf("service date must be YYYY-MM-DD: %w", err)
	}
	return s.provider.Exec(sqlInsertAssignment, studentID, serviceID, serviceDate, finalCost)
}

// ServiceHistory returns the joined student/service/assignment view,
// optionally filtered by a student-name substring.
func (s *Store) ServiceHistory(nameFilter string) (*db.Table, error) {
	if nameFilter == "" {
		return s.provider.Fetch(sqlServiceHistory)
	}
	return s.provider.Fetch(sqlHistoryByName, "%"+nameFilter+"%")
}

func (s *Store) TotalCostPerStudent() (*db.Table, error) {
	return s.provider.Fetch(sqlTotalCostPerStudent)
}

func (s *Store) ServicePopularity() (*db.Table, error) {
	return s.provider.Fetch(sqlServicePopularity)
}
