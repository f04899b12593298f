package store

import (
	"errors"

	"github.com/campusops/univserv/internal/db"
)

func (s *Store) ListStudents() (*db.Table, error) {
	return s.provider.Fetch(sqlListStudents)
}

// AddStudent inserts a student record. The identifier is assigned by the
// office (e.g. "S104"), not by the store; id and first name are required,
// matching the intake form.
func (s *Store) AddStudent(id, firstName, lastName, email string) error {
	if id == "" || firstName == "" {
		return errors.New("student id and first name are required")
	}
	return s.provider.Exec(sqlInsertStudent, id, firstName, lastName, email)
}

// RemoveStudent deletes by key. Removing an id that does not exist is a
// no-op, not an error.
func (s *Store) RemoveStudent(id string) error {
	if id == "" {
		return errors.New("student id is required")
	}
	return s.provider.Exec(sqlDeleteStudent, id)
}
