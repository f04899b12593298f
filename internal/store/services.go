package store

import (
	"errors"

	"github.com/campusops/univserv/internal/db"
)

func (s *Store) ListServices() (*db.Table, error) {
	return s.provider.Fetch(sqlListServices)
}

// AddService creates a catalog entry; the store assigns the identifier.
func (s *Store) AddService(name string, baseCost float64) error {
	if name == "" {
		return errors.New("service name is required")
	}
	if baseCost < 0 {
		return errors.New("base cost cannot be negative")
	}
	return s.provider.Exec(sqlInsertService, name, baseCost)
}
