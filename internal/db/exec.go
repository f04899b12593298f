package db

import (
	"fmt"
)

// Exec runs a mutating statement (INSERT/DELETE) in a single autocommit
// round-trip. The connection is opened for this call only and released on
// every exit path. A statement that matches zero rows is still a success;
// any driver error abandons the operation with nothing committed.
func (p *Provider) Exec(statement string, args ...any) error {
	if err := checkArity(statement, args); err != nil {
		return err
	}

	handle, err := p.Open()
	if err != nil {
		return err
	}
	defer handle.Close()

	bound := Rebind(p.Driver(), statement)
	if _, err := handle.Exec(bound, args...); err != nil {
		return fmt.Errorf("executing statement: %w", err)
	}
	return nil
}
