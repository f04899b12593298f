package db

import (
	"fmt"
	"strings"
)

// Statements in this codebase are written with `?` placeholders. Rebind
// rewrites them into the syntax the active driver expects.
func Placeholder(driver string, index int) string {
	switch driver {
	case DriverPostgres:
		return fmt.Sprintf("$%d", index)
	case DriverOracle:
		return fmt.Sprintf(":%d", index)
	default:
		return "?"
	}
}

// Rebind converts `?` placeholders to the driver-specific form, skipping
// quoted string literals so a `?` inside a LIKE pattern is left alone.
func Rebind(driver, statement string) string {
	if driver == DriverMySQL || driver == DriverSQLite {
		return statement
	}

	var b strings.Builder
	index := 1
	inString := false
	for i := 0; i < len(statement); i++ {
		ch := statement[i]
		if ch == '\'' {
			inString = !inString
		}
		if ch == '?' && !inString {
			b.WriteString(Placeholder(driver, index))
			index++
			continue
		}
		b.WriteByte(ch)
	}
	return b.String()
}

// CountPlaceholders reports how many bindable `?` markers a statement has,
// ignoring any inside string literals.
func CountPlaceholders(statement string) int {
	count := 0
	inString := false
	for i := 0; i < len(statement); i++ {
		ch := statement[i]
		if ch == '\'' {
			inString = !inString
		}
		if ch == '?' && !inString {
			count++
		}
	}
	return count
}

// checkArity rejects a statement whose argument list does not match its
// placeholder count before anything is sent to the store.
func checkArity(statement string, args []any) error {
	want := CountPlaceholders(statement)
	if len(args) != want {
		return fmt.Errorf("statement has %d placeholders but %d arguments were given", want, len(args))
	}
	return nil
}
