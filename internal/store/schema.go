package store

import (
	"fmt"

	"github.com/campusops/univserv/internal/db"
)

// Init creates the three tables and two views the dashboard reads. DDL is
// driver-specific because of auto-increment keys and string concatenation.
func (s *Store) Init() error {
	statements, err := schemaStatements(s.provider.Driver())
	if err != nil {
		return err
	}
	for _, stmt := range statements {
		if err := s.provider.Exec(stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}

func schemaStatements(driver string) ([]string, error) {
	switch driver {
	case db.DriverMySQL:
		return []string{
			`CREATE TABLE IF NOT EXISTS Students (
				student_id VARCHAR(16) PRIMARY KEY,
				first_name VARCHAR(100),
				last_name VARCHAR(100),
				email VARCHAR(255)
			)`,
			`CREATE TABLE IF NOT EXISTS Services (
				service_id INT AUTO_INCREMENT PRIMARY KEY,
				service_name VARCHAR(100),
				base_cost DECIMAL(10,2)
			)`,
			`CREATE TABLE IF NOT EXISTS StudentServices (
				id INT AUTO_INCREMENT PRIMARY KEY,
				student_id VARCHAR(16),
				service_id INT,
				service_date DATE,
				service_cost DECIMAL(10,2),
				FOREIGN KEY (student_id) REFERENCES Students(student_id),
				FOREIGN KEY (service_id) REFERENCES Services(service_id)
			)`,
			`CREATE OR REPLACE VIEW vw_total_cost_per_student AS
				SELECT student_id, ROUND(SUM(service_cost), 2) AS total_cost
				FROM StudentServices
				GROUP BY student_id`,
			`CREATE OR REPLACE VIEW vw_student_services AS
				SELECT st.student_id,
				       CONCAT(st.first_name, ' ', st.last_name) AS student_name,
				       sv.service_name,
				       ss.service_date,
				       ss.service_cost
				FROM StudentServices ss
				JOIN Students st ON ss.student_id = st.student_id
				JOIN Services sv ON ss.service_id = sv.service_id`,
		}, nil

	case db.DriverPostgres:
		return []string{
			`CREATE TABLE IF NOT EXISTS Students (
				student_id VARCHAR(16) PRIMARY KEY,
				first_name VARCHAR(100),
				last_name VARCHAR(100),
				email VARCHAR(255)
			)`,
			`CREATE TABLE IF NOT EXISTS Services (
				service_id SERIAL PRIMARY KEY,
				service_name VARCHAR(100),
				base_cost NUMERIC(10,2)
			)`,
			`CREATE TABLE IF NOT EXISTS StudentServices (
				id SERIAL PRIMARY KEY,
				student_id VARCHAR(16) REFERENCES Students(student_id),
				service_id INT REFERENCES Services(service_id),
				service_date DATE,
				service_cost NUMERIC(10,2)
			)`,
			`CREATE OR REPLACE VIEW vw_total_cost_per_student AS
				SELECT student_id, ROUND(SUM(service_cost), 2) AS total_cost
				FROM StudentServices
				GROUP BY student_id`,
			`CREATE OR REPLACE VIEW vw_student_services AS
				SELECT st.student_id,
				       st.first_name || ' ' || st.last_name AS student_name,
				       sv.service_name,
				       ss.service_date,
				       ss.service_cost
				FROM StudentServices ss
				JOIN Students st ON ss.student_id = st.student_id
				JOIN Services sv ON ss.service_id = sv.service_id`,
		}, nil

	case db.DriverSQLite:
		return []string{
			`CREATE TABLE IF NOT EXISTS Students (
				student_id TEXT PRIMARY KEY,
				first_name TEXT,
				last_name TEXT,
				email TEXT
			)`,
			`CREATE TABLE IF NOT EXISTS Services (
				service_id INTEGER PRIMARY KEY AUTOINCREMENT,
				service_name TEXT,
				base_cost REAL
			)`,
			`CREATE TABLE IF NOT EXISTS StudentServices (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				student_id TEXT REFERENCES Students(student_id),
				service_id INTEGER REFERENCES Services(service_id),
				service_date TEXT,
				service_cost REAL
			)`,
			`CREATE VIEW IF NOT EXISTS vw_total_cost_per_student AS
				SELECT student_id, ROUND(SUM(service_cost), 2) AS total_cost
				FROM StudentServices
				GROUP BY student_id`,
			`CREATE VIEW IF NOT EXISTS vw_student_services AS
				SELECT st.student_id,
				       st.first_name || ' ' || st.last_name AS student_name,
				       sv.service_name,
				       ss.service_date,
				       ss.service_cost
				FROM StudentServices ss
				JOIN Students st ON ss.student_id = st.student_id
				JOIN Services sv ON ss.service_id = sv.service_id`,
		}, nil

	default:
		// The office's Oracle instance is managed by DBAs; initdb only
		// targets databases this tool is allowed to shape.
		return nil, fmt.Errorf("initdb does not support driver: %s", driver)
	}
}
