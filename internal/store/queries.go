package store

import "strconv"

// Query is a named, saved read statement. The catalog below mirrors every
// read the dashboard issues so each one can also be run ad hoc with
// `univserv query <name|id>`.
type Query struct {
	Name string
	Id   int
	SQL  string
}

const (
	sqlListStudents = "SELECT * FROM Students"
	sqlListServices = "SELECT * FROM Services"

	sqlCountStudents    = "SELECT COUNT(*) AS count FROM Students"
	sqlCountAssignments = "SELECT COUNT(*) AS count FROM StudentServices"
	sqlAverageCost      = "SELECT ROUND(AVG(service_cost), 2) AS avg_cost FROM StudentServices"

	sqlTotalCostPerStudent = "SELECT * FROM vw_total_cost_per_student"
	sqlServiceHistory      = "SELECT * FROM vw_student_services"
	sqlHistoryByName       = "SELECT * FROM vw_student_services WHERE student_name LIKE ?"

	sqlServicePopularity = `SELECT sv.service_name, COUNT(*) AS usage_count
FROM StudentServices ss
JOIN Services sv ON ss.service_id = sv.service_id
GROUP BY sv.service_name`

	sqlInsertStudent    = "INSERT INTO Students (student_id, first_name, last_name, email) VALUES (?, ?, ?, ?)"
	sqlDeleteStudent    = "DELETE FROM Students WHERE student_id = ?"
	sqlInsertService    = "INSERT INTO Services (service_name, base_cost) VALUES (?, ?)"
	sqlInsertAssignment = "INSERT INTO StudentServices (student_id, service_id, service_date, service_cost) VALUES (?, ?, ?, ?)"
)

var Catalog = map[string]Query{
	"students":         {Name: "students", Id: 1, SQL: sqlListStudents},
	"services":         {Name: "services", Id: 2, SQL: sqlListServices},
	"history":          {Name: "history", Id: 3, SQL: sqlServiceHistory},
	"cost-per-student": {Name: "cost-per-student", Id: 4, SQL: sqlTotalCostPerStudent},
	"popularity":       {Name: "popularity", Id: 5, SQL: sqlServicePopularity},
	"avg-cost":         {Name: "avg-cost", Id: 6, SQL: sqlAverageCost},
}

// FindQuery looks a catalog entry up by name, or by numeric id when the
// selector parses as one.
func FindQuery(selector string) (Query, bool) {
	if id, err := strconv.Atoi(selector); err == nil {
		for _, q := range Catalog {
			if q.Id == id {
				return q, true
			}
		}
		return Query{}, false
	}
	q, ok := Catalog[selector]
	return q, ok
}
