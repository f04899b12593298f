package main

import (
	"fmt"
	"os"

	"github.com/campusops/univserv/internal/table"
)

func (a *App) handleStudents() {
	if len(os.Args) < 3 {
		students, err := a.store.ListStudents()
		if err != nil {
			printError("Could not list students: %v", err)
		}
		fmt.Println(table.RenderWithTitle("Current Students", students))
		return
	}

	switch os.Args[2] {
	case "add":
		if len(os.Args) < 6 {
			printError("Usage: univserv students add <id> <first-name> <last-name> [email]")
		}
		email := ""
		if len(os.Args) >= 7 {
			email = os.Args[6]
		}
		if err := a.store.AddStudent(os.Args[3], os.Args[4], os.Args[5], email); err != nil {
			printError("Could not add student: %v", err)
		}
		printSuccess("Student %s saved", os.Args[3])

	case "remove", "delete":
		if len(os.Args) < 4 {
			printError("Usage: univserv students remove <id>")
		}
		if err := a.store.RemoveStudent(os.Args[3]); err != nil {
			printError("Could not remove student: %v", err)
		}
		printSuccess("Student %s deleted", os.Args[3])

	default:
		printError("Unknown students subcommand: %s", os.Args[2])
	}
}
