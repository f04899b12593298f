package main

import (
	"os"
	"strconv"
	"time"
)

func (a *App) handleAssign() {
	if len(os.Args) < 5 {
		printError("Usage: univserv assign <student-id> <service-id> <cost> [date]")
	}

	studentID := os.Args[2]

	serviceID, err := strconv.Atoi(os.Args[3])
	if err != nil {
		printError("Service id must be a number: %v", err)
	}

	cost, err := strconv.ParseFloat(os.Args[4], 64)
	if err != nil {
		printError("Cost must be a number: %v", err)
	}

	date := time.Now().Format("2006-01-02")
	if len(os.Args) >= 6 {
		date = os.Args[5]
	}

	if err := a.store.AssignService(studentID, serviceID, date, cost); err != nil {
		printError("Could not create service record: %v", err)
	}
	printSuccess("Service record created for %s", studentID)
}
