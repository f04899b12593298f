package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/campusops/univserv/internal/table"
)

func (a *App) handleServices() {
	if len(os.Args) < 3 {
		services, err := a.store.ListServices()
		if err != nil {
			printError("Could not list services: %v", err)
		}
		fmt.Println(table.RenderWithTitle("Available Services", services))
		return
	}

	switch os.Args[2] {
	case "add":
		if len(os.Args) < 5 {
			printError("Usage: univserv services add <name> <base-cost>")
		}
		cost, err := strconv.ParseFloat(os.Args[4], 64)
		if err != nil {
			printError("Base cost must be a number: %v", err)
		}
		if err := a.store.AddService(os.Args[3], cost); err != nil {
			printError("Could not add service: %v", err)
		}
		printSuccess("Service %s saved", os.Args[3])

	default:
		printError("Unknown services subcommand: %s", os.Args[2])
	}
}
