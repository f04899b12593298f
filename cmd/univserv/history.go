package main

import (
	"fmt"
	"os"

	"github.com/campusops/univserv/internal/table"
)

func (a *App) handleHistory() {
	filter := ""
	if len(os.Args) >= 3 {
		filter = os.Args[2]
	}

	history, err := a.store.ServiceHistory(filter)
	if err != nil {
		printError("Could not load service history: %v", err)
	}
	title := "Recent Service History"
	if filter != "" {
		title = fmt.Sprintf("Service History matching %q", filter)
	}
	fmt.Println(table.RenderWithTitle(title, history))
}
