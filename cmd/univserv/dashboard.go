package main

import (
	"github.com/campusops/univserv/internal/dashboard"
)

func (a *App) handleDashboard() {
	if err := dashboard.Run(a.store); err != nil {
		printError("Error running dashboard: %v", err)
	}
}
