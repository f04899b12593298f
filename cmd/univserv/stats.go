package main

import (
	"fmt"

	"github.com/campusops/univserv/internal/charts"
	"github.com/campusops/univserv/internal/db"
	"github.com/campusops/univserv/internal/styles"
)

// handleStats prints the dashboard's metric row and both charts without
// entering the TUI, for quick checks and cron mails.
func (a *App) handleStats() {
	overview, err := a.store.Overview()
	if err != nil {
		printError("Could not load overview: %v", err)
	}

	fmt.Println(styles.Title.Render("Operational Overview"))
	fmt.Printf("Total Students:    %d\n", overview.TotalStudents)
	fmt.Printf("Total Services:    %d\n", overview.TotalAssignments)
	fmt.Printf("Avg. Service Cost: $%.2f\n", overview.AverageCost)

	costs, err := a.store.TotalCostPerStudent()
	if err != nil {
		printError("Could not load cost per student: %v", err)
	}
	fmt.Println()
	fmt.Println(styles.Title.Render("Total Cost per Student"))
	renderChart(costs, "student_id", "total_cost")

	popularity, err := a.store.ServicePopularity()
	if err != nil {
		printError("Could not load service popularity: %v", err)
	}
	fmt.Println()
	fmt.Println(styles.Title.Render("Service Popularity"))
	renderChart(popularity, "service_name", "usage_count")
}

func renderChart(t *db.Table, labelCol, valueCol string) {
	out, err := charts.BarChart(t, labelCol, valueCol, 0)
	if err != nil {
		fmt.Println(styles.Faint.Render("No data available."))
		return
	}
	fmt.Println(out)
}
