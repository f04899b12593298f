package main

import (
	"fmt"
	"log"
	"os"

	"github.com/campusops/univserv/internal/config"
	"github.com/campusops/univserv/internal/store"
)

type App struct {
	config *config.Config
	store  *store.Store
}

func NewApp(cfg *config.Config, s *store.Store) *App {
	return &App{
		config: cfg,
		store:  s,
	}
}

func (a *App) Run() {
	if len(os.Args) < 2 {
		a.handleDashboard()
		return
	}

	command := os.Args[1]
	switch command {
	case "dashboard":
		a.handleDashboard()
	case "stats":
		a.handleStats()
	case "students":
		a.handleStudents()
	case "services":
		a.handleServices()
	case "assign":
		a.handleAssign()
	case "history":
		a.handleHistory()
	case "query", "run":
		a.handleQuery()
	case "list":
		a.handleList()
	case "initdb":
		a.handleInitDB()
	case "help", "--help", "-h":
		a.handleHelp()
	default:
		log.Fatalf("Unknown command: %s", command)
	}
}

func (a *App) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("univserv                     open the dashboard")
	fmt.Println("univserv stats               print the metric overview and charts")
	fmt.Println("univserv students [add|remove]")
	fmt.Println("univserv services [add]")
	fmt.Println("univserv assign <student-id> <service-id> <cost> [date]")
	fmt.Println("univserv history [name-filter]")
	fmt.Println("univserv query <name|id>     run a saved query")
	fmt.Println("univserv list                list saved queries")
	fmt.Println("univserv initdb              create tables and views")
}
