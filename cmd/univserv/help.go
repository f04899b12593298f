package main

import (
	"fmt"

	"github.com/campusops/univserv/internal/styles"
)

func (a *App) handleHelp() {
	fmt.Println(styles.Title.Render("univserv - university services dashboard"))
	fmt.Println()
	a.printUsage()
	fmt.Println()
	fmt.Println(styles.Faint.Render("Connection settings come from ~/.config/univserv/config.yaml"))
	fmt.Println(styles.Faint.Render("or the MYSQL_HOST/MYSQL_USER/MYSQL_PASSWORD/MYSQL_DATABASE environment variables."))
}
