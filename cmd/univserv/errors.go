package main

import (
	"fmt"
	"os"

	"github.com/campusops/univserv/internal/styles"
)

func printError(format string, args ...any) {
	fmt.Fprintln(os.Stderr, styles.Error.Render(fmt.Sprintf(format, args...)))
	os.Exit(1)
}

func printSuccess(format string, args ...any) {
	fmt.Println(styles.Success.Render("✓ " + fmt.Sprintf(format, args...)))
}
